package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Githu836/Phone-Lookup/internal/batch"
	"github.com/Githu836/Phone-Lookup/internal/lookup"
)

func sampleResult(input string) lookup.Result {
	return lookup.Result{
		Input:       input,
		Normalized:  input,
		E164:        "+6281234567890",
		Valid:       true,
		RegionCode:  "ID",
		DialingCode: 62,
		Carrier:     "Telkomsel",
		Timezones:   []string{"Asia/Jakarta"},
		Type:        lookup.TypeMobile,
		LookedUpAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFromResult(t *testing.T) {
	records := FromResult(sampleResult("+6281234567890"))
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Result == nil {
		t.Fatal("record should carry the result")
	}
	if records[0].Error != "" {
		t.Errorf("error = %q, want empty", records[0].Error)
	}
}

func TestFromOutcomes_PreservesOrderAndFailures(t *testing.T) {
	ok := sampleResult("+62811")
	outcomes := []batch.Outcome{
		{Line: 1, Input: "+62811", Result: &ok},
		{Line: 2, Input: "garbage", Err: errors.New("no numbering plan match")},
	}

	records := FromOutcomes(outcomes)
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	if records[0].Result == nil || records[0].Result.Input != "+62811" {
		t.Errorf("first record = %+v, want result for +62811", records[0])
	}
	if records[1].Result != nil {
		t.Error("failed outcome should export no result")
	}
	if records[1].Input != "garbage" {
		t.Errorf("failed input = %q, want %q", records[1].Input, "garbage")
	}
	if records[1].Error != "no numbering plan match" {
		t.Errorf("failed reason = %q", records[1].Error)
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "results.json")

	want := FromResult(sampleResult("+6281234567890"))
	if err := WriteFile(path, want); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var got []Record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("written file is not valid JSON: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("records = %d, want 1", len(got))
	}

	gr, wr := got[0].Result, want[0].Result
	if gr == nil {
		t.Fatal("round trip lost the result")
	}
	if gr.E164 != wr.E164 || gr.Carrier != wr.Carrier || gr.Type != wr.Type {
		t.Errorf("round trip mismatch: got %+v, want %+v", gr, wr)
	}
	if !gr.LookedUpAt.Equal(wr.LookedUpAt) {
		t.Errorf("timestamp = %v, want %v", gr.LookedUpAt, wr.LookedUpAt)
	}
}

func TestWriteFile_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if err := WriteFile("results.json", FromResult(sampleResult("+62811"))); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "results.json")); err != nil {
		t.Errorf("file not written: %v", err)
	}
}
