package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Githu836/Phone-Lookup/internal/lookup"
)

// fakeLooker returns canned results or errors per input.
type fakeLooker struct {
	errs map[string]error
}

func (f *fakeLooker) Lookup(raw string) (lookup.Result, error) {
	if err, ok := f.errs[raw]; ok {
		return lookup.Result{}, err
	}
	return lookup.Result{
		Input:      raw,
		Carrier:    "Telkomsel",
		Type:       lookup.TypeMobile,
		LookedUpAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}, nil
}

func TestRun_OrderMatchesInput(t *testing.T) {
	r := NewRunner(&fakeLooker{})
	lines := []string{"+62811", "+62812", "+62813"}

	outcomes, err := r.Run(context.Background(), lines)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(outcomes) != 3 {
		t.Fatalf("outcomes = %d, want 3", len(outcomes))
	}
	for i, out := range outcomes {
		if out.Input != lines[i] {
			t.Errorf("outcomes[%d].Input = %q, want %q", i, out.Input, lines[i])
		}
		if out.Line != i+1 {
			t.Errorf("outcomes[%d].Line = %d, want %d", i, out.Line, i+1)
		}
	}
}

func TestRun_SkipsBlankLines(t *testing.T) {
	r := NewRunner(&fakeLooker{})
	lines := []string{"+62811", "", "   ", "+62812", ""}

	outcomes, err := r.Run(context.Background(), lines)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(outcomes))
	}
	// Line numbers refer to the original input, not the compacted sequence.
	if outcomes[1].Line != 4 {
		t.Errorf("second outcome line = %d, want 4", outcomes[1].Line)
	}
}

func TestRun_IsolatesPerLineFailures(t *testing.T) {
	r := NewRunner(&fakeLooker{errs: map[string]error{
		"not-a-number": fmt.Errorf("%w: bad", lookup.ErrUnparseable),
	}})
	lines := []string{"+62811", "not-a-number", "+62812"}

	outcomes, err := r.Run(context.Background(), lines)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(outcomes) != 3 {
		t.Fatalf("outcomes = %d, want 3 (failure must not stop the batch)", len(outcomes))
	}
	if !outcomes[1].Failed() {
		t.Error("second outcome should be a failure")
	}
	if !errors.Is(outcomes[1].Err, lookup.ErrUnparseable) {
		t.Errorf("err = %v, want ErrUnparseable", outcomes[1].Err)
	}
	if outcomes[1].Result != nil {
		t.Error("failed outcome should carry no result")
	}
	if outcomes[0].Failed() || outcomes[2].Failed() {
		t.Error("surrounding lines should succeed")
	}
}

func TestRun_OracleUnavailableAborts(t *testing.T) {
	r := NewRunner(&fakeLooker{errs: map[string]error{
		"+62812": fmt.Errorf("%w: metadata", lookup.ErrOracleUnavailable),
	}})
	lines := []string{"+62811", "+62812", "+62813"}

	outcomes, err := r.Run(context.Background(), lines)
	if !errors.Is(err, lookup.ErrOracleUnavailable) {
		t.Fatalf("Run() error = %v, want ErrOracleUnavailable", err)
	}
	if len(outcomes) != 1 {
		t.Errorf("outcomes = %d, want 1 (run aborts at the fatal line)", len(outcomes))
	}
}

func TestRun_StatusCallback(t *testing.T) {
	var seen []Outcome
	r := NewRunner(&fakeLooker{errs: map[string]error{
		"bad": fmt.Errorf("%w: bad", lookup.ErrUnparseable),
	}}, WithStatus(func(out Outcome) {
		seen = append(seen, out)
	}))

	outcomes, err := r.Run(context.Background(), []string{"+62811", "bad"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(seen) != len(outcomes) {
		t.Fatalf("status callbacks = %d, want %d", len(seen), len(outcomes))
	}
	if seen[1].Input != "bad" || !seen[1].Failed() {
		t.Errorf("second callback = %+v, want failed outcome for %q", seen[1], "bad")
	}
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(&fakeLooker{})
	_, err := r.Run(ctx, []string{"+62811"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "numbers.txt")
	if err := os.WriteFile(path, []byte("+62811\r\n+62812\n\n+62813"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}

	want := []string{"+62811", "+62812", "", "+62813"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %d, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLines_MissingFile(t *testing.T) {
	if _, err := ReadLines("/nonexistent/numbers.txt"); err == nil {
		t.Error("ReadLines() should return error for a missing file")
	}
}
