// Package render formats lookup output for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Githu836/Phone-Lookup/internal/batch"
	"github.com/Githu836/Phone-Lookup/internal/country"
	"github.com/Githu836/Phone-Lookup/internal/lookup"
)

// Options control rendering.
type Options struct {
	Plain bool // suppress colors and styling
}

// palette groups the lipgloss styles used across all views.
type palette struct {
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	dim    lipgloss.Style
}

func newPalette(plain bool) palette {
	if plain {
		s := lipgloss.NewStyle()
		return palette{header: s, label: s, value: s, good: s, bad: s, dim: s}
	}
	return palette{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
		label:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}),
		value:  lipgloss.NewStyle(),
		good:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}),
		bad:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
	}
}

// Result writes a styled result card for one lookup.
func Result(w io.Writer, res lookup.Result, opts Options) {
	p := newPalette(opts.Plain)

	_, _ = fmt.Fprintf(w, "\n%s\n", p.header.Render("Phone Number Lookup"))

	field(w, p, "Number", res.International)
	if info, ok := country.Match(res.E164); ok {
		field(w, p, "Country", fmt.Sprintf("%s %s (%s)", info.Flag, info.Name, info.Prefix()))
	} else {
		field(w, p, "Country", fmt.Sprintf("+%d", res.DialingCode))
	}
	if res.RegionName != "" {
		field(w, p, "Region", res.RegionName)
	}
	field(w, p, "Region Code", res.RegionCode)
	field(w, p, "National", res.National)
	field(w, p, "E.164", res.E164)

	valid := p.bad.Render("no")
	if res.Valid {
		valid = p.good.Render("yes")
	}
	field(w, p, "Valid", valid)
	field(w, p, "Possible", yesNo(res.Possible))

	carrierLine := res.Carrier
	if res.LocalCarrier != "" && res.GenericCarrier != "" && res.LocalCarrier != res.GenericCarrier {
		carrierLine += " " + p.dim.Render(fmt.Sprintf("(plan data: %s)", res.GenericCarrier))
	}
	field(w, p, "Carrier", carrierLine)
	field(w, p, "Type", string(res.Type))
	field(w, p, "Time Zones", strings.Join(res.Timezones, ", "))
	field(w, p, "Looked Up", res.LookedUpAt.Format("2006-01-02 15:04:05"))
}

// Countries writes the dialing-code directory in ascending code order.
func Countries(w io.Writer, entries []country.Info, opts Options) {
	p := newPalette(opts.Plain)
	_, _ = fmt.Fprintf(w, "%s\n", p.header.Render("Supported country codes"))
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "  %s  %s %s\n", p.label.Render(fmt.Sprintf("%-4s", e.Prefix())), e.Flag, e.Name)
	}
}

// Summary writes the batch end-of-run summary: totals first, then one line
// per failure with its reason.
func Summary(w io.Writer, outcomes []batch.Outcome, opts Options) {
	p := newPalette(opts.Plain)

	succeeded, failed := 0, 0
	for _, out := range outcomes {
		if out.Failed() {
			failed++
		} else {
			succeeded++
		}
	}

	_, _ = fmt.Fprintf(w, "\n%s %s, %s\n",
		p.header.Render("Batch complete:"),
		p.good.Render(fmt.Sprintf("%d succeeded", succeeded)),
		p.bad.Render(fmt.Sprintf("%d failed", failed)))

	for _, out := range outcomes {
		if out.Failed() {
			_, _ = fmt.Fprintf(w, "  %s line %d: %s: %v\n", p.bad.Render("✗"), out.Line, out.Input, out.Err)
		}
	}
}

func field(w io.Writer, p palette, name, value string) {
	_, _ = fmt.Fprintf(w, "  %s %s\n", p.label.Render(fmt.Sprintf("%-12s", name+":")), p.value.Render(value))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
