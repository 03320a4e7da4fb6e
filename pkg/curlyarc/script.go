package curlyarc

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// scriptVar is the variable name used for arcs in saved scripts.
const scriptVar = "curlyarc"

// Script writes arcs as macro statements that ParseScript can replay.
// The first arc saved declares the variable; later arcs reassign it.
type Script struct {
	w        io.Writer
	declared bool
}

// NewScript returns a Script writing to w.
func NewScript(w io.Writer) *Script {
	return &Script{w: w}
}

// Save writes the statements that reconstruct a.
func (s *Script) Save(a *Arc) error {
	var b strings.Builder

	op := ":="
	if s.declared {
		op = "="
	}
	fmt.Fprintf(&b, "   %s %s %s.New(%s)\n", scriptVar, op, scriptVar, formatArgs(
		a.center.X, a.center.Y, a.radius, a.phiMin, a.phiMax, a.waveLength, a.amplitude))
	if !a.curly {
		fmt.Fprintf(&b, "   %s.SetWavy()\n", scriptVar)
	}
	if a.line.Color != DefaultLine.Color {
		fmt.Fprintf(&b, "   %s.SetLineColor(%d)\n", scriptVar, a.line.Color)
	}
	if a.line.Style != DefaultLine.Style {
		fmt.Fprintf(&b, "   %s.SetLineStyle(%d)\n", scriptVar, a.line.Style)
	}
	if a.line.Width != DefaultLine.Width {
		fmt.Fprintf(&b, "   %s.SetLineWidth(%d)\n", scriptVar, a.line.Width)
	}
	fmt.Fprintf(&b, "   %s.Draw()\n", scriptVar)

	if _, err := io.WriteString(s.w, b.String()); err != nil {
		return fmt.Errorf("writing arc: %w", err)
	}
	s.declared = true
	return nil
}

// SavePrimitive writes a as a standalone script.
func (a *Arc) SavePrimitive(w io.Writer) error {
	return NewScript(w).Save(a)
}

func formatArgs(vals ...float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, ", ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
