package arcfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ha1tch/curlyarc-toolkit/pkg/curlyarc"
)

const (
	macroScene  = "// scene "
	macroCanvas = "// canvas "
)

// WriteMacro writes s as a macro script. The scene name and canvas go into
// leading comments; labels are not stored.
func WriteMacro(w io.Writer, s *Scene) error {
	var buf bytes.Buffer
	if s.Name != "" {
		fmt.Fprintf(&buf, "%s%s\n", macroScene, s.Name)
	}
	c := s.Canvas
	fmt.Fprintf(&buf, "%s%d %d %s %s %s %s\n", macroCanvas, c.Width, c.Height,
		fmtFloat(c.X1), fmtFloat(c.Y1), fmtFloat(c.X2), fmtFloat(c.Y2))

	script := curlyarc.NewScript(&buf)
	for _, spec := range s.Arcs {
		if err := script.Save(spec.Arc()); err != nil {
			return err
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing macro: %w", err)
	}
	return nil
}

// ReadMacro replays a macro script into a scene. Without a canvas comment
// the default canvas is used.
func ReadMacro(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading macro: %w", err)
	}

	s := NewScene("", DefaultCanvas())
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, macroScene):
			s.Name = strings.TrimSpace(strings.TrimPrefix(line, macroScene))
		case strings.HasPrefix(line, macroCanvas):
			c, err := parseCanvas(strings.TrimPrefix(line, macroCanvas))
			if err != nil {
				return nil, err
			}
			s.Canvas = c
		}
	}

	arcs, err := curlyarc.ParseScript(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("replaying macro: %w", err)
	}
	for _, a := range arcs {
		s.Add(a)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return s, nil
}

func parseCanvas(text string) (Canvas, error) {
	f := strings.Fields(text)
	if len(f) != 6 {
		return Canvas{}, fmt.Errorf("canvas comment: want 6 fields, got %d", len(f))
	}
	var c Canvas
	var err error
	if c.Width, err = strconv.Atoi(f[0]); err != nil {
		return Canvas{}, fmt.Errorf("canvas width: %w", err)
	}
	if c.Height, err = strconv.Atoi(f[1]); err != nil {
		return Canvas{}, fmt.Errorf("canvas height: %w", err)
	}
	vals := make([]float64, 4)
	for i := range vals {
		if vals[i], err = strconv.ParseFloat(f[2+i], 64); err != nil {
			return Canvas{}, fmt.Errorf("canvas range: %w", err)
		}
	}
	c.X1, c.Y1, c.X2, c.Y2 = vals[0], vals[1], vals[2], vals[3]
	return c, nil
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
