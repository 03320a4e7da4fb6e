package curlyarc

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ScriptError reports a statement ParseScript could not execute.
type ScriptError struct {
	Line int
	Msg  string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

var (
	newStmt  = regexp.MustCompile(`^([A-Za-z_]\w*)\s*(:=|=)\s*curlyarc\.New\((.*)\)$`)
	callStmt = regexp.MustCompile(`^([A-Za-z_]\w*)\.(\w+)\((.*)\)$`)
)

// ParseScript replays a macro script written by Script and returns the
// arcs in the order they were drawn. opts are applied to every arc created.
func ParseScript(r io.Reader, opts ...Option) ([]*Arc, error) {
	vars := make(map[string]*Arc)
	var drawn []*Arc

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if i := strings.Index(text, "//"); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
		if text == "" {
			continue
		}

		if m := newStmt.FindStringSubmatch(text); m != nil {
			if m[2] == "=" && vars[m[1]] == nil {
				return nil, &ScriptError{Line: line, Msg: fmt.Sprintf("assignment to undeclared %s", m[1])}
			}
			if m[2] == ":=" && vars[m[1]] != nil {
				return nil, &ScriptError{Line: line, Msg: fmt.Sprintf("%s redeclared", m[1])}
			}
			args, err := parseFloats(m[3], 7)
			if err != nil {
				return nil, &ScriptError{Line: line, Msg: err.Error()}
			}
			vars[m[1]] = New(args[0], args[1], args[2], args[3], args[4], args[5], args[6], opts...)
			continue
		}

		m := callStmt.FindStringSubmatch(text)
		if m == nil {
			return nil, &ScriptError{Line: line, Msg: fmt.Sprintf("unrecognized statement %q", text)}
		}
		a := vars[m[1]]
		if a == nil {
			return nil, &ScriptError{Line: line, Msg: fmt.Sprintf("undefined: %s", m[1])}
		}
		if err := call(a, m[2], m[3], &drawn); err != nil {
			return nil, &ScriptError{Line: line, Msg: err.Error()}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return drawn, nil
}

func call(a *Arc, method, argText string, drawn *[]*Arc) error {
	switch method {
	case "Draw", "SetWavy", "SetCurly":
		if strings.TrimSpace(argText) != "" {
			return fmt.Errorf("%s takes no arguments", method)
		}
		switch method {
		case "Draw":
			*drawn = append(*drawn, a)
		case "SetWavy":
			a.SetWavy()
		case "SetCurly":
			a.SetCurly()
		}
		return nil

	case "SetLineColor", "SetLineStyle", "SetLineWidth":
		v, err := strconv.Atoi(strings.TrimSpace(argText))
		if err != nil {
			return fmt.Errorf("%s: bad integer %q", method, argText)
		}
		switch method {
		case "SetLineColor":
			a.SetLineColor(v)
		case "SetLineStyle":
			a.SetLineStyle(v)
		case "SetLineWidth":
			a.SetLineWidth(v)
		}
		return nil

	case "SetCenter":
		args, err := parseFloats(argText, 2)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		a.SetCenter(args[0], args[1])
		return nil

	case "SetRadius", "SetPhiMin", "SetPhiMax", "SetWaveLength", "SetAmplitude":
		args, err := parseFloats(argText, 1)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		setters := map[string]func(float64){
			"SetRadius":     a.SetRadius,
			"SetPhiMin":     a.SetPhiMin,
			"SetPhiMax":     a.SetPhiMax,
			"SetWaveLength": a.SetWaveLength,
			"SetAmplitude":  a.SetAmplitude,
		}
		setters[method](args[0])
		return nil
	}
	return fmt.Errorf("unknown method %s", method)
}

func parseFloats(text string, n int) ([]float64, error) {
	fields := strings.Split(text, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("want %d arguments, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
