package main

import (
	"fmt"
	"path/filepath"

	"github.com/ha1tch/curlyarc-toolkit/pkg/termhost"
)

func (ed *Editor) draw() {
	shapes := make([]termhost.Plotted, 0, len(ed.arcs))
	for i, a := range ed.arcs {
		style := termhost.StyleArc
		if i == ed.selected {
			style = termhost.StyleSelected
		}
		shapes = append(shapes, termhost.Plotted{Points: a.PixelPoints(), Style: style})
	}
	ed.host.Render(shapes, ed.statusLine())
}

func (ed *Editor) modeString() string {
	if ed.host.OpaqueMoves {
		return "live"
	}
	return "rubber-band"
}

func (ed *Editor) statusLine() string {
	name := "untitled"
	if ed.filename != "" {
		name = filepath.Base(ed.filename)
	}
	if ed.modified {
		name += "*"
	}

	sel := "none"
	if ed.selected >= 0 {
		a := ed.arcs[ed.selected]
		kind := "curly"
		if !a.IsCurly() {
			kind = "wavy"
		}
		sel = fmt.Sprintf("#%d %s r=%.3g %s", ed.selected, kind, a.Radius(), a.Session().Phase())
	}

	line := fmt.Sprintf("%s | %d arcs | %s | %s", name, len(ed.arcs), ed.modeString(), sel)
	if ed.message != "" {
		msg := ed.message
		if ed.messageType == MsgError {
			msg = "! " + msg
		}
		line += " | " + msg
	}
	return line + " | " + helpString
}

const helpString = "n:new d:del w:wavy o:mode u:undo s:save q:quit"
