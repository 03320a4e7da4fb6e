// Command curlyarc is a CLI tool for working with curly arc scenes.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/ha1tch/curlyarc-toolkit/pkg/arcfile"
	"github.com/ha1tch/curlyarc-toolkit/pkg/config"
	"github.com/ha1tch/curlyarc-toolkit/pkg/curlyarc"
)

const usage = `curlyarc - curly and wavy arc toolkit

Usage:
  curlyarc [--config file] [-v] <command> [options]

Commands:
  new        Create a scene with arcs built from the configured defaults
  render     Render a scene to SVG or PNG
  macro      Print the scene as a macro script
  convert    Convert between formats (arcs, json, macro)
  info       Show scene information
  pick       Find the arc nearest to a pixel
  gesture    Drive an arc's pointer gestures interactively

Examples:
  curlyarc new vertex.arcs --arc 0.5,0.5,0.25,0,180
  curlyarc render vertex.arcs -o vertex.png
  curlyarc convert vertex.arcs -o vertex.json --pretty
  curlyarc pick vertex.arcs 600 300
  curlyarc gesture vertex.arcs --arc 0

Use "curlyarc <command> -h" for more information about a command.
`

// globals are the options accepted before or after the command name.
type globals struct {
	config  string
	verbose bool
}

// splitGlobals removes the global options from args.
func splitGlobals(args []string) (globals, []string) {
	var g globals
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 < len(args) {
				g.config = args[i+1]
				i++
			}
		case "-v", "--verbose":
			g.verbose = true
		default:
			rest = append(rest, args[i])
		}
	}
	return g, rest
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	curlyarc.SetLogger(l)
	arcfile.SetLogger(l)
}

func main() {
	g, args := splitGlobals(os.Args[1:])
	if len(args) < 1 {
		fmt.Print(usage)
		os.Exit(1)
	}
	setupLogging(g.verbose)

	cmd := args[0]
	args = args[1:]

	if cmd == "-h" || cmd == "--help" || cmd == "help" {
		fmt.Print(usage)
		return
	}

	v, err := config.Load(g.config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	switch cmd {
	case "new":
		cmdNew(v, args)
	case "render":
		cmdRender(v, args)
	case "macro":
		cmdMacro(args)
	case "convert":
		cmdConvert(args)
	case "info":
		cmdInfo(args)
	case "pick":
		cmdPick(args)
	case "gesture":
		cmdGesture(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func cmdNew(v *viper.Viper, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: curlyarc new <output> [--name name] [--arc x,y,r,phimin,phimax]... [--wavy] [--pretty]")
		os.Exit(1)
	}

	output := args[0]
	var name string
	var arcs [][5]float64
	wavy := false
	pretty := false

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--name":
			if i+1 < len(args) {
				name = args[i+1]
				i++
			}
		case "--arc":
			if i+1 < len(args) {
				a, err := parseArcFlag(args[i+1])
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
				arcs = append(arcs, a)
				i++
			}
		case "--wavy":
			wavy = true
		case "--pretty":
			pretty = true
		}
	}

	canvas := config.Canvas(v)
	if err := canvas.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defaults := config.Defaults(v)
	if wavy {
		defaults.SetIsCurly(false)
	}

	s := newScene(name, canvas, defaults, arcs)
	if err := saveScene(output, s, pretty); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("Written: %s (%d arcs)\n", output, len(s.Arcs))
}

// newScene builds a scene from arc parameters. Without any it holds one
// half circle centered in the canvas range.
func newScene(name string, c arcfile.Canvas, d *curlyarc.Defaults, arcs [][5]float64) *arcfile.Scene {
	s := arcfile.NewScene(name, c)
	if len(arcs) == 0 {
		cx, cy := (c.X1+c.X2)/2, (c.Y1+c.Y2)/2
		r := (c.X2 - c.X1) / 4
		if r < 0 {
			r = -r
		}
		arcs = append(arcs, [5]float64{cx, cy, r, 0, 180})
	}
	for _, a := range arcs {
		s.Add(d.New(a[0], a[1], a[2], a[3], a[4]))
	}
	return s
}

// parseArcFlag parses "x,y,r,phimin,phimax".
func parseArcFlag(text string) ([5]float64, error) {
	var out [5]float64
	parts := strings.Split(text, ",")
	if len(parts) != len(out) {
		return out, fmt.Errorf("arc %q: want x,y,r,phimin,phimax", text)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, fmt.Errorf("arc %q: %w", text, err)
		}
		out[i] = f
	}
	return out, nil
}

func cmdRender(v *viper.Viper, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: curlyarc render <input> [-o output.svg|output.png] [-t title]")
		os.Exit(1)
	}

	input := args[0]
	var output, title string

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "-t", "--title":
			if i+1 < len(args) {
				title = args[i+1]
				i++
			}
		}
	}

	s, err := loadScene(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}

	if strings.EqualFold(fileExt(output), ".png") {
		opts := config.PNGOptions(v)
		if title != "" {
			opts.Title = title
		}
		f, err := os.Create(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", output, err)
			os.Exit(1)
		}
		err = arcfile.RenderPNG(s, f, opts)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
			os.Exit(1)
		}
		fmt.Printf("Written: %s\n", output)
		return
	}

	opts := config.SVGOptions(v)
	if title != "" {
		opts.Title = title
	}
	svg := arcfile.GenerateSVG(s, opts)
	if output == "" {
		fmt.Print(svg)
		return
	}
	if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("Written: %s\n", output)
}

func cmdMacro(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: curlyarc macro <input>")
		os.Exit(1)
	}

	input := args[0]
	s, err := loadScene(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}
	if err := arcfile.WriteMacro(os.Stdout, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cmdConvert(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: curlyarc convert <input> [-o output] [--pretty]")
		os.Exit(1)
	}

	input := args[0]
	var output string
	pretty := false

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "--pretty":
			pretty = true
		}
	}

	s, err := loadScene(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}

	if output == "" {
		output = convertTarget(input)
	}
	if err := saveScene(output, s, pretty); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("Written: %s\n", output)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: curlyarc info <input>")
		os.Exit(1)
	}

	input := args[0]
	s, err := loadScene(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}

	c := s.Canvas
	if s.Name != "" {
		fmt.Printf("Name:    %s\n", s.Name)
	}
	fmt.Printf("Canvas:  %dx%d px, range (%g, %g)-(%g, %g)\n", c.Width, c.Height, c.X1, c.Y1, c.X2, c.Y2)
	fmt.Printf("Arcs:    %d\n", len(s.Arcs))

	arcs := s.Build(c.Pad())
	for i, a := range arcs {
		kind := "curly"
		if !a.IsCurly() {
			kind = "wavy"
		}
		fmt.Printf("  %d: %s center (%g, %g) r=%g phi %g..%g length %.4g, %d points",
			i, kind, a.Center().X, a.Center().Y, a.Radius(), a.PhiMin(), a.PhiMax(), a.Length(), len(a.Points()))
		if l := s.Arcs[i].Label; l != "" {
			fmt.Printf(" [%s]", l)
		}
		fmt.Println()
	}
}

func cmdPick(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: curlyarc pick <input> <px> <py>")
		os.Exit(1)
	}

	input := args[0]
	px, errx := strconv.Atoi(args[1])
	py, erry := strconv.Atoi(args[2])
	if errx != nil || erry != nil {
		fmt.Fprintln(os.Stderr, "Error: pixel coordinates must be integers")
		os.Exit(1)
	}

	s, err := loadScene(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}

	arcs := s.Build(s.Canvas.Pad())
	i, d := nearestArc(arcs, px, py)
	if i < 0 {
		fmt.Println("No arc near")
		return
	}
	fmt.Printf("Arc %d: distance %d px\n", i, d)
}

// nearestArc returns the index of the arc closest to pixel (px, py) and
// its distance, or -1 when no arc is in range.
func nearestArc(arcs []*curlyarc.Arc, px, py int) (int, int) {
	best, dist := -1, curlyarc.NotNear
	for i, a := range arcs {
		if d := a.DistanceToPrimitive(px, py); d < dist {
			best, dist = i, d
		}
	}
	return best, dist
}

func cmdGesture(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: curlyarc gesture <input> [--arc index] [--opaque]")
		os.Exit(1)
	}

	input := args[0]
	index := 0
	opaque := false

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--arc":
			if i+1 < len(args) {
				n, err := strconv.Atoi(args[i+1])
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: bad arc index %q\n", args[i+1])
					os.Exit(1)
				}
				index = n
				i++
			}
		case "--opaque":
			opaque = true
		}
	}

	s, err := loadScene(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}
	if index < 0 || index >= len(s.Arcs) {
		fmt.Fprintf(os.Stderr, "Error: scene has %d arcs\n", len(s.Arcs))
		os.Exit(1)
	}

	pad := s.Canvas.Pad()
	pad.OpaqueMoves = opaque
	arcs := s.Build(pad)
	a := arcs[index]

	fmt.Printf("Arc %d of %s\n", index, input)
	fmt.Println("Commands: down|drag|up|move|key|keyup <x> <y>, status, history, save <file>, quit")
	fmt.Println()
	printArc(a)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit", "q":
			return
		case "status":
			printArc(a)
		case "history":
			printHistory(a.Session())
		case "save":
			if len(fields) < 2 {
				fmt.Fprintln(os.Stderr, "Usage: save <file>")
				continue
			}
			s.Update(arcs)
			if err := saveScene(fields[1], s, true); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Printf("Written: %s\n", fields[1])
		case "help", "?":
			fmt.Println("Commands:")
			fmt.Println("  down <x> <y>   - Press button 1")
			fmt.Println("  drag <x> <y>   - Move with button 1 held")
			fmt.Println("  up <x> <y>     - Release button 1")
			fmt.Println("  move <x> <y>   - Move without buttons")
			fmt.Println("  key <x> <y>    - Arrow key press")
			fmt.Println("  keyup <x> <y>  - Arrow key release")
			fmt.Println("  status         - Show arc and gesture state")
			fmt.Println("  history        - Show gesture history")
			fmt.Println("  save <file>    - Save the scene")
			fmt.Println("  quit           - Exit")
		default:
			ev, px, py, err := parseGestureCommand(fields)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			a.ExecuteEvent(ev, px, py)
			printArc(a)
		}
	}
}

var gestureEvents = map[string]curlyarc.Event{
	"down":  curlyarc.EventButton1Down,
	"drag":  curlyarc.EventButton1Motion,
	"up":    curlyarc.EventButton1Up,
	"move":  curlyarc.EventMouseMotion,
	"key":   curlyarc.EventArrowKeyPress,
	"keyup": curlyarc.EventArrowKeyRelease,
}

// parseGestureCommand parses "<event> <x> <y>".
func parseGestureCommand(fields []string) (curlyarc.Event, int, int, error) {
	ev, ok := gestureEvents[fields[0]]
	if !ok {
		return 0, 0, 0, fmt.Errorf("unknown command %q", fields[0])
	}
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%s needs <x> <y>", fields[0])
	}
	px, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad x: %w", err)
	}
	py, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad y: %w", err)
	}
	return ev, px, py, nil
}

func printArc(a *curlyarc.Arc) {
	sess := a.Session()
	fmt.Printf("%s, handle %s\n", sess.Status(), sess.Handle())
	b := a.BBox()
	fmt.Printf("Center (%g, %g) r=%g, bbox %d,%d %dx%d\n",
		a.Center().X, a.Center().Y, a.Radius(), b.X, b.Y, b.Width, b.Height)
}

func printHistory(s *curlyarc.Session) {
	history := s.History()
	if len(history) == 0 {
		fmt.Println("No history yet")
		return
	}

	fmt.Println("History:")
	for i, step := range history {
		line := fmt.Sprintf("  %d: %s --%s--> %s", i+1, step.From, step.Input, step.To)
		if step.Output != "" {
			line += fmt.Sprintf(" [%s]", step.Output)
		}
		fmt.Println(line)
	}
}
