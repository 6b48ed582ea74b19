// Command mlbufview is a tiny terminal demo exercising the mlbuf library
// end to end: it opens a file (or an empty buffer), renders it with a
// couple of demo style rules, and accepts basic editing keystrokes.
package main

import (
	"flag"
	"fmt"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/mlbuf"
)

func main() {
	os.Exit(run())
}

func run() int {
	debug := flag.Bool("debug", false, "enable debug tracing to stderr")
	flag.Parse()
	mlbuf.SetDebug(*debug)

	buf := mlbuf.New()
	if args := flag.Args(); len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "mlbufview: %v\n", err)
			return 1
		}
		buf.Set(string(data))
	}

	if rule, err := mlbuf.NewSingleSrule(`\bfunc\b|\bpackage\b|\breturn\b`, 1, 0); err == nil {
		_ = buf.AddSrule(rule)
	}
	if rule, err := mlbuf.NewMultiSrule(`/\*`, `\*/`, 2, 0); err == nil {
		_ = buf.AddSrule(rule)
	}

	palette := mlbuf.NewPalette()
	palette.Set(0, hexColor("#c0c0c0"))
	palette.Set(1, hexColor("#5fafff"))
	palette.Set(2, hexColor("#5faf5f"))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mlbufview: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "mlbufview: %v\n", err)
		return 1
	}
	defer screen.Fini()

	cursor := buf.AddMark(nil, 0)
	render(screen, buf, palette)

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if handleKey(buf, cursor, ev) {
				screen.Fini()
				return 0
			}
		}
		render(screen, buf, palette)
	}
}

// handleKey applies ev to buf relative to cursor. Returns true if the
// program should quit.
func handleKey(buf *mlbuf.Buffer, cursor *mlbuf.Mark, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyEscape:
		return true
	case tcell.KeyCtrlZ:
		_ = buf.Undo()
	case tcell.KeyCtrlY:
		_ = buf.Redo()
	case tcell.KeyEnter:
		// Insert relocates cursor itself (M3): it sits at or past the
		// insertion point, so no manual repositioning is needed.
		_, _ = buf.Insert(cursor.Offset(), "\n")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if offset := cursor.Offset(); offset > 0 {
			_ = buf.Delete(offset-1, 1)
		}
	case tcell.KeyLeft:
		moveCursor(buf, cursor, -1)
	case tcell.KeyRight:
		moveCursor(buf, cursor, 1)
	case tcell.KeyRune:
		_, _ = buf.Insert(cursor.Offset(), string(ev.Rune()))
	}
	return false
}

// moveCursor repositions cursor by delta codepoints. This is caller-driven
// navigation, not an edit, so it bypasses the edit engine's mark migration
// and uses Mark.MoveTo directly.
func moveCursor(buf *mlbuf.Buffer, cursor *mlbuf.Mark, delta int) {
	offset := cursor.Offset() + delta
	if offset < 0 {
		offset = 0
	}
	line, col := buf.GetBlineCol(offset)
	cursor.MoveTo(line, col)
}

func render(screen tcell.Screen, buf *mlbuf.Buffer, palette *mlbuf.Palette) {
	screen.Clear()
	width, height := screen.Size()

	line, _ := buf.GetBline(0)
	for row := 0; row < height && line != nil; row++ {
		runes := []rune(line.Text())
		for col := 0; col < len(runes) && col < width; col++ {
			style := tcell.StyleDefault
			if fg, bg, ok := palette.Resolve(line.StyleAt(col)); ok {
				style = style.Foreground(tcell.FromImageColor(fg)).Background(tcell.FromImageColor(bg))
			}
			screen.SetContent(col, row, runes[col], nil, style)
		}
		line = line.Next()
	}

	screen.Show()
}

func hexColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
