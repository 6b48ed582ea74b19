// Package mlbuf provides an in-memory, editable text buffer for building
// interactive text editors.
//
// A Buffer owns a doubly-linked list of Lines, each holding its own UTF-8
// bytes, a codepoint-to-byte index, and a per-character style overlay. Marks
// are logical (line, column) positions that automatically migrate as the
// buffer is edited. Style rules (single-line regex, multi-line open/close
// regex, or mark-bounded ranges) drive incremental restyling after every
// edit. Every mutation is recorded on an undo/redo log and can be losslessly
// replayed in either direction.
//
// # Basic usage
//
//	buf := mlbuf.New()
//	buf.Insert(0, "hello\nworld")
//	buf.Get() // "hello\nworld"
//
//	line, col := buf.GetBlineCol(6)
//	line.Text() // "world"
//
//	m := buf.AddMark(line, 0)
//	buf.Insert(0, "X") // m still points at the start of "world"
//
// # Style rules
//
//	rule, _ := mlbuf.NewSingleSrule(`world`, 1, 2)
//	buf.AddSrule(rule)
//
// # Undo/redo
//
//	buf.Insert(0, "a")
//	buf.Undo()
//	buf.Redo()
//
// # Thread safety
//
// Buffer is a single-threaded, cooperative data structure with no internal
// locking: callers must serialize access externally, matching the
// exclusive-access model of the C library this package is ported from.
package mlbuf
