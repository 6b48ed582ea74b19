package mlbuf

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Buffer is a doubly-linked list of Lines plus the bookkeeping a text editor
// needs on top of it: aggregate counts, a lazily reassembled text cache,
// registered style rules, an undo/redo action log, and a dirty-line tracker
// external renderers can drain incrementally.
//
// Buffer is not safe for concurrent use. Every public method assumes
// exclusive access for its duration; callers serialize access themselves.
type Buffer struct {
	first, last *Line
	lineCount   int
	byteCount   int
	charCount   int

	cache      []byte
	cacheDirty bool

	singleRules []*Srule
	multiRules  []*Srule // multi-line and range rules share one list

	actionHead, actionTail *action
	redoCursor             *action
	isInUndo               bool

	nextMarkLetter byte

	dirty *bitset.BitSet
}

// New returns a buffer containing exactly one empty line.
func New() *Buffer {
	b := &Buffer{
		lineCount:      1,
		cacheDirty:     true,
		nextMarkLetter: 'a',
		dirty:          bitset.New(0),
	}
	first := newLine(b)
	first.recountChars()
	b.first = first
	b.last = first
	return b
}

// Close detaches every mark from its line and drops all rules and the
// action log. The Buffer must not be used afterward.
func (b *Buffer) Close() {
	for l := b.first; l != nil; l = l.next {
		for _, m := range l.marks {
			m.line = nil
		}
		l.marks = nil
	}
	b.first, b.last = nil, nil
	b.singleRules, b.multiRules = nil, nil
	b.actionHead, b.actionTail, b.redoCursor = nil, nil, nil
	b.cache = nil
}

// nextLetter hands out mark display letters round-robin from 'a'..'z'.
func (b *Buffer) nextLetter() byte {
	l := b.nextMarkLetter
	if b.nextMarkLetter == 'z' {
		b.nextMarkLetter = 'a'
	} else {
		b.nextMarkLetter++
	}
	return l
}

// AddMark creates a mark anchored to line at col. A nil line anchors to the
// buffer's first line; col is clamped to [0, line.CharCount()].
func (b *Buffer) AddMark(line *Line, col int) *Mark {
	if line == nil {
		line = b.first
	}
	if col < 0 {
		col = 0
	} else if col > line.CharCount() {
		col = line.CharCount()
	}
	m := &Mark{letter: b.nextLetter()}
	m.moveTo(line, col)
	return m
}

// renumber reassigns line_index starting at start, in order, forward. Also
// resets last to whichever line is now tail-most.
func (b *Buffer) renumber(start *Line) {
	idx := 0
	if start != nil && start.prev != nil {
		idx = start.prev.lineIndex + 1
	}
	l := start
	var tail *Line
	for l != nil {
		l.lineIndex = idx
		idx++
		tail = l
		l = l.next
	}
	if tail != nil {
		b.last = tail
	}
}

// Get returns the buffer's full text: every line's bytes joined by '\n',
// with no trailing newline. The result is cached until the next mutation.
func (b *Buffer) Get() string {
	if !b.cacheDirty && b.cache != nil {
		return string(b.cache)
	}
	var sb strings.Builder
	sb.Grow(b.byteCount + b.lineCount)
	for l := b.first; l != nil; l = l.next {
		sb.Write(l.data)
		if l.next != nil {
			sb.WriteByte('\n')
		}
	}
	b.cache = []byte(sb.String())
	b.cacheDirty = false
	return string(b.cache)
}

// Set replaces the buffer's entire content with data.
func (b *Buffer) Set(data string) {
	b.Delete(0, b.charCount)
	b.Insert(0, data)
}

// Substr extracts the text from startLine:startCol up to but not including
// endLine:endCol, walking every line from startLine through endLine and
// joining them with '\n'. Returns the text, its byte length, and its
// codepoint count.
func (b *Buffer) Substr(startLine *Line, startCol int, endLine *Line, endCol int) (string, int, int) {
	if startLine == nil || endLine == nil {
		return "", 0, 0
	}
	var sb strings.Builder
	nchars := 0
	for l := startLine; l != nil; l = l.next {
		from := 0
		to := l.CharCount()
		if l == startLine {
			from = startCol
		}
		if l == endLine {
			to = endCol
		}
		if from < 0 {
			from = 0
		}
		if to > l.CharCount() {
			to = l.CharCount()
		}
		if from <= to {
			fromIdx := l.colToIndex(from)
			toIdx := l.colToIndex(to)
			sb.Write(l.data[fromIdx:toIdx])
			nchars += to - from
		}
		if l == endLine {
			break
		}
		sb.WriteByte('\n')
		nchars++
	}
	s := sb.String()
	return s, len(s), nchars
}

// GetBline returns the line at lineIndex, or ErrLineNotFound if it does
// not exist.
func (b *Buffer) GetBline(lineIndex int) (*Line, error) {
	if lineIndex < 0 || lineIndex >= b.lineCount {
		return nil, ErrLineNotFound
	}
	// Walk from whichever end is closer.
	if lineIndex <= b.lineCount/2 {
		l := b.first
		for i := 0; i < lineIndex; i++ {
			l = l.next
		}
		return l, nil
	}
	l := b.last
	for i := b.lineCount - 1; i > lineIndex; i-- {
		l = l.prev
	}
	return l, nil
}

// GetBlineCol resolves an absolute codepoint offset to a (line, col) pair,
// clamping to the last line's end if offset exceeds total content.
func (b *Buffer) GetBlineCol(offset int) (*Line, int) {
	remaining := offset
	for l := b.first; l != nil; l = l.next {
		if remaining <= l.CharCount() {
			return l, remaining
		}
		remaining -= l.CharCount() + 1
		if l.next == nil {
			return l, l.CharCount()
		}
	}
	return b.last, b.last.CharCount()
}

// GetOffset converts a (line, col) pair to an absolute codepoint offset,
// clamping col to the line's char count.
func (b *Buffer) GetOffset(line *Line, col int) int {
	if line == nil {
		return 0
	}
	if col > line.CharCount() {
		col = line.CharCount()
	}
	offset := 0
	for l := b.first; l != line; l = l.next {
		offset += l.CharCount() + 1
	}
	offset += col
	if offset > b.charCount {
		offset = b.charCount
	}
	return offset
}

// markDirty sets the reassembly-cache dirty bit.
func (b *Buffer) markDirty() {
	b.cacheDirty = true
}

// markLineDirty records lineIndex as touched since the last DirtyLines
// drain, growing the bitset if needed.
func (b *Buffer) markLineDirty(lineIndex int) {
	if lineIndex < 0 {
		return
	}
	b.dirty.Set(uint(lineIndex)) // grows the set as a side effect
}

// DirtyLines returns the set of line indexes restyled since the last call,
// then clears it.
func (b *Buffer) DirtyLines() *bitset.BitSet {
	out := b.dirty
	b.dirty = bitset.New(0)
	return out
}
