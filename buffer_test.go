package mlbuf

import "testing"

func TestBufferNewHasOneEmptyLine(t *testing.T) {
	b := New()
	if b.lineCount != 1 {
		t.Fatalf("lineCount = %d, want 1", b.lineCount)
	}
	if b.Get() != "" {
		t.Fatalf("Get() = %q, want empty", b.Get())
	}
}

func TestBufferSetGetRoundTrip(t *testing.T) {
	b := New()
	want := "lineA\n\nline2\nline3\n"
	b.Set(want)
	if got := b.Get(); got != want {
		t.Fatalf("Get() = %q, want %q", got, want)
	}
}

// Scenarios 1-5 from the concrete edit sequence.
func TestBufferScenarioSequence(t *testing.T) {
	b := New()
	b.Set("lineA\n\nline2\nline3\n")

	if err := b.Replace(0, 0, "b"); err != nil {
		t.Fatalf("replace 1: %v", err)
	}
	if got, want := b.Get(), "blineA\n\nline2\nline3\n"; got != want {
		t.Fatalf("after replace 1: got %q, want %q", got, want)
	}

	if err := b.Replace(3, 3, "xe0"); err != nil {
		t.Fatalf("replace 2: %v", err)
	}
	if got, want := b.Get(), "blixe0\n\nline2\nline3\n"; got != want {
		t.Fatalf("after replace 2: got %q, want %q", got, want)
	}

	if err := b.Replace(10, 7, "N"); err != nil {
		t.Fatalf("replace 3: %v", err)
	}
	if got, want := b.Get(), "blixe0\n\nliNe3\n"; got != want {
		t.Fatalf("after replace 3: got %q, want %q", got, want)
	}

	if err := b.Replace(5, 4, "jerk\nstuff"); err != nil {
		t.Fatalf("replace 4: %v", err)
	}
	if got, want := b.Get(), "blixejerk\nstuffiNe3\n"; got != want {
		t.Fatalf("after replace 4: got %q, want %q", got, want)
	}

	if err := b.Replace(9, 99, "X"); err != nil {
		t.Fatalf("replace 5: %v", err)
	}
	if got, want := b.Get(), "blixejerkX"; got != want {
		t.Fatalf("after replace 5: got %q, want %q", got, want)
	}
}

func TestGetBlineCol(t *testing.T) {
	b := New()
	b.Set("hello\nworld")

	line, col := b.GetBlineCol(6)
	if line.LineIndex() != 1 || col != 0 {
		t.Fatalf("GetBlineCol(6) = (%d, %d), want (1, 0)", line.LineIndex(), col)
	}

	line, col = b.GetBlineCol(99)
	if line.LineIndex() != 1 || col != 5 {
		t.Fatalf("GetBlineCol(99) = (%d, %d), want (1, 5)", line.LineIndex(), col)
	}
}

func TestGetOffsetRoundTrip(t *testing.T) {
	b := New()
	b.Set("hello\nworld\nfoo")

	for offset := 0; offset <= b.charCount; offset++ {
		line, col := b.GetBlineCol(offset)
		if got := b.GetOffset(line, col); got != offset {
			t.Fatalf("GetOffset(GetBlineCol(%d)) = %d, want %d", offset, got, offset)
		}
	}
}

func TestInvariantsAfterRandomEdits(t *testing.T) {
	b := New()
	b.Set("the quick brown fox\njumps over\nthe lazy dog")

	ops := []struct {
		offset, nchars int
		data            string
	}{
		{4, 5, "slow "},
		{0, 3, "THE"},
		{10, 0, "extremely "},
		{5, 20, "x"},
	}
	for _, op := range ops {
		_ = b.Replace(op.offset, op.nchars, op.data)
		checkInvariants(t, b)
	}
}

func checkInvariants(t *testing.T, b *Buffer) {
	t.Helper()

	byteSum := 0
	charSum := 0
	n := 0
	for l := b.first; l != nil; l = l.next {
		byteSum += len(l.data)
		charSum += l.CharCount()
		if l.lineIndex != n {
			t.Fatalf("line_index mismatch: got %d, want %d", l.lineIndex, n)
		}
		n++
	}
	if byteSum != b.byteCount {
		t.Fatalf("byte_count = %d, want %d (P1)", b.byteCount, byteSum)
	}
	charSum += n - 1
	if charSum != b.charCount {
		t.Fatalf("char_count = %d, want %d (P2)", b.charCount, charSum)
	}
	if n != b.lineCount {
		t.Fatalf("line_count = %d, want %d (P3)", b.lineCount, n)
	}
	if b.last.lineIndex != b.lineCount-1 {
		t.Fatalf("last line_index = %d, want %d", b.last.lineIndex, b.lineCount-1)
	}
}

func TestMarkSurvivesMultiLineDelete(t *testing.T) {
	b := New()
	b.Set("blixejerk\nstuffiNe3\n")

	line, _ := b.GetBlineCol(15) // somewhere inside "stuffiNe3"
	m := b.AddMark(line, 0)

	if err := b.Delete(5, 10); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if m.Line() == nil {
		t.Fatal("mark was destroyed by a delete that had a surviving line")
	}
	if m.Col() < 0 || m.Col() > m.Line().CharCount() {
		t.Fatalf("mark col %d out of range [0, %d]", m.Col(), m.Line().CharCount())
	}
}

func TestSubstr(t *testing.T) {
	b := New()
	b.Set("hello\nworld")

	start, _ := b.GetBline(0)
	end, _ := b.GetBline(1)
	text, byteLen, nchars := b.Substr(start, 3, end, 3)
	if want := "lo\nwor"; text != want {
		t.Fatalf("Substr = %q, want %q", text, want)
	}
	if byteLen != len(text) {
		t.Fatalf("byteLen = %d, want %d", byteLen, len(text))
	}
	if nchars != 6 {
		t.Fatalf("nchars = %d, want 6", nchars)
	}
}
