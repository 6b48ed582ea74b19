package mlbuf

import "strings"

// Insert inserts data at the given codepoint offset, splitting lines at
// every '\n' in data. Returns the number of codepoints inserted (newlines
// counted, matching the buffer's char_count convention).
func (b *Buffer) Insert(offset int, data string) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	startLine, startCol := b.GetBlineCol(offset)

	curLine := startLine
	curCol := startCol
	byteAdded := 0
	charsAdded := 0
	lineDelta := 0

	segments := strings.Split(data, "\n")
	for i, seg := range segments {
		if len(seg) > 0 {
			added := curLine.insertBytes(curCol, []byte(seg), true)
			curCol += added
			charsAdded += added
			byteAdded += len(seg)
		}
		if i != len(segments)-1 {
			next := curLine.breakAt(curCol)
			lineDelta++
			charsAdded++ // the newline itself
			curLine = next
			curCol = 0
		}
	}

	b.byteCount += byteAdded
	b.charCount += charsAdded
	b.lineCount += lineDelta
	b.renumber(startLine)
	b.markDirty()

	act := &action{
		kind:           actionInsert,
		startLine:      startLine,
		startLineIndex: startLine.lineIndex,
		startCol:       startCol,
		byteDelta:      byteAdded,
		charDelta:      charsAdded,
		lineDelta:      lineDelta,
		data:           []byte(data),
	}
	b.applyStyles(startLine, lineDelta)
	b.pushAction(act)

	return charsAdded, nil
}

// Delete removes numChars codepoints starting at the given offset.
// Deleting zero characters, or starting at end-of-buffer, succeeds as a
// no-op.
func (b *Buffer) Delete(offset, numChars int) error {
	if numChars <= 0 {
		return nil
	}

	startLine, startCol := b.GetBlineCol(offset)
	endLine, endCol := b.GetBlineCol(offset + numChars)

	if startLine == endLine && startCol == endCol {
		return nil
	}

	payload, _, ncharsPayload := b.Substr(startLine, startCol, endLine, endCol)

	beforeLen := len(startLine.data)
	startLine.deleteChars(startCol, numChars)
	rawBytesRemoved := beforeLen - len(startLine.data)

	lineDelta := 0
	if startLine != endLine {
		tailIndex := endLine.colToIndex(endCol)
		tail := append([]byte(nil), endLine.data[tailIndex:]...)
		startLine.insertBytes(startLine.CharCount(), tail, false)

		for cur := startLine.next; cur != nil; {
			next := cur.next
			if cur == endLine {
				rawBytesRemoved += tailIndex
				// Rebase onto the kept tail; marks in the deleted prefix
				// land at the deletion point.
				for _, m := range cur.marks {
					if m.col < endCol {
						m.col = 0
					} else {
						m.col -= endCol
					}
				}
				cur.detachMarks(startLine, startCol)
				startLine.next = endLine.next
				if endLine.next != nil {
					endLine.next.prev = startLine
				}
				break
			}
			rawBytesRemoved += len(cur.data)
			for _, m := range cur.marks {
				m.col = 0 // the whole line is deleted
			}
			cur.detachMarks(startLine, startCol)
			cur = next
		}
		lineDelta = -(endLine.lineIndex - startLine.lineIndex)
	}

	b.byteCount -= rawBytesRemoved
	b.charCount -= ncharsPayload
	b.lineCount += lineDelta
	b.renumber(startLine)
	b.markDirty()

	act := &action{
		kind:           actionDelete,
		startLine:      startLine,
		startLineIndex: startLine.lineIndex,
		startCol:       startCol,
		byteDelta:      -rawBytesRemoved,
		charDelta:      -ncharsPayload,
		lineDelta:      lineDelta,
		data:           []byte(payload),
	}
	b.applyStyles(startLine, lineDelta)
	b.pushAction(act)

	return nil
}

// Replace deletes oldNChars codepoints at offset and inserts newData in
// their place; the canonical way to mutate a buffer in one step.
func (b *Buffer) Replace(offset, oldNChars int, newData string) error {
	if err := b.Delete(offset, oldNChars); err != nil {
		return err
	}
	_, err := b.Insert(offset, newData)
	return err
}

// pushAction appends act to the undo log. If a redo cursor is set, every
// action from the cursor onward is discarded first (the edit just made
// invalidates that redo tail). Replay (isInUndo) never records.
func (b *Buffer) pushAction(act *action) {
	if b.isInUndo {
		return
	}
	if b.redoCursor != nil {
		b.actionTail = b.redoCursor.prev
		if b.actionTail != nil {
			b.actionTail.next = nil
		} else {
			b.actionHead = nil
		}
		b.redoCursor = nil
	}
	act.prev = b.actionTail
	act.next = nil
	if b.actionTail != nil {
		b.actionTail.next = act
	}
	b.actionTail = act
	if b.actionHead == nil {
		b.actionHead = act
	}
}
