package mlbuf

// Undo reverses the most recently applied (and not-yet-undone) action.
// Returns ErrNothingToUndo if the log is exhausted, or ErrStaleReplay if
// the action's recorded position no longer exists in the current line
// graph.
func (b *Buffer) Undo() error {
	var target *action
	if b.redoCursor == nil {
		target = b.actionTail
	} else {
		target = b.redoCursor.prev
	}
	if target == nil {
		return ErrNothingToUndo
	}

	line, err := b.GetBline(target.startLineIndex)
	if err != nil {
		debugf("undo: stale line index %d", target.startLineIndex)
		return ErrStaleReplay
	}
	if target.startCol > line.CharCount() {
		debugf("undo: stale col %d on line %d (char_count %d)", target.startCol, target.startLineIndex, line.CharCount())
		return ErrStaleReplay
	}
	offset := b.GetOffset(line, target.startCol)

	b.isInUndo = true
	var replayErr error
	switch target.kind {
	case actionInsert:
		replayErr = b.Delete(offset, target.charDelta)
	case actionDelete:
		_, replayErr = b.Insert(offset, string(target.data))
	}
	b.isInUndo = false

	if replayErr != nil {
		return replayErr
	}
	b.redoCursor = target
	return nil
}

// Redo re-applies the action most recently undone. Returns ErrNothingToRedo
// if nothing has been undone, or ErrStaleReplay if the action's recorded
// position no longer exists in the current line graph.
func (b *Buffer) Redo() error {
	target := b.redoCursor
	if target == nil {
		return ErrNothingToRedo
	}

	line, err := b.GetBline(target.startLineIndex)
	if err != nil {
		return ErrStaleReplay
	}
	if target.startCol > line.CharCount() {
		return ErrStaleReplay
	}
	offset := b.GetOffset(line, target.startCol)

	b.isInUndo = true
	var replayErr error
	switch target.kind {
	case actionInsert:
		_, replayErr = b.Insert(offset, string(target.data))
	case actionDelete:
		replayErr = b.Delete(offset, absInt(target.charDelta))
	}
	b.isInUndo = false

	if replayErr != nil {
		return replayErr
	}
	b.redoCursor = target.next
	return nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
