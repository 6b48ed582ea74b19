package mlbuf

// openSearch looks for a fresh opening of this rule on line starting at or
// after fromCol. found reports whether the rule's start matched at all on
// this line; stillOpen reports whether the rule is still open at end of
// line (its end was not also found on this same line).
func (sr *Srule) openSearch(line *Line, fromCol int) (start, end int, found, stillOpen bool) {
	switch sr.kind {
	case SruleMulti:
		fromIdx := line.colToIndex(fromCol)
		loc, ok := sr.matcher.FindIndex(string(line.data), fromIdx)
		if !ok {
			return 0, 0, false, false
		}
		start = line.indexToCol(loc[0])
		endLoc, endOK := sr.endMatcher.FindIndex(string(line.data), loc[1])
		if endOK {
			return start, line.indexToCol(endLoc[1]), true, false
		}
		return start, line.CharCount(), true, true
	case SruleRange:
		s, e, ok := sr.matchRange(line, fromCol)
		if !ok {
			return 0, 0, false, false
		}
		_, endMark, _ := sr.rangeBounds()
		return s, e, true, endMark.line.lineIndex != line.lineIndex
	}
	return 0, 0, false, false
}

// applyFresh searches line for rule from scratch (no open_rule entering),
// repeating while each match closes on the same line, matching the
// original engine's do/while. Range rules match at most once per line.
// Returns true if the last match left the rule open past end of line.
func (sr *Srule) applyFresh(line *Line) bool {
	lookCol := 0
	for {
		start, end, found, stillOpen := sr.openSearch(line, lookCol)
		if !found {
			return false
		}
		styleRange(line, start, end, sr.style)
		if stillOpen {
			return true
		}
		if sr.kind == SruleRange {
			return false
		}
		lookCol = end
		if lookCol >= line.CharCount() {
			return false
		}
	}
}

// continueOpen searches for this already-open rule's end on line, starting
// at column 0. stillOpen reports whether the rule remains open past the
// end of this line.
func (sr *Srule) continueOpen(line *Line) (end int, stillOpen bool) {
	switch sr.kind {
	case SruleMulti:
		loc, ok := sr.endMatcher.FindIndex(string(line.data), 0)
		if !ok {
			return line.CharCount(), true
		}
		return line.indexToCol(loc[1]), false
	case SruleRange:
		_, endMark, ok := sr.rangeBounds()
		if !ok {
			return line.CharCount(), false
		}
		if endMark.line.lineIndex != line.lineIndex {
			return line.CharCount(), true
		}
		return endMark.col, false
	}
	return line.CharCount(), false
}

// ensureStyles allocates or resizes a line's style overlay to its current
// char count without disturbing already-assigned styles within range.
func ensureStyles(line *Line) {
	if len(line.charStyles) == line.CharCount() {
		return
	}
	grown := make([]Style, line.CharCount())
	copy(grown, line.charStyles)
	line.charStyles = grown
}

// styleRange assigns style to codepoints [start, end) on line.
func styleRange(line *Line, start, end int, style Style) {
	ensureStyles(line)
	if start < 0 {
		start = 0
	}
	if end > len(line.charStyles) {
		end = len(line.charStyles)
	}
	for i := start; i < end; i++ {
		line.charStyles[i] = style
	}
}

// applyStyles restyles a contiguous forward run of lines starting at
// startLine, far enough to cover the edit directly (per lineDelta) and to
// propagate cross-line open-rule state to a fixed point.
//
// At most one multi-line or range rule is open at a time: on each line the
// first such rule, in registration order, that is still open at end of line
// becomes the open rule and the remaining rules are not tried on that line.
func (b *Buffer) applyStyles(startLine *Line, lineDelta int) {
	minNlines := 1
	switch {
	case lineDelta > 0:
		minNlines = 1 + lineDelta
	case lineDelta < 0:
		minNlines = 2
	}

	var openRule *Srule
	if startLine.prev != nil {
		openRule = startLine.prev.eolRule
	}

	styledNlines := 0
	for cur := startLine; cur != nil; cur = cur.next {
		openRuleEnded := false
		enteringOpen := openRule
		prevEol := cur.eolRule

		// At most two passes over the same line: the first may find an
		// open rule closing mid-line, in which case the single-line and
		// multi-line rules are run over the line from column 0 as if no
		// rule had been open, without clearing the closed span's styles.
		for restarted := false; ; restarted = true {
			switch {
			case cur.CharCount() == 0:
				cur.bolRule = openRule
				cur.eolRule = openRule
				cur.charStyles = nil

			case openRule != nil:
				if !restarted {
					for i := range cur.charStyles {
						cur.charStyles[i] = Style{}
					}
				}
				cur.bolRule = openRule
				end, stillOpen := openRule.continueOpen(cur)
				styleRange(cur, 0, end, openRule.style)
				if stillOpen {
					cur.eolRule = openRule
				} else {
					cur.eolRule = nil
					openRule = nil
					openRuleEnded = true
					continue
				}

			default:
				if !restarted {
					for i := range cur.charStyles {
						cur.charStyles[i] = Style{}
					}
				}
				ensureStyles(cur)

				for _, rule := range b.singleRules {
					look := 0
					for look < cur.CharCount() {
						idx := cur.colToIndex(look)
						loc, ok := rule.matcher.FindIndex(string(cur.data), idx)
						if !ok {
							break
						}
						mStart := cur.indexToCol(loc[0])
						mEnd := cur.indexToCol(loc[1])
						if mEnd <= mStart {
							look = mStart + 1
							continue
						}
						styleRange(cur, mStart, mEnd, rule.style)
						look = mEnd
					}
				}

				if !openRuleEnded {
					cur.bolRule = nil
				}
				cur.eolRule = nil
				for _, rule := range b.multiRules {
					if rule.applyFresh(cur) {
						cur.eolRule = rule
						openRule = rule
						break
					}
				}
			}
			break
		}

		styledNlines++
		b.markLineDirty(cur.lineIndex)

		nextBolNone := cur.next == nil || cur.next.bolRule == nil
		if openRule == nil && nextBolNone && styledNlines > minNlines {
			return
		}
		if openRule != nil && enteringOpen == openRule && prevEol == openRule && styledNlines > minNlines {
			return
		}
	}
}

// AddSrule registers rule and reflows styling across the whole buffer.
func (b *Buffer) AddSrule(rule *Srule) error {
	if rule.kind == SruleSingle {
		b.singleRules = append(b.singleRules, rule)
	} else {
		b.multiRules = append(b.multiRules, rule)
	}
	b.applyStyles(b.first, b.lineCount-1)
	return nil
}

// RemoveSrule unregisters rule and reflows styling across the whole
// buffer. Returns ErrRuleNotFound if rule was never registered. Removing a
// rule does not destroy it — rules are owned by the caller.
func (b *Buffer) RemoveSrule(rule *Srule) error {
	for i, r := range b.singleRules {
		if r == rule {
			b.singleRules = append(b.singleRules[:i], b.singleRules[i+1:]...)
			b.applyStyles(b.first, b.lineCount-1)
			return nil
		}
	}
	for i, r := range b.multiRules {
		if r == rule {
			b.multiRules = append(b.multiRules[:i], b.multiRules[i+1:]...)
			b.applyStyles(b.first, b.lineCount-1)
			return nil
		}
	}
	return ErrRuleNotFound
}
