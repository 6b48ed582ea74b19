package mlbuf

// Style is a per-codepoint style pair. The zero value means "unstyled".
type Style struct {
	FG uint16
	BG uint16
}

// SruleKind distinguishes the three shapes a style rule can take.
type SruleKind uint8

const (
	// SruleSingle matches independently on every line.
	SruleSingle SruleKind = iota
	// SruleMulti spans from a start pattern match to an end pattern match,
	// possibly crossing many lines in between.
	SruleMulti
	// SruleRange spans between two live Marks.
	SruleRange
)

// Srule is a compiled style rule: single-line regex, multi-line start/end
// regex pair, or Mark-bounded range. All three carry a single Style.
type Srule struct {
	kind  SruleKind
	style Style

	pattern    string
	endPattern string

	matcher    Matcher // single: the rule; multi: the start pattern
	endMatcher Matcher // multi only: the end pattern

	rangeA, rangeB *Mark
}

// NewSingleSrule compiles a single-line rule. Construction fails and
// discards the half-built rule if the pattern does not compile.
func NewSingleSrule(pattern string, fg, bg uint16) (*Srule, error) {
	m, err := NewMatcher(pattern)
	if err != nil {
		return nil, ErrRuleCompile
	}
	return &Srule{
		kind:    SruleSingle,
		style:   Style{FG: fg, BG: bg},
		pattern: pattern,
		matcher: m,
	}, nil
}

// NewMultiSrule compiles a multi-line start/end rule pair. Construction
// fails and discards the half-built rule if either pattern does not
// compile.
func NewMultiSrule(startPat, endPat string, fg, bg uint16) (*Srule, error) {
	start, err := NewMatcher(startPat)
	if err != nil {
		return nil, ErrRuleCompile
	}
	end, err := NewMatcher(endPat)
	if err != nil {
		return nil, ErrRuleCompile
	}
	return &Srule{
		kind:       SruleMulti,
		style:      Style{FG: fg, BG: bg},
		pattern:    startPat,
		endPattern: endPat,
		matcher:    start,
		endMatcher: end,
	}, nil
}

// NewRangeSrule builds a rule bounded by two live Marks. No compilation is
// involved, so it cannot fail.
func NewRangeSrule(a, b *Mark, fg, bg uint16) *Srule {
	return &Srule{
		kind:   SruleRange,
		style:  Style{FG: fg, BG: bg},
		rangeA: a,
		rangeB: b,
	}
}

// Kind reports which variant this rule is.
func (sr *Srule) Kind() SruleKind {
	return sr.kind
}

// StyleValue returns the style this rule applies to matched text.
func (sr *Srule) StyleValue() Style {
	return sr.style
}

// markOrder returns a and b ordered by position in the line list (a first
// when they are equal), comparing line_index then column — the "mark_is_gt" comparison a
// range rule needs to tell which of its two marks bounds the start of the
// span and which bounds the end.
func markOrder(a, b *Mark) (earlier, later *Mark) {
	if a.line == nil || b.line == nil {
		return a, b
	}
	if a.line.lineIndex < b.line.lineIndex {
		return a, b
	}
	if a.line.lineIndex > b.line.lineIndex {
		return b, a
	}
	if a.col <= b.col {
		return a, b
	}
	return b, a
}

// rangeBounds returns the positionally earlier and later of the rule's
// two marks. ok is false if either mark has been destroyed.
func (sr *Srule) rangeBounds() (start, end *Mark, ok bool) {
	if sr.rangeA == nil || sr.rangeB == nil || sr.rangeA.line == nil || sr.rangeB.line == nil {
		return nil, nil, false
	}
	start, end = markOrder(sr.rangeA, sr.rangeB)
	return start, end, true
}

// matchRange finds, on the given line starting no earlier than searchCol,
// the [start, end) codepoint span this range rule covers. A range rule
// matches at most once per line.
func (sr *Srule) matchRange(line *Line, searchCol int) (start, end int, ok bool) {
	startMark, endMark, ok := sr.rangeBounds()
	if !ok {
		return 0, 0, false
	}
	li := line.lineIndex
	if li < startMark.line.lineIndex || li > endMark.line.lineIndex {
		return 0, 0, false
	}

	if startMark.line.lineIndex == li {
		start = startMark.col
		if start < searchCol {
			start = searchCol
		}
	} else {
		start = searchCol
	}

	if endMark.line.lineIndex == li {
		end = endMark.col
	} else {
		end = line.CharCount()
	}

	if end <= start {
		return 0, 0, false
	}
	return start, end, true
}
