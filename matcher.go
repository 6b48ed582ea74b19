package mlbuf

import "regexp"

// Matcher is the compile/match contract the styling engine consumes; the
// regex engine itself is an external collaborator per the library's scope.
// loc is a two-element [start, end) byte range within s, mirroring the
// substring-array convention of the library this package was ported from.
type Matcher interface {
	FindIndex(s string, start int) (loc []int, ok bool)
}

// regexpMatcher is the default Matcher, backed by the standard library's
// regexp. FindStringSubmatchIndex's byte-offset contract is exact, which is
// the property the styling engine's col/index bookkeeping depends on.
type regexpMatcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles pattern as a Matcher. Returns ErrRuleCompile if the
// pattern fails to compile.
func NewMatcher(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, ErrRuleCompile
	}
	return &regexpMatcher{re: re}, nil
}

// FindIndex searches s for the first match at or after byte offset start.
// The returned loc, if ok, is relative to the start of s (not to start).
func (rm *regexpMatcher) FindIndex(s string, start int) (loc []int, ok bool) {
	if start < 0 {
		start = 0
	}
	if start > len(s) {
		return nil, false
	}
	m := rm.re.FindStringSubmatchIndex(s[start:])
	if m == nil {
		return nil, false
	}
	return []int{m[0] + start, m[1] + start}, true
}
