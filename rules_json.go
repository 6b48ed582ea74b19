package mlbuf

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// LoadRuleSet parses a JSON array of rule declarations, e.g.:
//
//	[
//	  {"kind": "single", "pattern": "\\bfunc\\b", "fg": 3, "bg": 0},
//	  {"kind": "multi", "pattern": "/\\*", "end": "\\*/", "fg": 8, "bg": 0}
//	]
//
// Range rules have no static JSON representation (they bind to live Mark
// handles) and cause ErrRangeRuleNotJSON.
func LoadRuleSet(data []byte) ([]*Srule, error) {
	result := gjson.ParseBytes(data)
	if !result.IsArray() {
		return nil, ErrRuleCompile
	}

	var rules []*Srule
	var loadErr error
	result.ForEach(func(_, item gjson.Result) bool {
		kind := item.Get("kind").String()
		fg := uint16(item.Get("fg").Uint())
		bg := uint16(item.Get("bg").Uint())

		switch kind {
		case "single":
			rule, err := NewSingleSrule(item.Get("pattern").String(), fg, bg)
			if err != nil {
				loadErr = err
				return false
			}
			rules = append(rules, rule)
		case "multi":
			rule, err := NewMultiSrule(item.Get("pattern").String(), item.Get("end").String(), fg, bg)
			if err != nil {
				loadErr = err
				return false
			}
			rules = append(rules, rule)
		case "range":
			loadErr = ErrRangeRuleNotJSON
			return false
		default:
			loadErr = ErrRuleCompile
			return false
		}
		return true
	})

	if loadErr != nil {
		return nil, loadErr
	}
	return rules, nil
}

// SaveRuleSet encodes rules as the JSON array LoadRuleSet accepts. Returns
// ErrRangeRuleNotJSON if rules contains a range rule.
func SaveRuleSet(rules []*Srule) ([]byte, error) {
	doc := "[]"
	var err error
	for i, rule := range rules {
		prefix := strconv.Itoa(i) + "."
		switch rule.kind {
		case SruleSingle:
			doc, err = sjson.Set(doc, prefix+"kind", "single")
			if err != nil {
				return nil, err
			}
			doc, err = sjson.Set(doc, prefix+"pattern", rule.pattern)
		case SruleMulti:
			doc, err = sjson.Set(doc, prefix+"kind", "multi")
			if err != nil {
				return nil, err
			}
			doc, err = sjson.Set(doc, prefix+"pattern", rule.pattern)
			if err != nil {
				return nil, err
			}
			doc, err = sjson.Set(doc, prefix+"end", rule.endPattern)
		case SruleRange:
			return nil, ErrRangeRuleNotJSON
		}
		if err != nil {
			return nil, err
		}
		doc, err = sjson.Set(doc, prefix+"fg", rule.style.FG)
		if err != nil {
			return nil, err
		}
		doc, err = sjson.Set(doc, prefix+"bg", rule.style.BG)
		if err != nil {
			return nil, err
		}
	}
	return []byte(doc), nil
}
