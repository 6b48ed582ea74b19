package mlbuf

import "testing"

func TestSaveLoadRuleSetRoundTrip(t *testing.T) {
	single, err := NewSingleSrule(`\bfunc\b`, 3, 0)
	if err != nil {
		t.Fatalf("NewSingleSrule: %v", err)
	}
	multi, err := NewMultiSrule(`/\*`, `\*/`, 8, 0)
	if err != nil {
		t.Fatalf("NewMultiSrule: %v", err)
	}

	data, err := SaveRuleSet([]*Srule{single, multi})
	if err != nil {
		t.Fatalf("SaveRuleSet: %v", err)
	}

	loaded, err := LoadRuleSet(data)
	if err != nil {
		t.Fatalf("LoadRuleSet: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d rules, want 2", len(loaded))
	}

	if loaded[0].Kind() != SruleSingle || loaded[0].pattern != `\bfunc\b` {
		t.Fatalf("rule 0 = %+v, want single \\bfunc\\b", loaded[0])
	}
	if loaded[0].StyleValue() != (Style{FG: 3, BG: 0}) {
		t.Fatalf("rule 0 style = %+v, want {3,0}", loaded[0].StyleValue())
	}

	if loaded[1].Kind() != SruleMulti || loaded[1].pattern != `/\*` || loaded[1].endPattern != `\*/` {
		t.Fatalf("rule 1 = %+v, want multi /\\* .. \\*/", loaded[1])
	}
	if loaded[1].StyleValue() != (Style{FG: 8, BG: 0}) {
		t.Fatalf("rule 1 style = %+v, want {8,0}", loaded[1].StyleValue())
	}
}

func TestSaveRuleSetRejectsRangeRule(t *testing.T) {
	b := New()
	b.Set("hello world")
	line, _ := b.GetBline(0)
	a := b.AddMark(line, 0)
	c := b.AddMark(line, 5)
	rangeRule := NewRangeSrule(a, c, 1, 1)

	if _, err := SaveRuleSet([]*Srule{rangeRule}); err != ErrRangeRuleNotJSON {
		t.Fatalf("SaveRuleSet: err = %v, want ErrRangeRuleNotJSON", err)
	}
}

func TestLoadRuleSetRejectsRangeKind(t *testing.T) {
	_, err := LoadRuleSet([]byte(`[{"kind":"range"}]`))
	if err != ErrRangeRuleNotJSON {
		t.Fatalf("LoadRuleSet: err = %v, want ErrRangeRuleNotJSON", err)
	}
}

func TestLoadRuleSetRejectsUnknownKind(t *testing.T) {
	_, err := LoadRuleSet([]byte(`[{"kind":"bogus"}]`))
	if err != ErrRuleCompile {
		t.Fatalf("LoadRuleSet: err = %v, want ErrRuleCompile", err)
	}
}

func TestRangeSruleStylesBetweenMarks(t *testing.T) {
	b := New()
	b.Set("hello\nworld")

	l0, _ := b.GetBline(0)
	l1, _ := b.GetBline(1)
	start := b.AddMark(l0, 2)
	end := b.AddMark(l1, 3)

	rule := NewRangeSrule(start, end, 5, 6)
	if err := b.AddSrule(rule); err != nil {
		t.Fatalf("AddSrule: %v", err)
	}

	line0, _ := b.GetBline(0)
	line1, _ := b.GetBline(1)

	for col := 0; col < line0.CharCount(); col++ {
		want := Style{}
		if col >= 2 {
			want = Style{FG: 5, BG: 6}
		}
		if got := line0.StyleAt(col); got != want {
			t.Fatalf("line0[%d] = %+v, want %+v", col, got, want)
		}
	}
	for col := 0; col < line1.CharCount(); col++ {
		want := Style{}
		if col < 3 {
			want = Style{FG: 5, BG: 6}
		}
		if got := line1.StyleAt(col); got != want {
			t.Fatalf("line1[%d] = %+v, want %+v", col, got, want)
		}
	}
}
