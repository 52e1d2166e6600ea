package draftpatch

import "testing"

func TestFormatPretty(t *testing.T) {
	patch := []Operation{
		{Op: OpAdd, Path: Path{StringAddr("a"), IndexAddr(0)}, Value: 5},
		{Op: OpReplace, Path: Path{StringAddr("b")}, Value: Object{"c": NewArray("d")}},
		{Op: OpRemove, Path: Path{StringAddr("e")}},
		{Op: Op("move"), Path: Path{StringAddr("f")}, Value: nil},
	}

	got, err := FormatPrettyString(patch, false)
	if err != nil {
		t.Fatal(err)
	}
	expect := "+ /a/0: 5\n~ /b: {\"c\":[\"d\"]}\n- /e\n? /f: null\n"
	if got != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, got)
	}

	colored, err := FormatPrettyString(patch[:1], true)
	if err != nil {
		t.Fatal(err)
	}
	if colored == "+ /a/0: 5\n" {
		t.Error("expected color codes in colored output")
	}
}

func TestFormatStatsPretty(t *testing.T) {
	cases := []struct {
		description string
		input       *Stats
		expect      string
	}{
		{"all plural",
			&Stats{Adds: 6, Removes: 2, Replaces: 2},
			"10 operations. 6 adds. 2 removes. 2 replaces.\n",
		},
		{"all singular",
			&Stats{Adds: 1},
			"1 operation. 1 add. 0 removes. 0 replaces.\n",
		},
		{"nil stats",
			nil,
			"<nil>",
		},
	}

	for i, c := range cases {
		got := FormatPrettyStats(c.input)
		if got != c.expect {
			t.Errorf("%d %s\nwant:\n%s\ngot:\n%s", i, c.description, c.expect, got)
		}
	}
}

func TestCalcStats(t *testing.T) {
	st := CalcStats([]Operation{
		{Op: OpAdd, Path: Path{IndexAddr(0)}, Value: 1},
		{Op: OpAdd, Path: Path{IndexAddr(1)}, Value: 1},
		{Op: OpRemove, Path: Path{IndexAddr(2)}},
		{Op: OpReplace, Path: Path{IndexAddr(3)}, Value: 1},
		{Op: Op("test"), Path: Path{IndexAddr(3)}},
	})
	if st.Adds != 2 || st.Removes != 1 || st.Replaces != 1 || st.Total() != 4 {
		t.Errorf("unexpected stats: %#v", st)
	}
}
