package draftpatch

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOperationJSON(t *testing.T) {
	patch := `[
		{"op": "add", "path": ["apples", 2], "value": {"foo": [false]}},
		{"op": "remove", "path": ["apples", 0]},
		{"op": "replace", "path": ["a/b"], "value": null}
	]`
	var ops []Operation
	if err := json.Unmarshal([]byte(patch), &ops); err != nil {
		t.Fatal(err)
	}

	expect := []Operation{
		{Op: OpAdd, Path: Path{StringAddr("apples"), IndexAddr(2)}, Value: Object{"foo": NewArray(false)}},
		{Op: OpRemove, Path: Path{StringAddr("apples"), IndexAddr(0)}},
		{Op: OpReplace, Path: Path{StringAddr("a/b")}},
	}
	if diff := cmp.Diff(expect, ops); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	data, err := json.Marshal(ops)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"op":"add","path":["apples",2],"value":{"foo":[false]}},{"op":"remove","path":["apples",0]},{"op":"replace","path":["a/b"],"value":null}]`
	if string(data) != want {
		t.Errorf("encoding mismatch.\nwant: %s\ngot:  %s", want, data)
	}
}

func TestOperationJSONErrors(t *testing.T) {
	cases := []struct {
		description string
		input       string
	}{
		{"missing op", `{"path":["a"]}`},
		{"negative index", `{"op":"remove","path":[-1]}`},
		{"fractional index", `{"op":"remove","path":[1.5]}`},
		{"huge index", `{"op":"remove","path":[1e300]}`},
		{"bool segment", `{"op":"remove","path":[true]}`},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			op := Operation{}
			if err := json.Unmarshal([]byte(c.input), &op); err == nil {
				t.Errorf("expected error, got: %v", op)
			}
		})
	}
}

func TestOperationString(t *testing.T) {
	cases := []struct {
		op     Operation
		expect string
	}{
		{Operation{Op: OpRemove, Path: Path{StringAddr("a"), IndexAddr(1)}}, "remove /a/1"},
		{Operation{Op: OpAdd, Path: Path{StringAddr("a~b")}, Value: 5}, "add /a~0b 5"},
	}
	for i, c := range cases {
		if got := c.op.String(); got != c.expect {
			t.Errorf("case %d mismatch. want: %q, got: %q", i, c.expect, got)
		}
	}
}

func TestPath(t *testing.T) {
	base := Path{StringAddr("a")}
	b := base.Append(IndexAddr(0))
	c := base.Append(StringAddr("c"))

	if !b.Eq(Path{StringAddr("a"), IndexAddr(0)}) {
		t.Errorf("unexpected path: %s", b)
	}
	if !c.Eq(Path{StringAddr("a"), StringAddr("c")}) {
		t.Errorf("appending to a shared base altered another path: %s", c)
	}
	if b.Eq(Path{StringAddr("a"), StringAddr("0")}) {
		t.Error("index & string addresses should never be equal")
	}
	if got := (Path{StringAddr("a/b"), StringAddr("m~n"), IndexAddr(3)}).Pointer(); got != "/a~1b/m~0n/3" {
		t.Errorf("pointer mismatch: %s", got)
	}
	if got := (Path{}).Pointer(); got != "" {
		t.Errorf("expected empty pointer for root, got: %q", got)
	}
}
