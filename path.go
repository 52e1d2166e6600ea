package draftpatch

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Addr is a single step in a Path, either an object key or an array index
type Addr interface {
	// Value returns the underlying key: a string for objects, an int for arrays
	Value() interface{}
	String() string
	Eq(b Addr) bool
}

// StringAddr is an object key
type StringAddr string

var _ Addr = (*StringAddr)(nil)

// Value returns the key as a string
func (a StringAddr) Value() interface{} { return string(a) }

// String implements the stringer interface
func (a StringAddr) String() string { return string(a) }

// Eq tests for equality with another address
func (a StringAddr) Eq(b Addr) bool {
	bs, ok := b.(StringAddr)
	return ok && a == bs
}

// IndexAddr is an array index
type IndexAddr int

var _ Addr = (*IndexAddr)(nil)

// Value returns the index as an int
func (a IndexAddr) Value() interface{} { return int(a) }

// String implements the stringer interface
func (a IndexAddr) String() string { return strconv.Itoa(int(a)) }

// Eq tests for equality with another address
func (a IndexAddr) Eq(b Addr) bool {
	bi, ok := b.(IndexAddr)
	return ok && a == bi
}

// lengthAddr addresses the length of an array. it's only ever emitted as the
// inverse of a run of appends
const lengthAddr = StringAddr("length")

// Path locates a value from the root of a document
type Path []Addr

// Append returns a new path with a added to the end. The receiver is never
// modified or aliased
func (p Path) Append(a Addr) Path {
	cp := make(Path, len(p), len(p)+1)
	copy(cp, p)
	return append(cp, a)
}

// Eq tests two paths for equality
func (p Path) Eq(b Path) bool {
	if len(p) != len(b) {
		return false
	}
	for i, a := range p {
		if !a.Eq(b[i]) {
			return false
		}
	}
	return true
}

// String renders the path as slash-delimited segments
func (p Path) String() string {
	strs := make([]string, len(p))
	for i, a := range p {
		strs[i] = a.String()
	}
	return strings.Join(strs, "/")
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders the path as an RFC 6901 JSON pointer
func (p Path) Pointer() string {
	buf := &strings.Builder{}
	for _, a := range p {
		buf.WriteByte('/')
		buf.WriteString(pointerEscaper.Replace(a.String()))
	}
	return buf.String()
}

// MarshalJSON encodes a path as a list of strings & integers
func (p Path) MarshalJSON() ([]byte, error) {
	vals := make([]interface{}, len(p))
	for i, a := range p {
		if a == nil {
			return nil, fmt.Errorf("path segment %d is nil", i)
		}
		vals[i] = a.Value()
	}
	return json.Marshal(vals)
}

// UnmarshalJSON decodes a list of strings & non-negative integers
func (p *Path) UnmarshalJSON(data []byte) error {
	var vals []interface{}
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	path := make(Path, len(vals))
	for i, v := range vals {
		switch t := v.(type) {
		case string:
			path[i] = StringAddr(t)
		case float64:
			if t < 0 || t > math.MaxInt32 || t != math.Trunc(t) {
				return fmt.Errorf("path segment %d: invalid array index %v", i, t)
			}
			path[i] = IndexAddr(int(t))
		default:
			return fmt.Errorf("path segment %d: unsupported type %T", i, v)
		}
	}
	*p = path
	return nil
}

// arrayIndex interprets an address as an index into an array. numeric string
// keys are accepted
func arrayIndex(a Addr) (int, bool) {
	switch t := a.(type) {
	case IndexAddr:
		return int(t), t >= 0
	case StringAddr:
		i, err := strconv.Atoi(string(t))
		return i, err == nil && i >= 0
	default:
		return 0, false
	}
}
