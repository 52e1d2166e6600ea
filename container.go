package draftpatch

import (
	"encoding/json"
	"reflect"
)

// Kind distinguishes the two container types from everything else
type Kind uint8

const (
	// KindScalar is any non-container value, including nil
	KindScalar Kind = iota
	// KindObject is a keyed container
	KindObject
	// KindArray is an ordered container
	KindArray
)

// String implements the stringer interface for Kind
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "scalar"
	}
}

// Object is a keyed container
type Object map[string]interface{}

// Array is an ordered container. Documents always hold arrays as *Array
type Array []interface{}

// NewArray creates an array from a list of values
func NewArray(vals ...interface{}) *Array {
	a := make(Array, len(vals))
	copy(a, vals)
	return &a
}

// Len returns the number of elements in the array, a nil array has length 0
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(*a)
}

// MarshalJSON encodes an array as a plain JSON list
func (a Array) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]interface{}(a))
}

// insert places v at index i, shifting subsequent elements right
func (a *Array) insert(i int, v interface{}) {
	*a = append(*a, nil)
	copy((*a)[i+1:], (*a)[i:])
	(*a)[i] = v
}

// remove drops the element at index i, shifting subsequent elements left
func (a *Array) remove(i int) {
	copy((*a)[i:], (*a)[i+1:])
	(*a)[len(*a)-1] = nil
	*a = (*a)[:len(*a)-1]
}

// setLength truncates the array, or pads it with nil values
func (a *Array) setLength(l int) {
	if l <= len(*a) {
		for i := l; i < len(*a); i++ {
			(*a)[i] = nil
		}
		*a = (*a)[:l]
		return
	}
	*a = append(*a, make([]interface{}, l-len(*a))...)
}

// KindOf reports the container kind of a value
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case Object:
		return KindObject
	case *Array:
		return KindArray
	default:
		return KindScalar
	}
}

// Clone makes a full recursive copy of v. Scalars are returned as-is. Generic
// JSON containers (map[string]interface{} & []interface{}) are converted to
// Object & *Array on the way through
func Clone(v interface{}) interface{} {
	switch t := v.(type) {
	case Object:
		return cloneObject(t)
	case map[string]interface{}:
		return cloneObject(t)
	case *Array:
		if t == nil {
			return t
		}
		return cloneArray(*t)
	case []interface{}:
		return cloneArray(t)
	default:
		return v
	}
}

func cloneObject(o map[string]interface{}) Object {
	if o == nil {
		return nil
	}
	cp := make(Object, len(o))
	for k, v := range o {
		cp[k] = Clone(v)
	}
	return cp
}

func cloneArray(a []interface{}) *Array {
	cp := make(Array, len(a))
	for i, v := range a {
		cp[i] = Clone(v)
	}
	return &cp
}

// FromJSON converts a tree of values created by unmarshaling JSON into a
// document. The input is not modified
func FromJSON(v interface{}) interface{} {
	return Clone(v)
}

// Identical reports whether a & b are the same value: scalars must be equal,
// containers must be the same container. Identical never panics on values that
// aren't comparable with ==
func Identical(a, b interface{}) bool {
	switch at := a.(type) {
	case Object:
		bt, ok := b.(Object)
		if !ok || (at == nil) != (bt == nil) {
			return false
		}
		return reflect.ValueOf(at).Pointer() == reflect.ValueOf(bt).Pointer()
	case *Array:
		bt, ok := b.(*Array)
		return ok && at == bt
	}

	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	// comparable types can still hold incomparable dynamic values, eg. an
	// interface field inside a struct
	defer func() { recover() }()
	return a == b
}
