package draftpatch

import (
	"math"

	"github.com/pkg/errors"
)

// ApplyPatches applies a sequence of operations to target in order, mutating
// it, and returns target. target must be an Object, *Array or a generic JSON
// object (map[string]interface{}). Values are cloned
// before they're written, so ops can be applied again to another target.
//
// Application isn't atomic: the first failing operation aborts the call,
// leaving every operation before it applied
func ApplyPatches(target interface{}, ops []Operation) (interface{}, error) {
	for i, op := range ops {
		if err := applyOperation(target, op); err != nil {
			return target, errors.Wrapf(err, "patch %d", i)
		}
	}
	return target, nil
}

func applyOperation(doc interface{}, op Operation) error {
	if len(op.Path) == 0 {
		return errors.Wrap(ErrIllegalState, "empty path")
	}

	value := Clone(op.Value)
	parent, err := resolveParent(doc, op.Path)
	if err != nil {
		return err
	}

	key := op.Path[len(op.Path)-1]
	switch op.Op {
	case OpReplace:
		return replaceValue(parent, op.Path, key, value)
	case OpAdd:
		return addValue(parent, op.Path, key, value)
	case OpRemove:
		return removeValue(parent, op.Path, key)
	default:
		return errors.Wrapf(ErrUnsupportedOperation, "%q", op.Op)
	}
}

// resolveParent walks every segment of path but the last, returning the
// container the final segment addresses
func resolveParent(doc interface{}, path Path) (interface{}, error) {
	elem := asDocument(doc)
	for _, a := range path[:len(path)-1] {
		switch KindOf(elem) {
		case KindObject:
			v, ok := elem.(Object)[a.String()]
			if !ok {
				return nil, errors.Wrapf(ErrUnresolvablePath, "%s", path)
			}
			elem = asDocument(v)
		case KindArray:
			arr := elem.(*Array)
			i, ok := arrayIndex(a)
			if !ok || i >= arr.Len() {
				return nil, errors.Wrapf(ErrUnresolvablePath, "%s", path)
			}
			elem = asDocument((*arr)[i])
		default:
			return nil, errors.Wrapf(ErrUnresolvablePath, "%s", path)
		}
	}

	switch t := elem.(type) {
	case Object:
		if t != nil {
			return t, nil
		}
	case *Array:
		if t != nil {
			return t, nil
		}
	}
	return nil, errors.Wrapf(ErrUnresolvablePath, "%s", path)
}

// asDocument views a generic JSON object as an Object. Both share the same
// map, so writes land in the original. Generic JSON lists can't grow or shrink
// in place & are left as-is, which makes them unresolvable
func asDocument(v interface{}) interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return Object(m)
	}
	return v
}

func replaceValue(parent interface{}, path Path, key Addr, value interface{}) error {
	switch KindOf(parent) {
	case KindObject:
		parent.(Object)[key.String()] = value
		return nil
	case KindArray:
		arr := parent.(*Array)
		if key.Eq(lengthAddr) {
			l, ok := toLength(value)
			if !ok {
				return errors.Wrapf(ErrIllegalState, "invalid array length %v at path %s", value, path)
			}
			arr.setLength(l)
			return nil
		}
		i, ok := arrayIndex(key)
		if !ok || i >= arr.Len() {
			return errors.Wrapf(ErrUnresolvablePath, "array index %s out of range at path %s", key, path)
		}
		(*arr)[i] = value
		return nil
	default:
		return errors.Wrapf(ErrUnresolvablePath, "%s", path)
	}
}

// addValue inserts into arrays, and sets keys on objects. There's no "-"
// append address for arrays, inserting at the current length appends
func addValue(parent interface{}, path Path, key Addr, value interface{}) error {
	switch KindOf(parent) {
	case KindObject:
		parent.(Object)[key.String()] = value
		return nil
	case KindArray:
		arr := parent.(*Array)
		i, ok := arrayIndex(key)
		if !ok || i > arr.Len() {
			return errors.Wrapf(ErrUnresolvablePath, "array index %s out of range at path %s", key, path)
		}
		arr.insert(i, value)
		return nil
	default:
		return errors.Wrapf(ErrUnresolvablePath, "%s", path)
	}
}

func removeValue(parent interface{}, path Path, key Addr) error {
	switch KindOf(parent) {
	case KindObject:
		delete(parent.(Object), key.String())
		return nil
	case KindArray:
		arr := parent.(*Array)
		i, ok := arrayIndex(key)
		if !ok || i >= arr.Len() {
			return errors.Wrapf(ErrUnresolvablePath, "array index %s out of range at path %s", key, path)
		}
		arr.remove(i)
		return nil
	default:
		return errors.Wrapf(ErrUnresolvablePath, "%s", path)
	}
}

// toLength accepts the numeric types a length value can arrive as: int when
// generated, float64 when decoded from JSON
func toLength(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, t >= 0
	case int64:
		return int(t), t >= 0
	case float64:
		return int(t), t >= 0 && t <= math.MaxInt32 && t == math.Trunc(t)
	default:
		return 0, false
	}
}
