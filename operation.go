package draftpatch

import (
	"encoding/json"
	"fmt"
)

// Op defines the kind of edit an Operation performs
type Op string

const (
	// OpAdd inserts a value. Inserting into an array shifts subsequent
	// elements right, adding to an object sets the key
	OpAdd = Op("add")
	// OpRemove deletes a value. Removing from an array shifts subsequent
	// elements left
	OpRemove = Op("remove")
	// OpReplace overwrites the value at a path
	OpReplace = Op("replace")
)

// Operation is a single path-addressed edit to a document
type Operation struct {
	// the kind of edit
	Op Op
	// Path locates the edited value from the root of the document, it must
	// never be empty
	Path Path
	// the value to write, unused for OpRemove
	Value interface{}
}

type operationJSON struct {
	Op    Op               `json:"op"`
	Path  Path             `json:"path"`
	Value *json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes an operation as {"op":..., "path":[...], "value":...}.
// value is omitted for remove operations only
func (o Operation) MarshalJSON() ([]byte, error) {
	v := operationJSON{Op: o.Op, Path: o.Path}
	if v.Path == nil {
		v.Path = Path{}
	}
	if o.Op != OpRemove {
		data, err := json.Marshal(o.Value)
		if err != nil {
			return nil, err
		}
		raw := json.RawMessage(data)
		v.Value = &raw
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes an operation, converting the value into a document
func (o *Operation) UnmarshalJSON(data []byte) error {
	v := operationJSON{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Op == "" {
		return fmt.Errorf("operation is missing an op")
	}

	op := Operation{Op: v.Op, Path: v.Path}
	if v.Value != nil {
		var val interface{}
		if err := json.Unmarshal(*v.Value, &val); err != nil {
			return err
		}
		op.Value = FromJSON(val)
	}
	*o = op
	return nil
}

// String gives a compact, single-line description of an operation
func (o Operation) String() string {
	if o.Op == OpRemove {
		return fmt.Sprintf("%s %s", o.Op, o.Path.Pointer())
	}
	return fmt.Sprintf("%s %s %v", o.Op, o.Path.Pointer(), o.Value)
}
