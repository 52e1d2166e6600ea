package draftpatch

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/pkg/errors"
)

type rfc6902Op struct {
	Op    Op               `json:"op"`
	Path  string           `json:"path"`
	Value *json.RawMessage `json:"value,omitempty"`
}

// MarshalJSONPatch encodes operations as an RFC 6902 JSON patch, with paths
// rendered as JSON pointers. Array length replacements have no JSON patch
// equivalent & produce ErrNotJSONPatch
func MarshalJSONPatch(ops []Operation) ([]byte, error) {
	doc := make([]rfc6902Op, len(ops))
	for i, op := range ops {
		if len(op.Path) == 0 {
			return nil, errors.Wrapf(ErrIllegalState, "patch %d: empty path", i)
		}
		if op.Op == OpReplace && op.Path[len(op.Path)-1].Eq(lengthAddr) && isLength(op.Value) {
			return nil, errors.Wrapf(ErrNotJSONPatch, "patch %d: array length replacement at %s", i, op.Path)
		}
		switch op.Op {
		case OpAdd, OpRemove, OpReplace:
		default:
			return nil, errors.Wrapf(ErrUnsupportedOperation, "patch %d: %q", i, op.Op)
		}

		doc[i] = rfc6902Op{Op: op.Op, Path: op.Path.Pointer()}
		if op.Op != OpRemove {
			data, err := json.Marshal(op.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "patch %d", i)
			}
			raw := json.RawMessage(data)
			doc[i].Value = &raw
		}
	}
	return json.Marshal(doc)
}

// ApplyJSON applies operations to a JSON-encoded document using a standard
// JSON patch implementation, returning the patched document
func ApplyJSON(doc []byte, ops []Operation) ([]byte, error) {
	data, err := MarshalJSONPatch(ops)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.DecodePatch(data)
	if err != nil {
		return nil, errors.Wrap(err, "decoding json patch")
	}
	return patch.Apply(doc)
}

// isLength guards against treating an object key named "length" as an array
// length: only numeric values can be lengths
func isLength(v interface{}) bool {
	_, ok := toLength(v)
	return ok
}
