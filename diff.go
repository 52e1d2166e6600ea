package draftpatch

import (
	"reflect"
	"sort"

	"github.com/google/go-cmp/cmp"
)

// Diff computes patches & inverse patches between two document snapshots. It
// stands in for a draft layer: marker sets are derived by comparing values,
// and nested containers of the same kind are descended into, producing
// patches at their own paths instead of replacing them wholesale.
//
// Values are compared for deep equality unless OptionSetEqual says otherwise.
// Diff returns no patches when base & copy aren't containers of the same kind
func Diff(base, copy interface{}, opts ...GenerateOption) (patches, inversePatches []Operation) {
	cfg := newGenerateConfig(opts, deepEqual)
	diffContainers(cfg, base, copy, Path{}, &patches, &inversePatches)
	return patches, inversePatches
}

// deepEqual compares documents structurally. Scalars may be structs with
// unexported fields, which are compared as well
func deepEqual(a, b interface{}) bool {
	return cmp.Equal(a, b, cmp.Exporter(func(reflect.Type) bool { return true }))
}

// diffContainers generates patches for one container, then recurses into the
// children it didn't mark
func diffContainers(cfg *GenerateConfig, base, copy interface{}, basePath Path, patches, inversePatches *[]Operation) {
	kind := KindOf(base)
	if kind == KindScalar || kind != KindOf(copy) {
		return
	}

	var (
		marks    = NewMarks()
		children []Addr
	)

	switch kind {
	case KindObject:
		b, c := base.(Object), copy.(Object)
		for _, key := range sortedKeys(b) {
			cv, ok := c[key]
			if !ok {
				marks.Delete(key)
			} else if descend(cfg, b[key], cv) {
				children = append(children, StringAddr(key))
			} else if !cfg.Equal(b[key], cv) {
				marks.Assign(key)
			}
		}
		for _, key := range sortedKeys(c) {
			if _, ok := b[key]; !ok {
				marks.Assign(key)
			}
		}
	case KindArray:
		b, c := asArray(base), asArray(copy)
		// only same-length arrays keep indices stable enough to descend
		sameLen := len(b) == len(c)
		for i := 0; i < len(b) || i < len(c); i++ {
			if i < len(b) && i < len(c) {
				if sameLen && descend(cfg, b[i], c[i]) {
					children = append(children, IndexAddr(i))
					continue
				}
				if cfg.Equal(b[i], c[i]) {
					continue
				}
			}
			marks.AssignIndex(i)
		}
	}

	if !marks.empty() {
		generatePatches(cfg, &ChangeSet{Base: base, Copy: copy, Assigned: marks}, basePath, patches, inversePatches)
	}

	for _, a := range children {
		var bv, cv interface{}
		if kind == KindObject {
			bv, cv = base.(Object)[a.String()], copy.(Object)[a.String()]
		} else {
			i := int(a.(IndexAddr))
			bv, cv = (*base.(*Array))[i], (*copy.(*Array))[i]
		}
		diffContainers(cfg, bv, cv, basePath.Append(a), patches, inversePatches)
	}
}

// descend reports whether two values are same-kind containers that differ
func descend(cfg *GenerateConfig, a, b interface{}) bool {
	k := KindOf(a)
	return k != KindScalar && k == KindOf(b) && !cfg.Equal(a, b)
}

func sortedKeys(o Object) []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
