package draftpatch

// ChangeSet describes one modified container: its value before & after the
// change, and which of its entries were touched. Base & Copy must be the same
// kind of container
type ChangeSet struct {
	Base     interface{}
	Copy     interface{}
	Assigned *Marks
}

// EqualFunc compares two leaf values
type EqualFunc func(a, b interface{}) bool

// GenerateConfig are any possible configuration parameters for generating
// patches
type GenerateConfig struct {
	// Equal decides whether two values are unchanged. defaults to Identical
	Equal EqualFunc
	// Provide a non-nil stats pointer & generation will add a count of each
	// forward operation it emits
	Stats *Stats
}

// GenerateOption is a function that adjusts a config, zero or more
// GenerateOptions can be passed to GeneratePatches & Diff
type GenerateOption func(cfg *GenerateConfig)

// OptionSetEqual replaces the function used to compare values
func OptionSetEqual(fn EqualFunc) GenerateOption {
	return func(cfg *GenerateConfig) {
		cfg.Equal = fn
	}
}

// OptionSetStats will populate the passed-in stats pointer as patches are
// generated
func OptionSetStats(st *Stats) GenerateOption {
	return func(cfg *GenerateConfig) {
		cfg.Stats = st
	}
}

func newGenerateConfig(opts []GenerateOption, eq EqualFunc) *GenerateConfig {
	cfg := &GenerateConfig{Equal: eq}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Equal == nil {
		cfg.Equal = eq
	}
	return cfg
}

// GeneratePatches appends operations that turn cs.Base into cs.Copy to patches,
// and operations that undo them to inversePatches. Every emitted path is
// basePath plus one key. Arrays & objects are diffed differently, any other
// base value is treated as an empty object. Generic JSON containers are
// accepted as bases & copies
func GeneratePatches(cs *ChangeSet, basePath Path, patches, inversePatches *[]Operation, opts ...GenerateOption) {
	cfg := newGenerateConfig(opts, Identical)
	generatePatches(cfg, cs, basePath, patches, inversePatches)
}

func generatePatches(cfg *GenerateConfig, cs *ChangeSet, basePath Path, patches, inversePatches *[]Operation) {
	start := len(*patches)
	if isArray(cs.Base) {
		diffArrays(cfg, cs, basePath, patches, inversePatches)
	} else {
		diffObjects(cfg, cs, basePath, patches, inversePatches)
	}

	if cfg.Stats != nil {
		// array diffs swap accumulators when the array shrinks, so count
		// whatever landed in the forward accumulator
		cfg.Stats.add((*patches)[start:])
	}
}

// diffArrays computes the smallest contiguous window that differs between two
// arrays by trimming the common prefix & suffix. Changed indices within the
// window become replacements, any growth in length becomes a run of inserts at
// the end of the window. This is O(n) & intentionally not an edit distance
// calculation: it's exact for a single append, removal or splice and falls
// back to replacements for everything else
func diffArrays(cfg *GenerateConfig, cs *ChangeSet, basePath Path, patches, inversePatches *[]Operation) {
	base, cp := asArray(cs.Base), asArray(cs.Copy)
	eq := cfg.Equal

	// reduce complexity by ensuring base is never longer
	if len(cp) < len(base) {
		base, cp = cp, base
		patches, inversePatches = inversePatches, patches
	}

	delta := len(cp) - len(base)

	// first replaced index
	start := 0
	for start < len(base) && eq(base[start], cp[start]) {
		start++
	}

	// last replaced index, searching from the end to optimize splices
	end := len(base)
	for end > start && eq(base[end-1], cp[end+delta-1]) {
		end--
	}

	for i := start; i < end; i++ {
		if cs.Assigned.Index(i) && !eq(cp[i], base[i]) {
			path := basePath.Append(IndexAddr(i))
			*patches = append(*patches, Operation{Op: OpReplace, Path: path, Value: cp[i]})
			*inversePatches = append(*inversePatches, Operation{Op: OpReplace, Path: path, Value: base[i]})
		}
	}

	useRemove := end != len(base)
	replaceCount := len(*patches)

	// added indices are visited back-to-front, but land in the forward
	// accumulator in ascending order
	*patches = append(*patches, make([]Operation, delta)...)
	for i := end + delta - 1; i >= end; i-- {
		path := basePath.Append(IndexAddr(i))
		(*patches)[replaceCount+i-end] = Operation{Op: OpAdd, Path: path, Value: cp[i]}
		if useRemove {
			*inversePatches = append(*inversePatches, Operation{Op: OpRemove, Path: path})
		}
	}

	// one length replacement reverses all non-splicing adds
	if !useRemove {
		*inversePatches = append(*inversePatches, Operation{
			Op:    OpReplace,
			Path:  basePath.Append(lengthAddr),
			Value: len(base),
		})
	}
}

// diffObjects emits one operation per marked key
func diffObjects(cfg *GenerateConfig, cs *ChangeSet, basePath Path, patches, inversePatches *[]Operation) {
	base, cp := asObject(cs.Base), asObject(cs.Copy)

	cs.Assigned.Each(func(key string, assigned bool) {
		origValue, inBase := base[key]
		value := cp[key]

		op := OpReplace
		if !assigned {
			op = OpRemove
		} else if !inBase {
			op = OpAdd
		}
		if op == OpReplace && cfg.Equal(origValue, value) {
			return
		}

		path := basePath.Append(StringAddr(key))
		switch op {
		case OpAdd:
			*patches = append(*patches, Operation{Op: OpAdd, Path: path, Value: value})
			*inversePatches = append(*inversePatches, Operation{Op: OpRemove, Path: path})
		case OpRemove:
			*patches = append(*patches, Operation{Op: OpRemove, Path: path})
			*inversePatches = append(*inversePatches, Operation{Op: OpAdd, Path: path, Value: origValue})
		default:
			*patches = append(*patches, Operation{Op: OpReplace, Path: path, Value: value})
			*inversePatches = append(*inversePatches, Operation{Op: OpReplace, Path: path, Value: origValue})
		}
	})
}

// isArray reports whether v is an ordered sequence, either an *Array or a
// generic JSON list. Generic lists are only read, never modified
func isArray(v interface{}) bool {
	switch v.(type) {
	case *Array, []interface{}:
		return true
	default:
		return false
	}
}

func asArray(v interface{}) Array {
	switch t := v.(type) {
	case *Array:
		if t != nil {
			return *t
		}
	case []interface{}:
		return Array(t)
	}
	return nil
}

func asObject(v interface{}) Object {
	switch t := v.(type) {
	case Object:
		return t
	case map[string]interface{}:
		return Object(t)
	default:
		return nil
	}
}
