package draftpatch

// Marks records which entries of a single container were touched. For objects
// each key is either assigned (set or changed) or deleted, keys are visited in
// the order they were first marked. For arrays each index is either assigned
// (its value differs) or untouched
type Marks struct {
	keys    []string
	objects map[string]bool
	indices []bool
}

// NewMarks creates an empty marker set
func NewMarks() *Marks {
	return &Marks{}
}

func (m *Marks) markKey(key string, assigned bool) {
	if m.objects == nil {
		m.objects = map[string]bool{}
	}
	if _, ok := m.objects[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.objects[key] = assigned
}

// Assign marks an object key as set or changed
func (m *Marks) Assign(key string) *Marks {
	m.markKey(key, true)
	return m
}

// Delete marks an object key as removed
func (m *Marks) Delete(key string) *Marks {
	m.markKey(key, false)
	return m
}

// AssignIndex marks an array index as changed
func (m *Marks) AssignIndex(i int) *Marks {
	if i < 0 {
		return m
	}
	if i >= len(m.indices) {
		m.indices = append(m.indices, make([]bool, i+1-len(m.indices))...)
	}
	m.indices[i] = true
	return m
}

// Index reports whether an array index is marked as changed
func (m *Marks) Index(i int) bool {
	if m == nil || i < 0 || i >= len(m.indices) {
		return false
	}
	return m.indices[i]
}

// Key reports how an object key was marked. ok is false for untouched keys
func (m *Marks) Key(key string) (assigned, ok bool) {
	if m == nil {
		return false, false
	}
	assigned, ok = m.objects[key]
	return assigned, ok
}

// Len returns the number of marked object keys
func (m *Marks) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Each calls fn for every marked object key in marking order
func (m *Marks) Each(fn func(key string, assigned bool)) {
	if m == nil {
		return
	}
	for _, key := range m.keys {
		fn(key, m.objects[key])
	}
}

func (m *Marks) empty() bool {
	return m == nil || (len(m.keys) == 0 && len(m.indices) == 0)
}
