package draftpatch

// Stats holds a count of each kind of operation in a patch
type Stats struct {
	Adds     int `json:"adds,omitempty"`     // number of add operations
	Removes  int `json:"removes,omitempty"`  // number of remove operations
	Replaces int `json:"replaces,omitempty"` // number of replace operations
}

// CalcStats counts the operations in a patch
func CalcStats(ops []Operation) *Stats {
	st := &Stats{}
	st.add(ops)
	return st
}

func (s *Stats) add(ops []Operation) {
	for _, op := range ops {
		switch op.Op {
		case OpAdd:
			s.Adds++
		case OpRemove:
			s.Removes++
		case OpReplace:
			s.Replaces++
		}
	}
}

// Total returns the number of counted operations
func (s Stats) Total() int {
	return s.Adds + s.Removes + s.Replaces
}
