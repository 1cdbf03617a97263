package model

// StringSet is an ordered set of strings backed by a slice.
// Insertion order is stable and it marshals as a plain JSON array.
type StringSet []string

// Contains reports whether v is a member of the set
func (s StringSet) Contains(v string) bool {
	for _, m := range s {
		if m == v {
			return true
		}
	}
	return false
}

// Add appends v if it is not already a member and reports whether it was added
func (s *StringSet) Add(v string) bool {
	if s.Contains(v) {
		return false
	}
	*s = append(*s, v)
	return true
}

// Clone returns an independent copy of the set
func (s StringSet) Clone() StringSet {
	if s == nil {
		return nil
	}
	clone := make(StringSet, len(s))
	copy(clone, s)
	return clone
}
