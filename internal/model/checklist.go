package model

// SectionID identifies a top-level checklist category
type SectionID string

// Section is one checklist category with its required points.
// Sections and their point order are fixed at startup.
type Section struct {
	ID     SectionID `json:"id"`
	Title  string    `json:"title"`
	Points []string  `json:"points"`
}

// HasPoint reports whether label is one of the section's points
func (s *Section) HasPoint(label string) bool {
	for _, p := range s.Points {
		if p == label {
			return true
		}
	}
	return false
}

// Catalog is the ordered, immutable set of checklist sections
type Catalog struct {
	Sections []Section `json:"sections"`
}

// Section returns the section with the given id
func (c *Catalog) Section(id SectionID) (*Section, bool) {
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			return &c.Sections[i], true
		}
	}
	return nil, false
}

// SectionIDs returns the section ids in catalog order
func (c *Catalog) SectionIDs() []SectionID {
	ids := make([]SectionID, 0, len(c.Sections))
	for _, s := range c.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

// FullMissing returns a MissingMap with every catalog point marked missing.
// This is the fail-safe result when gap analysis is unavailable.
func (c *Catalog) FullMissing() MissingMap {
	m := make(MissingMap, len(c.Sections))
	for _, s := range c.Sections {
		pts := make([]string, len(s.Points))
		copy(pts, s.Points)
		m[s.ID] = pts
	}
	return m
}

// EmptyMissing returns a MissingMap with every section key present and no
// missing points
func (c *Catalog) EmptyMissing() MissingMap {
	m := make(MissingMap, len(c.Sections))
	for _, s := range c.Sections {
		m[s.ID] = []string{}
	}
	return m
}

// MissingMap holds the points not yet adequately covered, per section.
// Every catalog section key is always present, possibly with an empty list.
// It is recomputed wholesale after each analysis pass, never patched.
type MissingMap map[SectionID][]string

// Empty reports whether no section has missing points
func (m MissingMap) Empty() bool {
	for _, pts := range m {
		if len(pts) > 0 {
			return false
		}
	}
	return true
}

// Count returns the total number of missing points across sections
func (m MissingMap) Count() int {
	n := 0
	for _, pts := range m {
		n += len(pts)
	}
	return n
}

// Clone returns a deep copy
func (m MissingMap) Clone() MissingMap {
	out := make(MissingMap, len(m))
	for id, pts := range m {
		cp := make([]string, len(pts))
		copy(cp, pts)
		out[id] = cp
	}
	return out
}
