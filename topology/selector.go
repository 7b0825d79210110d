// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// selector.go — face selection for sparse refinement.

package topology

// SparseSelector marks parent faces of a Refinement for sparse refinement.
// Selecting a face is idempotent.
type SparseSelector struct {
	refinement *Refinement
}

// NewSparseSelector returns a selector writing into r's selection.
func NewSparseSelector(r *Refinement) *SparseSelector {
	return &SparseSelector{refinement: r}
}

// Refinement returns the refinement whose parent faces are being selected.
func (s *SparseSelector) Refinement() *Refinement { return s.refinement }

// SelectFace marks parent face f. Out-of-range indices are ignored.
func (s *SparseSelector) SelectFace(f int) {
	if f < 0 || f >= s.refinement.parent.NumFaces() {
		return
	}
	s.refinement.selected.Add(uint32(f))
}

// IsFaceSelected reports whether parent face f is marked.
func (s *SparseSelector) IsFaceSelected(f int) bool {
	return f >= 0 && s.refinement.selected.Contains(uint32(f))
}

// IsSelectionEmpty reports whether no face has been selected.
func (s *SparseSelector) IsSelectionEmpty() bool { return s.refinement.selected.IsEmpty() }

// NumSelectedFaces returns the number of selected faces.
func (s *SparseSelector) NumSelectedFaces() int {
	return int(s.refinement.selected.GetCardinality())
}
