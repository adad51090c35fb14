package sorter

import (
	"fmt"

	"github.com/hupe1980/docvalues/packed"
)

// DocMap is the permutation induced by re-sorting one segment: a pair of
// block-packed tables mapping old→new and new→old document ids, exact
// inverses of each other over [0, maxDoc).
//
// A DocMap is produced once and immutable afterwards.
type DocMap struct {
	maxDoc   int32
	oldToNew *packed.Reader
	newToOld *packed.Reader
}

// OldToNew returns the sorted-index position of an original doc id.
func (m *DocMap) OldToNew(docID int32) (int32, error) {
	v, err := m.oldToNew.Get(int64(docID))
	return int32(v), err
}

// NewToOld returns the original doc id at a sorted-index position.
func (m *DocMap) NewToOld(docID int32) (int32, error) {
	v, err := m.newToOld.Get(int64(docID))
	return int32(v), err
}

// Len returns the number of documents covered, equal to the segment's
// maxDoc.
func (m *DocMap) Len() int {
	return int(m.maxDoc)
}

// CheckConsistency verifies the inverse property over the whole map:
// newToOld(oldToNew(d)) == d for every d and every new id within range.
// A violation indicates a defect in map construction, never an expected
// runtime condition.
func (m *DocMap) CheckConsistency() error {
	for d := int32(0); d < m.maxDoc; d++ {
		newID, err := m.OldToNew(d)
		if err != nil {
			return err
		}
		if newID < 0 || newID >= m.maxDoc {
			return fmt.Errorf("sorter: oldToNew(%d) = %d out of range [0, %d)", d, newID, m.maxDoc)
		}
		oldID, err := m.NewToOld(newID)
		if err != nil {
			return err
		}
		if oldID != d {
			return fmt.Errorf("sorter: newToOld(oldToNew(%d)) = %d, want %d", d, oldID, d)
		}
	}
	return nil
}
