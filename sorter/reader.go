package sorter

import (
	"github.com/hupe1980/docvalues"
	"github.com/hupe1980/docvalues/bits"
)

// Reader is the view of a host segment the sorter consumes. It is satisfied
// by the index-writer's segment reader; the sorter performs no I/O beyond
// these accessors.
type Reader interface {
	// MaxDoc returns the number of documents in the segment, including
	// deleted ones.
	MaxDoc() int32

	// NumericDocValues returns the single-valued numeric accessor for field.
	NumericDocValues(field string) (docvalues.LongValues, error)

	// SortedNumericDocValues returns the multi-valued numeric accessor for
	// field.
	SortedNumericDocValues(field string) (docvalues.SortedNumericValues, error)

	// DocsWithField reports which documents carry a value for field.
	DocsWithField(field string) (bits.Bits, error)

	// LiveDocs reports which documents are not deleted.
	LiveDocs() bits.Bits
}
