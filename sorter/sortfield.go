package sorter

import (
	"fmt"

	"github.com/hupe1980/docvalues"
)

// Type is the value type of a sort field.
type Type uint8

const (
	// TypeLong sorts by a 64-bit integer field.
	TypeLong Type = iota
	// TypeInt sorts by a 32-bit integer field.
	TypeInt
	// TypeDouble sorts by a double-precision float field. Stored values are
	// the IEEE-754 bit patterns of the float64.
	TypeDouble
	// TypeFloat sorts by a single-precision float field, widened to float64
	// bit patterns by the accessor.
	TypeFloat
	// TypeString is declared for completeness; cross-segment string sorting
	// is unsupported and rejected with ErrUnhandledSortType.
	TypeString
)

// String returns the name of the type.
func (t Type) String() string {
	switch t {
	case TypeLong:
		return "Long"
	case TypeInt:
		return "Int"
	case TypeDouble:
		return "Double"
	case TypeFloat:
		return "Float"
	case TypeString:
		return "String"
	default:
		return "Unknown"
	}
}

// Selector reduces a multi-valued numeric column to one value per document.
type Selector uint8

const (
	// SelectorMin picks the smallest value of each document.
	SelectorMin Selector = iota
	// SelectorMax picks the largest value of each document.
	SelectorMax
)

// SortField is one directive of a sort order. The effective direction is an
// explicit configuration value: Reverse=false yields ascending output,
// Reverse=true descending.
type SortField struct {
	Field   string
	Type    Type
	Reverse bool

	// MissingLong substitutes for documents lacking a Long/Int field.
	MissingLong int64
	// MissingDouble substitutes for documents lacking a Double/Float field,
	// widened to 64-bit precision.
	MissingDouble float64

	// SortedNumeric reads the field from a multi-valued numeric column,
	// reduced per document by Selector.
	SortedNumeric bool
	Selector      Selector
}

// ErrUnhandledSortType indicates a sort field whose declared type has no
// comparator, e.g. string-typed fields in a cross-segment merge.
type ErrUnhandledSortType struct {
	Type Type
}

func (e *ErrUnhandledSortType) Error() string {
	return fmt.Sprintf("sorter: unhandled sort field type %s", e.Type)
}

// numericValues resolves the field's single-valued accessor, applying the
// selector wrap for multi-valued columns.
func (f *SortField) numericValues(r Reader) (docvalues.LongValues, error) {
	if f.SortedNumeric {
		sn, err := r.SortedNumericDocValues(f.Field)
		if err != nil {
			return nil, err
		}
		return &selectedValues{values: sn, selector: f.Selector}, nil
	}
	return r.NumericDocValues(f.Field)
}

// selectedValues reduces a SortedNumericValues to a LongValues through a
// selector. Documents without values yield 0; presence is governed by the
// liveness of the field, not by the selector.
type selectedValues struct {
	values   docvalues.SortedNumericValues
	selector Selector
}

func (s *selectedValues) Get(index int64) (int64, error) {
	docID := int32(index)
	n, err := s.values.ValueCount(docID)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	if s.selector == SelectorMax {
		return s.values.ValueAt(docID, n-1)
	}
	return s.values.ValueAt(docID, 0)
}
