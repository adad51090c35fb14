package docvalues

// SortedNumericValues maps a document id to an ordered multi-set of 64-bit
// integers (a multi-valued numeric column). Sort fields reduce it to a
// single value per document through a selector before comparing.
type SortedNumericValues interface {
	// ValueCount returns the number of values for docID, 0 when absent.
	ValueCount(docID int32) (int, error)

	// ValueAt returns the i-th value for docID, in increasing order.
	ValueAt(docID int32, i int) (int64, error)
}

// SliceSortedNumeric is an in-memory SortedNumericValues; each row must be
// sorted increasing.
type SliceSortedNumeric [][]int64

// ValueCount returns the number of values for docID.
func (s SliceSortedNumeric) ValueCount(docID int32) (int, error) {
	if docID < 0 || int(docID) >= len(s) {
		return 0, ErrOrdOutOfRange
	}
	return len(s[docID]), nil
}

// ValueAt returns the i-th value for docID.
func (s SliceSortedNumeric) ValueAt(docID int32, i int) (int64, error) {
	if docID < 0 || int(docID) >= len(s) || i < 0 || i >= len(s[docID]) {
		return 0, ErrOrdOutOfRange
	}
	return s[docID][i], nil
}
