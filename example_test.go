package docvalues_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hupe1980/docvalues"
	"github.com/hupe1980/docvalues/bits"
	"github.com/hupe1980/docvalues/packed"
	"github.com/hupe1980/docvalues/sorter"
	"github.com/hupe1980/docvalues/store"
)

// Example_packedCodec demonstrates the monotonic block codec round trip.
func Example_packedCodec() {
	var buf bytes.Buffer

	// Write a non-decreasing column through the block codec.
	w := packed.NewWriter(store.NewOutput(&buf), packed.DefaultBlockSize)
	for _, v := range []int64{100, 101, 103, 107} {
		if err := w.Add(v); err != nil {
			log.Fatal(err)
		}
	}
	if err := w.Finish(); err != nil {
		log.Fatal(err)
	}

	// Reopen it as a random-access table.
	r, err := packed.NewReader(store.NewBytesInput(buf.Bytes()), packed.DefaultBlockSize, 4)
	if err != nil {
		log.Fatal(err)
	}

	v, err := r.Get(2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("value at 2: %d\n", v)
	// Output: value at 2: 103
}

// Example_sortedLookup demonstrates term and ordinal lookups on a sorted
// doc-values view.
func Example_sortedLookup() {
	terms := [][]byte{[]byte("apple"), []byte("banana"), []byte("cherry")}
	dict, err := docvalues.BuildBytesDict(terms, packed.DefaultBlockSize)
	if err != nil {
		log.Fatal(err)
	}

	// Doc 0 holds "cherry", doc 1 "apple", doc 2 has no value.
	s := docvalues.NewSorted(docvalues.SliceLongValues{2, 0, -1}, dict, len(terms))

	ord, _ := s.LookupTerm([]byte("banana"))
	fmt.Printf("banana ord: %d\n", ord)

	// Absent keys report the insertion point as -(insertionPoint+1).
	ord, _ = s.LookupTerm([]byte("blueberry"))
	fmt.Printf("blueberry ord: %d\n", ord)

	v, _ := s.Get(0)
	fmt.Printf("doc 0: %s\n", v)
	// Output:
	// banana ord: 1
	// blueberry ord: -3
	// doc 0: cherry
}

// Example_compressedDict demonstrates building a block-compressed term
// dictionary.
func Example_compressedDict() {
	b := docvalues.NewCompressedDictBuilder(docvalues.CompressionLZ4)
	for _, term := range []string{"ant", "bee", "cat", "dog"} {
		if err := b.Add([]byte(term)); err != nil {
			log.Fatal(err)
		}
	}
	dict, err := b.Finish()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("terms: %d\n", dict.Count())
	// Output: terms: 4
}

// exampleSegment is a minimal in-memory segment for the sorter examples.
type exampleSegment struct {
	values []int64
}

func (s *exampleSegment) MaxDoc() int32 { return int32(len(s.values)) }

func (s *exampleSegment) NumericDocValues(field string) (docvalues.LongValues, error) {
	return docvalues.SliceLongValues(s.values), nil
}

func (s *exampleSegment) SortedNumericDocValues(field string) (docvalues.SortedNumericValues, error) {
	return docvalues.SliceSortedNumeric(nil), nil
}

func (s *exampleSegment) DocsWithField(field string) (bits.Bits, error) {
	return bits.MatchAll{Size: len(s.values)}, nil
}

func (s *exampleSegment) LiveDocs() bits.Bits {
	return bits.MatchAll{Size: len(s.values)}
}

// Example_sorter demonstrates computing the permutation a sort order induces
// on a single segment.
func Example_sorter() {
	s := sorter.New([]sorter.SortField{{Field: "timestamp", Type: sorter.TypeLong}})

	docMap, err := s.SortReader(&exampleSegment{values: []int64{30, 10, 20}})
	if err != nil {
		log.Fatal(err)
	}

	for newID := 0; newID < docMap.Len(); newID++ {
		oldID, _ := docMap.NewToOld(int32(newID))
		fmt.Printf("position %d: doc %d\n", newID, oldID)
	}
	// Output:
	// position 0: doc 1
	// position 1: doc 2
	// position 2: doc 0
}
