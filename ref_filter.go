package lexicon

import (
	"sync"

	"github.com/RoaringBitmap/roaring"
)

// RefFilter narrows posting lists to an allowed set of document refs, for
// example the documents matched by another query term. A nil *RefFilter
// admits everything, so callers can pass it through unconditionally.
type RefFilter struct {
	allowed *roaring.Bitmap
}

// filters recycles RefFilter bitmaps between queries
var filters = sync.Pool{
	New: func() interface{} {
		return &RefFilter{allowed: roaring.New()}
	},
}

// acquireFilter takes a cleared filter from the pool.
func acquireFilter() *RefFilter {
	f := filters.Get().(*RefFilter)
	f.allowed.Clear()
	return f
}

// NewRefFilter creates a filter admitting only refs. An empty list means no
// filtering and yields nil. Release the filter with ReturnRefFilter.
func NewRefFilter(refs []uint32) *RefFilter {
	if len(refs) == 0 {
		return nil
	}
	f := acquireFilter()
	f.allowed.AddMany(refs)
	return f
}

// NewRefFilterFromBitmap creates a filter over a copy of bm, typically the
// result of ExpandRefs or Refs. A nil or empty bitmap yields nil.
func NewRefFilterFromBitmap(bm *roaring.Bitmap) *RefFilter {
	if bm == nil || bm.IsEmpty() {
		return nil
	}
	f := acquireFilter()
	f.allowed.Or(bm)
	return f
}

// ReturnRefFilter hands f back for reuse; f must not be used afterwards.
func ReturnRefFilter(f *RefFilter) {
	if f != nil {
		filters.Put(f)
	}
}

// IsEligible reports whether ref passes f.
func (f *RefFilter) IsEligible(ref uint32) bool {
	return f == nil || f.allowed.Contains(ref)
}

// ShouldSkip is the negation of IsEligible.
func (f *RefFilter) ShouldSkip(ref uint32) bool {
	return !f.IsEligible(ref)
}

// Count returns how many refs f admits, or 0 for a nil filter.
func (f *RefFilter) Count() uint64 {
	if f == nil {
		return 0
	}
	return f.allowed.GetCardinality()
}

// Filter returns the postings of pl whose refs pass f, keeping their order.
// The result never aliases pl.
func (f *RefFilter) Filter(pl PostingList) PostingList {
	out := make(PostingList, 0, len(pl))
	for _, p := range pl {
		if f.IsEligible(p.Ref) {
			out = append(out, p)
		}
	}
	return out
}

// Intersect returns the refs of bm that pass f as a new bitmap. With a nil
// filter it returns a copy of bm.
func (f *RefFilter) Intersect(bm *roaring.Bitmap) *roaring.Bitmap {
	if f == nil {
		return bm.Clone()
	}
	return roaring.And(bm, f.allowed)
}
