package lexicon

// Posting records that a document contains a token.
type Posting struct {
	Ref uint32 // Document reference, opaque to the store
	TF  int    // Term frequency of the token within the document
}

// PostingList is the ordered sequence of postings for one exact token.
// Order is insertion order and duplicate refs are kept.
type PostingList []Posting

// Refs returns the document references of the list in order.
func (pl PostingList) Refs() []uint32 {
	refs := make([]uint32, len(pl))
	for i, p := range pl {
		refs[i] = p.Ref
	}
	return refs
}

// Flatten returns the interleaved form [ref, tf, ref, tf, ...] used by
// snapshots.
func (pl PostingList) Flatten() []int {
	flat := make([]int, 0, len(pl)*2)
	for _, p := range pl {
		flat = append(flat, int(p.Ref), p.TF)
	}
	return flat
}

// indexOf returns the position of the first posting for ref, or -1.
func (pl PostingList) indexOf(ref uint32) int {
	for i, p := range pl {
		if p.Ref == ref {
			return i
		}
	}
	return -1
}

// UnflattenPostings converts the interleaved form back into a PostingList.
// A trailing unpaired element is ignored.
func UnflattenPostings(flat []int) PostingList {
	pl := make(PostingList, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		pl = append(pl, Posting{Ref: uint32(flat[i]), TF: flat[i+1]})
	}
	return pl
}
