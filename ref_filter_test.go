package lexicon

import (
	"reflect"
	"testing"

	"github.com/RoaringBitmap/roaring"
)

func TestRefFilter_Basic(t *testing.T) {
	tests := []struct {
		name     string
		refs     []uint32
		testRef  uint32
		eligible bool
	}{
		{
			name:     "Empty filter - all eligible",
			refs:     []uint32{},
			testRef:  100,
			eligible: true,
		},
		{
			name:     "Ref in filter",
			refs:     []uint32{1, 2, 3, 4, 5},
			testRef:  3,
			eligible: true,
		},
		{
			name:     "Ref not in filter",
			refs:     []uint32{1, 2, 3, 4, 5},
			testRef:  10,
			eligible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := NewRefFilter(tt.refs)
			defer ReturnRefFilter(filter)

			if filter.IsEligible(tt.testRef) != tt.eligible {
				t.Errorf("IsEligible(%d) = %v, want %v", tt.testRef, !tt.eligible, tt.eligible)
			}

			if filter.ShouldSkip(tt.testRef) == tt.eligible {
				t.Errorf("ShouldSkip(%d) = %v, want %v", tt.testRef, tt.eligible, !tt.eligible)
			}
		})
	}
}

func TestRefFilter_Count(t *testing.T) {
	var nilFilter *RefFilter
	if nilFilter.Count() != 0 {
		t.Errorf("nil Count() = %d, want 0", nilFilter.Count())
	}

	filter := NewRefFilter([]uint32{4, 4, 8})
	defer ReturnRefFilter(filter)
	if filter.Count() != 2 {
		t.Errorf("Count() = %d, want 2", filter.Count())
	}
}

func TestRefFilter_PoolReuse(t *testing.T) {
	first := NewRefFilter([]uint32{1, 2})
	ReturnRefFilter(first)

	second := NewRefFilter([]uint32{3})
	defer ReturnRefFilter(second)

	if second.IsEligible(1) || !second.IsEligible(3) {
		t.Error("pooled filter kept refs from a previous use")
	}
}

func TestRefFilter_FromBitmap(t *testing.T) {
	if NewRefFilterFromBitmap(nil) != nil {
		t.Error("NewRefFilterFromBitmap(nil) should be nil")
	}
	if NewRefFilterFromBitmap(roaring.New()) != nil {
		t.Error("NewRefFilterFromBitmap(empty) should be nil")
	}

	s := NewTokenStore()
	s.Add("cat", Posting{Ref: 1, TF: 1})
	s.Add("car", Posting{Ref: 2, TF: 1})
	s.Add("dog", Posting{Ref: 2, TF: 1})
	s.Add("dog", Posting{Ref: 3, TF: 1})

	// documents matching "ca*" restricted to the "dog" postings
	bm := s.ExpandRefs("ca")
	filter := NewRefFilterFromBitmap(bm)
	defer ReturnRefFilter(filter)

	bm.Add(3)
	if filter.IsEligible(3) {
		t.Error("filter shares memory with the source bitmap")
	}

	got := s.GetFiltered("dog", filter)
	if len(got) != 1 || got[0].Ref != 2 {
		t.Errorf("GetFiltered(dog) = %v, want [{2 1}]", got)
	}
}

func TestRefFilter_Filter(t *testing.T) {
	pl := PostingList{{Ref: 5, TF: 1}, {Ref: 2, TF: 2}, {Ref: 5, TF: 3}, {Ref: 9, TF: 4}}

	filter := NewRefFilter([]uint32{5, 9})
	defer ReturnRefFilter(filter)

	want := PostingList{{Ref: 5, TF: 1}, {Ref: 5, TF: 3}, {Ref: 9, TF: 4}}
	got := filter.Filter(pl)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}

	got[0].TF = 99
	if pl[0].TF != 1 {
		t.Error("Filter() result aliases its input")
	}

	var nilFilter *RefFilter
	if got := nilFilter.Filter(pl); !reflect.DeepEqual(got, pl) {
		t.Errorf("nil Filter() = %v, want %v", got, pl)
	}
	if got := filter.Filter(nil); len(got) != 0 {
		t.Errorf("Filter(nil) = %v, want empty", got)
	}
}

func TestRefFilter_Intersect(t *testing.T) {
	bm := roaring.BitmapOf(1, 2, 3, 4)

	filter := NewRefFilter([]uint32{2, 4, 6})
	defer ReturnRefFilter(filter)

	if got, want := filter.Intersect(bm).ToArray(), []uint32{2, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("Intersect() = %v, want %v", got, want)
	}
	if bm.GetCardinality() != 4 {
		t.Error("Intersect() modified its argument")
	}

	var nilFilter *RefFilter
	clone := nilFilter.Intersect(bm)
	clone.Add(100)
	if bm.Contains(100) {
		t.Error("nil Intersect() returned the input instead of a copy")
	}
}
