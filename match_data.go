package lexicon

import "sort"

// PositionKey is the metadata key holding token positions.
const PositionKey = "position"

// Metadata is the per-field match information for one term, keyed by kind
// (for example PositionKey). Every value is an ordered list.
type Metadata map[string][]int

// clone returns a deep copy of m.
func (m Metadata) clone() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = append([]int(nil), v...)
	}
	return out
}

// Positions returns the position list of m.
func (m Metadata) Positions() []int {
	return m[PositionKey]
}

// MatchData merges independent per-term match records of one document into
// a single structure keyed by term, then by field.
//
// Combining a record for a (term, field) pair already present appends its
// lists after the existing ones, so earlier records stay first. A new pair is
// inserted as given.
//
// Example:
//
//	md := NewMatchData()
//	md.Combine("baz", "body", Metadata{PositionKey: {3}})
//	md.Combine("baz", "body", Metadata{PositionKey: {4}})
//	md.Get("baz", "body").Positions() // [3 4]
type MatchData struct {
	// term -> field -> metadata
	Metadata map[string]map[string]Metadata
}

// NewMatchData creates an empty MatchData.
func NewMatchData() *MatchData {
	return &MatchData{Metadata: make(map[string]map[string]Metadata)}
}

// Combine merges one match record into md.
func (md *MatchData) Combine(term, field string, meta Metadata) {
	fields, ok := md.Metadata[term]
	if !ok {
		fields = make(map[string]Metadata)
		md.Metadata[term] = fields
	}

	existing, ok := fields[field]
	if !ok {
		fields[field] = meta.clone()
		return
	}
	for key, values := range meta {
		existing[key] = append(existing[key], values...)
	}
}

// CombinePositions is shorthand for Combine with a position-only record.
func (md *MatchData) CombinePositions(term, field string, positions ...int) {
	md.Combine(term, field, Metadata{PositionKey: positions})
}

// Merge combines every record of other into md. Terms and fields of other
// are visited in sorted order so the result is deterministic.
func (md *MatchData) Merge(other *MatchData) {
	if other == nil {
		return
	}
	for _, term := range other.Terms() {
		fields := other.Metadata[term]
		names := make([]string, 0, len(fields))
		for f := range fields {
			names = append(names, f)
		}
		sort.Strings(names)
		for _, f := range names {
			md.Combine(term, f, fields[f])
		}
	}
}

// Get returns the metadata for a (term, field) pair, or nil.
func (md *MatchData) Get(term, field string) Metadata {
	return md.Metadata[term][field]
}

// Terms returns the matched terms in sorted order.
func (md *MatchData) Terms() []string {
	terms := make([]string, 0, len(md.Metadata))
	for t := range md.Metadata {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}
