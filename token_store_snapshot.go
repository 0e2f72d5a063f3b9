package lexicon

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	jsoniter "github.com/json-iterator/go"
)

// Snapshot format constants
const (
	snapshotMagic   = "LXTS"
	snapshotVersion = uint32(1)
)

var (
	// ErrInvalidMagic is returned by ReadFrom when the stream does not start
	// with a token store snapshot header.
	ErrInvalidMagic = errors.New("invalid snapshot magic number")

	// ErrUnsupportedVersion is returned by ReadFrom for snapshot versions this
	// package cannot decode.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrSnapshotTooLarge is returned by WriteTo when the encoded snapshot
	// does not fit the 32-bit payload size field.
	ErrSnapshotTooLarge = errors.New("snapshot too large")
)

// maxSnapshotPayload is the largest payload the 32-bit size field can hold
var maxSnapshotPayload uint64 = math.MaxUint32

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SnapshotNode is the serialized form of a trie node: edge key -> child.
type SnapshotNode map[string]SnapshotNode

// Snapshot is the persisted form of a TokenStore. It holds everything needed
// to rebuild the store without replaying inserts.
type Snapshot struct {
	Root   SnapshotNode     `json:"root"`
	Tokens map[string][]int `json:"tokens"` // token -> [ref, tf, ref, tf, ...]
	Length int              `json:"length"`
}

// ToSnapshot captures the trie, the token map and the pair counter.
// The snapshot shares no memory with the store.
func (s *TokenStore) ToSnapshot() *Snapshot {
	tokens := make(map[string][]int, len(s.tokens))
	for t, pl := range s.tokens {
		tokens[t] = pl.Flatten()
	}
	return &Snapshot{
		Root:   snapshotTrie(s.root),
		Tokens: tokens,
		Length: s.length,
	}
}

// FromSnapshot rebuilds a TokenStore from a snapshot.
//
// The snapshot is trusted: no check is made that tokens are reachable in the
// trie or that posting arrays are well formed. Malformed input yields a store
// whose query results are unspecified.
func FromSnapshot(snap *Snapshot) *TokenStore {
	s := NewTokenStore()
	if snap == nil {
		return s
	}
	s.root = restoreTrie(snap.Root)
	for t, flat := range snap.Tokens {
		s.tokens[t] = UnflattenPostings(flat)
	}
	s.length = snap.Length
	return s
}

// snapshotTrie converts the trie rooted at root without recursion.
func snapshotTrie(root *trieNode) SnapshotNode {
	type pair struct {
		src *trieNode
		dst SnapshotNode
	}
	out := make(SnapshotNode, len(root.children))
	stack := []pair{{root, out}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for key, child := range p.src.children {
			dst := make(SnapshotNode, len(child.children))
			p.dst[key] = dst
			stack = append(stack, pair{child, dst})
		}
	}
	return out
}

// restoreTrie is the inverse of snapshotTrie.
func restoreTrie(root SnapshotNode) *trieNode {
	type pair struct {
		src SnapshotNode
		dst *trieNode
	}
	out := newTrieNode()
	stack := []pair{{root, out}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for key, child := range p.src {
			dst := newTrieNode()
			p.dst.children[key] = dst
			stack = append(stack, pair{child, dst})
		}
	}
	return out
}

// MarshalJSON encodes the store as its snapshot.
func (s *TokenStore) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToSnapshot())
}

// UnmarshalJSON replaces the store's state with the decoded snapshot.
func (s *TokenStore) UnmarshalJSON(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}
	*s = *FromSnapshot(&snap)
	return nil
}

// WriteTo serializes the store to w.
//
// The serialization format is:
// 1. Magic number (4 bytes) - "LXTS" identifier for validation
// 2. Version (4 bytes) - Format version for backward compatibility
// 3. Payload size (4 bytes)
// 4. Payload - JSON encoded Snapshot
//
// Returns:
//   - int64: Number of bytes written
//   - error: Returns error if encoding or writing fails
func (s *TokenStore) WriteTo(w io.Writer) (int64, error) {
	payload, err := s.MarshalJSON()
	if err != nil {
		return 0, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return writeEnvelope(w, payload)
}

// writeEnvelope writes the header and payload of a snapshot. The size field
// is 32 bits wide, so payloads of 4 GiB or more are rejected before anything
// is written.
func writeEnvelope(w io.Writer, payload []byte) (int64, error) {
	var bytesWritten int64

	if uint64(len(payload)) > maxSnapshotPayload {
		return bytesWritten, fmt.Errorf("%w: %d bytes", ErrSnapshotTooLarge, len(payload))
	}

	if _, err := w.Write([]byte(snapshotMagic)); err != nil {
		return bytesWritten, fmt.Errorf("failed to write magic number: %w", err)
	}
	bytesWritten += 4

	if err := binary.Write(w, binary.LittleEndian, snapshotVersion); err != nil {
		return bytesWritten, fmt.Errorf("failed to write version: %w", err)
	}
	bytesWritten += 4

	if err := binary.Write(w, binary.LittleEndian, uint32(len(payload))); err != nil {
		return bytesWritten, fmt.Errorf("failed to write payload size: %w", err)
	}
	bytesWritten += 4

	n, err := w.Write(payload)
	bytesWritten += int64(n)
	if err != nil {
		return bytesWritten, fmt.Errorf("failed to write payload: %w", err)
	}

	return bytesWritten, nil
}

// ReadFrom replaces the store's state with a snapshot written by WriteTo.
//
// Only the envelope is checked (magic number and version). The snapshot
// itself is loaded as is, see FromSnapshot.
//
// Example:
//
//	file, _ := os.Open("tokens.bin")
//	store := NewTokenStore()
//	store.ReadFrom(file)
//	file.Close()
func (s *TokenStore) ReadFrom(r io.Reader) (int64, error) {
	var bytesRead int64

	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil {
		return bytesRead, fmt.Errorf("failed to read magic number: %w", err)
	}
	bytesRead += 4
	if string(magic) != snapshotMagic {
		return bytesRead, fmt.Errorf("%w: expected %q, got %q", ErrInvalidMagic, snapshotMagic, string(magic))
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return bytesRead, fmt.Errorf("failed to read version: %w", err)
	}
	bytesRead += 4
	if version != snapshotVersion {
		return bytesRead, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return bytesRead, fmt.Errorf("failed to read payload size: %w", err)
	}
	bytesRead += 4

	payload := make([]byte, size)
	n, err := io.ReadFull(r, payload)
	bytesRead += int64(n)
	if err != nil {
		return bytesRead, fmt.Errorf("failed to read payload: %w", err)
	}

	if err := s.UnmarshalJSON(payload); err != nil {
		return bytesRead, err
	}
	return bytesRead, nil
}
