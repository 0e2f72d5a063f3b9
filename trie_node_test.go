package lexicon

import (
	"reflect"
	"testing"
)

func TestTrieNodeEnsureChild(t *testing.T) {
	n := newTrieNode()

	a := n.ensureChild("a")
	if a == nil {
		t.Fatal("ensureChild() returned nil")
	}
	if n.ensureChild("a") != a {
		t.Error("ensureChild() created a second node for an existing key")
	}
	if n.child("a") != a {
		t.Error("child() did not return the inserted node")
	}
	if n.child("b") != nil {
		t.Error("child() returned a node for a missing key")
	}
}

func TestTrieNodeOnly(t *testing.T) {
	n := newTrieNode()
	if _, _, ok := n.only(); ok {
		t.Error("only() ok for a leaf")
	}

	a := n.ensureChild("a")
	key, c, ok := n.only()
	if !ok || key != "a" || c != a {
		t.Errorf("only() = (%q, %p, %v), want (\"a\", %p, true)", key, c, ok, a)
	}

	n.ensureChild("b")
	if _, _, ok := n.only(); ok {
		t.Error("only() ok with two children")
	}
}

func TestTrieNodeKeysAndSize(t *testing.T) {
	n := newTrieNode()
	n.ensureChild("c").ensureChild("a")
	n.ensureChild("b")

	if got, want := n.keys(), []string{"b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("keys() = %v, want %v", got, want)
	}
	if n.size() != 4 {
		t.Errorf("size() = %d, want 4", n.size())
	}
}
