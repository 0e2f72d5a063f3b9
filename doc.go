/*
Package lexicon provides the token store at the heart of a full-text search
index: a reverse index from tokens to the documents that contain them.

Lexicon pairs a trie over token characters, used for prefix discovery, with a
flat map from each exact token to its posting list of (document reference,
term frequency) pairs. It supports exact lookup, prefix expansion for
wildcard queries, removal, trie compaction and snapshot persistence.

# Quick Start

Build a store, compact it once, then query:

	package main

	import (
	    "fmt"

	    "github.com/wizenheimer/lexicon"
	)

	func main() {
	    store := lexicon.NewTokenStore()

	    store.Add("cat", lexicon.Posting{Ref: 1, TF: 2})
	    store.Add("car", lexicon.Posting{Ref: 2, TF: 1})
	    store.Add("dog", lexicon.Posting{Ref: 1, TF: 1})

	    store.Compress()

	    fmt.Println(store.Expand("ca"))      // [car cat]
	    fmt.Println(store.Get("cat"))        // [{1 2}]
	    fmt.Println(store.ExpandRefs("ca"))  // {1,2}
	}

# Lifecycle

A store goes through a build phase (Add, AddDocument), an optional single
Compress, and a query phase (Has, Get, Count, Expand). Remove may be called
during the query phase. Compress must never be interleaved with further Add
or Remove calls.

# Tokenization

The store never interprets tokens. AddDocument accepts any Tokenizer;
DefaultTokenizer applies NFKC normalization, lowercasing and UAX#29 word
segmentation.

# Persistence

ToSnapshot and FromSnapshot convert a store to and from a plain structure:

	{
	  "root":   {"ca": {"t": {}, "r": {}}, "dog": {}},
	  "tokens": {"cat": [1, 2], "car": [2, 1], "dog": [1, 1]},
	  "length": 3
	}

WriteTo and ReadFrom wrap the JSON encoding in a small binary envelope, and
SaveFile and LoadFile store that envelope gzip compressed on disk:

	cfg := lexicon.DefaultStorageConfig("/var/lib/search/tokens.lx")
	cfg.CompressOnSave = true
	if err := lexicon.SaveFile(store, cfg); err != nil {
	    log.Fatal(err)
	}

	restored, err := lexicon.LoadFile(cfg)

Snapshots are trusted input. Only the envelope is checked; the trie and
posting arrays are loaded without validation.

# Match Data

MatchData is a small collaborator used by query execution to merge the
per-term matches of one document into a term -> field -> metadata structure,
concatenating position lists when the same term and field match twice.

# Thread Safety

TokenStore performs no locking. Callers sharing a store between goroutines
must serialize access themselves, for example with a sync.RWMutex guarding
mutation against queries.
*/
package lexicon
