/*
Package dict implements the prefix-indexed frequency dictionary that backs
segmentation: exact lookup, common-prefix enumeration, and the word-id to
(freq, tag) record table described in spec.md §3/§4.1.

The index itself is a radix (Patricia) trie from github.com/tchap/go-patricia,
keyed by word bytes and valued by word_id — an int indexing into a flat
Record slice. Storing an id instead of the record directly means record
reads/writes never touch the trie, and common_prefixes only pays for the
trie traversal, not for copying record data.

	pd := dict.New()
	id, ok := pd.Exact("网球")
	for _, m := range pd.CommonPrefixes("网球拍卖会") {
		...
	}

A freshly constructed Dict (dict.Empty) has no words; every character then
segments as its own token, per spec.md §6.
*/
package dict

import (
	"math"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Record is a dictionary entry: its frequency (0 marks a prefix-only entry,
// per spec.md §3) and its part-of-speech tag.
type Record struct {
	Freq int
	Tag  string
}

// Match is one result of CommonPrefixes: the word_id matched and the byte
// length of the sentence consumed to reach it.
type Match struct {
	WordID     int
	ByteLength int
}

// Dict is the prefix dictionary. The zero value is not usable; construct
// with New or Empty.
type Dict struct {
	trie           *patricia.Trie
	records        []Record
	byWord         map[string]int // word -> word_id, kept alongside the trie for O(1) Exact without a trie round-trip
	total          int
	longestWordLen int
}

// Empty returns a Dict with no entries. Every operation still succeeds:
// Exact always misses and CommonPrefixes always yields nothing, so callers
// that build a DAG over it fall back to single-character words.
func Empty() *Dict {
	return &Dict{
		trie:   patricia.NewTrie(),
		byWord: make(map[string]int),
	}
}

// Total returns the sum of every record's Freq, the denominator used by the
// route optimizer's log-probability calculation.
func (d *Dict) Total() int { return d.total }

// LogTotal returns ln(Total()), or 0 if Total() is 0 so that ln(0) is never
// taken. Over an empty dictionary every DAG edge is synthetic with freq=1,
// so the route package scores each one as ln(1) - 0 = 0.
func (d *Dict) LogTotal() float64 {
	if d.total <= 0 {
		return 0
	}
	return math.Log(float64(d.total))
}

// LongestWordLen is the maximum rune count over every inserted word.
// Informational only (spec.md §3).
func (d *Dict) LongestWordLen() int { return d.longestWordLen }

// NumRecords returns the number of distinct strings (words and prefix-only
// entries) held in the dictionary.
func (d *Dict) NumRecords() int { return len(d.records) }

// Record returns the stored record for a word_id. Callers must only pass
// ids returned by Exact or CommonPrefixes.
func (d *Dict) Record(id int) Record { return d.records[id] }

// Exact reports whether s is itself a dictionary word (freq may be 0 for a
// prefix-only entry — callers that need "is this a real word" should also
// check Record(id).Freq > 0).
func (d *Dict) Exact(s string) (id int, ok bool) {
	id, ok = d.byWord[s]
	return id, ok
}

// HasWord reports whether s is a dictionary word with positive frequency.
func (d *Dict) HasWord(s string) bool {
	id, ok := d.Exact(s)
	return ok && d.records[id].Freq > 0
}

// CommonPrefixes enumerates, shortest to longest, every dictionary entry
// that is a byte-prefix of s (including prefix-only, freq==0 entries).
// Byte boundaries are always character-aligned because every inserted key
// is itself a valid, complete sequence of whole UTF-8 runes.
func (d *Dict) CommonPrefixes(s string) []Match {
	var out []Match
	d.trie.VisitPrefixes(patricia.Prefix(s), func(prefix patricia.Prefix, item patricia.Item) error {
		if item == nil {
			return nil
		}
		out = append(out, Match{WordID: item.(int), ByteLength: len(prefix)})
		return nil
	})
	return out
}

// Insert creates or updates the record for word, returns the resulting
// freq, and ensures every proper character-prefix of word is present
// (inserted with freq=0 if not already a word). total is adjusted by the
// signed delta between the word's previous and new freq — including the
// word's own freq if it is brand new. Matches original_source's Jieba::insert.
func (d *Dict) Insert(word string, freq int, tag string) int {
	runes := []rune(word)

	// Ensure every proper prefix exists (freq 0 unless already present).
	prefixRunes := make([]rune, 0, len(runes))
	for _, r := range runes[:max(0, len(runes)-1)] {
		prefixRunes = append(prefixRunes, r)
		prefix := string(prefixRunes)
		if _, ok := d.byWord[prefix]; !ok {
			d.addRecord(prefix, Record{Freq: 0, Tag: ""})
		}
	}

	if id, ok := d.byWord[word]; ok {
		old := d.records[id].Freq
		d.records[id] = Record{Freq: freq, Tag: tag}
		d.total += freq - old
		if freq > 0 {
			d.trackLongest(len(runes))
		}
		return freq
	}

	d.addRecord(word, Record{Freq: freq, Tag: tag})
	d.total += freq
	if freq > 0 {
		d.trackLongest(len(runes))
	}
	return freq
}

func (d *Dict) addRecord(word string, rec Record) {
	id := len(d.records)
	d.records = append(d.records, rec)
	d.byWord[word] = id
	d.trie.Set(patricia.Prefix(word), id)
}

func (d *Dict) trackLongest(n int) {
	if n > d.longestWordLen {
		d.longestWordLen = n
	}
}
