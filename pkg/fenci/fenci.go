/*
Package fenci is the segmenter's public surface: construction, dictionary
loading, and the cut/tokenize/tag/suggest_freq operations of spec.md §6.
It composes pkg/dict, pkg/hmm, pkg/segment, and pkg/token without
exposing any of their internals.
*/
package fenci

import (
	"io"

	"github.com/bastiangx/fenci/pkg/dict"
	"github.com/bastiangx/fenci/pkg/hmm"
	"github.com/bastiangx/fenci/pkg/segment"
	"github.com/bastiangx/fenci/pkg/token"
)

// Mode selects between the default and search tokenization, re-exported
// from pkg/token so callers need only import this package.
type Mode = token.Mode

const (
	ModeDefault = token.ModeDefault
	ModeSearch  = token.ModeSearch
)

// Token and Tagged are re-exported from pkg/token.
type Token = token.Token
type Tagged = token.Tagged

// Segmenter holds a prefix dictionary and its paired HMM model. The zero
// value is not usable; construct with New or Empty.
type Segmenter struct {
	dict *dict.Dict
	hmm  *hmm.Model
}

// New returns a Segmenter preloaded with this module's embedded default
// dictionary and HMM model.
func New() *Segmenter {
	return &Segmenter{dict: dict.New(), hmm: hmm.New()}
}

// Empty returns a Segmenter with no dictionary entries. Every character
// then segments as its own token until words are loaded or added.
func Empty() *Segmenter {
	return &Segmenter{dict: dict.Empty(), hmm: hmm.New()}
}

// LoadDict reads additional dictionary entries from r into the
// Segmenter's existing dictionary, per pkg/dict.Dict.Load's line format.
func (s *Segmenter) LoadDict(r io.Reader) error {
	return s.dict.Load(r)
}

// AddWord inserts or updates a single dictionary entry and returns the
// resulting frequency.
func (s *Segmenter) AddWord(word string, freq int, tag string) int {
	return s.dict.Insert(word, freq, tag)
}

// SuggestFreq returns the minimum frequency segment would need, inserted
// as a single word, to outweigh the probability of its current best
// segmentation (spec.md §4.5).
func (s *Segmenter) SuggestFreq(seg string) int {
	return segment.SuggestFreq(seg, s.dict)
}

// Cut segments sentence into an ordered, non-overlapping sequence of
// words. useHMM enables the Viterbi fallback for out-of-vocabulary runs.
func (s *Segmenter) Cut(sentence string, useHMM bool) []string {
	return segment.Cut(sentence, s.dict, useHMM, s.hmm)
}

// CutAll returns every dictionary-matched word in sentence, including
// overlapping alternatives (spec.md's "all mode").
func (s *Segmenter) CutAll(sentence string) []string {
	return segment.CutAll(sentence, s.dict)
}

// CutForSearch runs Cut, then additionally emits short dictionary
// sub-grams of longer words, suited for search-index tokenization.
func (s *Segmenter) CutForSearch(sentence string, useHMM bool) []string {
	return segment.CutForSearch(sentence, s.dict, useHMM, s.hmm)
}

// Tokenize runs Cut or CutForSearch (per mode) and reports each word's
// Unicode-scalar offset range within sentence.
func (s *Segmenter) Tokenize(sentence string, mode Mode, useHMM bool) []Token {
	return token.Tokenize(sentence, s.dict, mode, useHMM, s.hmm)
}

// Tag runs Cut and resolves each word's part-of-speech tag.
func (s *Segmenter) Tag(sentence string, useHMM bool) []Tagged {
	return token.Tag(sentence, s.dict, useHMM, s.hmm)
}
