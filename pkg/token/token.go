/*
Package token implements the tokenize and tag operations of spec.md
§4.5: tokenize reports each emitted word alongside its Unicode-scalar
(char) offset range; tag reports each word's part-of-speech tag, falling
back to an ASCII-content classification when the dictionary has none.
*/
package token

import (
	"github.com/bastiangx/fenci/internal/utils"
	"github.com/bastiangx/fenci/pkg/dict"
	"github.com/bastiangx/fenci/pkg/hmm"
	"github.com/bastiangx/fenci/pkg/segment"
)

// Mode selects between the default and search tokenization.
type Mode int

const (
	ModeDefault Mode = iota
	ModeSearch
)

// Token is one word plus its Unicode-scalar offset range within the
// tokenized sentence.
type Token struct {
	Word      string
	CharStart int
	CharEnd   int
}

// Tagged is one word plus its part-of-speech tag.
type Tagged struct {
	Word string
	Tag  string
}

// Tokenize runs cut (or cut_for_search, per mode) over sentence and
// reports each word's char offsets.
func Tokenize(sentence string, d *dict.Dict, mode Mode, useHMM bool, model *hmm.Model) []Token {
	var pieces []segment.Piece
	switch mode {
	case ModeSearch:
		pieces = segment.SearchPieces(sentence, d, useHMM, model)
	default:
		pieces = segment.CutPieces(sentence, d, useHMM, model)
	}

	byteToChar := charOffsets(sentence)
	out := make([]Token, len(pieces))
	for i, p := range pieces {
		out[i] = Token{
			Word:      p.Text,
			CharStart: byteToChar[p.ByteStart],
			CharEnd:   byteToChar[p.ByteEnd],
		}
	}
	return out
}

// Tag runs cut over sentence and resolves each word's tag: the
// dictionary's tag if the word is a positive-freq entry, else an
// ASCII-content classification.
func Tag(sentence string, d *dict.Dict, useHMM bool, model *hmm.Model) []Tagged {
	words := segment.Cut(sentence, d, useHMM, model)
	out := make([]Tagged, len(words))
	for i, w := range words {
		out[i] = Tagged{Word: w, Tag: classify(w, d)}
	}
	return out
}

func classify(word string, d *dict.Dict) string {
	if id, ok := d.Exact(word); ok {
		if rec := d.Record(id); rec.Freq > 0 {
			return rec.Tag
		}
	}
	switch {
	case utils.AllASCIIDigits(word):
		return "m"
	case utils.AllASCIIAlnum(word):
		return "eng"
	default:
		return "x"
	}
}

// charOffsets returns, for every byte offset in s that can begin or end
// a Piece (i.e. every character boundary, plus len(s)), the count of
// runes preceding it.
func charOffsets(s string) map[int]int {
	out := make(map[int]int, len(s)+1)
	n := 0
	for i := range s {
		out[i] = n
		n++
	}
	out[len(s)] = n
	return out
}
