/*
Package segment is the segmenter orchestrator of spec.md §4.5: it
regex-partitions an input string into CJK and non-CJK blocks, drives the
dag/route/hmm pipeline over each CJK block, and exposes the three
segmentation modes (cut_all, cut_dag_no_hmm, cut_dag_hmm) plus
cut_for_search and suggest_freq.
*/
package segment

import (
	"regexp"
	"unicode/utf8"

	"github.com/bastiangx/fenci/internal/utils"
	"github.com/bastiangx/fenci/pkg/dag"
	"github.com/bastiangx/fenci/pkg/dict"
	"github.com/bastiangx/fenci/pkg/hmm"
	"github.com/bastiangx/fenci/pkg/route"
)

var (
	reHanDefault  = regexp.MustCompile(`[\p{Han}a-zA-Z0-9+#&._%-]+`)
	reSkipDefault = regexp.MustCompile(`(?:\r\n|\s)+`)
	reHanCutAll   = regexp.MustCompile(`\p{Han}+`)
	reSkipCutAll  = regexp.MustCompile(`[^a-zA-Z0-9+#\n]+`)
)

// Piece is one emitted token with its byte-offset span in the original
// input string.
type Piece struct {
	Text      string
	ByteStart int
	ByteEnd   int
}

type block struct {
	text    string
	start   int
	matched bool
}

// splitBlocks scans s for re's matches, returning alternating matched and
// unmatched segments in input order.
func splitBlocks(s string, re *regexp.Regexp) []block {
	idx := re.FindAllStringIndex(s, -1)
	if len(idx) == 0 {
		if s == "" {
			return nil
		}
		return []block{{text: s, start: 0, matched: false}}
	}
	var blocks []block
	pos := 0
	for _, m := range idx {
		if m[0] > pos {
			blocks = append(blocks, block{text: s[pos:m[0]], start: pos, matched: false})
		}
		blocks = append(blocks, block{text: s[m[0]:m[1]], start: m[0], matched: true})
		pos = m[1]
	}
	if pos < len(s) {
		blocks = append(blocks, block{text: s[pos:], start: pos, matched: false})
	}
	return blocks
}

// CutAll implements the cut_all mode.
func CutAll(sentence string, d *dict.Dict) []string {
	return texts(cutAllPieces(sentence, d))
}

// Cut implements cut_dag_no_hmm (useHMM=false) and cut_dag_hmm
// (useHMM=true).
func Cut(sentence string, d *dict.Dict, useHMM bool, model *hmm.Model) []string {
	return texts(CutPieces(sentence, d, useHMM, model))
}

// CutForSearch implements cut_for_search: run Cut, then for every word of
// ≥3 characters also emit its 2-character sub-grams that are dictionary
// words, and for ≥4 characters also its 3-character sub-grams; the
// parent word is always emitted last.
func CutForSearch(sentence string, d *dict.Dict, useHMM bool, model *hmm.Model) []string {
	return texts(SearchPieces(sentence, d, useHMM, model))
}

// SuggestFreq implements suggest_freq(segment): the minimum frequency
// that would outweigh the probability of segment's current best
// (HMM-disabled) segmentation.
func SuggestFreq(segment string, d *dict.Dict) int {
	tokens := Cut(segment, d, false, nil)
	freqs := make([]int, 0, len(tokens))
	for _, w := range tokens {
		if id, ok := d.Exact(w); ok {
			freqs = append(freqs, d.Record(id).Freq)
		} else {
			freqs = append(freqs, 1)
		}
	}
	current := 0
	if id, ok := d.Exact(segment); ok {
		current = d.Record(id).Freq
	}
	return dict.SuggestFreqFromTokens(freqs, d.Total(), current)
}

func texts(pieces []Piece) []string {
	out := make([]string, len(pieces))
	for i, p := range pieces {
		out[i] = p.Text
	}
	return out
}

// CutPieces is Cut with byte-offset spans preserved, used by the token
// package to report char positions.
func CutPieces(sentence string, d *dict.Dict, useHMM bool, model *hmm.Model) []Piece {
	var out []Piece
	for _, b := range splitBlocks(sentence, reHanDefault) {
		if b.matched {
			out = append(out, cutHanBlock(b.text, b.start, d, useHMM, model)...)
			continue
		}
		for _, sb := range splitBlocks(b.text, reSkipDefault) {
			abs := b.start + sb.start
			if sb.matched {
				out = append(out, Piece{Text: sb.text, ByteStart: abs, ByteEnd: abs + len(sb.text)})
				continue
			}
			pos := abs
			for _, r := range sb.text {
				n := utf8.RuneLen(r)
				out = append(out, Piece{Text: string(r), ByteStart: pos, ByteEnd: pos + n})
				pos += n
			}
		}
	}
	return out
}

// SearchPieces is CutForSearch with byte-offset spans preserved.
func SearchPieces(sentence string, d *dict.Dict, useHMM bool, model *hmm.Model) []Piece {
	var out []Piece
	for _, p := range CutPieces(sentence, d, useHMM, model) {
		runes := []rune(p.Text)
		if len(runes) > 2 {
			out = append(out, subgrams(p, runes, 2, d)...)
			if len(runes) > 3 {
				out = append(out, subgrams(p, runes, 3, d)...)
			}
		}
		out = append(out, p)
	}
	return out
}

// subgrams emits every contiguous n-rune window of p that is itself a
// positive-freq dictionary word, with byte offsets relative to the
// original sentence.
func subgrams(p Piece, runes []rune, n int, d *dict.Dict) []Piece {
	var out []Piece
	// byteOffsets[i] = byte offset (within p.Text) of runes[i].
	byteOffsets := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		byteOffsets[i] = pos
		pos += utf8.RuneLen(r)
	}
	byteOffsets[len(runes)] = pos

	for i := 0; i+n <= len(runes); i++ {
		gram := string(runes[i : i+n])
		if d.HasWord(gram) {
			start := p.ByteStart + byteOffsets[i]
			end := p.ByteStart + byteOffsets[i+n]
			out = append(out, Piece{Text: gram, ByteStart: start, ByteEnd: end})
		}
	}
	return out
}

// cutAllPieces implements cut_all over a full (unpartitioned) sentence.
func cutAllPieces(sentence string, d *dict.Dict) []Piece {
	var out []Piece
	for _, b := range splitBlocks(sentence, reHanCutAll) {
		if b.matched {
			out = append(out, cutAllBlock(b.text, b.start, d)...)
			continue
		}
		for _, sb := range splitBlocks(b.text, reSkipCutAll) {
			abs := b.start + sb.start
			out = append(out, Piece{Text: sb.text, ByteStart: abs, ByteEnd: abs + len(sb.text)})
		}
	}
	return out
}

// cutAllBlock emits every DAG edge ≥1 character wide over a CJK-only
// block, in offset order. A single-edge start is emitted as-is only when
// it lies at or past the end of the last emitted word; otherwise, like a
// start offset that branches into multiple edges, only its ≥2-char edges
// are emitted and a single-character edge is never emitted,
// matching original_source's cut_all_internal (`if j > k`).
func cutAllBlock(text string, blockOffset int, d *dict.Dict) []Piece {
	g := dag.Build(text, d)
	var out []Piece
	oldEnd := -1
	for idx, k := range g.Offsets {
		edges := g.Edges(k)
		if len(edges) == 0 {
			continue
		}
		nextBoundary := g.End
		if idx+1 < len(g.Offsets) {
			nextBoundary = g.Offsets[idx+1]
		}
		if len(edges) == 1 && k >= oldEnd {
			j := edges[0]
			out = append(out, Piece{Text: text[k:j], ByteStart: blockOffset + k, ByteEnd: blockOffset + j})
			oldEnd = j
			continue
		}
		for _, j := range edges {
			if j == nextBoundary {
				continue
			}
			out = append(out, Piece{Text: text[k:j], ByteStart: blockOffset + k, ByteEnd: blockOffset + j})
			oldEnd = j
		}
	}
	return out
}

// cutHanBlock drives the route walk over a CJK-only block, applying the
// ASCII-merge rule (no HMM) or the HMM-buffering rule (with HMM).
func cutHanBlock(text string, blockOffset int, d *dict.Dict, useHMM bool, model *hmm.Model) []Piece {
	if text == "" {
		return nil
	}
	g := dag.Build(text, d)
	r := route.Compute(text, g, d)

	var out []Piece
	if useHMM {
		var buf []byte
		bufStart := -1
		flush := func() {
			if buf == nil {
				return
			}
			s := string(buf)
			runes := []rune(s)
			switch {
			case len(runes) == 1:
				out = append(out, Piece{Text: s, ByteStart: blockOffset + bufStart, ByteEnd: blockOffset + bufStart + len(buf)})
			case !d.HasWord(s):
				pos := bufStart
				for _, w := range model.Cut(runes) {
					out = append(out, Piece{Text: w, ByteStart: blockOffset + pos, ByteEnd: blockOffset + pos + len(w)})
					pos += len(w)
				}
			default:
				pos := bufStart
				for _, rn := range runes {
					w := string(rn)
					out = append(out, Piece{Text: w, ByteStart: blockOffset + pos, ByteEnd: blockOffset + pos + len(w)})
					pos += len(w)
				}
			}
			buf, bufStart = nil, -1
		}

		for i := 0; i < len(text); {
			j := r[i].Next
			piece := text[i:j]
			rn, size := utf8.DecodeRuneInString(piece)
			single := size == len(piece)
			if single && !isASCIIRune(rn) {
				if buf == nil {
					bufStart = i
				}
				buf = append(buf, piece...)
			} else {
				flush()
				out = append(out, Piece{Text: piece, ByteStart: blockOffset + i, ByteEnd: blockOffset + j})
			}
			i = j
		}
		flush()
		return out
	}

	var buf []byte
	bufStart := -1
	flushASCII := func() {
		if buf == nil {
			return
		}
		out = append(out, Piece{Text: string(buf), ByteStart: blockOffset + bufStart, ByteEnd: blockOffset + bufStart + len(buf)})
		buf, bufStart = nil, -1
	}
	for i := 0; i < len(text); {
		j := r[i].Next
		piece := text[i:j]
		rn, size := utf8.DecodeRuneInString(piece)
		if size == len(piece) && utils.IsASCIILetterOrDigit(rn) {
			if buf == nil {
				bufStart = i
			}
			buf = append(buf, piece...)
		} else {
			flushASCII()
			out = append(out, Piece{Text: piece, ByteStart: blockOffset + i, ByteEnd: blockOffset + j})
		}
		i = j
	}
	flushASCII()
	return out
}

func isASCIIRune(r rune) bool { return r < utf8.RuneSelf }
