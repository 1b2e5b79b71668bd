/*
Package dag builds the per-sentence directed acyclic graph of candidate
words described in spec.md §4.2: for every byte offset that begins a
character, the set of end offsets reachable as a dictionary entry.

The graph is stored as a "static sparse DAG" — one contiguous buffer of
end-offsets, with a start index per from-offset and each offset's edge
list terminated by a 0 sentinel. 0 is safe as a terminator because every
real end offset is strictly greater than its start offset, and the
smallest possible start offset is 0.
*/
package dag

import "github.com/bastiangx/fenci/pkg/dict"

// DAG is the built graph over one sentence (or CJK block). Offsets are
// byte offsets into that sentence.
type DAG struct {
	buffer  []int
	starts  map[int]int
	Offsets []int // character-start byte offsets, ascending
	End     int   // len(sentence)
}

// Edges returns the end offsets reachable from the character starting at
// byte offset i, in increasing order. The returned slice aliases internal
// storage; callers must not modify it.
func (g *DAG) Edges(i int) []int {
	start, ok := g.starts[i]
	if !ok {
		return nil
	}
	end := start
	for g.buffer[end] != 0 {
		end++
	}
	return g.buffer[start:end]
}

// Build constructs a DAG over sentence using d for common-prefix lookup.
// sentence is assumed to already be a CJK-only block (or at least a
// block with no embedded NUL bytes); byte offset 0 is always a valid
// from-offset if sentence is non-empty.
func Build(sentence string, d *dict.Dict) *DAG {
	g := &DAG{starts: make(map[int]int)}
	if sentence == "" {
		return g
	}

	// Pre-size the scratch buffer proportionally to the input, capped to
	// avoid pathological allocation on adversarial input (spec.md §5).
	const maxScratch = 1_000_000
	hint := len(sentence) * 2
	if hint > maxScratch {
		hint = maxScratch
	}
	g.buffer = make([]int, 0, hint)
	g.End = len(sentence)

	runeBounds := characterBoundaries(sentence)
	g.Offsets = runeBounds[:len(runeBounds)-1]
	for idx, i := range runeBounds {
		if i == len(sentence) {
			break
		}
		g.starts[i] = len(g.buffer)

		matches := d.CommonPrefixes(sentence[i:])
		added := false
		for _, m := range matches {
			if d.Record(m.WordID).Freq <= 0 {
				continue
			}
			g.buffer = append(g.buffer, i+m.ByteLength)
			added = true
		}
		if !added {
			next := len(sentence)
			if idx+1 < len(runeBounds) {
				next = runeBounds[idx+1]
			}
			g.buffer = append(g.buffer, next)
		}
		g.buffer = append(g.buffer, 0)
	}
	return g
}

// characterBoundaries returns every byte offset at which a UTF-8
// character starts, plus a final sentinel equal to len(s).
func characterBoundaries(s string) []int {
	bounds := make([]int, 0, len(s)+1)
	for i := range s {
		bounds = append(bounds, i)
	}
	bounds = append(bounds, len(s))
	return bounds
}
