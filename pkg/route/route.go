/*
Package route implements the dynamic-programming route optimizer of
spec.md §4.3: a right-to-left walk over a dag.DAG choosing, at each
offset, the outgoing edge that maximises accumulated log-probability.
*/
package route

import (
	"math"

	"github.com/bastiangx/fenci/pkg/dag"
	"github.com/bastiangx/fenci/pkg/dict"
)

// Entry is one offset's best choice: the next offset to jump to, and the
// accumulated log-probability of the best path from here to the end.
type Entry struct {
	Next    int
	LogProb float64
}

// Compute returns route[i] for every character-start offset i in g, plus
// the terminal entry at g.End (route[g.End] = {g.End, 0.0}).
func Compute(sentence string, g *dag.DAG, d *dict.Dict) map[int]Entry {
	route := make(map[int]Entry, len(g.Offsets)+1)
	route[g.End] = Entry{Next: g.End, LogProb: 0.0}

	logTotal := d.LogTotal()

	for idx := len(g.Offsets) - 1; idx >= 0; idx-- {
		i := g.Offsets[idx]
		best := Entry{LogProb: math.Inf(-1)}
		for _, j := range g.Edges(i) {
			freq := 1
			if id, ok := d.Exact(sentence[i:j]); ok {
				if f := d.Record(id).Freq; f > 0 {
					freq = f
				}
			}
			score := math.Log(float64(freq)) - logTotal + route[j].LogProb
			if score > best.LogProb {
				best = Entry{Next: j, LogProb: score}
			}
		}
		route[i] = best
	}
	return route
}
