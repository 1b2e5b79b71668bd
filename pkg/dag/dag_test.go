package dag

import (
	"strings"
	"testing"

	"github.com/bastiangx/fenci/pkg/dict"
)

func testDict() *dict.Dict {
	d := dict.Empty()
	d.Insert("网球", 100, "n")
	d.Insert("网球拍", 10, "n")
	d.Insert("球拍", 50, "n")
	return d
}

func TestBuildEmptySentence(t *testing.T) {
	g := Build("", testDict())
	if len(g.Offsets) != 0 {
		t.Fatalf("expected no offsets for an empty sentence, got %v", g.Offsets)
	}
}

func TestBuildSynthesizesSingleCharEdge(t *testing.T) {
	d := dict.Empty()
	g := Build("中", d)
	edges := g.Edges(0)
	if len(edges) != 1 || edges[0] != len("中") {
		t.Fatalf("expected one synthetic edge spanning the whole character, got %v", edges)
	}
}

func TestBuildFindsOverlappingWords(t *testing.T) {
	g := Build("网球拍", testDict())

	edges0 := g.Edges(0)
	if len(edges0) != 2 {
		t.Fatalf("expected 2 edges from offset 0 (网球, 网球拍), got %v", edges0)
	}
	if edges0[0] != len("网球") || edges0[1] != len("网球拍") {
		t.Fatalf("expected edges ordered shortest-to-longest, got %v", edges0)
	}

	ballOffset := len("网")
	edgesBall := g.Edges(ballOffset)
	if len(edgesBall) != 1 || edgesBall[0] != ballOffset+len("球拍") {
		t.Fatalf("expected a single edge spanning 球拍 (球 alone has freq 0) at offset %d, got %v", ballOffset, edgesBall)
	}
}

func TestBuildSkipsZeroFreqPrefixOnlyEntries(t *testing.T) {
	d := dict.Empty()
	d.Insert("网球拍", 10, "n") // inserting this also creates 网, 网球 as freq-0 prefixes
	g := Build("网球", d)
	edges := g.Edges(0)
	if len(edges) != 1 || edges[0] != len("网") {
		t.Fatalf("expected a single synthesized edge for 网 since 网 and 网球 are freq-0 prefix-only entries, got %v", edges)
	}
}

func TestEdgesOnUnknownOffsetIsNil(t *testing.T) {
	g := Build("网球", testDict())
	// An offset that doesn't begin a character (mid-rune byte) was never
	// registered.
	if got := g.Edges(1); got != nil {
		t.Fatalf("expected nil for a non-character-start offset, got %v", got)
	}
}

func TestBuildScratchBufferCapped(t *testing.T) {
	d := dict.Empty()
	d.Insert("一", 1, "m")
	// 300,000 three-byte characters: the uncapped hint would be 1,800,000,
	// while the built graph needs only 600,000 elements (one edge plus a
	// sentinel per character), so the buffer never grows past its pre-size.
	huge := strings.Repeat("一", 300_000)
	g := Build(huge, d)
	if cap(g.buffer) > 1_000_000 {
		t.Fatalf("expected scratch buffer capacity capped at 1,000,000, got %d", cap(g.buffer))
	}
}
