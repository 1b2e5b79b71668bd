/*
Package hmm implements the four-state (B, M, E, S) Hidden Markov Model
Viterbi fallback used to segment runs of characters with no dictionary
coverage, per spec.md §4.4. States stand for Begin, Middle, End, and
Single-character word.

The start/transition probabilities are jieba's own trained constants
(reused verbatim, as literal log-probabilities); the emission table is a
small illustrative subset embedded from data/prob_emit.json, sized to
exercise this module's own test dictionary rather than the full
~349k-character upstream table.
*/
package hmm

import (
	"encoding/json"
	_ "embed"
	"fmt"

	"github.com/bastiangx/fenci/internal/logger"
)

var log = logger.New("hmm")

// minFloat stands in for "effectively impossible" in log-probability
// space, matching jieba's own MIN_FLOAT sentinel.
const minFloat = -3.14e100

// States, in a fixed order used for enumeration.
const (
	StateB = "B"
	StateM = "M"
	StateE = "E"
	StateS = "S"
)

var allStates = []string{StateB, StateM, StateE, StateS}

// stateChange lists, for each state, the states that may legally precede
// it (e.g. B is only ever preceded by E or S — a word boundary).
var stateChange = map[string][]string{
	StateB: {StateE, StateS},
	StateM: {StateB, StateM},
	StateE: {StateB, StateM},
	StateS: {StateE, StateS},
}

//go:embed data/prob_emit.json
var embeddedEmitP []byte

// Model is a trained HMM: start probabilities, state-transition
// probabilities, and per-state emission probabilities, all in log space.
type Model struct {
	startP map[string]float64
	transP map[string]map[string]float64
	emitP  map[string]map[string]float64
}

// New returns the model loaded from this package's embedded emission
// table, paired with jieba's own start/transition constants.
func New() *Model {
	emitP := map[string]map[string]float64{}
	if err := json.Unmarshal(embeddedEmitP, &emitP); err != nil {
		panic(fmt.Sprintf("hmm: embedded prob_emit.json failed to parse: %v", err))
	}
	log.Debugf("loaded embedded emission table, %d states", len(emitP))
	return &Model{
		startP: map[string]float64{
			StateB: -0.26268660809250016,
			StateE: minFloat,
			StateM: minFloat,
			StateS: -1.4652633398537678,
		},
		transP: map[string]map[string]float64{
			StateB: {
				StateE: -0.51082562376599,
				StateM: -0.916290731874155,
			},
			StateE: {
				StateB: -0.5897149736854513,
				StateS: -0.8085250474669937,
			},
			StateM: {
				StateE: -0.33344856811948514,
				StateM: -1.2603623820268226,
			},
			StateS: {
				StateB: -0.7211965654669841,
				StateS: -0.6658631448798212,
			},
		},
		emitP: emitP,
	}
}

// NewWithTables builds a Model from caller-supplied probability tables,
// for tests that need to pin exact, hand-verified arithmetic.
func NewWithTables(startP map[string]float64, transP, emitP map[string]map[string]float64) *Model {
	return &Model{startP: startP, transP: transP, emitP: emitP}
}

func (m *Model) emit(state, char string) float64 {
	if p, ok := m.emitP[state][char]; ok {
		return p
	}
	return minFloat
}

type transitionRoute struct {
	from  string
	proba float64
}

// bestPredecessor finds, among the states that may precede nowState, the
// one whose accumulated log-probability at step-1 plus the transition
// log-probability into nowState is highest.
func (m *Model) bestPredecessor(step int, nowState string, proba []map[string]float64) transitionRoute {
	best := transitionRoute{proba: minFloat}
	for _, prev := range stateChange[nowState] {
		p := proba[step-1][prev] + m.transP[prev][nowState]
		if best.from == "" || p > best.proba {
			best = transitionRoute{from: prev, proba: p}
		}
	}
	return best
}

// Viterbi decodes the most likely B/M/E/S state sequence for runes,
// returning one state per rune. A single-rune input is always "S".
func (m *Model) Viterbi(runes []rune) []string {
	if len(runes) == 0 {
		return nil
	}
	if len(runes) == 1 {
		return []string{StateS}
	}

	proba := make([]map[string]float64, len(runes))
	proba[0] = make(map[string]float64, 4)
	fullPath := map[string][]string{
		StateB: {StateB},
		StateM: {StateM},
		StateE: {StateE},
		StateS: {StateS},
	}

	first := string(runes[0])
	for _, s := range allStates {
		proba[0][s] = m.startP[s] + m.emit(s, first)
	}

	for i := 1; i < len(runes); i++ {
		proba[i] = make(map[string]float64, 4)
		partialPath := make(map[string][]string, 4)
		char := string(runes[i])
		for _, s := range allStates {
			route := m.bestPredecessor(i, s, proba)
			proba[i][s] = route.proba + m.emit(s, char)
			partialPath[s] = append(append([]string{}, fullPath[route.from]...), s)
		}
		fullPath = partialPath
	}

	last := len(runes) - 1
	if proba[last][StateE] >= proba[last][StateS] {
		return fullPath[StateE]
	}
	return fullPath[StateS]
}

// SegmentByStates groups runes into words according to a B/M/E/S state
// sequence of the same length, emitting a new word at every E or S.
func SegmentByStates(runes []rune, states []string) []string {
	var words []string
	start := 0
	for i, s := range states {
		if s == StateE || s == StateS {
			words = append(words, string(runes[start:i+1]))
			start = i + 1
		}
	}
	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}
	return words
}

// Cut runs Viterbi over runes and groups the result into words in one
// step, the composition segment uses for its HMM fallback.
func (m *Model) Cut(runes []rune) []string {
	if len(runes) == 0 {
		return nil
	}
	return SegmentByStates(runes, m.Viterbi(runes))
}
