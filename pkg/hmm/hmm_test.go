package hmm

import (
	"reflect"
	"testing"
)

func testModel() *Model {
	return New()
}

func TestViterbiSingleRuneIsAlwaysS(t *testing.T) {
	m := testModel()
	got := m.Viterbi([]rune("中"))
	if !reflect.DeepEqual(got, []string{StateS}) {
		t.Fatalf("got %v, want [S]", got)
	}
}

func TestViterbiZhongChuLe(t *testing.T) {
	// Hand-verified against this package's embedded emission table: the
	// buffered run "中出了" decodes to B,E,S — i.e. "中出" then "了".
	m := testModel()
	got := m.Viterbi([]rune("中出了"))
	want := []string{"B", "E", "S"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Viterbi(中出了) = %v, want %v", got, want)
	}
}

func TestCutGroupsStatesIntoWords(t *testing.T) {
	m := testModel()
	got := m.Cut([]rune("中出了"))
	want := []string{"中出", "了"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Cut(中出了) = %v, want %v", got, want)
	}
}

func TestSegmentByStatesTrailingRun(t *testing.T) {
	runes := []rune("abc")
	states := []string{"B", "M", "M"} // no closing E/S
	got := SegmentByStates(runes, states)
	want := []string{"abc"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
