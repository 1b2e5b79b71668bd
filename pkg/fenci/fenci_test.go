package fenci

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewCutsWithEmbeddedDictionary(t *testing.T) {
	s := New()
	got := s.Cut("我们中出了一个叛徒", true)
	want := []string{"我们", "中出", "了", "一个", "叛徒"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEmptySegmenterSplitsEveryCharacter(t *testing.T) {
	s := Empty()
	got := s.Cut("中出", false)
	want := []string{"中", "出"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAddWordThenCutUsesNewWord(t *testing.T) {
	s := New()
	s.AddWord("中出", 10000, "")
	got := s.Cut("我们中出了一个叛徒", false)
	want := []string{"我们", "中出", "了", "一个", "叛徒"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadDictAddsWords(t *testing.T) {
	s := Empty()
	if err := s.LoadDict(strings.NewReader("网球 100 n\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := s.Cut("网球", false)
	if !reflect.DeepEqual(got, []string{"网球"}) {
		t.Fatalf("got %v, want [网球]", got)
	}
}

func TestTokenizeAndTagRoundTrip(t *testing.T) {
	s := New()
	toks := s.Tokenize("南京市长江大桥", ModeDefault, false)
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %v", toks)
	}
	tags := s.Tag("网球拍卖会", false)
	if len(tags) == 0 {
		t.Fatal("expected at least one tagged word")
	}
}
