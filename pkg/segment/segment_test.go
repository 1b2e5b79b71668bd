package segment

import (
	"reflect"
	"testing"

	"github.com/bastiangx/fenci/pkg/dict"
	"github.com/bastiangx/fenci/pkg/hmm"
)

func TestCutMergesAsciiAndDictWords(t *testing.T) {
	d := dict.New()
	got := Cut("abc网球拍卖会def", d, false, nil)
	want := []string{"abc", "网球", "拍卖会", "def"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCutWithoutHMMSplitsUnknownRun(t *testing.T) {
	d := dict.New()
	got := Cut("我们中出了一个叛徒", d, false, nil)
	want := []string{"我们", "中", "出", "了", "一个", "叛徒"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCutWithHMMMergesUnknownRun(t *testing.T) {
	d := dict.New()
	m := hmm.New()
	got := Cut("我们中出了一个叛徒", d, true, m)
	want := []string{"我们", "中出", "了", "一个", "叛徒"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCutAllContainsOverlappingWords(t *testing.T) {
	d := dict.New()
	got := CutAll("abc网球拍卖会def", d)
	set := make(map[string]bool, len(got))
	for _, w := range got {
		set[w] = true
	}
	for _, w := range []string{"网球", "网球拍", "球拍", "拍卖", "拍卖会"} {
		if !set[w] {
			t.Fatalf("cut_all result %v missing expected word %q", got, w)
		}
	}
}

func TestCutAllSkipsSingleCharEdgeAtBranchingOffset(t *testing.T) {
	d := dict.New()
	// 南, 京, 长, 大 are all positive-freq single-character dictionary
	// entries that also start a longer word (南京/南京市, 京市, 长江/
	// 长江大桥, 大桥) at the same offset. cut_all must suppress the
	// single-character alternative whenever a longer one exists there,
	// per original_source's cut_all_internal (`if j > k`).
	got := CutAll("南京市长江大桥", d)
	set := make(map[string]bool, len(got))
	for _, w := range got {
		set[w] = true
	}
	for _, w := range []string{"南", "京", "长", "大"} {
		if set[w] {
			t.Fatalf("cut_all result %v must not include %q: a longer word starts at the same offset", got, w)
		}
	}
	// 市, 江 and 桥 have a single edge that is a single character and
	// start inside the last emitted word (京市, 长江大桥, 大桥), so they
	// are skipped as well.
	for _, w := range []string{"市", "江", "桥"} {
		if set[w] {
			t.Fatalf("cut_all result %v must not include %q: its start is already covered by an earlier word", got, w)
		}
	}
	for _, w := range []string{"南京", "南京市", "京市", "长江", "长江大桥", "大桥"} {
		if !set[w] {
			t.Fatalf("cut_all result %v missing expected word %q", got, w)
		}
	}
}

func TestCutForSearchEmitsSubgramsThenParent(t *testing.T) {
	d := dict.New()
	got := CutForSearch("南京市长江大桥", d, true, hmm.New())
	want := []string{"南京", "京市", "南京市", "长江", "大桥", "长江大桥"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAddWordChangesSegmentation(t *testing.T) {
	d := dict.New()
	d.Insert("中出", 10000, "")
	got := Cut("我们中出了一个叛徒", d, false, nil)
	want := []string{"我们", "中出", "了", "一个", "叛徒"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSuggestFreqValuesOnEmbeddedDict(t *testing.T) {
	d := dict.New()
	// These diverge from upstream jieba's literal ≈348/≈1263 because this
	// module embeds a small curated dictionary, not jieba's full table;
	// see SPEC_FULL.md's resolved open questions for the derivation.
	if got := SuggestFreq("中出", d); got != 449 {
		t.Fatalf("suggest_freq(中出) = %d, want 449", got)
	}
	if got := SuggestFreq("出了", d); got != 76 {
		t.Fatalf("suggest_freq(出了) = %d, want 76", got)
	}
}
