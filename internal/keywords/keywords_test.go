package keywords

import (
	"reflect"
	"testing"
)

func TestExtract_RanksByFrequency(t *testing.T) {
	text := "Blockchain startup raises funding. The startup uses blockchain. Blockchain everywhere."
	got := Extract(text, 3, 15)
	if len(got) < 2 {
		t.Fatalf("Extract() = %v, want at least 2 keywords", got)
	}
	if got[0] != "blockchain" {
		t.Errorf("top keyword = %q, want %q", got[0], "blockchain")
	}
	if got[1] != "startup" {
		t.Errorf("second keyword = %q, want %q", got[1], "startup")
	}
}

func TestExtract_TiesBrokenByFirstOccurrence(t *testing.T) {
	got := Extract("alpha beta gamma", 3, 15)
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_RespectsCap(t *testing.T) {
	text := "one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen sixteen"
	for _, max := range []int{1, 3, 5, 15} {
		if got := Extract(text, 3, max); len(got) > max {
			t.Errorf("Extract(max=%d) returned %d keywords", max, len(got))
		}
	}
}

func TestExtract_FiltersNumericShortAndStopwords(t *testing.T) {
	got := Extract("The 2024 AI market and an old market", 3, 15)
	for _, kw := range got {
		switch kw {
		case "2024":
			t.Error("numeric token extracted as keyword")
		case "ai":
			t.Error("token shorter than min length extracted")
		case "the", "and", "an":
			t.Errorf("stopword %q extracted", kw)
		}
	}
}

func TestExtract_Deduplicates(t *testing.T) {
	got := Extract("market markets market", 3, 15)
	want := []string{"market"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v (lemmas deduplicated)", got, want)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	if got := Extract("", 3, 15); len(got) != 0 {
		t.Errorf("Extract(\"\") = %v, want empty", got)
	}
}
