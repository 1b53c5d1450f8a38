package sentiment

import "testing"

func TestScore_EmptyTextIsNeutral(t *testing.T) {
	if got := Score(""); got != 0.0 {
		t.Errorf("Score(\"\") = %v, want 0.0", got)
	}
}

func TestScore_NoLexiconMatchesIsNeutral(t *testing.T) {
	if got := Score("the quick brown fox jumps over the lazy dog"); got != 0.0 {
		t.Errorf("Score() = %v, want 0.0", got)
	}
}

func TestScore_AllPositive(t *testing.T) {
	if got := Score("great success, excellent and innovative"); got != 1.0 {
		t.Errorf("Score() = %v, want 1.0", got)
	}
}

func TestScore_AllNegative(t *testing.T) {
	if got := Score("terrible disaster, awful crisis"); got != -1.0 {
		t.Errorf("Score() = %v, want -1.0", got)
	}
}

func TestScore_Mixed(t *testing.T) {
	// 2 positive, 1 negative: (2-1)/(2+1)
	got := Score("great success despite the problem")
	want := 1.0 / 3.0
	if got != want {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestScore_AlwaysBounded(t *testing.T) {
	texts := []string{
		"",
		"good",
		"bad",
		"good good good bad",
		"disaster crisis threat risk concern failure problem",
		"success success wonderful amazing brilliant superb",
		"neutral words only here",
	}
	for _, text := range texts {
		got := Score(text)
		if got < -1.0 || got > 1.0 {
			t.Errorf("Score(%q) = %v, out of [-1,1]", text, got)
		}
	}
}

func TestScore_NotLengthNormalized(t *testing.T) {
	short := Score("good")
	long := Score("good plus a lot of completely neutral filler words around it")
	if short != long {
		t.Errorf("score changed with padding: %v vs %v", short, long)
	}
}
