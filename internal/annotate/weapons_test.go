package annotate

import "testing"

func TestDetectWeapon_BasicMatch(t *testing.T) {
	lexicon := NewLexicon("gun")

	got := DetectWeapon("the gun was the only gun", lexicon)
	if got != "gun" {
		t.Errorf("Expected 'gun', got %q", got)
	}
}

func TestDetectWeapon_CaseInsensitive(t *testing.T) {
	lexicon := NewLexicon("Rifle")

	got := DetectWeapon("He carried a RIFLE yesterday", lexicon)
	if got != "rifle" {
		t.Errorf("Expected 'rifle', got %q", got)
	}
}

func TestDetectWeapon_WholeTokenOnly(t *testing.T) {
	lexicon := NewLexicon("gun")

	if got := DetectWeapon("the gunship fired", lexicon); got != "" {
		t.Errorf("Expected no match for substring token, got %q", got)
	}
}

func TestDetectWeapon_FirstInScanOrder(t *testing.T) {
	lexicon := NewLexicon("knife", "gun")

	got := DetectWeapon("a knife and a gun", lexicon)
	if got != "knife" {
		t.Errorf("Expected 'knife' (first in scan order), got %q", got)
	}
}

func TestDetectWeapon_EmptyInputs(t *testing.T) {
	lexicon := NewLexicon("gun")

	if got := DetectWeapon("", lexicon); got != "" {
		t.Errorf("Expected empty string for empty text, got %q", got)
	}
	if got := DetectWeapon("some harmless text", NewLexicon()); got != "" {
		t.Errorf("Expected empty string for empty lexicon, got %q", got)
	}
	if got := DetectWeapon("some harmless text", nil); got != "" {
		t.Errorf("Expected empty string for nil lexicon, got %q", got)
	}
}

func TestDetectWeapon_ReturnsLexiconTerm(t *testing.T) {
	lexicon := NewLexicon("grenade")

	got := DetectWeapon("they found a GRENADE nearby", lexicon)
	if got == "" {
		t.Fatal("Expected a match")
	}
	if !lexicon.Contains(got) {
		t.Errorf("Returned term %q is not in the lexicon", got)
	}
}
