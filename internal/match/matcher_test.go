package match

import "testing"

func TestMatch_PrefixClassification(t *testing.T) {
	set, err := NewPrefixSet([]string{"AB"})
	if err != nil {
		t.Fatalf("NewPrefixSet: %v", err)
	}

	prefix, ok := set.Match("ABxyz1111111111111111111111111111")
	if !ok {
		t.Fatalf("expected ABxyz... to match")
	}
	if prefix != "AB" {
		t.Fatalf("expected matched prefix AB, got %q", prefix)
	}

	if _, ok := set.Match("CDxyz1111111111111111111111111111"); ok {
		t.Fatalf("expected CDxyz... not to match")
	}
}

func TestMatch_CaseSensitive(t *testing.T) {
	set, err := NewPrefixSet([]string{"Sol"})
	if err != nil {
		t.Fatalf("NewPrefixSet: %v", err)
	}
	if _, ok := set.Match("Solxxx"); !ok {
		t.Fatalf("expected exact-case prefix to match")
	}
	if _, ok := set.Match("soLxxx"); ok {
		t.Fatalf("matching must be case-sensitive")
	}
}

func TestMatch_EmptySetNeverMatches(t *testing.T) {
	set, err := NewPrefixSet(nil)
	if err != nil {
		t.Fatalf("NewPrefixSet: %v", err)
	}
	for _, addr := range []string{"", "A", "anything at all"} {
		if _, ok := set.Match(addr); ok {
			t.Fatalf("empty set matched %q", addr)
		}
	}
}

func TestMatch_FirstHitWins(t *testing.T) {
	set, err := NewPrefixSet([]string{"A", "AB"})
	if err != nil {
		t.Fatalf("NewPrefixSet: %v", err)
	}
	// both prefixes match; any single hit classifies the address once
	prefix, ok := set.Match("ABC")
	if !ok {
		t.Fatalf("expected a match")
	}
	if prefix != "A" && prefix != "AB" {
		t.Fatalf("unexpected winning prefix %q", prefix)
	}
}

func TestNewPrefixSet_RejectsEmptyPrefix(t *testing.T) {
	if _, err := NewPrefixSet([]string{"AB", ""}); err == nil {
		t.Fatalf("expected error for empty prefix")
	}
	if _, err := NewPrefixSet([]string{"  "}); err == nil {
		t.Fatalf("expected error for blank prefix")
	}
}

func TestNewPrefixSet_DeduplicatesAndTrims(t *testing.T) {
	set, err := NewPrefixSet([]string{" AB ", "AB", "CD"})
	if err != nil {
		t.Fatalf("NewPrefixSet: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("expected 2 distinct prefixes, got %d", set.Len())
	}
}
