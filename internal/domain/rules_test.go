package domain

import "testing"

func TestRunSpan(t *testing.T) {
	tests := []struct {
		name string
		hand string
		span int
		ok   bool
	}{
		{name: "consecutive", hand: "2H 3H 4H", span: 3, ok: true},
		{name: "gap", hand: "2H 4H", span: 3, ok: true},
		{name: "ace low", hand: "AH 2H", span: 2, ok: true},
		{name: "ace high", hand: "QH KH AH", span: 3, ok: true},
		{name: "duplicate face", hand: "5H 5H", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := RunSpan(MustParseHand(tt.hand))
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && span != tt.span {
				t.Errorf("span = %d, want %d", span, tt.span)
			}
		})
	}
}

func TestSuitAndFaceGroups(t *testing.T) {
	if !SameFace(MustParseHand("7H 7S 7D")) {
		t.Errorf("SameFace false for sevens")
	}
	if !DistinctSuits(MustParseHand("7H 7S 7D")) {
		t.Errorf("DistinctSuits false for three suits")
	}
	if DistinctSuits(MustParseHand("7H 7H")) {
		t.Errorf("DistinctSuits true for duplicate hearts")
	}
	if SameSuit(MustParseHand("2H 3D")) {
		t.Errorf("SameSuit true for mixed suits")
	}
}
