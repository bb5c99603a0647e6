package closet

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"categories", KindCategory, true},
		{"outfits", KindOutfit, true},
		{"category", "", false},
		{"outfit", "", false},
		{"", "", false},
		{"Categories", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseKind(%q) = (%q, %t), want (%q, %t)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
