package model

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"", StatusNormal, false},
		{"normal", StatusNormal, false},
		{"light_damage", StatusLightDamage, false},
		{"heavy_damage", StatusHeavyDamage, false},
		{"destroyed", StatusDestroyed, false},
		{"random", StatusRandom, false},
		{"totaled", StatusNormal, true},
	}

	for _, tc := range cases {
		got, err := ParseStatus(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q) expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStatus(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStatusString(t *testing.T) {
	if s := StatusHeavyDamage.String(); s != "heavy_damage" {
		t.Errorf("StatusHeavyDamage.String() = %q", s)
	}
	if s := Status(99).String(); s != "Status(99)" {
		t.Errorf("Status(99).String() = %q", s)
	}
}
