package database

import "testing"

func TestSplitList(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"Grundqualifikation", []string{"Grundqualifikation"}},
		{"Grundqualifikation|Maschinenbedienung", []string{"Grundqualifikation", "Maschinenbedienung"}},
		{" Grundqualifikation | Nachtwache ", []string{"Grundqualifikation", "Nachtwache"}},
		{"|", nil},
	}

	for _, tc := range cases {
		got := splitList(tc.raw)
		if len(got) != len(tc.want) {
			t.Errorf("splitList(%q): expected %v, got %v", tc.raw, tc.want, got)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("splitList(%q): expected %v, got %v", tc.raw, tc.want, got)
				break
			}
		}
	}
}

func TestJoinListRoundTrip(t *testing.T) {
	skills := []string{"Grundqualifikation", "Nachtwache"}
	if got := splitList(JoinList(skills)); len(got) != 2 || got[0] != skills[0] || got[1] != skills[1] {
		t.Errorf("expected round trip to preserve %v, got %v", skills, got)
	}
}
