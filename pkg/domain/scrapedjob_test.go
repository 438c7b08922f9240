package domain

import "testing"

func TestTierForBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  MatchTier
	}{
		{100, TierExcellent},
		{85, TierExcellent},
		{84, TierHighFit},
		{75, TierHighFit},
		{74, TierMedium},
		{65, TierMedium},
		{64, TierLowFit},
		{40, TierLowFit},
		{39, TierNoFit},
		{0, TierNoFit},
	}
	for _, tc := range tests {
		if got := TierFor(tc.score); got != tc.want {
			t.Errorf("TierFor(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestSkillsDecode(t *testing.T) {
	j := ScrapedJob{MatchedSkills: `["python","selenium","aws"]`}
	skills := j.Skills()
	if len(skills) != 3 {
		t.Fatalf("got %d skills, want 3", len(skills))
	}
	if skills[1] != "selenium" {
		t.Errorf("skills[1] = %q, want %q", skills[1], "selenium")
	}
}

func TestSkillsMalformedDegradesToNil(t *testing.T) {
	tests := []string{"not json", "{", `{"a":1}`, "42"}
	for _, raw := range tests {
		j := ScrapedJob{MatchedSkills: raw}
		if got := j.Skills(); got != nil {
			t.Errorf("Skills() with raw %q = %v, want nil", raw, got)
		}
	}
}

func TestSkillsEmpty(t *testing.T) {
	j := ScrapedJob{}
	if got := j.Skills(); got != nil {
		t.Errorf("Skills() on empty field = %v, want nil", got)
	}
}

func TestFlagsDecode(t *testing.T) {
	j := ScrapedJob{RedFlags: `["consultancy"]`}
	flags := j.Flags()
	if len(flags) != 1 || flags[0] != "consultancy" {
		t.Errorf("Flags() = %v, want [consultancy]", flags)
	}
}
