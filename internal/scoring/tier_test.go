package scoring

import (
	"testing"

	"github.com/emberprep/qlint/internal/types"
)

func TestGetTierInfo(t *testing.T) {
	tests := []struct {
		tier       string
		wantLabel  string
		wantFlames int
	}{
		{TierDraft, "Draft", 1},
		{TierConfident, "Confident", 2},
		{TierVerified, "Verified", 3},
		{"unknown", "Draft", 1},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			info := GetTierInfo(tt.tier)
			if info.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", info.Label, tt.wantLabel)
			}
			if info.Flames != tt.wantFlames {
				t.Errorf("Flames = %d, want %d", info.Flames, tt.wantFlames)
			}
			if info.Color == "" || info.Description == "" {
				t.Error("Color and Description should be set")
			}
		})
	}
}

func TestFormatScoreBreakdown(t *testing.T) {
	entries := FormatScoreBreakdown(types.ScoreBreakdown{
		CurriculumAlignment: 40,
		ExpertVerification:  25,
		CommunityFeedback:   10,
	})

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	wants := []struct {
		component  string
		score      float64
		maxScore   float64
		percentage int
	}{
		{"Curriculum alignment", 40, 40, 100},
		{"Expert verification", 25, 40, 63},
		{"Community feedback", 10, 20, 50},
	}
	for i, want := range wants {
		e := entries[i]
		if e.Component != want.component || e.Score != want.score || e.MaxScore != want.maxScore || e.Percentage != want.percentage {
			t.Errorf("entry %d = %+v, want %+v", i, e, want)
		}
	}
}
