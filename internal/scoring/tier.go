package scoring

import (
	"math"

	"github.com/emberprep/qlint/internal/types"
)

// TierInfo is pure presentation metadata for a quality tier.
type TierInfo struct {
	Label       string `json:"label"`
	Color       string `json:"color"`
	Flames      int    `json:"flames"`
	Description string `json:"description"`
}

var tierInfos = map[string]TierInfo{
	TierDraft: {
		Label:       "Draft",
		Color:       "slate",
		Flames:      1,
		Description: "Awaiting review or carrying unresolved community reports",
	},
	TierConfident: {
		Label:       "Confident",
		Color:       "amber",
		Flames:      2,
		Description: "Curriculum-aligned with positive review signals",
	},
	TierVerified: {
		Label:       "Verified",
		Color:       "ember",
		Flames:      3,
		Description: "Expert-reviewed, curriculum-aligned and community-trusted",
	},
}

// GetTierInfo returns display metadata for a tier. Unknown tiers get the
// draft presentation.
func GetTierInfo(tier string) TierInfo {
	if info, ok := tierInfos[tier]; ok {
		return info
	}
	return tierInfos[TierDraft]
}

// BreakdownEntry is one component of a score breakdown prepared for display.
type BreakdownEntry struct {
	Component  string  `json:"component"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"maxScore"`
	Percentage int     `json:"percentage"`
}

// FormatScoreBreakdown converts a breakdown into display entries, one per
// component, with the percentage of each component's cap.
func FormatScoreBreakdown(b types.ScoreBreakdown) []BreakdownEntry {
	entries := []BreakdownEntry{
		{Component: "Curriculum alignment", Score: b.CurriculumAlignment, MaxScore: maxCurriculum},
		{Component: "Expert verification", Score: b.ExpertVerification, MaxScore: maxExpert},
		{Component: "Community feedback", Score: b.CommunityFeedback, MaxScore: maxCommunity},
	}
	for i := range entries {
		entries[i].Percentage = int(math.Round(entries[i].Score / entries[i].MaxScore * 100))
	}
	return entries
}
