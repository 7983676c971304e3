// Package scoring implements the Ember Score, the 0-100 composite quality
// metric for a question. The score blends three weighted components:
// curriculum alignment (0-40), expert verification (0-40) and community
// feedback (0-20). Publication gating is not this package's concern; the
// score is a signal, callers decide thresholds.
package scoring

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/emberprep/qlint/internal/types"
)

// Quality tiers derived from the score.
const (
	TierDraft     = "draft"     // score < 75
	TierConfident = "confident" // 75 <= score < 90
	TierVerified  = "verified"  // score >= 90
)

// Component caps.
const (
	maxCurriculum = 40.0
	maxExpert     = 40.0
	maxCommunity  = 20.0
)

// Curriculum reference patterns. A full "KS2 English Y5 ..." shorthand or a
// bare "Y6 Maths ..." reference counts as verified alignment; any other
// non-empty reference is acknowledged but unverified.
var (
	keyStageRefRe = regexp.MustCompile(`(?i)^ks\d\s+\S+.*\by\d{1,2}\b`)
	bareYearRefRe = regexp.MustCompile(`(?i)^y\d{1,2}\s+\S+`)
)

// CalculateEmberScore computes the Ember Score for a question. It is a
// total function: absent or malformed signals degrade to their documented
// defaults, and the result is always within [0, 100].
func CalculateEmberScore(in types.ScoringInput) types.ScoreResult {
	breakdown := types.ScoreBreakdown{
		CurriculumAlignment: curriculumAlignment(in.CurriculumReference),
		ExpertVerification:  expertVerification(in.ReviewStatus),
		CommunityFeedback:   communityFeedback(in.HelpfulVotes, in.ErrorReportCount, in.TotalAttempts),
	}

	// The per-component caps already bound the sum at 100; the final clamp
	// is an asserted invariant, not an incidental one.
	score := clamp(breakdown.CurriculumAlignment+breakdown.ExpertVerification+breakdown.CommunityFeedback, 0, 100)

	return types.ScoreResult{
		Score:          score,
		Breakdown:      breakdown,
		Tier:           ScoreTier(score),
		LastCalculated: time.Now().UTC(),
	}
}

// curriculumAlignment is a three-tier discrete score: 0 for no reference,
// 40 for a recognized curriculum shorthand, 20 for anything else.
func curriculumAlignment(ref string) float64 {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0
	}
	if keyStageRefRe.MatchString(ref) || bareYearRefRe.MatchString(ref) {
		return maxCurriculum
	}
	return 20
}

// expertVerification maps review status to a discrete trust score. Unknown
// and absent statuses fall back to the ai_only tier: even unreviewed AI
// content carries baseline confidence, never zero.
func expertVerification(status types.ReviewStatus) float64 {
	switch status {
	case types.ReviewReviewed:
		return maxExpert
	case types.ReviewSpotChecked:
		return 25
	default:
		return 10
	}
}

// communityFeedback starts from a base of 16 ("no negative signal yet") and
// applies, in order: a helpful-vote bonus of 0.5 per vote capped at +4, an
// error-report penalty of 2 per report, and a usage bonus of 0.1 per 100
// attempts capped at +4. A single open error report suppresses the usage
// bonus entirely. The result is clamped to [0, 20].
func communityFeedback(votes, errorReports, attempts int) float64 {
	if votes < 0 {
		votes = 0
	}
	if errorReports < 0 {
		errorReports = 0
	}
	if attempts < 0 {
		attempts = 0
	}

	score := 16.0
	score += math.Min(0.5*float64(votes), 4)
	score -= 2 * float64(errorReports)
	if errorReports == 0 {
		score += math.Min(float64(attempts)/100*0.1, 4)
	}
	return clamp(score, 0, maxCommunity)
}

// ScoreTier buckets a score into a quality tier. The partitions are exactly
// 75 and 90. There is no "unpublishable" tier here: tier and publishability
// are different concerns.
func ScoreTier(score float64) string {
	switch {
	case score >= 90:
		return TierVerified
	case score >= 75:
		return TierConfident
	default:
		return TierDraft
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
