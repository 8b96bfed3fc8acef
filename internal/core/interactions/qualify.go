package interactions

import "Selah/internal/core/content"

// View qualification thresholds. Policy, not mechanism: an event below the
// threshold is accepted but produces no side effects.
const (
	audiovisualMinDurationMs  = 3000
	audiovisualMinProgressPct = 25
	textMinDurationMs         = 5000
)

// Qualifies reports whether an engagement event crosses the content kind's
// threshold and is eligible to be counted as a view.
func Qualifies(policy content.ViewPolicy, e Engagement) bool {
	switch policy {
	case content.ViewPolicyText:
		return e.DurationMs >= textMinDurationMs
	default:
		return e.IsComplete ||
			e.DurationMs >= audiovisualMinDurationMs ||
			e.ProgressPct >= audiovisualMinProgressPct
	}
}
