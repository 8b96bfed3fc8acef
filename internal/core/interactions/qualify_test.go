package interactions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Selah/internal/core/content"
)

func TestQualifies_Audiovisual(t *testing.T) {
	tests := []struct {
		name string
		e    Engagement
		want bool
	}{
		{"below all thresholds", Engagement{DurationMs: 2999, ProgressPct: 24.9}, false},
		{"duration at threshold", Engagement{DurationMs: 3000}, true},
		{"progress at threshold", Engagement{ProgressPct: 25}, true},
		{"complete flag alone", Engagement{IsComplete: true}, true},
		{"zero engagement", Engagement{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Qualifies(content.ViewPolicyAudiovisual, tc.e))
		})
	}
}

func TestQualifies_Text(t *testing.T) {
	tests := []struct {
		name string
		e    Engagement
		want bool
	}{
		{"below threshold", Engagement{DurationMs: 4999}, false},
		{"at threshold", Engagement{DurationMs: 5000}, true},
		// Text content has no progress or completion shortcut; only dwell
		// time counts.
		{"progress alone does not qualify", Engagement{ProgressPct: 100}, false},
		{"complete alone does not qualify", Engagement{IsComplete: true}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Qualifies(content.ViewPolicyText, tc.e))
		})
	}
}
