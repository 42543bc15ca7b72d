// Package stats contains pure display helpers derived from a Progress
// aggregate. Everything here is stateless and deterministic; absent
// progress defaults to zero-valued display.
package stats

import (
	"math"

	"github.com/sikaai/sikaai/internal/domain"
)

// StreakTier is the display bucket for a consecutive-day streak.
type StreakTier struct {
	Emoji string
	Color string
}

// Streak tiers by day thresholds. Boundaries are inclusive of the lower
// bound: 0, 1-2, 3-6, 7-13, 14-29, 30+.
var streakTiers = []struct {
	below int
	tier  StreakTier
}{
	{1, StreakTier{Emoji: "❄️", Color: "gray"}},
	{3, StreakTier{Emoji: "🌱", Color: "orange"}},
	{7, StreakTier{Emoji: "🔥", Color: "red"}},
	{14, StreakTier{Emoji: "⚡", Color: "yellow"}},
	{30, StreakTier{Emoji: "🚀", Color: "blue"}},
}

var topTier = StreakTier{Emoji: "👑", Color: "purple"}

// TierForStreak buckets a streak day count into its display tier.
func TierForStreak(days int) StreakTier {
	if days < 0 {
		days = 0
	}
	for _, t := range streakTiers {
		if days < t.below {
			return t.tier
		}
	}
	return topTier
}

// CompletionPercent returns completed/total as a rounded percentage.
// A zero or negative denominator yields 0.
func CompletionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// Summary is the zero-safe view of a Progress aggregate.
type Summary struct {
	TotalCompleted int
	AverageScore   float64
	CurrentStreak  int
	LongestStreak  int
	StreakTier     StreakTier
}

// Summarize flattens a possibly-nil Progress into display values.
func Summarize(p *domain.Progress) Summary {
	if p == nil {
		return Summary{StreakTier: TierForStreak(0)}
	}
	return Summary{
		TotalCompleted: p.TotalCompleted,
		AverageScore:   p.AverageScore,
		CurrentStreak:  p.Streak.CurrentStreak,
		LongestStreak:  p.Streak.LongestStreak,
		StreakTier:     TierForStreak(p.Streak.CurrentStreak),
	}
}

// Badge accent colors by badge name, with a neutral default.
var badgeColors = map[string]string{
	"First Steps":         "blue",
	"Streak Master":       "red",
	"Perfect Score":       "yellow",
	"Vocabulary Champion": "purple",
	"Dedication":          "pink",
}

// BadgeColor returns the accent color for a badge name.
func BadgeColor(name string) string {
	if color, ok := badgeColors[name]; ok {
		return color
	}
	return "gray"
}
