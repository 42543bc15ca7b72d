package stats

import (
	"testing"

	"github.com/sikaai/sikaai/internal/domain"
)

func TestTierForStreak(t *testing.T) {
	tests := []struct {
		days  int
		emoji string
		color string
	}{
		{-1, "❄️", "gray"},
		{0, "❄️", "gray"},
		{1, "🌱", "orange"},
		{2, "🌱", "orange"},
		{3, "🔥", "red"},
		{6, "🔥", "red"},
		{7, "⚡", "yellow"},
		{13, "⚡", "yellow"},
		{14, "🚀", "blue"},
		{29, "🚀", "blue"},
		{30, "👑", "purple"},
		{365, "👑", "purple"},
	}

	for _, tt := range tests {
		tier := TierForStreak(tt.days)
		if tier.Emoji != tt.emoji || tier.Color != tt.color {
			t.Errorf("TierForStreak(%d) = {%s %s}; want {%s %s}",
				tt.days, tier.Emoji, tier.Color, tt.emoji, tt.color)
		}
	}
}

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{5, -1, 0},
		{2, 5, 40},
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
		{7, 5, 140},
	}

	for _, tt := range tests {
		if got := CompletionPercent(tt.completed, tt.total); got != tt.want {
			t.Errorf("CompletionPercent(%d, %d) = %d; want %d", tt.completed, tt.total, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	progress := &domain.Progress{
		TotalCompleted: 12,
		AverageScore:   87.5,
		Streak: domain.Streak{
			CurrentStreak: 8,
			LongestStreak: 15,
		},
	}

	s := Summarize(progress)
	if s.TotalCompleted != 12 || s.AverageScore != 87.5 {
		t.Errorf("Summarize() totals = %+v", s)
	}
	if s.CurrentStreak != 8 || s.LongestStreak != 15 {
		t.Errorf("Summarize() streaks = %+v", s)
	}
	if s.StreakTier.Emoji != "⚡" {
		t.Errorf("StreakTier for 8 days = %s; want ⚡", s.StreakTier.Emoji)
	}
}

func TestSummarize_NilProgress(t *testing.T) {
	s := Summarize(nil)
	if s.TotalCompleted != 0 || s.AverageScore != 0 || s.CurrentStreak != 0 {
		t.Errorf("Summarize(nil) = %+v; want zero values", s)
	}
	if s.StreakTier.Emoji != "❄️" {
		t.Errorf("Summarize(nil) tier = %s; want ❄️", s.StreakTier.Emoji)
	}
}

func TestBadgeColor(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"First Steps", "blue"},
		{"Streak Master", "red"},
		{"Perfect Score", "yellow"},
		{"Vocabulary Champion", "purple"},
		{"Dedication", "pink"},
		{"Unknown Badge", "gray"},
		{"", "gray"},
	}

	for _, tt := range tests {
		if got := BadgeColor(tt.name); got != tt.want {
			t.Errorf("BadgeColor(%q) = %q; want %q", tt.name, got, tt.want)
		}
	}
}
