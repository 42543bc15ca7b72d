package main

import (
	"context"
	"fmt"

	"github.com/sikaai/sikaai/internal/domain"
	"github.com/sikaai/sikaai/internal/i18n"
	"github.com/sikaai/sikaai/internal/stats"
)

// cmdProgress shows learning statistics and the streak.
func cmdProgress() error {
	a, err := newApp()
	if err != nil {
		return err
	}

	user := a.store.User()
	if user == nil {
		return domain.ErrNotAuthenticated
	}

	ctx := context.Background()
	progress, err := a.store.FetchProgress(ctx, user.ID)
	if err != nil {
		return reportStoreError(a, err)
	}

	// Completion rate needs the lesson count; a failed lessons fetch just
	// hides that one line.
	totalLessons := 0
	if lessons, err := a.store.FetchLessons(ctx, domain.LevelA1); err == nil {
		totalLessons = len(lessons)
	}

	lang := a.store.Language()
	summary := stats.Summarize(progress)

	fmt.Println(i18n.T("yourStats", lang))
	fmt.Println("========================")
	fmt.Printf("%-22s %d\n", i18n.T("lessonsCompleted", lang), summary.TotalCompleted)
	fmt.Printf("%-22s %.0f%%\n", i18n.T("averageScore", lang), summary.AverageScore)
	fmt.Printf("%-22s %s %d %s\n", i18n.T("currentStreak", lang),
		summary.StreakTier.Emoji, summary.CurrentStreak, i18n.T("dayStreak", lang))
	fmt.Printf("%-22s %d\n", i18n.T("longestStreak", lang), summary.LongestStreak)

	if totalLessons > 0 {
		pct := stats.CompletionPercent(summary.TotalCompleted, totalLessons)
		bar := renderProgressBar(float64(pct)/100, 20)
		fmt.Printf("\n%s %s %d%%\n", i18n.T("overallProgress", lang), bar, pct)
	}

	if len(progress.Lessons) > 0 {
		fmt.Printf("\n%s\n", i18n.T("lessonProgress", lang))
		fmt.Println("------------------------")
		for _, lp := range progress.Lessons {
			mark := " "
			if lp.Completed {
				mark = "✓"
			}
			fmt.Printf("[%s] %-14s %d%%\n", mark, lp.LessonID, lp.Score)
		}
	}
	return nil
}

// cmdProfile shows earned badges.
func cmdProfile() error {
	a, err := newApp()
	if err != nil {
		return err
	}

	user := a.store.User()
	if user == nil {
		return domain.ErrNotAuthenticated
	}

	profile, err := a.store.FetchProfile(context.Background(), user.ID)
	if err != nil {
		return reportStoreError(a, err)
	}

	lang := a.store.Language()
	fmt.Println(i18n.T("achievements", lang))
	fmt.Println("========================")
	if len(profile.Badges) == 0 {
		fmt.Println(i18n.T("noData", lang))
		return nil
	}
	for _, badge := range profile.Badges {
		name := colorize(stats.BadgeColor(badge.Name), badge.Name)
		fmt.Printf("%s %-28s %s\n", badge.Icon, name, badge.Description)
	}
	return nil
}
