package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/sikaai/sikaai/internal/domain"
	"github.com/sikaai/sikaai/internal/i18n"
)

// cmdLessons lists lesson summaries for a level.
func cmdLessons(args []string) error {
	fs := flag.NewFlagSet("lessons", flag.ContinueOnError)
	level := fs.String("level", "A1", "CEFR level (A1, A2, B1, B2)")
	offline := fs.Bool("offline", false, "read from the local cache")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	parsed, err := domain.ParseLevel(*level)
	if err != nil {
		return err
	}

	var lessons []domain.Lesson
	if *offline {
		lessons, err = a.store.OfflineLessons(parsed)
	} else {
		lessons, err = a.store.FetchLessons(context.Background(), parsed)
	}
	if err != nil {
		return reportStoreError(a, err)
	}

	lang := a.store.Language()
	fmt.Printf("%s (%s)\n", i18n.T("availableLessons", lang), parsed)
	fmt.Println("========================")
	if len(lessons) == 0 {
		fmt.Println(i18n.T("noData", lang))
		return nil
	}
	for _, lesson := range lessons {
		fmt.Printf("%-14s %-30s %3d min  %s\n",
			lesson.ID, lesson.Title, lesson.DurationMinutes, lesson.Description)
	}
	return nil
}

// cmdLesson shows full lesson content and vocabulary.
func cmdLesson(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: sikaai lesson <id>")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	lesson, err := a.store.FetchLessonDetail(context.Background(), args[0])
	if err != nil {
		return reportStoreError(a, err)
	}

	lang := a.store.Language()
	fmt.Printf("%s — %s (%s, %d min)\n", lesson.Title, lesson.Description, lesson.Level, lesson.DurationMinutes)
	fmt.Println()

	if lesson.Content.Introduction != "" {
		fmt.Println(i18n.T("lessonContent", lang))
		fmt.Println("------------------------")
		fmt.Println(lesson.Content.Introduction)
		fmt.Println()
	}

	printContentSection("Letters", lesson.Content.Letters)
	printContentSection("Phrases", lesson.Content.Phrases)
	printContentSection("Pronouns", lesson.Content.Pronouns)
	printContentSection("Objects", lesson.Content.Objects)
	printContentSection("Verbs", lesson.Content.Verbs)

	if len(lesson.Vocabulary) > 0 {
		fmt.Println(i18n.T("vocabulary", lang))
		fmt.Println("------------------------")
		printVocabulary(lesson.Vocabulary)
	}
	return nil
}

// cmdDaily shows today's assigned lesson.
func cmdDaily() error {
	a, err := newApp()
	if err != nil {
		return err
	}

	user := a.store.User()
	if user == nil {
		return domain.ErrNotAuthenticated
	}

	lesson, err := a.store.FetchDailyLesson(context.Background(), user.ID)
	if err != nil {
		return reportStoreError(a, err)
	}

	lang := a.store.Language()
	fmt.Printf("%s: %s — %s (%s, %d min)\n",
		i18n.T("todayLesson", lang), lesson.Title, lesson.Description, lesson.Level, lesson.DurationMinutes)
	return nil
}

// cmdComplete marks a lesson complete with a score.
func cmdComplete(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: sikaai complete <lesson-id> <score>")
	}

	score, err := strconv.Atoi(args[1])
	if err != nil || score < 0 || score > 100 {
		return fmt.Errorf("score must be a number between 0 and 100")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	if _, err := a.store.CompleteLesson(context.Background(), args[0], score); err != nil {
		return reportStoreError(a, err)
	}

	lang := a.store.Language()
	fmt.Println(i18n.T("lessonCompleted", lang))
	if score >= 80 {
		fmt.Println(i18n.T("excellentWork", lang))
	} else {
		fmt.Printf("%s %s\n", i18n.T("goodEffort", lang), i18n.T("keepPracticing", lang))
	}
	if progress := a.store.Progress(); progress != nil {
		fmt.Printf("%s: %d\n", i18n.T("lessonsCompleted", lang), progress.TotalCompleted)
	}
	return nil
}

// cmdQuiz submits a quiz answer and prints the verdict.
func cmdQuiz(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: sikaai quiz <quiz-id> <answer>")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	verdict, err := a.store.SubmitQuizAnswer(context.Background(), args[0], args[1])
	if err != nil {
		return reportStoreError(a, err)
	}

	lang := a.store.Language()
	if verdict.Correct {
		fmt.Println(i18n.T("quizPassed", lang))
		if verdict.Points > 0 {
			fmt.Printf("+%d points\n", verdict.Points)
		}
	} else {
		fmt.Printf("%s", i18n.T("tryAgain", lang))
		if verdict.CorrectAnswer != "" {
			fmt.Printf(" (%s: %s)", i18n.T("translation", lang), verdict.CorrectAnswer)
		}
		fmt.Println()
	}
	if verdict.Feedback != "" {
		fmt.Println(verdict.Feedback)
	}
	return nil
}

func printContentSection(title string, items []domain.ContentItem) {
	if len(items) == 0 {
		return
	}
	fmt.Println(title)
	fmt.Println("------------------------")
	for _, item := range items {
		line := item.Text
		if item.Translation != "" {
			line += " — " + item.Translation
		}
		if item.Phonetic != "" {
			line += " [" + item.Phonetic + "]"
		}
		fmt.Println(line)
	}
	fmt.Println()
}
