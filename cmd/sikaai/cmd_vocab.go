package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sikaai/sikaai/internal/domain"
	"github.com/sikaai/sikaai/internal/i18n"
)

// cmdVocab lists vocabulary, optionally scoped to a lesson.
func cmdVocab(args []string) error {
	fs := flag.NewFlagSet("vocab", flag.ContinueOnError)
	lessonID := fs.String("lesson", "", "scope to a lesson id")
	offline := fs.Bool("offline", false, "read from the local cache")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	var entries []domain.Vocabulary
	if *offline {
		entries, err = a.store.OfflineVocabulary(*lessonID)
	} else {
		entries, err = a.store.FetchVocabulary(context.Background(), *lessonID)
	}
	if err != nil {
		return reportStoreError(a, err)
	}

	lang := a.store.Language()
	fmt.Println(i18n.T("allVocabulary", lang))
	fmt.Println("========================")
	if len(entries) == 0 {
		fmt.Println(i18n.T("noData", lang))
		return nil
	}
	printVocabulary(entries)
	return nil
}

// cmdSearch searches vocabulary by term.
func cmdSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	offline := fs.Bool("offline", false, "search the local cache")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: sikaai search <term> [--offline]")
	}
	term := rest[0]

	a, err := newApp()
	if err != nil {
		return err
	}

	var entries []domain.Vocabulary
	if *offline {
		entries, err = a.store.OfflineSearch(term)
	} else {
		entries, err = a.store.SearchVocabulary(context.Background(), term)
	}
	if err != nil {
		return reportStoreError(a, err)
	}

	lang := a.store.Language()
	if len(entries) == 0 {
		fmt.Println(i18n.T("noData", lang))
		return nil
	}
	printVocabulary(entries)
	return nil
}
