package main

import (
	"fmt"
	"strings"

	"github.com/sikaai/sikaai/internal/domain"
)

// renderProgressBar creates a visual progress bar
func renderProgressBar(value float64, width int) string {
	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", empty) + "]"
}

var ansiColors = map[string]string{
	"gray":   "90",
	"orange": "33",
	"red":    "31",
	"yellow": "93",
	"blue":   "34",
	"purple": "35",
	"pink":   "95",
}

// colorize wraps text in the ANSI escape for a named color.
func colorize(color, text string) string {
	code, ok := ansiColors[color]
	if !ok {
		return text
	}
	return "\033[" + code + "m" + text + "\033[0m"
}

func printVocabulary(entries []domain.Vocabulary) {
	for _, v := range entries {
		line := fmt.Sprintf("%-18s %s", v.Word, v.Translation)
		if v.Phonetic != "" {
			line += " [" + v.Phonetic + "]"
		}
		fmt.Println(line)
		if v.ExampleSentence != "" {
			fmt.Printf("    %s\n", v.ExampleSentence)
		}
	}
}

func langFromCode(code string) domain.Language {
	if code == "en" {
		return domain.LanguageEnglish
	}
	return domain.LanguageNepali
}
