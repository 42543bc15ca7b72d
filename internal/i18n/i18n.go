// Package i18n provides the static bilingual string table for the CLI.
// Translations are compiled into the binary; lookup falls back to
// English, then to the key itself so nothing is silently swallowed.
package i18n

import "github.com/sikaai/sikaai/internal/domain"

// T returns the localized string for key in lang.
func T(key string, lang domain.Language) string {
	table, ok := translations[lang]
	if ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[domain.LanguageEnglish][key]; ok {
		return s
	}
	return key
}

var translations = map[domain.Language]map[string]string{
	domain.LanguageEnglish: {
		// Navigation & headers
		"home":       "Home",
		"lessons":    "Lessons",
		"vocabulary": "Vocabulary",
		"progress":   "Progress",
		"logout":     "Logout",

		// Home
		"welcome":          "Welcome to English Learn",
		"todayLesson":      "Today's Lesson",
		"yourStats":        "Your Statistics",
		"lessonsCompleted": "Lessons Completed",
		"averageScore":     "Average Score",
		"currentStreak":    "Current Streak",
		"longestStreak":    "Longest Streak",

		// Lessons
		"availableLessons": "Available Lessons",
		"lessonContent":    "Lesson Content",
		"markComplete":     "Mark as Complete",
		"completed":        "Completed",

		// Vocabulary
		"allVocabulary": "All Vocabulary",
		"translation":   "Translation",
		"example":       "Example",
		"pronunciation": "Pronunciation",

		// Progress
		"overallProgress": "Overall Progress",
		"lessonProgress":  "Lesson Progress",
		"achievements":    "Achievements & Badges",
		"dayStreak":       "day streak",

		// Account
		"createAccount":  "Create Account",
		"username":       "Username",
		"email":          "Email",
		"nativeLanguage": "Native Language",

		// Feedback
		"excellentWork":   "🎉 Excellent work!",
		"goodEffort":      "👏 Good effort!",
		"keepPracticing":  "Keep practicing!",
		"lessonCompleted": "Lesson completed!",
		"quizPassed":      "Quiz passed!",

		// Messages
		"loading":  "Loading...",
		"error":    "Error",
		"noData":   "No data available",
		"tryAgain": "Please try again",
	},

	domain.LanguageNepali: {
		// Navigation & headers
		"home":       "घर",
		"lessons":    "पाठहरू",
		"vocabulary": "शब्दावली",
		"progress":   "प्रगति",
		"logout":     "लगआउट गर्नुहोस्",

		// Home
		"welcome":          "English Learn मा स्वागतम्",
		"todayLesson":      "आजको पाठ",
		"yourStats":        "तपाईंको तथ्याङ्क",
		"lessonsCompleted": "पूरा गरिएका पाठहरू",
		"averageScore":     "औसत अंक",
		"currentStreak":    "वर्तमान स्ट्रीक",
		"longestStreak":    "सबैभन्दा लामो स्ट्रीक",

		// Lessons
		"availableLessons": "उपलब्ध पाठहरू",
		"lessonContent":    "पाठको सामग्री",
		"markComplete":     "पूरा गर्दैं चिन्ह लगाउनुहोस्",
		"completed":        "पूरा भएको",

		// Vocabulary
		"allVocabulary": "सबै शब्दावली",
		"translation":   "अनुवाद",
		"example":       "उदाहरण",
		"pronunciation": "उच्चारण",

		// Progress
		"overallProgress": "समग्र प्रगति",
		"lessonProgress":  "पाठ प्रगति",
		"achievements":    "उपलब्धि र बिल्लहरू",
		"dayStreak":       "दिनको स्ट्रीक",

		// Account
		"createAccount":  "खाता सृजना गर्नुहोस्",
		"username":       "प्रयोगकर्ता नाम",
		"email":          "इमेल",
		"nativeLanguage": "मूल भाषा",

		// Feedback
		"excellentWork":   "🎉 उत्कृष्ट काम!",
		"goodEffort":      "👏 राम्रो प्रयास!",
		"keepPracticing":  "अभ्यास जारी राख्नुहोस्!",
		"lessonCompleted": "पाठ पूरा भयो!",
		"quizPassed":      "परीक्षा पास भयो!",

		// Messages
		"loading":  "लोड हुँदैछ...",
		"error":    "त्रुटि",
		"noData":   "कोई डेटा उपलब्ध छैन",
		"tryAgain": "फेरी कोशिश गर्नुहोस्",
	},
}
