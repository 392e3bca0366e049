// file: internals/features/moderation/contentfilter/service/content_filter.go
package service

import (
	"regexp"
	"strings"
)

/* =========================================================
   Content filter
   Runs synchronously before any question/answer insert.
   Rejections carry a human-readable reason plus suggestions;
   they are caller mistakes, never logged as failures.
   ========================================================= */

// Spam/trash keywords, matched case-insensitively against title+content.
var spamKeywords = []string{
	"viagra",
	"cialis",
	"casino",
	"lottery",
	"winner",
	"click here",
	"buy now",
	"limited offer",
	"act now",
	"free money",
	"make money fast",
	"work from home",
	"nigerian prince",
	"inheritance",
	"congratulations you won",
}

// Patterns that indicate low-quality content.
var trashPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[^a-zA-Z0-9\s]{20,}$`),                      // too many special characters
	regexp.MustCompile(`https?://\S+\s+https?://\S+\s+https?://\S+`), // 3+ URLs back to back
}

// isRepeatedChar reports a string that is one character repeated 11+
// times ("aaaaaaaaaaa"). RE2 has no backreferences, so this rule is a
// plain loop. Case-insensitive.
func isRepeatedChar(s string) bool {
	runes := []rune(strings.ToLower(s))
	if len(runes) < 11 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}

func matchesTrash(s string) bool {
	if isRepeatedChar(s) {
		return true
	}
	for _, pattern := range trashPatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

var urlPattern = regexp.MustCompile(`https?://\S+`)

const (
	MinTitleLength   = 10
	MaxTitleLength   = 300
	MinContentLength = 20
	MaxContentLength = 30000
	MinWordCount     = 5

	maxQuestionURLs = 3
	maxAnswerURLs   = 5
)

type ValidationResult struct {
	IsValid     bool     `json:"is_valid"`
	Reason      string   `json:"reason,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func reject(reason string, suggestions ...string) ValidationResult {
	return ValidationResult{IsValid: false, Reason: reason, Suggestions: suggestions}
}

func wordCount(s string) int {
	return len(strings.Fields(strings.TrimSpace(s)))
}

// ValidateQuestionContent checks a question's title+content for quality and spam.
func ValidateQuestionContent(title, content string) ValidationResult {
	if len(title) < MinTitleLength {
		return reject("Title is too short",
			"Please provide a more descriptive title (at least 10 characters)")
	}
	if len(title) > MaxTitleLength {
		return reject("Title is too long",
			"Please keep your title under 300 characters")
	}

	if len(content) < MinContentLength {
		return reject("Content is too short",
			"Please provide more details about your question (at least 20 characters)",
			"Include what you have tried and what specific help you need")
	}
	if len(content) > MaxContentLength {
		return reject("Content is too long",
			"Please keep your content under 30,000 characters")
	}

	if wordCount(content) < MinWordCount {
		return reject("Content has too few words",
			"Please write at least 5 words to describe your question")
	}

	combined := strings.ToLower(title + " " + content)
	for _, keyword := range spamKeywords {
		if strings.Contains(combined, keyword) {
			return reject("Content contains spam keywords",
				"Please remove promotional or spam content from your question")
		}
	}

	if matchesTrash(title) || matchesTrash(content) {
		return reject("Content contains invalid patterns",
			"Please avoid repeated characters or excessive special characters",
			"Write meaningful content that helps others understand your question")
	}

	// All-caps shouting: more than half of the title words (len > 2) uppercase.
	titleWords := strings.Fields(title)
	capsWords := 0
	for _, word := range titleWords {
		if len(word) > 2 && word == strings.ToUpper(word) && word != strings.ToLower(word) {
			capsWords++
		}
	}
	if len(titleWords) > 0 && float64(capsWords) > float64(len(titleWords))*0.5 {
		return reject("Title contains too many uppercase words",
			"Please use normal capitalization in your title")
	}

	if len(urlPattern.FindAllString(content, -1)) > maxQuestionURLs {
		return reject("Content contains too many URLs",
			"Please limit URLs to 3 or fewer and focus on your question")
	}

	return ValidationResult{IsValid: true}
}

// ValidateAnswerContent checks an answer body for quality and spam.
func ValidateAnswerContent(content string) ValidationResult {
	if len(content) < MinContentLength {
		return reject("Answer is too short",
			"Please provide a more detailed answer (at least 20 characters)")
	}
	if len(content) > MaxContentLength {
		return reject("Answer is too long",
			"Please keep your answer under 30,000 characters")
	}

	if wordCount(content) < MinWordCount {
		return reject("Answer has too few words",
			"Please write at least 5 words to provide a helpful answer")
	}

	lower := strings.ToLower(content)
	for _, keyword := range spamKeywords {
		if strings.Contains(lower, keyword) {
			return reject("Content contains spam keywords",
				"Please remove promotional or spam content from your answer")
		}
	}

	if matchesTrash(content) {
		return reject("Content contains invalid patterns",
			"Please avoid repeated characters or excessive special characters",
			"Write meaningful content that helps answer the question")
	}

	if len(urlPattern.FindAllString(content, -1)) > maxAnswerURLs {
		return reject("Content contains too many URLs",
			"Please limit URLs to 5 or fewer and focus on your answer")
	}

	return ValidationResult{IsValid: true}
}
