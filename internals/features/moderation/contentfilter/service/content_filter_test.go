package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const goodContent = "How do I configure the database connection pool for this project setup?"

func TestValidateQuestionContent_Accepts(t *testing.T) {
	res := ValidateQuestionContent("How to tune a connection pool?", goodContent)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Reason)
	assert.Empty(t, res.Suggestions)
}

func TestValidateQuestionContent_TitleBounds(t *testing.T) {
	res := ValidateQuestionContent("Short", goodContent)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Title is too short", res.Reason)
	assert.NotEmpty(t, res.Suggestions)

	res = ValidateQuestionContent(strings.Repeat("x", 301), goodContent)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Title is too long", res.Reason)
}

func TestValidateQuestionContent_ContentBounds(t *testing.T) {
	res := ValidateQuestionContent("A perfectly fine title", "too short")
	assert.False(t, res.IsValid)
	assert.Equal(t, "Content is too short", res.Reason)

	res = ValidateQuestionContent("A perfectly fine title", strings.Repeat("y", 30001))
	assert.False(t, res.IsValid)
	assert.Equal(t, "Content is too long", res.Reason)
}

func TestValidateQuestionContent_WordCount(t *testing.T) {
	// long enough in characters, fewer than 5 words
	res := ValidateQuestionContent("A perfectly fine title", "abcdefghij klmnopqrstuvwxyz")
	assert.False(t, res.IsValid)
	assert.Equal(t, "Content has too few words", res.Reason)
}

func TestValidateQuestionContent_SpamKeywords(t *testing.T) {
	res := ValidateQuestionContent("A perfectly fine title",
		"You should definitely click here to claim the prize money offered")
	assert.False(t, res.IsValid)
	assert.Equal(t, "Content contains spam keywords", res.Reason)
}

func TestValidateQuestionContent_RepeatedCharacters(t *testing.T) {
	res := ValidateQuestionContent("aaaaaaaaaaaaaaa", goodContent)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Content contains invalid patterns", res.Reason)
}

func TestValidateQuestionContent_AllCapsTitle(t *testing.T) {
	res := ValidateQuestionContent("HELP NEEDED RIGHT NOW PLEASE", goodContent)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Title contains too many uppercase words", res.Reason)

	// mixed-case titles pass the caps ratio
	res = ValidateQuestionContent("Help needed with SQL JOIN syntax", goodContent)
	assert.True(t, res.IsValid)
}

func TestValidateQuestionContent_TooManyURLs(t *testing.T) {
	content := goodContent +
		" http://a.example http://b.example http://c.example and also http://d.example"
	res := ValidateQuestionContent("A perfectly fine title", content)
	assert.False(t, res.IsValid)
	// the back-to-back URL pattern fires before the URL count
	assert.Contains(t, []string{
		"Content contains too many URLs",
		"Content contains invalid patterns",
	}, res.Reason)
}

func TestValidateAnswerContent(t *testing.T) {
	res := ValidateAnswerContent("Use SetMaxOpenConns and SetMaxIdleConns on the pool.")
	assert.True(t, res.IsValid)

	res = ValidateAnswerContent("nope")
	assert.False(t, res.IsValid)
	assert.Equal(t, "Answer is too short", res.Reason)

	res = ValidateAnswerContent("Congratulations you won the lottery, please respond quickly today")
	assert.False(t, res.IsValid)
	assert.Equal(t, "Content contains spam keywords", res.Reason)
}
