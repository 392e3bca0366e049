package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFAQOutputPlainJSON(t *testing.T) {
	out, err := ParseFAQOutput(`{"question": "How do I revise for exams?", "answer": "Use spaced repetition."}`)
	require.NoError(t, err)
	assert.Equal(t, "How do I revise for exams?", out.Question)
	assert.Equal(t, "Use spaced repetition.", out.Answer)
}

func TestParseFAQOutputCodeFence(t *testing.T) {
	raw := "```json\n{\"question\": \"Q\", \"answer\": \"A\"}\n```"
	out, err := ParseFAQOutput(raw)
	require.NoError(t, err)
	assert.Equal(t, "Q", out.Question)
	assert.Equal(t, "A", out.Answer)
}

func TestParseFAQOutputBareFence(t *testing.T) {
	raw := "```\n{\"question\": \"Q\", \"answer\": \"A\"}\n```"
	out, err := ParseFAQOutput(raw)
	require.NoError(t, err)
	assert.Equal(t, "Q", out.Question)
}

func TestParseFAQOutputInvalid(t *testing.T) {
	_, err := ParseFAQOutput("not json at all")
	assert.Error(t, err)
}

func TestParseFAQOutputMissingFields(t *testing.T) {
	_, err := ParseFAQOutput(`{"question": "only half"}`)
	assert.Error(t, err)

	_, err = ParseFAQOutput(`{"question": "  ", "answer": "x"}`)
	assert.Error(t, err)
}

func TestGeneratorDisabledWithoutKey(t *testing.T) {
	g := NewGenerator("", "gpt-4o-mini")
	assert.False(t, g.Enabled())
}
