package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinTopic(t *testing.T) {
	assert.Equal(t, "math, calculus", JoinTopic([]string{"math", "calculus"}))
	assert.Equal(t, "math", JoinTopic([]string{"math"}))
	assert.Equal(t, "math", JoinTopic([]string{" math ", "  "}))
	assert.Equal(t, "general", JoinTopic(nil))
	assert.Equal(t, "general", JoinTopic([]string{"", "  "}))
}
