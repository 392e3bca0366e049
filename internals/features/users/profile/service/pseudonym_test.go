package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePseudonym(t *testing.T) {
	valid := []string{"abc", "student_42", "A_b_C", "x1y2z3", strings.Repeat("a", 20)}
	for _, p := range valid {
		assert.True(t, ValidatePseudonym(p), p)
	}

	invalid := []string{
		"",
		"ab",                    // too short
		strings.Repeat("a", 21), // too long
		"with space",
		"dash-name",
		"émile",
		"dot.name",
		"name!",
	}
	for _, p := range invalid {
		assert.False(t, ValidatePseudonym(p), p)
	}
}
