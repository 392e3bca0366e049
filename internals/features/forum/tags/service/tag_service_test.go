package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTagNames(t *testing.T) {
	got := NormalizeTagNames([]string{" Go ", "go", "SQL", "", "  ", "sql", "gorm"})
	assert.Equal(t, []string{"go", "sql", "gorm"}, got)
}

func TestNormalizeTagNames_Empty(t *testing.T) {
	assert.Empty(t, NormalizeTagNames(nil))
	assert.Empty(t, NormalizeTagNames([]string{"", "   "}))
}
