package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Udaipur ", "udaipur"},
		{"JAISALMER", "jaisalmer"},
		{"New   Delhi", "new delhi"},
		{"Pondichéry", "pondichery"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestValidQuery(t *testing.T) {
	assert.True(t, ValidQuery("goa"))
	assert.True(t, ValidQuery("go"))
	assert.False(t, ValidQuery("g"), "too short")
	assert.False(t, ValidQuery(strings.Repeat("a", 51)), "too long")
	assert.True(t, ValidQuery(strings.Repeat("a", 50)))
	assert.False(t, ValidQuery("sector 17"), "contains digits")
	assert.False(t, ValidQuery("delhi1"))
}

func TestHasLetter(t *testing.T) {
	assert.True(t, HasLetter("a-1"))
	assert.False(t, HasLetter("123 -"))
}
