package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidText(t *testing.T) {
	tests := []struct {
		name            string
		s               string
		minLen          int
		maxLenExclusive int
		want            bool
	}{
		{"empty rejected at min 1", "", 1, 65, false},
		{"single char accepted", "a", 1, 65, true},
		{"at max-1 accepted", strings.Repeat("a", 64), 1, 65, true},
		{"at max rejected", strings.Repeat("a", 65), 1, 65, false},
		{"description at 128 accepted", strings.Repeat("d", 128), 1, 129, true},
		{"description at 129 rejected", strings.Repeat("d", 129), 1, 129, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidText(tt.s, tt.minLen, tt.maxLenExclusive))
		})
	}
}

func TestValidLabel(t *testing.T) {
	assert.False(t, ValidLabel(""))
	assert.True(t, ValidLabel("a"))
	assert.True(t, ValidLabel(strings.Repeat("x", 32)))
	assert.False(t, ValidLabel(strings.Repeat("x", 33)))
}

func TestValidLabelSet(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want bool
	}{
		{"nil rejected", nil, false},
		{"empty rejected", []string{}, false},
		{"single tag accepted", []string{"a"}, true},
		{"ten tags accepted", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, true},
		{"eleven tags rejected", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}, false},
		{"one empty tag poisons the set", []string{"a", "", "c"}, false},
		{"one oversized tag poisons the set", []string{"a", strings.Repeat("x", 33)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidLabelSet(tt.tags))
		})
	}
}

func TestValidByteSize(t *testing.T) {
	assert.False(t, ValidByteSize(0))
	assert.True(t, ValidByteSize(1))
	assert.True(t, ValidByteSize(999_999_999))
	assert.False(t, ValidByteSize(1_000_000_000))
	assert.False(t, ValidByteSize(1_000_000_001))
}
