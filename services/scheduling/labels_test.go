package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelMinutes(t *testing.T) {
	tests := []struct {
		label   string
		minutes int
		ok      bool
	}{
		{"9:00 AM", 540, true},
		{"11:30 AM", 690, true},
		{"12:00 PM", 720, true},
		{"2:30 PM", 870, true},
		{"4:30 PM", 990, true},
		{"12:00 AM", 0, true},
		{"24:00", 0, false},
		{"9:00", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		minutes, ok := labelMinutes(tt.label)
		assert.Equal(t, tt.ok, ok, "label %q", tt.label)
		if tt.ok {
			assert.Equal(t, tt.minutes, minutes, "label %q", tt.label)
		}
	}
}

func TestDefaultTimeLabelsAreParseable(t *testing.T) {
	assert.Len(t, DefaultTimeLabels, 12)

	prev := -1
	for _, label := range DefaultTimeLabels {
		minutes, ok := labelMinutes(label)
		assert.True(t, ok, "label %q", label)
		assert.Greater(t, minutes, prev, "template must be strictly increasing")
		prev = minutes
	}
}
