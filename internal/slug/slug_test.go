package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Creative Writing", "creative-writing"},
		{"Non-Fiction", "non-fiction"},
		{"Writing Tips", "writing-tips"},
		{"Character Development", "character-development"},
		{"Character  Development", "character-development"},
		{"  Plot  ", "plot"},
		{"Café Culture", "cafe-culture"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Make(tt.input), "Make(%q)", tt.input)
	}
}
