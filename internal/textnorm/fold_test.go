package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii untouched", "HGT 5'08\"", "HGT 5'08\""},
		{"curly apostrophe", "5’08", "5'08"},
		{"prime marks", "5′08″", "5'08\""},
		{"backtick", "5`08", "5'08"},
		{"fullwidth digits", "１７５cm", "175cm"},
		{"ligature", "ﬁrst", "first"},
		{"no-break space", "WGT\u00a0156", "WGT 156"},
		{"control removed", "SEX\x00 F", "SEX F"},
		{"newline kept", "A\nB", "A\nB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestFoldIdempotent(t *testing.T) {
	for _, s := range []string{"5’08”", "ＡＢ", "plain"} {
		once := Fold(s)
		assert.Equal(t, once, Fold(once))
	}
}
