package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileCachesResult(t *testing.T) {
	p1, err := Compile(`\d+`, IgnoreCase)
	require.NoError(t, err)
	p2, err := Compile(`\d+`, IgnoreCase)
	require.NoError(t, err)
	assert.Same(t, p1, p2)

	p3, err := Compile(`\d+`, 0)
	require.NoError(t, err)
	assert.NotSame(t, p1, p3)
}

func TestCompileInvalid(t *testing.T) {
	_, err := Compile(`(unclosed`, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, `(unclosed`, perr.Pattern)

	_, again := Compile(`(unclosed`, 0)
	assert.ErrorIs(t, again, ErrInvalid)
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(""))
	assert.NoError(t, Check(`(?<=\s)V[EHICO]`))
	assert.ErrorIs(t, Check(`[A-`), ErrInvalid)
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		name string
		expr string
		text string
		want string
	}{
		{"empty pattern", "", " SMITH ", " SMITH "},
		{"label removed", `^(ln|last name)[:\s]*`, "LN: SMITH", "SMITH"},
		{"all matches removed", `\d`, "A1B2C3", "ABC"},
		{"no match trims", `XYZ`, " JOHN ", "JOHN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cleanup(tt.expr, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanupInvalidHasNoEffect(t *testing.T) {
	got, err := Cleanup(`(LN`, "LN SMITH")
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "LN SMITH", got)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		cleanup string
		text    string
		want    Match
	}{
		{
			name: "capturing group",
			expr: `DOB\s*(\d{2}/\d{2}/\d{4})`,
			text: "3 dob 01/02/1990 4b EXP",
			want: Match{Text: "01/02/1990", Found: true, Group: true},
		},
		{
			name:    "full match with cleanup",
			expr:    `HGT\s*\S+`,
			cleanup: `^HGT\s*`,
			text:    "16 HGT 5-07 NONE",
			want:    Match{Text: "5-07", Found: true},
		},
		{
			name: "group is trimmed",
			expr: `SEX(\s*\w)`,
			text: "DOB 01/02/1990 SEX F EYES BLU",
			want: Match{Text: "F", Found: true, Group: true},
		},
		{
			name: "no match",
			expr: `WGT\s*(\d+)`,
			text: "HGT 5-07",
			want: Match{},
		},
		{
			name: "multiline anchor",
			expr: `^SEX\s+([MF])$`,
			text: "DOB 01/02/1990\nSEX F\nEYES BLU",
			want: Match{Text: "F", Found: true, Group: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.expr, tt.cleanup, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractInvalid(t *testing.T) {
	_, err := Extract(`(?<bad`, "", "text")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMatchPrefix(t *testing.T) {
	ok, err := MatchPrefix(`\d{2}\.\d{2}\.\d{4}`, "01.02.1990")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = MatchPrefix(`\d{4}`, "DOB 1990")
	require.NoError(t, err)
	assert.False(t, ok, "match must start at position 0")

	ok, err = MatchPrefix("", "anything")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = MatchPrefix(`[`, "x")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestHasGroups(t *testing.T) {
	assert.True(t, MustCompile(`A(B)`, 0).HasGroups())
	assert.False(t, MustCompile(`AB`, 0).HasGroups())
	assert.False(t, MustCompile(`A(?:B)`, 0).HasGroups())
}
