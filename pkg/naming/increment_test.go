package naming

import (
	"strings"
	"testing"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIncrement(t *testing.T) {
	tests := []struct {
		input string
		want  IncrementSpec
	}{
		{"0501", IncrementSpec{Width: 4, Start: 501}},
		{"1", IncrementSpec{Width: 1, Start: 1}},
		{"000", IncrementSpec{Width: 3, Start: 0}},
		{"12", IncrementSpec{Width: 2, Start: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIncrement(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}

	for _, bad := range []string{"", "-1", "1a", "0x10", " 1"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := ParseIncrement(bad)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidIncrement))
		})
	}
}

func TestIncrementSpec_Format(t *testing.T) {
	spec := IncrementSpec{Width: 2, Start: 98}
	assert.Equal(t, "98", spec.Format(0))
	assert.Equal(t, "99", spec.Format(1))
	assert.Equal(t, "100", spec.Format(2), "values wider than the width overflow the padding")
}

func TestInsertIncrement(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		position Position
		spec     IncrementSpec
		counter  uint
		want     string
	}{
		{"prefix plain", "where_am_i", Prefix, IncrementSpec{4, 0}, 775, "0775where_am_i"},
		{"suffix before extension", "hello.txt", Suffix, IncrementSpec{2, 12}, 0, "hello12.txt"},
		{"suffix second file", "goodbye.ini", Suffix, IncrementSpec{2, 12}, 1, "goodbye13.ini"},
		{"suffix without extension appends", "README", Suffix, IncrementSpec{3, 1}, 0, "README001"},
		{"suffix uses last dot", "archive.tar.gz", Suffix, IncrementSpec{1, 5}, 0, "archive.tar5.gz"},
		{"prefix keeps hidden dot", ".xinitrc", Prefix, IncrementSpec{3, 122}, 0, ".122xinitrc"},
		{"suffix on hidden without extension appends", ".xinitrc", Suffix, IncrementSpec{4, 455}, 0, ".xinitrc0455"},
		{"suffix on hidden with extension", ".hidden.config", Suffix, IncrementSpec{2, 0}, 3, ".hidden03.config"},
		{"trailing dot counts as extension", "name.", Suffix, IncrementSpec{1, 7}, 0, "name7."},
		{"lone dot", ".", Prefix, IncrementSpec{1, 1}, 0, ".1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InsertIncrement(tt.input, tt.position, tt.spec, tt.counter))
		})
	}
}

func TestInsertIncrement_HiddenDotStaysFirst(t *testing.T) {
	spec := IncrementSpec{Width: 3, Start: 7}
	for _, name := range []string{".a", ".bashrc", ".config.toml", ".", "..x"} {
		for _, pos := range []Position{Prefix, Suffix} {
			got := InsertIncrement(name, pos, spec, 2)
			assert.True(t, strings.HasPrefix(got, "."), "%s %s -> %s", pos, name, got)
			assert.Equal(t, len(name)+3, len(got))
		}
	}
}

func TestInsertIncrement_ExtensionPreserved(t *testing.T) {
	spec := IncrementSpec{Width: 2, Start: 0}
	for _, name := range []string{"a.txt", "photo.jpeg", ".hidden.cfg", "x.y.z"} {
		ext := name[strings.LastIndex(name, "."):]
		got := InsertIncrement(name, Suffix, spec, 4)
		assert.True(t, strings.HasSuffix(got, "04"+ext), "%s -> %s", name, got)
	}
}

func TestInsertIncrement_TwiceStacks(t *testing.T) {
	name := "some test file.txt"
	for counter := uint(0); counter < 2; counter++ {
		name = InsertIncrement(name, Prefix, IncrementSpec{Width: 4}, counter)
	}
	assert.Equal(t, "00010000some test file.txt", name)
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "prefix", Prefix.String())
	assert.Equal(t, "suffix", Suffix.String())
	assert.Equal(t, "Position(9)", Position(9).String())
}
