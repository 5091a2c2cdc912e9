package confirmations

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lower y", "y\n", true},
		{"upper Y", "Y\n", true},
		{"padded", "  y  \n", true},
		{"windows newline", "y\r\n", true},
		{"yes is not y", "yes\n", false},
		{"n", "n\n", false},
		{"empty line", "\n", false},
		{"eof without newline", "y", true},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("/tmp/out.txt")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Overwrite /tmp/out.txt? [y/N] ", out.String())
		})
	}
}

func TestPrompter_ReadsOneLinePerPrompt(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("y\nn\ny\n"), &out)

	for _, want := range []bool{true, false, true} {
		got, err := p.Confirm("x")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestPrompter_ReadError(t *testing.T) {
	p := NewPrompter(failingReader{}, &bytes.Buffer{})
	_, err := p.Confirm("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}
