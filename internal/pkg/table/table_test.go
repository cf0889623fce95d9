package table

import (
	"strings"
	"testing"
	"unicode/utf8"

	errs "github.com/NastyaGoryachaya/fav-crypto/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_SingleRow(t *testing.T) {
	got, err := Format(
		[]string{"Crypto", "Price (USD)"},
		[][]string{{"Bitcoin", "$50000.00"}},
	)
	require.NoError(t, err)

	want := strings.Join([]string{
		"+---------+-------------+",
		"| Crypto  | Price (USD) |",
		"+---------+-------------+",
		"| Bitcoin | $50000.00   |",
		"+---------+-------------+",
	}, "\n")
	assert.Equal(t, want, got)
	assert.False(t, strings.HasSuffix(got, "\n"), "no trailing newline expected")
}

func TestFormat_Rectangular(t *testing.T) {
	headers := []string{"Crypto", "Price (USD)", "24h Change (%)"}
	rows := [][]string{
		{"Bitcoin", "$67123.45", "1.23%"},
		{"Ethereum", "$3456.78", "-0.12%"},
		{"Chainlink", "$14.20", "-10.00%"},
		{"", "", ""},
	}

	got, err := Format(headers, rows)
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, len(rows)+4)
	width := utf8.RuneCountInString(lines[0])
	for i, l := range lines {
		assert.Equalf(t, width, utf8.RuneCountInString(l), "line %d has different width: %q", i, l)
	}
	assert.Equal(t, lines[0], lines[2])
	assert.Equal(t, lines[0], lines[len(lines)-1])
}

func TestFormat_Idempotent(t *testing.T) {
	headers := []string{"a", "b"}
	rows := [][]string{{"1", "22"}, {"333", "4"}}

	first, err := Format(headers, rows)
	require.NoError(t, err)
	second, err := Format(headers, rows)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFormat_CellWiderThanHeader(t *testing.T) {
	got, err := Format([]string{"N"}, [][]string{{"Ethereum"}})
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "+"+strings.Repeat("-", len("Ethereum")+2)+"+", lines[0])
	assert.Equal(t, "| N        |", lines[1])
	assert.Equal(t, "| Ethereum |", lines[3])
}

func TestFormat_NoRows(t *testing.T) {
	got, err := Format([]string{"Crypto"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "+--------+\n| Crypto |\n+--------+\n+--------+", got)
}

func TestFormat_RowLengthMismatch(t *testing.T) {
	_, err := Format([]string{"a", "b"}, [][]string{{"1", "2"}, {"3"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrRowLength)
	assert.Contains(t, err.Error(), "row 1")
}
