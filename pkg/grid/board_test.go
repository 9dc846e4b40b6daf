package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/matzehuels/wordgrid/pkg/errors"
	"github.com/matzehuels/wordgrid/pkg/grid"
)

func TestReference(t *testing.T) {
	b := grid.Reference()
	assert.Equal(t, grid.Standard, b.Topology())
	assert.Equal(t, 16, b.Cells())
	assert.Equal(t, 'a', b.Letter(0))
	assert.Equal(t, 'p', b.Letter(15))
	assert.Equal(t, "abcd\nefgh\nijkl\nmnop", b.String())
}

func TestRender(t *testing.T) {
	b := grid.Reference()

	assert.Equal(t, "agp", b.Render(grid.NewPath(0, 6, 15)))
	assert.Equal(t, "a", b.Render(grid.NewPath(0)))
	assert.Equal(t, "abcdefghijklmno", b.Render(grid.NewPath(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14)))
}

func TestRenderUnicode(t *testing.T) {
	b, err := grid.ParseBoard(2, 2, "äöüß")
	require.NoError(t, err)
	assert.Equal(t, "ßä", b.Render(grid.NewPath(3, 0)))
}

func TestBoardNeighborsMatchTopology(t *testing.T) {
	b, err := grid.ParseRows([]string{"abc", "def"})
	require.NoError(t, err)
	for i := 0; i < b.Cells(); i++ {
		assert.Equal(t, b.Topology().Neighbors(i), b.Neighbors(i), "cell %d", i)
	}
}

func TestNewBoardCopiesLetters(t *testing.T) {
	letters := []rune("wxyz")
	b, err := grid.NewBoard(grid.Topology{Width: 2, Height: 2}, letters)
	require.NoError(t, err)

	letters[0] = 'q'
	assert.Equal(t, 'w', b.Letter(0))

	out := b.Letters()
	out[1] = 'q'
	assert.Equal(t, 'x', b.Letter(1))
}

func TestParseRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"ragged", []string{"abcd", "efg"}},
		{"empty row", []string{""}},
		{"space", []string{"ab", "c "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := grid.ParseRows(tt.rows)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidBoard), "got %v", err)
		})
	}
}

func TestParseBoardLetterCount(t *testing.T) {
	_, err := grid.ParseBoard(4, 4, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs 16 letters")
}
