package errors

import (
	"strings"
	"unicode"
)

// MaxCells bounds the board size accepted from configuration and requests.
// Exhaustive enumeration grows exponentially, so anything larger is almost
// certainly a typo rather than a real board.
const MaxCells = 64

// ValidateDimensions checks that a board of width × height cells is usable.
func ValidateDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return New(ErrCodeInvalidBoard, "board dimensions must be positive, got %dx%d", width, height)
	}
	// Compare by division so huge dimensions cannot wrap the product.
	if width > MaxCells/height {
		return New(ErrCodeInvalidBoard, "board too large: %dx%d (max %d cells)", width, height, MaxCells)
	}
	return nil
}

// ValidateLetters checks that letters holds exactly one printable,
// non-space letter per cell.
func ValidateLetters(letters []rune, cells int) error {
	if len(letters) != cells {
		return New(ErrCodeInvalidBoard, "board needs %d letters, got %d", cells, len(letters))
	}
	for i, r := range letters {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidBoard, "cell %d holds invalid letter %q", i, r)
		}
	}
	return nil
}

// ValidateCell checks that cell is a valid index on a board with the given
// number of cells.
func ValidateCell(cell, cells int) error {
	if cell < 0 || cell >= cells {
		return New(ErrCodeInvalidCell, "cell %d out of range [0, %d)", cell, cells)
	}
	return nil
}

// ValidatePath checks that path is a non-empty sequence of in-range cell
// indices with no repeats.
//
// Validation rules:
//   - Path cannot be empty
//   - Path cannot be longer than the board
//   - Every index must lie in [0, cells)
//   - No index may appear twice
func ValidatePath(path []int, cells int) error {
	if len(path) == 0 {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if len(path) > cells {
		return New(ErrCodeInvalidPath, "path has %d cells but the board only has %d", len(path), cells)
	}

	seen := make(map[int]bool, len(path))
	for _, c := range path {
		if c < 0 || c >= cells {
			return New(ErrCodeInvalidPath, "path cell %d out of range [0, %d)", c, cells)
		}
		if seen[c] {
			return New(ErrCodeInvalidPath, "path revisits cell %d", c)
		}
		seen[c] = true
	}
	return nil
}

// ValidateWord checks that a dictionary entry is non-empty and free of
// whitespace and control characters.
func ValidateWord(word string) error {
	if word == "" {
		return New(ErrCodeInvalidDictionary, "word cannot be empty")
	}
	if len(word) > 256 {
		return New(ErrCodeInvalidDictionary, "word too long (max 256 bytes)")
	}
	if strings.IndexFunc(word, func(r rune) bool {
		return unicode.IsControl(r) || unicode.IsSpace(r)
	}) >= 0 {
		return New(ErrCodeInvalidDictionary, "word %q contains whitespace or control characters", word)
	}
	return nil
}
