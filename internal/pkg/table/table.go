package table

import (
	"fmt"
	"strings"
	"unicode/utf8"

	errs "github.com/NastyaGoryachaya/fav-crypto/internal/errors"
)

// Format - рисует таблицу с рамкой из + - |.
// Ширина колонки = самая длинная ячейка или заголовок, плюс по пробелу с каждой стороны.
// Каждая строка rows обязана иметь столько же ячеек, сколько headers.
func Format(headers []string, rows [][]string) (string, error) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for n, row := range rows {
		if len(row) != len(headers) {
			return "", fmt.Errorf("row %d has %d cells, want %d: %w", n, len(row), len(headers), errs.ErrRowLength)
		}
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	sep := separator(widths)
	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, sep, line(headers, widths), sep)
	for _, row := range rows {
		lines = append(lines, line(row, widths))
	}
	lines = append(lines, sep)

	return strings.Join(lines, "\n"), nil
}

func separator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

func line(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = c + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c))
	}
	return "| " + strings.Join(padded, " | ") + " |"
}
