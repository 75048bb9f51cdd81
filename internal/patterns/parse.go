package patterns

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrSyntax reports a malformed .cells pattern.
var ErrSyntax = errors.New("patterns: syntax error")

// Parse reads a pattern in the plaintext .cells format: 'O' or '*' marks a
// live cell, '.' a dead one, lines starting with '!' are comments. A
// "!Name:" comment sets the pattern name. Leading blank lines are ignored.
func Parse(r io.Reader) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(r)
	row, started := 0, false
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		if !started && line == "" {
			continue
		}
		started = true
		for col, ch := range line {
			switch ch {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, [2]int{row, col})
			case '.':
			default:
				return Pattern{}, fmt.Errorf("%w: line %d: unexpected %q", ErrSyntax, lineNo, ch)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, err
	}
	return p, nil
}
