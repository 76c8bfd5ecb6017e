// Package wordlist reads line-oriented word lists used as alternation
// sources (expr.Or built from one literal per line) and atomically writes
// a derived word list to a cache file, one word per line, that FromFile
// can read back.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"

	"github.com/fhur/regie/expr"
)

// FromReader reads one word per non-empty, non-comment line from r and
// returns them in file order. A leading '#' marks a comment line.
func FromReader(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanner.Scan")
	}
	return words, nil
}

// FromFile opens path and delegates to FromReader.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()
	return FromReader(f)
}

// ToExpr builds expr.Or(lit(words[0]), lit(words[1]), ...) from a word
// list. The list must be non-empty.
func ToExpr(words []string) (expr.Expr, error) {
	if len(words) == 0 {
		return nil, errors.New("wordlist: cannot build alternation from empty word list")
	}
	literals := make([]expr.Expr, 0, len(words))
	for _, w := range words {
		literals = append(literals, expr.Lit(w))
	}
	return expr.Or(literals...), nil
}

// CacheDerived writes words, one per line, to cachePath using an atomic
// rename so a crash mid-write never leaves a truncated cache file behind.
func CacheDerived(cachePath string, words []string) error {
	pf, err := renameio.NewPendingFile(cachePath, renameio.WithPermissions(0644), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("renameio.NewPendingFile: %w", err)
	}
	defer pf.Cleanup()

	for _, w := range words {
		if _, err := io.WriteString(pf, w+"\n"); err != nil {
			return fmt.Errorf("io.WriteString: %w", err)
		}
	}

	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("renameio.CloseAtomicallyReplace: %w", err)
	}
	return nil
}
