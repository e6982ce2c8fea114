package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrEmptyCorpus is returned when a corpus file contains no entries
	ErrEmptyCorpus = errors.New("corpus contains no entries")

	// ErrIndexOutOfRange is returned when a card id does not resolve to a text
	ErrIndexOutOfRange = errors.New("card index out of range")
)

// Provider exposes an ordered, immutable sequence of card texts. Ids handed
// out by the game are indexes into this sequence.
type Provider interface {
	// Count returns the number of texts in the corpus
	Count() int

	// Text returns the text at the given index
	Text(index int) (string, error)
}

// Corpus is an in-memory Provider backed by a fixed slice of lines
type Corpus struct {
	lines []string
}

// New creates a corpus from the given lines
func New(lines []string) *Corpus {
	return &Corpus{
		lines: append([]string(nil), lines...),
	}
}

// LoadFile reads a corpus from a text file, one entry per line
func LoadFile(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	if len(lines) == 0 {
		return nil, ErrEmptyCorpus
	}

	return &Corpus{lines: lines}, nil
}

// Count returns the number of texts in the corpus
func (c *Corpus) Count() int {
	return len(c.lines)
}

// Text returns the text at the given index
func (c *Corpus) Text(index int) (string, error) {
	if index < 0 || index >= len(c.lines) {
		return "", fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(c.lines))
	}
	return c.lines[index], nil
}
