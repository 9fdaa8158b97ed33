package patcher

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

var (
	// ErrEmptySearch is returned when the search text is empty.
	ErrEmptySearch = errors.New("search text must not be empty")

	// ErrInvalidEncoding is returned when the target file is not UTF-8 text.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")
)

// Outcome describes what Apply did to the target file.
type Outcome int

const (
	NotFound Outcome = iota // search text absent, file untouched
	Updated                 // every occurrence replaced, file rewritten
)

// String returns the status line printed for the outcome.
func (o Outcome) String() string {
	switch o {
	case Updated:
		return "Updated successfully"
	case NotFound:
		return "String not found"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Patcher performs literal search-and-replace edits on files.
type Patcher struct {
	fs     FileSystem
	logger *zap.Logger
}

// New creates a Patcher. A nil logger disables logging.
func New(fs FileSystem, logger *zap.Logger) *Patcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Patcher{
		fs:     fs,
		logger: logger,
	}
}

// Apply replaces every non-overlapping occurrence of search in the file at
// path with replacement, scanning left to right. The file is rewritten only
// when search occurs at least once; otherwise it is left byte-for-byte
// unchanged and NotFound is returned.
func (p *Patcher) Apply(path, search, replacement string) (Outcome, error) {
	if search == "" {
		return NotFound, ErrEmptySearch
	}

	data, err := p.fs.ReadFile(path)
	if err != nil {
		return NotFound, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return NotFound, fmt.Errorf("reading %s: %w", path, ErrInvalidEncoding)
	}
	content := string(data)

	count := strings.Count(content, search)
	if count == 0 {
		p.logger.Debug("search text not present", zap.String("path", path), zap.Int("bytes", len(data)))
		return NotFound, nil
	}

	updated := strings.ReplaceAll(content, search, replacement)
	if err := p.fs.OverwriteFile(path, []byte(updated)); err != nil {
		return NotFound, fmt.Errorf("writing %s: %w", path, err)
	}

	p.logger.Debug("file rewritten",
		zap.String("path", path),
		zap.Int("occurrences", count),
		zap.Int("bytes_before", len(data)),
		zap.Int("bytes_after", len(updated)),
	)
	if count > 1 {
		p.logger.Warn("search text occurred more than once; all occurrences replaced",
			zap.String("path", path), zap.Int("occurrences", count))
	}
	return Updated, nil
}
