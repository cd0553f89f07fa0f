// Package content loads the portfolio shown by folio from TOML.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"folio/internal/domain"
)

//go:embed default.toml
var defaultPortfolio []byte

//go:embed resume.md
var defaultResume string

// Default returns the built-in portfolio
func Default() *domain.Portfolio {
	p, err := Parse(defaultPortfolio)
	if err != nil {
		panic(fmt.Sprintf("built-in portfolio is invalid: %v", err))
	}
	return p
}

// Load reads and validates a portfolio file. An empty path returns the
// built-in portfolio.
func Load(path string) (*domain.Portfolio, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates portfolio TOML
func Parse(data []byte) (*domain.Portfolio, error) {
	var p domain.Portfolio
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse content at %d:%d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the invariants the UI relies on
func Validate(p *domain.Portfolio) error {
	var errs []error
	if strings.TrimSpace(p.Profile.Name) == "" {
		errs = append(errs, errors.New("profile.name is required"))
	}

	seen := make(map[string]bool)
	for i, pr := range p.Projects {
		if pr.ID == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: id is required", i))
		} else if seen[pr.ID] {
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate id %q", i, pr.ID))
		}
		seen[pr.ID] = true
		if pr.Category == domain.CategoryAll || !pr.Category.Valid() {
			errs = append(errs, fmt.Errorf("projects[%d]: category must be a concrete category", i))
		}
	}

	for i, s := range p.Skills {
		if s.Level < 0 || s.Level > 100 {
			errs = append(errs, fmt.Errorf("skills[%d]: level %d out of range 0-100", i, s.Level))
		}
	}

	return errors.Join(errs...)
}

// OpenResume returns the resume document. A relative path is resolved
// against baseDir; an empty path yields the built-in resume.
func OpenResume(path, baseDir string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(strings.NewReader(defaultResume)), nil
	}
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open resume: %w", err)
	}
	return f, nil
}
