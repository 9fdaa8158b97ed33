package config

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed recipe_form.toml
var recipeFormPatch []byte

// PatchSpec is a literal search-and-replace edit against a single file.
type PatchSpec struct {
	Path    string `toml:"path"`    // target file, relative to the project root
	Search  string `toml:"search"`  // exact text to look for
	Replace string `toml:"replace"` // text substituted for every occurrence
}

// Default returns the compiled-in patch that adds aria-pressed to the meal
// slot buttons of the recipe form.
func Default() PatchSpec {
	spec, err := Parse(recipeFormPatch)
	if err != nil {
		// The document is embedded at build time; a decode failure is a
		// programming error.
		panic(fmt.Sprintf("embedded patch is invalid: %v", err))
	}
	return spec
}

// Parse decodes a TOML patch document and validates it.
func Parse(data []byte) (PatchSpec, error) {
	var spec PatchSpec
	md, err := toml.Decode(string(data), &spec)
	if err != nil {
		return PatchSpec{}, fmt.Errorf("parsing patch: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return PatchSpec{}, fmt.Errorf("parsing patch: unknown key %q", undecoded[0].String())
	}
	if err := spec.Validate(); err != nil {
		return PatchSpec{}, err
	}
	return spec, nil
}

// Validate checks that the spec names a file and something to search for.
// An empty replacement is allowed; it deletes the search text.
func (s PatchSpec) Validate() error {
	var errs []error
	if s.Path == "" {
		errs = append(errs, errors.New("path is required"))
	}
	if s.Search == "" {
		errs = append(errs, errors.New("search text is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid patch: %w", errors.Join(errs...))
	}
	return nil
}
