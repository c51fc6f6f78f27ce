package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/hecke/coxeter"
	"github.com/katalvlaran/hecke/permutation"
)

// errNoGeneratorTable is returned for a TOML file without a [generators] table.
var errNoGeneratorTable = errors.New("missing [generators] table")

// generatorFile is the TOML layout of a custom generator set:
//
//	[generators]
//	r = [2, 1, 3]
//	s = [1, 3, 2]
type generatorFile struct {
	Generators map[string][]int `toml:"generators"`
}

// loadGenerators reads and validates a generator file. Each entry must be
// a signed permutation; group-level checks are left to coxeter.Generate.
func loadGenerators(path string) (map[string]permutation.Permutation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return parseGenerators(data)
}

func parseGenerators(data []byte) (map[string]permutation.Permutation, error) {
	var f generatorFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse generators: %w", err)
	}
	if len(f.Generators) == 0 {
		return nil, errNoGeneratorTable
	}

	out := make(map[string]permutation.Permutation, len(f.Generators))
	for label, values := range f.Generators {
		p, err := permutation.New(values...)
		if err != nil {
			return nil, fmt.Errorf("generator %q: %w", label, err)
		}
		out[label] = p
	}

	return out, nil
}

// buildGroup generates the group selected by the flags: the generator
// file when set, otherwise the named catalog entry.
func buildGroup(group, generators string) (*coxeter.Group, string, error) {
	if generators != "" {
		gens, err := loadGenerators(generators)
		if err != nil {
			return nil, "", err
		}
		g, err := coxeter.Generate(gens)
		if err != nil {
			return nil, "", err
		}

		return g, generators, nil
	}

	d, err := coxeter.Lookup(group)
	if err != nil {
		return nil, "", err
	}
	g, err := d.Generate()
	if err != nil {
		return nil, "", err
	}

	return g, d.Name, nil
}
