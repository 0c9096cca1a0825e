package profile

import (
	"errors"
	"slices"

	"github.com/vk/tcplika/internal/catalog"
)

var errNull = errors.New("value is null")

// Merge lays the profile beneath command-line tokens. A command-line option
// replaces the profile entry of the same kind whichever name either side
// used, and command-line endpoints replace the profile's endpoints when at
// least one is given. Inputs are not modified.
func (p *Profile) Merge(raw map[string]string, positionals []string) (map[string]string, []string) {
	given := make(map[catalog.Kind]bool, len(raw))
	for name := range raw {
		if kind := catalog.Lookup(name); kind != catalog.Unrecognized {
			given[kind] = true
		}
	}

	merged := make(map[string]string, len(p.Options)+len(raw))
	for name, value := range p.Options {
		if kind := catalog.Lookup(name); kind == catalog.Unrecognized || !given[kind] {
			merged[name] = value
		}
	}
	for name, value := range raw {
		merged[name] = value
	}

	if len(positionals) > 0 {
		return merged, slices.Clone(positionals)
	}
	return merged, slices.Clone(p.Endpoints)
}
