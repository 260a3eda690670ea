package corpus

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/codecorpus/fixtures/pkg/types"
)

// The fixture bytes live under testdata/ so the Go fixture stays out of the
// build, same convention the corpus used before it was embedded.
//
//go:embed testdata
var fixtureFS embed.FS

//go:embed manifest.yaml
var manifestRaw []byte

// manifest is the on-disk shape of the catalog
type manifest struct {
	Fixtures []types.Fixture `yaml:"fixtures"`
}

// Corpus is an immutable catalog over the embedded fixture files
type Corpus struct {
	fixtures []types.Fixture
	byName   map[string]int
	fsys     fs.FS
}

// Load builds the Corpus from the embedded manifest and fixture filesystem.
// Every catalog entry is validated and must have a backing file; duplicate
// names are rejected.
func Load() (*Corpus, error) {
	return load(manifestRaw, fixtureFS)
}

// load is split out so tests can feed hostile manifests
func load(raw []byte, fsys fs.FS) (*Corpus, error) {
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	c := &Corpus{
		fixtures: make([]types.Fixture, 0, len(m.Fixtures)),
		byName:   make(map[string]int, len(m.Fixtures)),
		fsys:     fsys,
	}

	for _, f := range m.Fixtures {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("manifest entry %q: %w", f.Name, err)
		}

		if _, exists := c.byName[f.Name]; exists {
			return nil, fmt.Errorf("manifest entry %q: %w", f.Name, types.ErrDuplicateName)
		}

		info, err := fs.Stat(fsys, f.Path)
		if err != nil {
			return nil, fmt.Errorf("manifest entry %q has no backing file at %s: %w", f.Name, f.Path, err)
		}
		if info.Size() != f.Size {
			return nil, fmt.Errorf("manifest entry %q: recorded size %d, file is %d bytes", f.Name, f.Size, info.Size())
		}

		c.byName[f.Name] = len(c.fixtures)
		c.fixtures = append(c.fixtures, f)
	}

	// Stable name order regardless of manifest order
	sort.Slice(c.fixtures, func(i, j int) bool {
		return c.fixtures[i].Name < c.fixtures[j].Name
	})
	for i, f := range c.fixtures {
		c.byName[f.Name] = i
	}

	return c, nil
}

// Len returns the number of fixtures in the catalog
func (c *Corpus) Len() int {
	return len(c.fixtures)
}

// List returns all catalog entries in stable name order
func (c *Corpus) List() []types.Fixture {
	out := make([]types.Fixture, len(c.fixtures))
	copy(out, c.fixtures)
	return out
}

// Get returns the catalog entry for name
func (c *Corpus) Get(name string) (types.Fixture, error) {
	i, ok := c.byName[name]
	if !ok {
		return types.Fixture{}, fmt.Errorf("%q: %w", name, types.ErrFixtureNotFound)
	}
	return c.fixtures[i], nil
}

// ByLanguage returns the catalog entries for one language, in name order
func (c *Corpus) ByLanguage(lang types.Language) []types.Fixture {
	var out []types.Fixture
	for _, f := range c.fixtures {
		if f.Language == lang {
			out = append(out, f)
		}
	}
	return out
}

// Languages returns the distinct languages present, in stable order
func (c *Corpus) Languages() []types.Language {
	seen := make(map[types.Language]bool, len(c.fixtures))
	for _, f := range c.fixtures {
		seen[f.Language] = true
	}

	var out []types.Language
	for _, lang := range types.AllLanguages() {
		if seen[lang] {
			out = append(out, lang)
		}
	}
	return out
}

// Content returns a copy of the fixture's embedded bytes
func (c *Corpus) Content(name string) ([]byte, error) {
	f, err := c.Get(name)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(c.fsys, f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %q: %w", name, err)
	}
	return data, nil
}
