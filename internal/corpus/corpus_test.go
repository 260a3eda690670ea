package corpus

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecorpus/fixtures/pkg/types"
)

func TestLoadEmbeddedCorpus(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, c.Len())

	// List is name-ordered
	names := make([]string, 0, c.Len())
	for _, f := range c.List() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"SampleClass.java", "sample.cpp", "sample.go", "sample.py", "sample.rs"}, names)
}

func TestGet(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	f, err := c.Get("sample.py")
	require.NoError(t, err)
	assert.Equal(t, types.LangPython, f.Language)
	assert.Equal(t, "testdata/sample.py", f.Path)
	assert.Equal(t, int64(959), f.Size)
	assert.NoError(t, f.Validate())
}

func TestGetUnknownName(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	_, err = c.Get("nonexistent.py")
	assert.ErrorIs(t, err, types.ErrFixtureNotFound)

	_, err = c.Content("nonexistent.py")
	assert.ErrorIs(t, err, types.ErrFixtureNotFound)
}

func TestByLanguage(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	// One fixture per language in the shipped corpus
	for _, lang := range types.AllLanguages() {
		fixtures := c.ByLanguage(lang)
		require.Len(t, fixtures, 1, "language %s", lang)
		assert.Equal(t, lang, fixtures[0].Language)
	}

	assert.Empty(t, c.ByLanguage(types.Language("cobol")))
}

func TestLanguages(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, types.AllLanguages(), c.Languages())
}

func TestContentSize(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, f := range c.List() {
		content, err := c.Content(f.Name)
		require.NoError(t, err)
		assert.Equal(t, f.Size, int64(len(content)), "fixture %s", f.Name)
	}
}

func TestContentReturnsCopy(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	first, err := c.Content("sample.py")
	require.NoError(t, err)
	first[0] = 'X'

	second, err := c.Content("sample.py")
	require.NoError(t, err)
	assert.NotEqual(t, byte('X'), second[0])
}

const testDigest = "1f75d7b920aaed62c5f81414a68a85fa1c1126e5ca10ae80f116a994eea773cb"

func testFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"testdata/sample.py": &fstest.MapFile{
			Data: []byte(strings.Repeat("x", 959)),
		},
	}
}

func TestLoadRejectsDuplicateNames(t *testing.T) {
	raw := []byte(`fixtures:
  - {name: sample.py, language: python, path: testdata/sample.py, sha256: ` + testDigest + `, size: 959}
  - {name: sample.py, language: python, path: testdata/sample.py, sha256: ` + testDigest + `, size: 959}
`)

	_, err := load(raw, testFS(t))
	assert.ErrorIs(t, err, types.ErrDuplicateName)
}

func TestLoadRejectsInvalidEntry(t *testing.T) {
	raw := []byte(`fixtures:
  - {name: sample.py, language: cobol, path: testdata/sample.py, sha256: ` + testDigest + `, size: 959}
`)

	_, err := load(raw, testFS(t))
	assert.ErrorIs(t, err, types.ErrInvalidLanguage)
}

func TestLoadRejectsMissingBackingFile(t *testing.T) {
	raw := []byte(`fixtures:
  - {name: ghost.py, language: python, path: testdata/ghost.py, sha256: ` + testDigest + `, size: 959}
`)

	_, err := load(raw, testFS(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no backing file")
}

func TestLoadRejectsSizeMismatch(t *testing.T) {
	raw := []byte(`fixtures:
  - {name: sample.py, language: python, path: testdata/sample.py, sha256: ` + testDigest + `, size: 10}
`)

	_, err := load(raw, testFS(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recorded size")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := load([]byte("fixtures: [\n"), testFS(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}
