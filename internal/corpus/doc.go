// Package corpus carries the embedded multi-language fixture files and the
// catalog describing them.
//
// Fixtures are sample source declarations (classes, free functions, async
// functions, a lambda) consumed as raw text by external code-analysis
// tooling. The corpus treats them as opaque bytes end to end: nothing in this
// module parses, tokenizes, or otherwise interprets fixture content. Each
// catalog entry records a golden SHA-256 digest; the fixture files are
// contract artifacts and must stay byte-stable.
//
// # Basic Usage
//
//	c, err := corpus.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, f := range c.List() {
//	    fmt.Printf("%s (%s, %d bytes)\n", f.Name, f.Language, f.Size)
//	}
//
//	content, err := c.Content("sample.py")
//
// # Catalog
//
// The catalog lives in manifest.yaml, embedded alongside the fixture bytes.
// Load rejects manifests with duplicate names, invalid entries, or entries
// whose backing file is absent from the embedded filesystem, so a Corpus
// value is structurally sound by construction. Digest checking is a separate
// concern handled by the golden package.
package corpus
