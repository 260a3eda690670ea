// Package types provides shared type definitions for the fixture corpus.
//
// This package defines the domain types used across the corpus components:
// catalog entries, verification outcomes, and export statistics.
//
// # Core Types
//
// Fixture is a catalog entry describing one sample source file. Its SHA256
// field is the golden digest of the file's exact bytes:
//
//	fixture := &types.Fixture{
//	    Name:     "sample.py",
//	    Language: types.LangPython,
//	    Path:     "testdata/sample.py",
//	    SHA256:   "1f75d7b9...",
//	    Size:     959,
//	}
//
// VerifyResult and VerifyReport carry the outcome of checking fixture bytes
// against golden digests:
//
//	if !report.Clean() {
//	    for _, res := range report.Drifted() {
//	        fmt.Printf("%s: %s\n", res.Name, res.Status)
//	    }
//	}
//
// # Validation
//
// Catalog types implement validation methods to ensure integrity:
//
//	if err := fixture.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package types
