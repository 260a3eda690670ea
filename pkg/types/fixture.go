package types

import "strings"

// Language identifies the source language a fixture is written in
type Language string

const (
	LangPython Language = "python"
	LangGo     Language = "go"
	LangCpp    Language = "cpp"
	LangJava   Language = "java"
	LangRust   Language = "rust"
)

// AllLanguages lists every language the corpus may carry, in stable order
func AllLanguages() []Language {
	return []Language{LangCpp, LangGo, LangJava, LangPython, LangRust}
}

// Validate checks if the language is one the corpus knows about
func (l Language) Validate() error {
	switch l {
	case LangPython, LangGo, LangCpp, LangJava, LangRust:
		return nil
	default:
		return ErrInvalidLanguage
	}
}

// Fixture is a catalog entry for one sample source file in the corpus.
//
// A fixture is raw text consumed by external tooling; the corpus never
// interprets its content. SHA256 is the golden digest of the exact bytes:
// any change to the file is a contract break, not an edit.
type Fixture struct {
	// Identification
	Name     string   `yaml:"name"`
	Language Language `yaml:"language"`

	// Location within the embedded corpus, relative to the corpus root
	Path string `yaml:"path"`

	// Golden content digest (hex-encoded SHA-256) and size in bytes
	SHA256 string `yaml:"sha256"`
	Size   int64  `yaml:"size"`

	// Description of the declaration shapes the fixture exercises
	Description string `yaml:"description,omitempty"`
}

// Validate performs comprehensive validation of the catalog entry
func (f *Fixture) Validate() error {
	if f.Name == "" {
		return ErrEmptyFixtureName
	}

	if strings.ContainsAny(f.Name, "/\\") {
		return ErrInvalidFixtureName
	}

	if err := f.Language.Validate(); err != nil {
		return err
	}

	if f.Path == "" {
		return ErrEmptyFixturePath
	}

	// Digests are hex-encoded SHA-256: 64 lowercase hex characters
	if len(f.SHA256) != 64 {
		return ErrInvalidDigest
	}
	for _, c := range f.SHA256 {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return ErrInvalidDigest
		}
	}

	if f.Size <= 0 {
		return ErrInvalidSize
	}

	return nil
}
