// Package export materializes the embedded corpus onto disk for the external
// tooling that consumes fixtures as raw text. Exports are incremental (a
// destination already carrying the golden bytes is left alone) and atomic per
// file (temp file plus rename), so a consumer never observes a half-written
// fixture.
package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/codecorpus/fixtures/internal/corpus"
	"github.com/codecorpus/fixtures/pkg/types"
)

// DefaultWorkers bounds concurrent fixture writes
const DefaultWorkers = 4

// Exporter writes the corpus under a destination directory
type Exporter struct {
	corpus  *corpus.Corpus
	workers int
}

// New creates an Exporter over the given corpus
func New(c *corpus.Corpus) *Exporter {
	return &Exporter{
		corpus:  c,
		workers: DefaultWorkers,
	}
}

// SetWorkers overrides the concurrent write bound; values < 1 are ignored
func (e *Exporter) SetWorkers(n int) {
	if n >= 1 {
		e.workers = n
	}
}

// Export writes every fixture under dir, preserving the corpus-relative
// layout. Destinations whose bytes already match the golden digest are
// skipped. The first failure aborts the run.
func (e *Exporter) Export(ctx context.Context, dir string) (types.ExportStats, error) {
	var written, skipped int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for _, f := range e.corpus.List() {
		f := f
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			dest := filepath.Join(dir, filepath.FromSlash(f.Path))

			upToDate, err := matchesGolden(dest, f.SHA256)
			if err != nil {
				return fmt.Errorf("fixture %q: %w", f.Name, err)
			}
			if upToDate {
				atomic.AddInt32(&skipped, 1)
				return nil
			}

			content, err := e.corpus.Content(f.Name)
			if err != nil {
				return err
			}

			if err := writeAtomic(dest, content); err != nil {
				return fmt.Errorf("fixture %q: %w", f.Name, err)
			}

			atomic.AddInt32(&written, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return types.ExportStats{}, err
	}

	return types.ExportStats{
		Written: int(written),
		Skipped: int(skipped),
	}, nil
}

// matchesGolden reports whether the file at dest already carries the golden
// bytes. A missing file is simply not up to date.
func matchesGolden(dest, want string) (bool, error) {
	file, err := os.Open(dest)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer func() { _ = file.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, file); err != nil {
		return false, err
	}

	return hex.EncodeToString(h.Sum(nil)) == want, nil
}

// writeAtomic writes content to dest via a temp file in the same directory
func writeAtomic(dest string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, dest); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return nil
}
