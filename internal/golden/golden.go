// Package golden enforces the corpus's one hard contract: fixture files are
// byte-stable. Every catalog entry carries a golden SHA-256 digest, and this
// package checks observed bytes against it, either for the embedded corpus
// itself or for a copy materialized on disk. Content is hashed, never
// interpreted.
package golden

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/codecorpus/fixtures/internal/corpus"
	"github.com/codecorpus/fixtures/pkg/types"
)

// DefaultWorkers bounds concurrent digest checks
const DefaultWorkers = 4

// Verifier checks fixture bytes against the catalog's golden digests
type Verifier struct {
	corpus  *corpus.Corpus
	workers int
}

// New creates a Verifier over the given corpus
func New(c *corpus.Corpus) *Verifier {
	return &Verifier{
		corpus:  c,
		workers: DefaultWorkers,
	}
}

// SetWorkers overrides the concurrent check bound; values < 1 are ignored
func (v *Verifier) SetWorkers(n int) {
	if n >= 1 {
		v.workers = n
	}
}

// Verify checks one embedded fixture against its golden digest
func (v *Verifier) Verify(name string) (types.VerifyResult, error) {
	f, err := v.corpus.Get(name)
	if err != nil {
		return types.VerifyResult{}, err
	}

	content, err := v.corpus.Content(name)
	if err != nil {
		return types.VerifyResult{}, err
	}

	return resultFor(f, content), nil
}

// VerifyAll checks every embedded fixture concurrently. I/O failures are
// accumulated in the report rather than aborting the run; only context
// cancellation stops it early.
func (v *Verifier) VerifyAll(ctx context.Context) (*types.VerifyReport, error) {
	return v.run(ctx, func(f types.Fixture) (types.VerifyResult, error) {
		content, err := v.corpus.Content(f.Name)
		if err != nil {
			return types.VerifyResult{}, err
		}
		return resultFor(f, content), nil
	})
}

// VerifyDir checks an on-disk copy of the corpus rooted at dir, as produced
// by an export. A fixture file that is absent reports missing; one whose
// bytes differ reports modified.
func (v *Verifier) VerifyDir(ctx context.Context, dir string) (*types.VerifyReport, error) {
	return v.run(ctx, func(f types.Fixture) (types.VerifyResult, error) {
		actual, err := hashFile(filepath.Join(dir, filepath.FromSlash(f.Path)))
		if errors.Is(err, os.ErrNotExist) {
			return types.VerifyResult{
				Name:   f.Name,
				Status: types.StatusMissing,
				Want:   f.SHA256,
			}, nil
		}
		if err != nil {
			return types.VerifyResult{}, err
		}

		res := types.VerifyResult{
			Name:   f.Name,
			Status: types.StatusModified,
			Actual: actual,
			Want:   f.SHA256,
		}
		if actual == f.SHA256 {
			res.Status = types.StatusOK
		}
		return res, nil
	})
}

// run fans the per-fixture check across a bounded worker pool
func (v *Verifier) run(ctx context.Context, check func(types.Fixture) (types.VerifyResult, error)) (*types.VerifyReport, error) {
	report := &types.VerifyReport{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.workers)

	for _, f := range v.corpus.List() {
		f := f
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := check(f)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.AddError(f.Name, err)
				return nil
			}
			report.Results = append(report.Results, res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Worker completion order is nondeterministic; report in name order
	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Name < report.Results[j].Name
	})
	sort.Strings(report.Errors)

	return report, nil
}

// resultFor compares in-memory fixture bytes against the golden digest
func resultFor(f types.Fixture, content []byte) types.VerifyResult {
	sum := sha256.Sum256(content)
	actual := hex.EncodeToString(sum[:])

	res := types.VerifyResult{
		Name:   f.Name,
		Status: types.StatusModified,
		Actual: actual,
		Want:   f.SHA256,
	}
	if actual == f.SHA256 {
		res.Status = types.StatusOK
	}
	return res
}

// hashFile returns the hex SHA-256 of a file's contents
func hashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
