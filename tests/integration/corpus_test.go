package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecorpus/fixtures/internal/corpus"
	"github.com/codecorpus/fixtures/internal/export"
	"github.com/codecorpus/fixtures/internal/golden"
	"github.com/codecorpus/fixtures/pkg/types"
)

// TestExportVerifyRoundtrip walks the full consumer hand-off path: export the
// corpus, verify the copy, drift it, and confirm verification and a repair
// export both see exactly the drifted fixture.
func TestExportVerifyRoundtrip(t *testing.T) {
	c, err := corpus.Load()
	require.NoError(t, err)

	dir := t.TempDir()
	ctx := context.Background()

	// Export the whole corpus
	stats, err := export.New(c).Export(ctx, dir)
	require.NoError(t, err)
	require.Equal(t, c.Len(), stats.Written)

	// Fresh export verifies clean
	v := golden.New(c)
	report, err := v.VerifyDir(ctx, dir)
	require.NoError(t, err)
	require.True(t, report.Clean())

	// Tamper with one fixture, delete another
	modified := filepath.Join(dir, "testdata", "sample.py")
	require.NoError(t, os.WriteFile(modified, []byte("def changed(): pass\n"), 0o644))
	require.NoError(t, os.Remove(filepath.Join(dir, "testdata", "SampleClass.java")))

	report, err = v.VerifyDir(ctx, dir)
	require.NoError(t, err)
	assert.False(t, report.Clean())

	drifted := report.Drifted()
	require.Len(t, drifted, 2)
	assert.Equal(t, "SampleClass.java", drifted[0].Name)
	assert.Equal(t, types.StatusMissing, drifted[0].Status)
	assert.Equal(t, "sample.py", drifted[1].Name)
	assert.Equal(t, types.StatusModified, drifted[1].Status)

	// A repair export rewrites exactly the two drifted fixtures
	stats, err = export.New(c).Export(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Written)
	assert.Equal(t, c.Len()-2, stats.Skipped)

	report, err = v.VerifyDir(ctx, dir)
	require.NoError(t, err)
	assert.True(t, report.Clean())
}

// TestEmbeddedCorpusSelfCheck is the corpus's own byte-stability gate: every
// embedded fixture must match the golden digest recorded in the manifest.
func TestEmbeddedCorpusSelfCheck(t *testing.T) {
	c, err := corpus.Load()
	require.NoError(t, err)

	report, err := golden.New(c).VerifyAll(context.Background())
	require.NoError(t, err)

	require.True(t, report.Clean())
	for _, res := range report.Results {
		assert.Equal(t, types.StatusOK, res.Status, "fixture %s", res.Name)
	}
}
