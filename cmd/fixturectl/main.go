// Package main is the entry point for fixturectl, the command-line interface
// to the extraction-fixture corpus. It exposes the catalog (list, show),
// golden-digest verification (verify), and on-disk materialization (export).
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codecorpus/fixtures/internal/corpus"
	"github.com/codecorpus/fixtures/internal/export"
	"github.com/codecorpus/fixtures/internal/golden"
	"github.com/codecorpus/fixtures/pkg/types"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Diagnostics go to stderr; stdout is reserved for fixture bytes and
	// machine-readable listings
	log.SetOutput(os.Stderr)

	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	c, err := corpus.Load()
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	return newRootCommand(c).Execute()
}

func newRootCommand(c *corpus.Corpus) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fixturectl",
		Short: "Multi-language extraction-fixture corpus tool",
		Long: `fixturectl manages a corpus of sample source files used as raw-text
input by code-analysis and method-extraction tooling.

Fixtures are contract artifacts: each carries a golden SHA-256 digest and must
stay byte-stable. fixturectl lists the catalog, prints fixture contents,
verifies digests (embedded or on disk), and exports the corpus for consumers.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Registering Version only covers the --version flag; the template makes
	// it print the same metadata block as the version subcommand
	rootCmd.SetVersionTemplate(versionInfo())

	rootCmd.AddCommand(
		newListCommand(c),
		newShowCommand(c),
		newVerifyCommand(c),
		newExportCommand(c),
		newVersionCommand(),
	)

	return rootCmd
}

func versionInfo() string {
	return fmt.Sprintf("fixturectl\nVersion: %s\nBuild Time: %s\n", version, buildTime)
}

func newListCommand(c *corpus.Corpus) *cobra.Command {
	var langFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the fixture catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			fixtures := c.List()
			if langFilter != "" {
				lang := types.Language(langFilter)
				if err := lang.Validate(); err != nil {
					return fmt.Errorf("--lang %q: %w", langFilter, err)
				}
				fixtures = c.ByLanguage(lang)
			}

			for _, f := range fixtures {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-8s %6d  %s\n",
					f.Name, f.Language, f.Size, f.SHA256[:12])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&langFilter, "lang", "", "only list fixtures for one language (python, go, cpp, java, rust)")

	return cmd
}

func newShowCommand(c *corpus.Corpus) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a fixture's exact bytes to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := c.Content(args[0])
			if err != nil {
				return err
			}

			// Exact bytes, no trailing newline added
			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}
}

func newVerifyCommand(c *corpus.Corpus) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check fixtures against their golden digests",
		Long: `Verify checks every fixture against the golden SHA-256 digest recorded in
the catalog. Without flags it self-checks the embedded corpus; with --dir it
checks an on-disk copy, such as a previous export.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := golden.New(c)
			v.SetWorkers(workersFromEnv())

			var (
				report *types.VerifyReport
				err    error
			)
			if dir != "" {
				report, err = v.VerifyDir(cmd.Context(), dir)
			} else {
				report, err = v.VerifyAll(cmd.Context())
			}
			if err != nil {
				return err
			}

			for _, res := range report.Results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", res.Status, res.Name)
			}
			for _, msg := range report.Errors {
				log.Printf("check failed: %s", msg)
			}

			if !report.Clean() {
				return fmt.Errorf("%d of %d fixtures drifted or could not be checked",
					len(report.Drifted())+len(report.Errors), c.Len())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "verify an on-disk corpus copy instead of the embedded one")

	return cmd
}

func newExportCommand(c *corpus.Corpus) *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Materialize the corpus under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := export.New(c)
			e.SetWorkers(workersFromEnv())

			stats, err := e.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			log.Printf("Exported %d fixtures to %s (%d written, %d up to date)",
				stats.Total(), args[0], stats.Written, stats.Skipped)
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build metadata",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionInfo())
		},
	}
}

// workersFromEnv reads the FIXTURECTL_WORKERS override, if any
func workersFromEnv() int {
	raw := os.Getenv("FIXTURECTL_WORKERS")
	if raw == "" {
		return 0
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		log.Printf("ignoring invalid FIXTURECTL_WORKERS=%q", raw)
		return 0
	}
	return n
}
