package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"uscl/internal/diag"
	"uscl/internal/diagfmt"
	"uscl/internal/driver"
	"uscl/internal/project"
	"uscl/internal/source"
	"uscl/internal/token"
	"uscl/internal/ui"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] path",
	Short: "Tokenize a USCL source file or directory",
	Long:  `Tokenize scans a .ul source file (or every .ul file under a directory) into its token stream`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel scan workers for directories (0 = project default)")
	tokenizeCmd.Flags().Bool("no-cache", false, "bypass the token cache")
	tokenizeCmd.Flags().Bool("interactive", false, "browse the token stream interactively")
}

// tokenizeConfig merges flags with uscl.toml defaults. Flags win; the
// manifest is optional.
type tokenizeConfig struct {
	format         string
	jobs           int
	maxDiagnostics int
	noCache        bool
	interactive    bool
	useColor       bool
	timings        bool
	quiet          bool
}

func resolveTokenizeConfig(cmd *cobra.Command, path string) (tokenizeConfig, error) {
	var cfg tokenizeConfig
	var err error

	if cfg.format, err = cmd.Flags().GetString("format"); err != nil {
		return cfg, fmt.Errorf("failed to get format flag: %w", err)
	}
	if cfg.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return cfg, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if cfg.noCache, err = cmd.Flags().GetBool("no-cache"); err != nil {
		return cfg, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if cfg.interactive, err = cmd.Flags().GetBool("interactive"); err != nil {
		return cfg, fmt.Errorf("failed to get interactive flag: %w", err)
	}
	if cfg.maxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err != nil {
		return cfg, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if cfg.timings, err = cmd.Root().PersistentFlags().GetBool("timings"); err != nil {
		return cfg, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if cfg.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return cfg, fmt.Errorf("failed to get quiet flag: %w", err)
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return cfg, fmt.Errorf("failed to get color flag: %w", err)
	}
	cfg.useColor = colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))

	// Fill remaining defaults from the nearest uscl.toml, if any.
	if manifestPath, ferr := project.FindManifest(filepath.Dir(path)); ferr == nil {
		manifest, lerr := project.LoadManifest(manifestPath)
		if lerr != nil {
			return cfg, lerr
		}
		if cfg.maxDiagnostics <= 0 {
			cfg.maxDiagnostics = manifest.Tokenize.MaxDiagnostics
		}
		if cfg.jobs <= 0 {
			cfg.jobs = manifest.Tokenize.Jobs
		}
	}
	if cfg.maxDiagnostics <= 0 {
		cfg.maxDiagnostics = 100
	}
	return cfg, nil
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := resolveTokenizeConfig(cmd, path)
	if err != nil {
		return err
	}
	switch cfg.format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", cfg.format)
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return tokenizeDirectory(cmd, path, cfg)
	}
	return tokenizeFile(cmd, path, cfg)
}

func tokenizeFile(cmd *cobra.Command, path string, cfg tokenizeConfig) error {
	var cache *driver.TokenCache
	if !cfg.noCache {
		// A broken cache dir only costs the speedup.
		cache, _ = driver.OpenTokenCache("uscl")
	}

	result, err := driver.TokenizeCached(cmd.Context(), path, cfg.maxDiagnostics, cache)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, cfg)

	if cfg.timings && !cfg.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "%-30s total %.2f ms\n", path, result.Timing.TotalMS)
	}

	if cfg.interactive {
		return ui.RunViewer(path, result.Tokens)
	}
	return writeTokens(cmd.OutOrStdout(), result.Tokens, cfg.format)
}

func tokenizeDirectory(cmd *cobra.Command, dir string, cfg tokenizeConfig) error {
	if cfg.interactive {
		return fmt.Errorf("--interactive works on single files only")
	}

	fileSet, results, err := driver.TokenizeDir(cmd.Context(), dir, cfg.maxDiagnostics, cfg.jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		printDiagnostics(cmd.ErrOrStderr(), res.Bag, fileSet, cfg)
		if cfg.format == "pretty" && !cfg.quiet {
			fmt.Fprintf(out, "== %s\n", res.Path)
		}
		if err := writeTokens(out, res.Tokens, cfg.format); err != nil {
			return err
		}
	}
	return nil
}

func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, cfg tokenizeConfig) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{Color: cfg.useColor})
}

func writeTokens(w io.Writer, tokens []token.Token, format string) error {
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(w, tokens)
	case "json":
		return diagfmt.FormatTokensJSON(w, tokens)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(w, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
