/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go so extensions can read flag values and write
// output through exported accessors without touching cobra internals.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jpl-au/docsite/internal/config"
	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

var (
	output  string
	author  string
	siteDir string
)

// out is the output writer for commands. Tests can replace it.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// Output returns the output format flag value.
func Output() string { return output }

// Author returns the author recorded in the audit log.
func Author() string { return author }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON reports whether JSON output was requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Does nothing unless JSON output was requested.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints err as {"error": ...} in JSON mode and returns nil
// so cobra does not print it again. Otherwise it returns err unchanged.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

// applySiteFlag makes --site the site root for this process. It is
// exported through MKDOCS so that every config.Load, including the one
// serve does on its own, resolves the same root.
func applySiteFlag() error {
	if siteDir == "" {
		return nil
	}
	abs, err := filepath.Abs(siteDir)
	if err != nil {
		return fmt.Errorf("--site %q: %w", siteDir, err)
	}
	return os.Setenv(config.EnvRoot, abs)
}

// detectAuthor returns author.name from config, or "".
func detectAuthor() string {
	if cfg, err := config.Load(); err == nil && cfg.Author.Name != "" {
		return cfg.Author.Name
	}
	return ""
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&author, "author", "a", "", "Author recorded in the audit log")
	rootCmd.PersistentFlags().StringVar(&siteDir, "site", "", "Site root holding mkdocs.yml (overrides MKDOCS)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
