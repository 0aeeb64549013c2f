/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to keep cobra setup apart from opening
// the site and wiring extensions.
//
// Design: PersistentPreRunE opens the site lazily. Only commands that need
// it trigger extension init, so config, guide and version work in a
// directory without mkdocs.yml. noSiteCommands controls which commands skip
// it.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/docsite/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docsite",
	Short: "Manage an MkDocs documentation site",
	Long: `Find, validate, create and edit the pages of an MkDocs site by their
navigation names, then build and package it.

Run 'docsite guide' for an overview.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		if err := applySiteFlag(); err != nil {
			return err
		}

		if author == "" {
			author = detectAuthor()
		}

		name := topLevelCmdName(cmd)
		if authorRequiredCommands[name] && author == "" {
			return fmt.Errorf("author not configured (checked .docsite/config.yaml and ~/.docsite/config.yaml)\n\nRun: docsite config author.name \"Your Name\"\n\nOr pass --author.")
		}

		if !noSiteCommands[name] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return err
			}
		}
		return nil
	},
}

// topLevelCmdName returns the name of the direct child of root that cmd
// belongs to.
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command. It opens the audit log, registers extension
// commands and closes the site service before exiting. Any error exits 1.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	registerExtensions()
	err := rootCmd.Execute()

	if extService != nil {
		if closeErr := extService.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing service: %v\n", closeErr)
		}
	}

	if err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
