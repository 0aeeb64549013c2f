// config.go implements "docsite config".
//
// Design: local config (.docsite/config.yaml) wins over global
// (~/.docsite/config.yaml), the way git layers its config. Writes go back to
// whichever file was read; --local forces the local file even before it
// exists.

package core

import (
	"fmt"
	"slices"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/config"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  docsite config                          # show config
  docsite config build.command            # show one value
  docsite config build.command "mkdocs build --strict"

Configuration locations:
  Global: ~/.docsite/config.yaml
  Local:  .docsite/config.yaml

Uses local config if it exists, otherwise global.
Use --local to write the local file.`,
		Args:      cobra.MaximumNArgs(2),
		ValidArgs: config.ValidKeys(),
		RunE:      runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.docsite/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scope := "global"
	if cfg.Scope() == config.ScopeLocal {
		scope = "local"
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		log.Event("core:config", "list").Author(cmd.Author()).Write(nil)
		if cmd.JSON() {
			return cmd.PrintJSON(all)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Author(cmd.Author()).Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "value": v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Author(cmd.Author()).Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}
		saveErr := cfg.Save()
		// values are not logged; http.api_key is a secret
		log.Event("core:config", "set").Author(cmd.Author()).Detail("key", args[0]).Detail("scope", scope).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "scope": scope})
		}
		fmt.Fprintf(cmd.Out(), "Set %s (%s)\n", args[0], scope)
	}
	return nil
}
