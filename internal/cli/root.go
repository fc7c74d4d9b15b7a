package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/buildinfo"
	"github.com/matzehuels/graphwalk/pkg/config"
	"github.com/matzehuels/graphwalk/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the user config is loaded and the logger is
// attached to the command context. When the logger is at debug level the
// pipeline and cache hooks are routed to it as well.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "graphwalk runs uninformed searches over weighted graphs",
		Long: `graphwalk loads an undirected weighted graph and explores it with
depth-first or breadth-first search, recording which vertices each
iteration generated and inspected.

Results can be printed as a table, exported as JSON, drawn with Graphviz
or stepped through interactively.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.heuristicCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config and wires logging. A level raised by --verbose
// is kept; otherwise the configured level applies.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		// "config" subcommands must still work to repair a broken file.
		if !underConfigCommand(cmd) {
			return err
		}
		c.Logger.Warn("ignoring invalid config", "error", err)
		cfg = config.Default()
	}
	c.Config = cfg
	if c.Logger.GetLevel() > LogDebug {
		c.SetLogLevel(cfg.Level())
	}

	if c.Logger.GetLevel() <= LogDebug {
		hooks := newLogHooks(c.Logger)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

func underConfigCommand(cmd *cobra.Command) bool {
	for ; cmd != nil; cmd = cmd.Parent() {
		if cmd.Name() == "config" {
			return true
		}
	}
	return false
}
