// Package cli implements the fontify command-line interface.
//
// The commands render text through fontify's style catalog, manage pinned
// styles and copy history, and run an interactive generator in the
// terminal. The CLI is built using cobra and logs through
// charmbracelet/log; --verbose switches to debug level, which also turns
// on the render and state event log.
//
// # Commands
//
//   - convert: render a text in every style of a category
//   - apply: render a text in one style, optionally copying it
//   - styles: list the style catalog
//   - plain: fold styled text back to plain ASCII
//   - symbols: print the symbol collections
//   - pin, history: manage persisted state
//   - tui: interactive generator
//   - config: inspect or create the config file
package cli

import (
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fontify/pkg/buildinfo"
	"github.com/matzehuels/fontify/pkg/config"
	"github.com/matzehuels/fontify/pkg/observability"
	"github.com/matzehuels/fontify/pkg/pipeline"
	"github.com/matzehuels/fontify/pkg/state"
	"github.com/matzehuels/fontify/pkg/style"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "fontify"

	// outputWidth is the widest rendered cell in table output, in columns.
	outputWidth = 48
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any command runs.
	Config *config.Config

	configPath string
	statePath  string
	stdin      io.Reader
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		stdin:  os.Stdin,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Fontify turns plain text into fancy Unicode letters",
		Long:         `Fontify renders text in cursive, gothic, tattoo, graffiti and other Unicode letter styles, ready to paste into social profiles, chats and games.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg

			hooks := logHooks{logger: c.Logger}
			observability.SetRenderHooks(hooks)
			observability.SetStateHooks(hooks)

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.Path()+")")

	// Register all subcommands
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.plainCommand())
	root.AddCommand(c.symbolsCommand())
	root.AddCommand(c.pinCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. A non-zero seed makes
// the Zalgo styles reproducible.
func (c *CLI) newRunner(seed uint64) (*pipeline.Runner, error) {
	if seed == 0 {
		return pipeline.NewRunner(nil, c.Logger), nil
	}
	reg, err := style.New(style.WithSource(rand.New(rand.NewPCG(seed, seed))))
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(reg, c.Logger), nil
}

// newStore opens the state file with the configured history size.
func (c *CLI) newStore() *state.FileStore {
	return state.NewFileStore(c.statePath, c.Config.HistorySize)
}

// =============================================================================
// Input
// =============================================================================

// readText joins the positional arguments, or reads stdin when there are
// none and stdin is not a terminal. A single trailing newline is dropped.
func (c *CLI) readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if f, ok := c.stdin.(*os.File); ok && term.IsTerminal(f.Fd()) {
		return "", nil
	}
	if c.stdin == nil {
		return "", nil
	}
	data, err := io.ReadAll(c.stdin)
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
