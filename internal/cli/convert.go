package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/fontify/pkg/convert"
	"github.com/matzehuels/fontify/pkg/errors"
	"github.com/matzehuels/fontify/pkg/pipeline"
	"github.com/matzehuels/fontify/pkg/state"
	"github.com/matzehuels/fontify/pkg/style"
)

// renderFlags holds the flags shared by convert, apply and tui. Empty
// values fall back to the config file.
type renderFlags struct {
	category    string
	textCase    string
	decoration  string
	readability string
	search      string
	format      string
	limit       int
	seed        uint64
	noPins      bool
}

func (f *renderFlags) register(cmd *cobra.Command, all bool) {
	cmd.Flags().StringVar(&f.textCase, "case", "", "case transform: normal, upper, lower, capitalize")
	cmd.Flags().StringVarP(&f.decoration, "decorate", "d", "", "decoration frame (see 'fontify styles --decorations')")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for the Zalgo styles (0 = random)")
	_ = cmd.RegisterFlagCompletionFunc("case", completeCases)
	_ = cmd.RegisterFlagCompletionFunc("decorate", completeDecorations)
	if !all {
		return
	}
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category: bonitas, cursivas, goticas, tatuajes, graffiti, facebook, amino")
	cmd.Flags().StringVarP(&f.readability, "readability", "r", "", "minimum readability: all, medium, high")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "only styles whose name contains this")
	cmd.Flags().IntVarP(&f.limit, "limit", "n", -1, "maximum number of styles (0 = all)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: table, plain, json, yaml")
	cmd.Flags().BoolVar(&f.noPins, "no-pins", false, "do not list pinned styles first")

	_ = cmd.RegisterFlagCompletionFunc("category", completeCategories)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{pipeline.FormatTable, pipeline.FormatPlain, pipeline.FormatJSON, pipeline.FormatYAML},
		cobra.ShellCompDirectiveNoFileComp))
}

// options merges flags over the config file.
func (c *CLI) options(f *renderFlags) (pipeline.Options, string, uint64) {
	opts := c.Config.Options()
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override((*string)(&opts.Category), f.category)
	override((*string)(&opts.Case), f.textCase)
	override((*string)(&opts.Decoration), f.decoration)
	override((*string)(&opts.MinReadability), f.readability)
	opts.Search = f.search
	if f.limit >= 0 {
		opts.Limit = f.limit
	}

	format := c.Config.Format
	override(&format, f.format)

	seed := c.Config.Seed
	if f.seed != 0 {
		seed = f.seed
	}
	return opts, format, seed
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Render text in every style of a category",
		Long: `Render text in every style of a category.

Text is taken from the arguments, or from stdin when none are given. With no
text at all a preview word is rendered instead. Pinned styles are listed first.`,
		Example: `  fontify convert Hola
  fontify convert -c goticas -d bats "Noche Eterna"
  echo 2025 | fontify convert -c tatuajes -f plain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := c.readText(args)
			if err != nil {
				return err
			}
			return c.runConvert(cmd, text, &flags)
		},
	}
	flags.register(cmd, true)
	return cmd
}

func (c *CLI) runConvert(cmd *cobra.Command, text string, flags *renderFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts, format, seed := c.options(flags)
	if err := pipeline.ValidateFormat(format); err != nil {
		return err
	}
	if !flags.noPins {
		opts.Pinned = c.loadState(cmd).Pinned
	}

	runner, err := c.newRunner(seed)
	if err != nil {
		return err
	}
	prog := newProgress(logger)
	res, err := runner.Run(ctx, text, opts)
	if err != nil {
		return err
	}
	prog.done("rendered " + res.Category.Label())

	return writeResult(cmd.OutOrStdout(), res, format)
}

// loadState reads the state file. A broken file is reported and treated
// as empty so rendering still works.
func (c *CLI) loadState(cmd *cobra.Command) *state.State {
	st, err := c.newStore().Load(cmd.Context())
	if err != nil {
		printWarning(cmd.ErrOrStderr(), "ignoring state file: %s", errors.UserMessage(err))
		return &state.State{}
	}
	return st
}

func completeCategories(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	cats := style.Categories()
	out := make([]string, len(cats))
	for i, cat := range cats {
		out[i] = string(cat) + "\t" + cat.Label()
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func completeCases(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, cs := range convert.Cases() {
		out = append(out, string(cs))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func completeDecorations(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, d := range style.Decorations() {
		out = append(out, string(d)+"\t"+d.Apply("abc"))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
