package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hecke/hecke"
	"github.com/katalvlaran/hecke/progress"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// It is called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// defaultGroup is the catalog entry used when neither --group nor
// --generators is given.
const defaultGroup = "A2"

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	group      string
	generators string
	verbose    bool
}

// Execute runs the hecke CLI under ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. The logger is attached to the
// command context in PersistentPreRun and writes to the command's stderr.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:          "hecke",
		Short:        "Explore Hecke algebras and Kazhdan–Lusztig bases of Coxeter groups",
		Long:         `hecke generates finite Coxeter groups from signed permutations and prints their Kazhdan–Lusztig bases, dual bases, left/right KL orders and degree filtrations.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("hecke %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().StringVarP(&opts.group, "group", "g", defaultGroup, "catalog group (A1–A5, B2–B5, D4, D5, G2)")
	root.PersistentFlags().StringVar(&opts.generators, "generators", "", "TOML file with a [generators] table; overrides --group")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging and progress reports")

	root.AddCommand(newGroupsCmd())
	root.AddCommand(newElementsCmd(opts))
	root.AddCommand(newBasisCmd(opts, "kl", "Print the Kazhdan–Lusztig basis", "C", (*hecke.Algebra).KLBasis))
	root.AddCommand(newBasisCmd(opts, "dual-kl", "Print the dual Kazhdan–Lusztig basis", "D", (*hecke.Algebra).DualKLBasis))
	root.AddCommand(newOrderCmd(opts))
	root.AddCommand(newFiltrationCmd(opts))

	return root
}

// loadAlgebra builds the selected group and its algebra. The algebra's
// builds stop when the command context is canceled; with --verbose they
// report progress to the context logger.
func loadAlgebra(cmd *cobra.Command, opts *globalOptions) (*hecke.Algebra, string, error) {
	logger := loggerFromContext(cmd.Context())
	t := newTimer(logger)

	g, name, err := buildGroup(opts.group, opts.generators)
	if err != nil {
		return nil, "", err
	}
	t.done(fmt.Sprintf("generated %s: %d elements, rank %d", name, g.Size(), g.Rank()))

	algOpts := []hecke.Option{hecke.WithContext(cmd.Context())}
	if opts.verbose {
		algOpts = append(algOpts, hecke.WithObserver(progress.NewLogObserver(logger)))
	}
	a, err := hecke.NewAlgebra(g, algOpts...)
	if err != nil {
		return nil, "", err
	}

	return a, name, nil
}
