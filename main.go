package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phravins/gitie/internal/ai"
	"github.com/phravins/gitie/internal/app"
	"github.com/phravins/gitie/internal/config"
	apperrors "github.com/phravins/gitie/internal/errors"
	"github.com/phravins/gitie/internal/git"
	"github.com/phravins/gitie/internal/logger"
	"github.com/phravins/gitie/internal/ui"
)

const version = "0.2.0"

func main() {
	log := logger.New()

	// Configuration always resolves before any branch executes, even for
	// pure passthrough invocations.
	resolver, err := config.NewResolver(log)
	if err != nil {
		fail(err)
	}
	cfg, err := resolver.Resolve()
	if err != nil {
		fail(err)
	}

	bridge := git.NewBridge(log)
	client := ai.NewClient(cfg, log)
	application := app.New(cfg, bridge, client, log)

	rootCmd := &cobra.Command{
		Use:     "gitie",
		Version: version,
		Short:   "Git with AI support",
		Long: `gitie sits in front of git: most invocations pass through untouched,
while --ai asks a language model to explain commands or their output, and
'gitie commit --ai' generates a commit message from the staged changes.`,
		Args: cobra.ArbitraryArgs,
		// Help flags route to git, and --ai combines with arbitrary git
		// commands, so the enhancer grammar owns every argument.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.Run(cmd.Context(), args)
		},
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	os.Exit(apperrors.ExitCode(err))
}
