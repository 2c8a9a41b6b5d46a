package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Bibliophage305/wordle-solver/internal/platform/line"
	"github.com/Bibliophage305/wordle-solver/internal/platform/tui"
	"github.com/Bibliophage305/wordle-solver/internal/session"
	"github.com/Bibliophage305/wordle-solver/internal/solver"
)

var (
	flagConfig    string
	flagRecompute bool
	flagPlain     bool
	flagNoCache   bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Solve a puzzle interactively",
	Long: `Start a solving session. Each round the solver suggests a guess; play it
(or your own) in the game and type back the colors you got.

Result format: one digit per letter
  0 - grey (letter not in the answer)
  1 - yellow (in the answer, elsewhere)
  2 - green (right letter, right place)

A terminal gets the full-screen interface; piped input or --plain uses
simple prompts.

Examples:
  wordle play
  wordle play primel
  wordle play wordle --mode hard
  wordle play --recompute
  wordle play --config ./my_words_5.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a puzzle from an interactive menu",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a variant YAML file")
	playCmd.Flags().BoolVar(&flagRecompute, "recompute", false, "Recalculate the first guess instead of using the stored one")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use simple line prompts even in a terminal")
	playCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Do not read cached opening guesses")
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func tuiOptions() tui.Options {
	return tui.Options{
		Mode:            mode,
		UseOpeningCache: settings.UseOpeningCache && !flagNoCache,
		Workers:         settings.Workers,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	v, err := resolveVariant(name, flagConfig)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	if !flagPlain && isTerminal() {
		opts := tuiOptions()
		opts.Store = store
		return tui.Run(opts, v.ID, flagRecompute)
	}

	ctx := cmd.Context()
	sess, err := session.New(ctx, session.Options{
		Variant:          v,
		Hard:             mode.HardFor(v),
		Selector:         solver.Parallel{Workers: settings.Workers},
		Store:            store,
		UseOpeningCache:  settings.UseOpeningCache && !flagNoCache,
		RecomputeOpening: flagRecompute,
		Logger:           logger,
	})
	if err != nil {
		return err
	}
	return line.New(os.Stdin, os.Stdout).Run(ctx, sess)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if !isTerminal() {
		return errors.New("menu needs a terminal; use 'wordle play --plain' instead")
	}
	store := openStore()
	defer closeStore(store)

	opts := tuiOptions()
	opts.Store = store
	return tui.Run(opts, "", false)
}
