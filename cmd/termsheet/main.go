// Package main provides the entry point for the termsheet CLI.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/jmartel/termsheet/internal/logging"
	"github.com/jmartel/termsheet/pkg/termsheet"
)

// Build info set via ldflags at build time.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	if err := fang.Execute(context.Background(), cmd, fang.WithVersion(version)); err != nil {
		return 1
	}
	return 0
}

// app carries the shared state the subcommands need. It is populated once
// in the root PersistentPreRunE so every RunE sees the same config and
// logger.
type app struct {
	cfg termsheet.Config
	log *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "termsheet",
		Short: "Générateur de termsheets crédit promoteur et CII",
		Long: `Termsheet génère des lettres d'accord de principe au format Word à partir
de modèles à jetons.

Deux variantes sont couvertes :
  - la termsheet crédit promoteur / GFA (commande gfa)
  - la termsheet caution d'indemnité d'immobilisation (commande cii)

Les valeurs saisies sont décrites dans un fichier YAML ; les montants sont
reformatés avec séparateurs de milliers et convertis en toutes lettres.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		cfg, err := termsheet.LoadConfig()
		if err != nil {
			return err
		}
		log, err := logging.New(cfg.LogMode)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log = log
		return nil
	}

	cmd.AddCommand(newGFACmd(a))
	cmd.AddCommand(newCIICmd(a))
	cmd.AddCommand(newPreviewCmd(a))
	cmd.AddCommand(newProfileCmd(a))

	return cmd
}
