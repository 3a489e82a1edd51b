// Package main provides the entry point for the termsheet CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmartel/termsheet/pkg/termsheet"
	"github.com/jmartel/termsheet/pkg/termsheet/form"
	"github.com/jmartel/termsheet/pkg/termsheet/profile"
)

// generateFlags are the flags shared by the gfa and cii commands.
type generateFlags struct {
	template string
	out      string
	profile  string
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "Chemin du modèle .docx (prime sur le modèle par défaut)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Répertoire de sortie (défaut: TERMSHEET_OUTPUT_DIR)")
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "Nom du promoteur à charger depuis le classeur de profils")
}

func newGFACmd(a *app) *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   "gfa <dossier.yaml>",
		Short: "Génère la termsheet crédit promoteur / GFA",
		Long: `Génère la termsheet crédit promoteur / GFA depuis un dossier YAML.

Exemples:
  termsheet gfa dossier.yaml
  termsheet gfa dossier.yaml --template modele.docx --out ./sorties
  termsheet gfa dossier.yaml --profile "Promoteur SA"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := form.LoadGFA(args[0])
			if err != nil {
				return err
			}
			if flags.profile != "" {
				p, err := a.lookupProfile(flags.profile)
				if err != nil {
					return err
				}
				applyProfileGFA(&f, p)
			}
			return a.generate(cmd, flags, termsheet.DefaultTemplateGFA, termsheet.SuffixGFA, f.Replacements())
		},
	}
	flags.register(cmd)
	return cmd
}

func newCIICmd(a *app) *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   "cii <dossier.yaml>",
		Short: "Génère la termsheet caution d'indemnité d'immobilisation",
		Long: `Génère la termsheet caution d'indemnité d'immobilisation (CII) depuis un
dossier YAML. Les cautions incomplètes (bénéficiaires, montant ou date
d'échéance manquants) sont ignorées.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := form.LoadCII(args[0])
			if err != nil {
				return err
			}
			if flags.profile != "" {
				p, err := a.lookupProfile(flags.profile)
				if err != nil {
					return err
				}
				applyProfileCII(&f, p)
			}
			return a.generate(cmd, flags, termsheet.DefaultTemplateCII, termsheet.SuffixCII, f.Replacements())
		},
	}
	flags.register(cmd)
	return cmd
}

// generate resolves the template and output paths, renders the document and
// reports where it was written.
func (a *app) generate(cmd *cobra.Command, flags generateFlags, defaultTemplate, suffix string, m termsheet.ReplacementMap) error {
	tplPath := flags.template
	if tplPath == "" {
		tplPath = filepath.Join(a.cfg.TemplateDir, defaultTemplate)
	}
	if _, err := os.Stat(tplPath); err != nil {
		return fmt.Errorf("modèle introuvable: %s", tplPath)
	}

	outDir := flags.out
	if outDir == "" {
		outDir = a.cfg.OutputDir
	}

	tpl, err := termsheet.PrepareFile(tplPath)
	if err != nil {
		return err
	}

	outPath := filepath.Join(outDir, termsheet.OutputName(tplPath, suffix, time.Now()))
	a.log.Debug("rendering document", "template", tplPath, "output", outPath)
	if err := tpl.RenderToFile(outPath, m); err != nil {
		return err
	}

	a.log.Info("document generated", "output", outPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Document généré : %s\n", outPath)
	return nil
}

// lookupProfile finds the named promoter in the profile workbook next to
// the templates.
func (a *app) lookupProfile(name string) (profile.Profile, error) {
	store, err := profile.Open(filepath.Join(a.cfg.TemplateDir, profile.DefaultFileName))
	if err != nil {
		return profile.Profile{}, err
	}
	return store.Find(name)
}

func applyProfileGFA(f *form.GFA, p profile.Profile) {
	f.NomPromoteur = p.NomPromoteur
	f.NomContact = p.NomContact
	f.AdressePromoteur = p.AdressePromoteur
	if p.Civilite != "" {
		f.Civilite = p.Civilite
	}
}

func applyProfileCII(f *form.CII, p profile.Profile) {
	f.NomPromoteur = p.NomPromoteur
	f.NomContact = p.NomContact
	f.AdressePromoteur = p.AdressePromoteur
	if p.Civilite != "" {
		f.Civilite = p.Civilite
	}
}
