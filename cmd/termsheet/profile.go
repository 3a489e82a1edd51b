// Package main provides the entry point for the termsheet CLI.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmartel/termsheet/pkg/termsheet/profile"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Gère le classeur de profils promoteurs",
		Long: `Gère le classeur Excel des profils promoteurs (profils.xlsx). Un profil
mémorise nom, contact, adresse et civilité pour pré-remplir les dossiers.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newProfileListCmd(a))
	cmd.AddCommand(newProfileAddCmd(a))
	return cmd
}

func (a *app) profilePath() string {
	return filepath.Join(a.cfg.TemplateDir, profile.DefaultFileName)
}

func newProfileListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Liste les profils enregistrés",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := profile.Open(a.profilePath())
			if err != nil {
				return err
			}
			profiles := store.List()
			if len(profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Aucun profil enregistré.")
				return nil
			}
			for _, p := range profiles {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					p.NomPromoteur, p.NomContact, p.AdressePromoteur, p.Civilite)
			}
			return nil
		},
	}
}

func newProfileAddCmd(a *app) *cobra.Command {
	var p profile.Profile
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Ajoute ou met à jour un profil",
		Long: `Ajoute un profil au classeur, ou remplace celui qui porte le même nom de
promoteur. Le classeur est créé avec sa ligne d'en-têtes s'il n'existe pas.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := profile.Open(a.profilePath())
			if err != nil {
				return err
			}
			if err := store.Upsert(p); err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				return err
			}
			a.log.Info("profile saved", "promoteur", p.NomPromoteur, "path", store.Path())
			fmt.Fprintf(cmd.OutOrStdout(), "Profil enregistré : %s\n", p.NomPromoteur)
			return nil
		},
	}
	cmd.Flags().StringVar(&p.NomPromoteur, "nom-promoteur", "", "Nom du promoteur (obligatoire)")
	cmd.Flags().StringVar(&p.NomContact, "nom-contact", "", "Nom du contact")
	cmd.Flags().StringVar(&p.AdressePromoteur, "adresse", "", "Adresse du promoteur")
	cmd.Flags().StringVar(&p.Civilite, "civilite", "Monsieur", "Civilité (Monsieur, Madame, Messieurs)")
	_ = cmd.MarkFlagRequired("nom-promoteur")
	return cmd
}
