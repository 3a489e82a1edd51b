// Package main provides the entry point for the termsheet CLI.
package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmartel/termsheet/pkg/termsheet"
	"github.com/jmartel/termsheet/pkg/termsheet/form"
)

var (
	previewTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	previewKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	previewMuted = lipgloss.NewStyle().Faint(true)
)

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <gfa|cii> <dossier.yaml>",
		Short: "Affiche les valeurs résolues sans générer de document",
		Long: `Affiche la table des jetons résolus depuis le dossier YAML, telle qu'elle
serait substituée dans le modèle. Utile pour vérifier montants en lettres,
clauses activées et sections CII avant génération.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "gfa":
				f, err := form.LoadGFA(args[1])
				if err != nil {
					return err
				}
				printPreview(cmd.OutOrStdout(), "Termsheet GFA", f.Replacements())
			case "cii":
				f, err := form.LoadCII(args[1])
				if err != nil {
					return err
				}
				printPreview(cmd.OutOrStdout(), "Termsheet CII", f.Replacements())
			default:
				return fmt.Errorf("variante inconnue: %s (attendu gfa ou cii)", args[0])
			}
			return nil
		},
	}
	return cmd
}

func printPreview(w io.Writer, title string, m termsheet.ReplacementMap) {
	fmt.Fprintln(w, previewTitle.Render(title))
	fmt.Fprintln(w)

	tokens := make([]string, 0, len(m))
	for tok := range m {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)

	for _, tok := range tokens {
		val := m[tok]
		if val == "" {
			fmt.Fprintf(w, "  %s %s\n", previewKey.Render(tok), previewMuted.Render("(vide)"))
			continue
		}
		// multi-line values are indented under their token
		if strings.Contains(val, "\n") {
			fmt.Fprintf(w, "  %s\n", previewKey.Render(tok))
			for _, line := range strings.Split(val, "\n") {
				fmt.Fprintf(w, "      %s\n", line)
			}
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", previewKey.Render(tok), val)
	}
}
