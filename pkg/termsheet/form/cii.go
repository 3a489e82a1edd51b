package form

import (
	"fmt"
	"strings"

	"github.com/jmartel/termsheet/pkg/termsheet"
)

// Guarantee is one caution d'indemnité d'immobilisation entry.
type Guarantee struct {
	Beneficiaires string `yaml:"beneficiaires"`
	// VenantAuDroit names who the beneficiaries succeed, optional.
	VenantAuDroit string `yaml:"venant_au_droit"`
	Montant       Amount `yaml:"montant"`
	DateEcheance  string `yaml:"date_echeance"`
}

// complete reports whether the entry has everything the rendered section
// needs. Incomplete entries are dropped silently.
func (g Guarantee) complete() bool {
	return g.Beneficiaires != "" && g.Montant != "" && g.DateEcheance != ""
}

// CII is the snapshot for the caution d'indemnité d'immobilisation
// termsheet.
type CII struct {
	NomPromoteur     string `yaml:"nom_promoteur"`
	NomContact       string `yaml:"nom_contact"`
	AdressePromoteur string `yaml:"adresse_promoteur"`
	Civilite         string `yaml:"civilite"`
	Date             string `yaml:"date"`
	ReferenceDossier string `yaml:"reference_dossier"`
	NomSCCV          string `yaml:"nom_sccv"`
	NumeroSiren      string `yaml:"numero_siren"`
	VilleRCS         string `yaml:"ville_rcs"`
	Objet            string `yaml:"objet"`

	Cautions []Guarantee `yaml:"cautions"`

	CommissionForfaitaire Amount  `yaml:"commission_forfaitaire"`
	TauxCommissionRisque  float64 `yaml:"taux_commission_risque"`
	FraisActe             Amount  `yaml:"frais_acte"`
	CommissionRetainer    Amount  `yaml:"commission_retainer"`
	DateValiditeAccord    string  `yaml:"date_validite_accord"`
}

// DefaultCII returns a form with the standard rates pre-set.
func DefaultCII() CII {
	return CII{
		Civilite:             CiviliteMonsieur,
		TauxCommissionRisque: 0.50,
		FraisActe:            "290",
	}
}

// Section renders the repeated CII section: one lettered a/b/c block per
// complete guarantee, in input order. Incomplete entries (missing
// beneficiaries, amount or due date) are skipped. An amount without a word
// form keeps only its numeric rendering.
func (f CII) Section() string {
	var sections []string
	for _, g := range f.Cautions {
		if !g.complete() {
			continue
		}

		var sb strings.Builder
		sb.WriteString("Caution d'indemnité d'immobilisation (CII) :\n\n")

		sb.WriteString(fmt.Sprintf("a. Caution d'indemnité d'immobilisation (CII), émise en faveur de %s", g.Beneficiaires))
		if g.VenantAuDroit != "" {
			sb.WriteString(fmt.Sprintf(", venant au droit de %s", g.VenantAuDroit))
		}
		sb.WriteString(".\n\n")

		sb.WriteString(fmt.Sprintf("b. Montant : %s €", g.Montant.Formatted()))
		if words := g.Montant.Words(); words != "" {
			sb.WriteString(fmt.Sprintf(" (%s euros)", words))
		}
		sb.WriteString(".\n\n")

		sb.WriteString(fmt.Sprintf("c. Date d'échéance : %s.\n\n", g.DateEcheance))

		sections = append(sections, sb.String())
	}
	return strings.Join(sections, "\n")
}

// Replacements resolves the form into the CII token table. The dossier
// reference token is "[réference dossier]", spelled as the templates spell
// it.
func (f CII) Replacements() termsheet.ReplacementMap {
	return termsheet.ReplacementMap{
		"[Nom du promoteur]":          f.NomPromoteur,
		"[nom]":                       f.NomContact,
		"[Adresse du promoteur]":      f.AdressePromoteur,
		"[date]":                      f.Date,
		"[réference dossier]":         f.ReferenceDossier,
		"[Monsieur/Madame/Messieurs]": f.Civilite,
		"[NOM]":                       f.NomSCCV,
		"[n° siren]":                  f.NumeroSiren,
		"[Ville]":                     f.VilleRCS,
		"[objet]":                     f.Objet,

		"[section_complete_cii]": f.Section(),

		"[nombre_comission_forfaitaire]":         f.CommissionForfaitaire.Formatted(),
		"[nombre_comission_forfaitaire_lettres]": f.CommissionForfaitaire.Words(),
		"[taux_commission_risque]":               formatRate(f.TauxCommissionRisque),
		"[nombre_frais_acte]":                    f.FraisActe.Formatted(),
		"[nombre_frais_acte_lettres]":            f.FraisActe.Words(),
		"[nombre_commission_retainer]":           f.CommissionRetainer.Formatted(),
		"[nombre_commission_retainer_lettres]":   f.CommissionRetainer.Words(),
		"[date_validite_accord]":                 f.DateValiditeAccord,
	}
}
