// Package form defines the closed placeholder schemas for the two termsheet
// variants. A form is an immutable snapshot of operator input; Replacements
// resolves it into the token table the substitution engine consumes. Every
// token the templates use is enumerated here, there are no dynamic lookups.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmartel/termsheet/pkg/termsheet"
	"github.com/jmartel/termsheet/pkg/termsheet/frwords"
)

// Civilité values accepted by the promoter profile and the forms.
const (
	CiviliteMonsieur  = "Monsieur"
	CiviliteMadame    = "Madame"
	CiviliteMessieurs = "Messieurs"
)

// DefaultObjetGFA pre-fills the programme description of a new GFA form.
const DefaultObjetGFA = "Réalisation à,…. , d'un immeuble neuf d'une surface de plancher de m² conçu en R+ comprenant logements et places de stationnement"

// Amount is a free-text euro amount as the operator typed it. Formatting
// and word conversion are lenient: a value that does not parse as an
// integer is carried through verbatim and gets no word form.
type Amount string

// Formatted returns the amount grouped with dots, or the raw input when it
// is not numeric.
func (a Amount) Formatted() string {
	return frwords.FormatThousands(string(a))
}

// Words returns the amount in French words, or "" when the amount is empty
// or not numeric.
func (a Amount) Words() string {
	if a == "" {
		return ""
	}
	n, err := frwords.ParseAmount(string(a))
	if err != nil {
		return ""
	}
	return frwords.Convert(n)
}

// formatRate renders a percentage with two decimals and a comma separator,
// e.g. 2.25 becomes "2,25".
func formatRate(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}

// GFA is the snapshot for the crédit promoteur / GFA termsheet.
type GFA struct {
	NomPromoteur     string `yaml:"nom_promoteur"`
	NomContact       string `yaml:"nom_contact"`
	AdressePromoteur string `yaml:"adresse_promoteur"`
	Civilite         string `yaml:"civilite"`
	Date             string `yaml:"date"`
	Ville            string `yaml:"ville"`
	ReferenceDossier string `yaml:"reference_dossier"`
	NomSCCV          string `yaml:"nom_sccv"`
	NumeroSiren      string `yaml:"numero_siren"`
	VilleRCS         string `yaml:"ville_rcs"`
	Objet            string `yaml:"objet"`

	MontantCredit   Amount `yaml:"montant_credit"`
	MontantGFA      Amount `yaml:"montant_gfa"`
	FraisDossier    Amount `yaml:"frais_dossier"`
	MontantApports  Amount `yaml:"montant_apports"`
	DateEcheanceGFA string `yaml:"date_echeance_gfa"`

	TauxSpeculatif                        float64 `yaml:"taux_speculatif"`
	TauxNonSpeculatif                     float64 `yaml:"taux_non_speculatif"`
	TauxCommissionEngagementSpeculatif    float64 `yaml:"taux_commission_engagement_speculatif"`
	TauxCommissionEngagementNonSpeculatif float64 `yaml:"taux_commission_engagement_non_speculatif"`
	TauxCommissionForfaitaire             float64 `yaml:"taux_commission_forfaitaire"`

	ConditionsSpeculatives    bool `yaml:"conditions_speculatives"`
	ConditionsNonSpeculatives bool `yaml:"conditions_non_speculatives"`

	NiveauCommercialisation int  `yaml:"niveau_commercialisation"`
	InclureApports          bool `yaml:"inclure_apports"`

	Clauses Clauses `yaml:"clauses"`
}

// Clauses holds the optional clauses of the GFA termsheet. A nil clause is
// disabled: its sentence token resolves to "" and its field tokens to "".
type Clauses struct {
	GarantieActifPassif    *GarantieActifPassif    `yaml:"garantie_actif_passif"`
	CommercialisationLots  *CommercialisationLots  `yaml:"commercialisation_lots"`
	AccordFinancement      *AccordFinancement      `yaml:"accord_financement"`
	AgrementBailleur       *AgrementBailleur       `yaml:"agrement_bailleur"`
	EngagementPC           *EngagementPC           `yaml:"engagement_pc"`
	ContratReservation     *ContratReservation     `yaml:"contrat_reservation"`
	CommercialisationLibre *CommercialisationLibre `yaml:"commercialisation_libre"`
}

// GarantieActifPassif covers share-purchase deals. The vendor name is kept
// with the file but does not appear in the rendered sentence.
type GarantieActifPassif struct {
	NomVendeur string `yaml:"nom_vendeur"`
}

// CommercialisationLots requires a pre-commercialization level by lot type.
type CommercialisationLots struct {
	NombreT3 int `yaml:"nombre_t3"`
	NombreT4 int `yaml:"nombre_t4"`
	NombreT5 int `yaml:"nombre_t5"`
}

// AccordFinancement requires a financing agreement from the reserving buyers.
type AccordFinancement struct{}

// AgrementBailleur requires the social landlord's approval.
type AgrementBailleur struct {
	NomBailleur string `yaml:"nom_bailleur"`
	TypeBloc    string `yaml:"type_bloc"`
}

// EngagementPC requires the borrower to report building-permit changes.
type EngagementPC struct{}

// ContratReservation requires a signed landlord reservation contract.
type ContratReservation struct {
	NomBailleur string `yaml:"nom_bailleur"`
	TypeBloc    string `yaml:"type_bloc"`
}

// CommercialisationLibre requires a commercialization level on the open-
// market share of revenue.
type CommercialisationLibre struct {
	Niveau int `yaml:"niveau"`
}

// DefaultGFA returns a form with the standard rates and options pre-set.
func DefaultGFA() GFA {
	return GFA{
		Objet:                                 DefaultObjetGFA,
		Civilite:                              CiviliteMonsieur,
		TauxSpeculatif:                        2.25,
		TauxNonSpeculatif:                     1.50,
		TauxCommissionEngagementSpeculatif:    0.75,
		TauxCommissionEngagementNonSpeculatif: 0.50,
		TauxCommissionForfaitaire:             0.55,
		ConditionsSpeculatives:                true,
		ConditionsNonSpeculatives:             true,
		NiveauCommercialisation:               50,
		InclureApports:                        true,
	}
}

// Replacements resolves the form into the GFA token table. Amount tokens
// carry the dot-grouped value, the matching _lettres tokens the word form.
// Tokens for disabled clauses and excluded condition blocks resolve to "".
func (f GFA) Replacements() termsheet.ReplacementMap {
	m := termsheet.ReplacementMap{
		"[Nom du promoteur]":             f.NomPromoteur,
		"[nom]":                          f.NomContact,
		"[Adresse du promoteur]":         f.AdressePromoteur,
		"[date]":                         f.Date,
		"[référence dossier]":            f.ReferenceDossier,
		"[Monsieur/Madame/Messieurs]":    f.Civilite,
		"[NOM]":                          f.NomSCCV,
		"[n° siren]":                     f.NumeroSiren,
		"[Ville]":                        f.VilleRCS,
		"[nom de la SCCV]":               f.NomSCCV,
		"[objet]":                        f.Objet,
		"[nombre_credit]":                f.MontantCredit.Formatted(),
		"[nombre_credit_lettres]":        f.MontantCredit.Words(),
		"[montant_credit]":               f.MontantCredit.Formatted(),
		"[montant_credit_lettres]":       f.MontantCredit.Words(),
		"[nombre_gfa]":                   f.MontantGFA.Formatted(),
		"[nombre_gfa_lettres]":           f.MontantGFA.Words(),
		"[nombre_apport]":                f.MontantApports.Formatted(),
		"[nombre_apport_lettres]":        f.MontantApports.Words(),
		"[nombre_frais_dossier]":         f.FraisDossier.Formatted(),
		"[nombre_frais_dossier_lettres]": f.FraisDossier.Words(),
		"[date_echeance_gfa]":            f.DateEcheanceGFA,
		"[niveau_commercialisation]":     strconv.Itoa(f.NiveauCommercialisation),

		"[taux_speculatif]":                          formatRate(f.TauxSpeculatif),
		"[taux_non_speculatif]":                      formatRate(f.TauxNonSpeculatif),
		"[taux_comission_engagement_speculatif]":     formatRate(f.TauxCommissionEngagementSpeculatif),
		"[taux_comission_engagement_non_speculatif]": formatRate(f.TauxCommissionEngagementNonSpeculatif),
		"[taux_comission_forfaitaire]":               formatRate(f.TauxCommissionForfaitaire),
	}

	if f.InclureApports {
		m["[mention_apports]"] = "(en y ajoutant les apports),"
	} else {
		m["[mention_apports]"] = ""
	}

	if f.ConditionsSpeculatives {
		m["[interets_speculatifs]"] = fmt.Sprintf(
			"Intérêts portant sur les sommes utilisées calculés sur l'EURIBOR de la durée du tirage (minimum un mois -- maximum 12 mois) majoré de %s%% l'an, perçus d'avance le jour de la mise à disposition des fonds ;",
			formatRate(f.TauxSpeculatif))
		m["[commission_speculative]"] = fmt.Sprintf(
			"%s%% l'an, calculée sur le montant total du crédit autorisé et perçue trimestriellement et d'avance ;",
			formatRate(f.TauxCommissionEngagementSpeculatif))
	} else {
		m["[interets_speculatifs]"] = ""
		m["[commission_speculative]"] = ""
	}

	if f.ConditionsNonSpeculatives {
		m["[interets_non_speculatifs]"] = fmt.Sprintf(
			"Lorsque le montant du CA TTC des VEFA actées atteindra 40%% et plus du Prix de Revient TTC, les intérêts portant sur les sommes utilisées calculés sur l'EURIBOR de la durée du tirage (minimum un mois -- maximum 12 mois) seront ramenés à %s%% l'an, perçus d'avance le jour de la mise à disposition des fonds.",
			formatRate(f.TauxNonSpeculatif))
		m["[commission_non_speculative]"] = fmt.Sprintf(
			"Lorsque le montant du CA TTC des VEFA actées atteindra 40%% et plus du Prix de Revient TTC, %s%% l'an, calculée sur le montant total du crédit autorisé et perçue trimestriellement et d'avance.",
			formatRate(f.TauxCommissionEngagementNonSpeculatif))
	} else {
		m["[interets_non_speculatifs]"] = ""
		m["[commission_non_speculative]"] = ""
	}

	f.Clauses.resolve(m)
	return m
}

func (c Clauses) resolve(m termsheet.ReplacementMap) {
	if c.GarantieActifPassif != nil {
		m["[clause_garantie_actif_passif]"] = "Le cas échéant, production de la garantie d'actif/passif fournie par les vendeurs et examen favorable de LCL ; {cas rachat de parts de société}"
	} else {
		m["[clause_garantie_actif_passif]"] = ""
	}

	if cl := c.CommercialisationLots; cl != nil {
		m["[nombre_t3]"] = strconv.Itoa(cl.NombreT3)
		m["[nombre_t4]"] = strconv.Itoa(cl.NombreT4)
		m["[nombre_t5]"] = strconv.Itoa(cl.NombreT5)
		m["[clause_niveau_commercialisation_lots]"] = fmt.Sprintf(
			"Justification d'un niveau de commercialisation incluant au moins %d lots de type T3 ainsi qu'au moins %d lots de type T4 et %d lots de type T5 (attestation du Notaire indiquant le niveau de pré commercialisation) ;",
			cl.NombreT3, cl.NombreT4, cl.NombreT5)
	} else {
		m["[nombre_t3]"] = ""
		m["[nombre_t4]"] = ""
		m["[nombre_t5]"] = ""
		m["[clause_niveau_commercialisation_lots]"] = ""
	}

	if c.AccordFinancement != nil {
		m["[clause_accord_financement]"] = "Justification de l'obtention d'un accord de principe de financement par la majorité des réservataires ;"
	} else {
		m["[clause_accord_financement]"] = ""
	}

	if cl := c.AgrementBailleur; cl != nil {
		m["[nom_bailleur_agrement]"] = cl.NomBailleur
		m["[le bailleur]"] = cl.NomBailleur
		m["[type_bloc]"] = cl.TypeBloc
		m["[clause_agrement_bailleur]"] = fmt.Sprintf(
			"Justification de l'obtention de l'agrément par %s pour la partie « %s » ;",
			cl.NomBailleur, cl.TypeBloc)
	} else {
		m["[nom_bailleur_agrement]"] = ""
		m["[le bailleur]"] = ""
		m["[type_bloc]"] = ""
		m["[clause_agrement_bailleur]"] = ""
	}

	if c.EngagementPC != nil {
		m["[clause_engagement_pc]"] = "Engagement de l'emprunteur d'informer la banque de toute demande de PC modificatif et ce jusqu'au remboursement complet des concours accordés ;"
	} else {
		m["[clause_engagement_pc]"] = ""
	}

	if cl := c.ContratReservation; cl != nil {
		m["[nom du bailleur]"] = cl.NomBailleur
		m["[nom_bailleur_reservation]"] = cl.NomBailleur
		m["[type_bloc_reservation]"] = cl.TypeBloc
		m["[clause_contrat_reservation]"] = fmt.Sprintf(
			"Justification d'un contrat de réservation signé de %s pour la partie « %s » comprenant nom, adresse, prix de vente TTC et échéancier des versements ;",
			cl.NomBailleur, cl.TypeBloc)
	} else {
		m["[nom du bailleur]"] = ""
		m["[nom_bailleur_reservation]"] = ""
		m["[type_bloc_reservation]"] = ""
		m["[clause_contrat_reservation]"] = ""
	}

	if cl := c.CommercialisationLibre; cl != nil {
		m["[niveau_commercialisation_libre]"] = strconv.Itoa(cl.Niveau)
		m["[clause_niveau_commercialisation_libre]"] = fmt.Sprintf(
			"Justification d'un niveau de commercialisation du CATTC « libre » dépassant %d%% du CATTC « libre » (attestation notariée indiquant le niveau de pré commercialisation) ;",
			cl.Niveau)
	} else {
		m["[niveau_commercialisation_libre]"] = ""
		m["[clause_niveau_commercialisation_libre]"] = ""
	}
}
