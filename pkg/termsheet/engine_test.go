package termsheet

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"
)

func renderToString(t *testing.T, docx []byte, m ReplacementMap) []byte {
	t.Helper()
	tpl, err := Prepare(bytes.NewReader(docx))
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	out, err := tpl.Render(m)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	rendered, err := io.ReadAll(out)
	if err != nil {
		t.Fatalf("reading rendered output: %v", err)
	}
	return rendered
}

func TestApply(t *testing.T) {
	m := ReplacementMap{
		"[niveau_commercialisation]":       "40,00",
		"[niveau_commercialisation_libre]": "50,00",
	}

	out, changed := m.Apply("Niveau : [niveau_commercialisation_libre] / [niveau_commercialisation]")
	if !changed {
		t.Error("Apply() reported no change")
	}
	if out != "Niveau : 50,00 / 40,00" {
		t.Errorf("Apply() = %q", out)
	}

	out, changed = m.Apply("[token_inconnu] reste")
	if changed {
		t.Errorf("Apply() reported change for %q", out)
	}
}

func TestRenderReplacesToken(t *testing.T) {
	docx := buildDOCX(paragraph("Montant de la GFA : [montant_gfa] € ([montant_gfa_lettres] euros)"), "")
	rendered := renderToString(t, docx, ReplacementMap{
		"[montant_gfa]":         "1.500.000",
		"[montant_gfa_lettres]": "un million cinq cent mille",
	})

	doc, err := documentXML(rendered)
	if err != nil {
		t.Fatalf("extracting document.xml: %v", err)
	}
	if !strings.Contains(doc, "Montant de la GFA : 1.500.000 € (un million cinq cent mille euros)") {
		t.Errorf("substitution missing from output:\n%s", doc)
	}
	if strings.Contains(doc, "[montant_gfa") {
		t.Errorf("token residue in output:\n%s", doc)
	}
}

func TestRenderMatchesTokenSplitAcrossRuns(t *testing.T) {
	body := `<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>[nom de la </w:t></w:r>` +
		`<w:r><w:t>SCCV]</w:t></w:r></w:p>`
	rendered := renderToString(t, buildDOCX(body, ""), ReplacementMap{
		"[nom de la SCCV]": "SCCV Les Acacias",
	})

	doc, err := documentXML(rendered)
	if err != nil {
		t.Fatalf("extracting document.xml: %v", err)
	}
	if !strings.Contains(doc, "SCCV Les Acacias") {
		t.Errorf("split token not replaced:\n%s", doc)
	}
	// first run was bold, the collapsed run must be too
	if !strings.Contains(doc, "<w:b/>") {
		t.Errorf("first run formatting lost:\n%s", doc)
	}
}

func TestRenderPrefixCollision(t *testing.T) {
	body := paragraph("Niveau : [niveau_commercialisation_libre] / [niveau_commercialisation]")
	rendered := renderToString(t, buildDOCX(body, ""), ReplacementMap{
		"[niveau_commercialisation]":       "40,00",
		"[niveau_commercialisation_libre]": "50,00",
	})

	doc, err := documentXML(rendered)
	if err != nil {
		t.Fatalf("extracting document.xml: %v", err)
	}
	if !strings.Contains(doc, "Niveau : 50,00 / 40,00") {
		t.Errorf("prefix collision mishandled:\n%s", doc)
	}
}

func TestRenderLeavesUnknownTokens(t *testing.T) {
	body := paragraph("[token_inconnu] reste, [nom] change")
	rendered := renderToString(t, buildDOCX(body, ""), ReplacementMap{"[nom]": "Alpha"})

	doc, err := documentXML(rendered)
	if err != nil {
		t.Fatalf("extracting document.xml: %v", err)
	}
	if !strings.Contains(doc, "[token_inconnu] reste, Alpha change") {
		t.Errorf("unknown token handling wrong:\n%s", doc)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	m := ReplacementMap{"[nom]": "Alpha", "[date]": "12/05/2026"}
	first := renderToString(t, buildDOCX(paragraph("[nom], le [date]"), ""), m)
	second := renderToString(t, first, m)

	doc1, err := documentXML(first)
	if err != nil {
		t.Fatal(err)
	}
	doc2, err := documentXML(second)
	if err != nil {
		t.Fatal(err)
	}
	if doc1 != doc2 {
		t.Errorf("second pass changed the document:\nfirst: %s\nsecond: %s", doc1, doc2)
	}
}

func TestRenderProcessesHeaders(t *testing.T) {
	rendered := renderToString(t,
		buildDOCX(paragraph("corps"), paragraph("Dossier [référence dossier]")),
		ReplacementMap{"[référence dossier]": "2026-041"})

	hdr, err := packagePart(rendered, "word/header1.xml")
	if err != nil {
		t.Fatalf("extracting header1.xml: %v", err)
	}
	if !strings.Contains(hdr, "Dossier 2026-041") {
		t.Errorf("header not substituted:\n%s", hdr)
	}
}

func TestRenderMultiLineValue(t *testing.T) {
	rendered := renderToString(t, buildDOCX(paragraph("[section_complete_cii]"), ""),
		ReplacementMap{"[section_complete_cii]": "a. Première\n\nb. Seconde"})

	doc, err := documentXML(rendered)
	if err != nil {
		t.Fatalf("extracting document.xml: %v", err)
	}
	if got := strings.Count(doc, "<w:br/>"); got != 2 {
		t.Errorf("got %d breaks, want 2:\n%s", got, doc)
	}
	for _, want := range []string{"a. Première", "b. Seconde"} {
		if !strings.Contains(doc, want) {
			t.Errorf("output missing %q:\n%s", want, doc)
		}
	}
}

func TestOutputName(t *testing.T) {
	now := time.Date(2026, 5, 12, 14, 3, 9, 0, time.UTC)
	tests := []struct {
		template string
		suffix   string
		want     string
	}{
		{"template_ts.docx", SuffixGFA, "template_ts_genere_20260512_140309.docx"},
		{"/tmp/modeles/template_cii.docx", SuffixCII, "template_cii_CII_genere_20260512_140309.docx"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.template, tt.suffix, now); got != tt.want {
			t.Errorf("OutputName(%q, %q) = %q, want %q", tt.template, tt.suffix, got, tt.want)
		}
	}
}

func TestPrepareRejectsNonDocx(t *testing.T) {
	if _, err := Prepare(strings.NewReader("pas un zip")); err == nil {
		t.Fatal("expected error for non-zip input")
	}
}
