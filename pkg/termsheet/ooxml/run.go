package ooxml

import (
	"encoding/xml"
	"strings"
)

// RunFormat holds the run properties carried over when a paragraph is
// collapsed after substitution. Everything else in w:rPr is preserved only
// on runs that are never rewritten.
type RunFormat struct {
	FontASCII string
	FontHAnsi string
	Bold      bool
	Italic    bool
	Size      string // w:sz value in half-points, empty if unset
}

type runChild interface {
	writeXML(sb *strings.Builder)
}

type runText struct {
	text     string
	preserve bool
}

func (t *runText) writeXML(sb *strings.Builder) {
	if t.preserve {
		sb.WriteString(`<w:t xml:space="preserve">`)
	} else {
		sb.WriteString("<w:t>")
	}
	sb.WriteString(escapeText(t.text))
	sb.WriteString("</w:t>")
}

type runBreak struct {
	brType string
}

func (b *runBreak) writeXML(sb *strings.Builder) {
	if b.brType != "" {
		sb.WriteString(`<w:br w:type="`)
		sb.WriteString(escapeAttr(b.brType))
		sb.WriteString(`"/>`)
	} else {
		sb.WriteString("<w:br/>")
	}
}

// Run is a contiguous range of text sharing one set of properties. Element
// attributes (rsid markers) are preserved on parsed runs; runs built by
// substitution carry none.
type Run struct {
	attrs    []xml.Attr
	format   RunFormat
	rprRaw   []byte // full <w:rPr> element, nil when the run has none
	children []runChild
}

// NewRun builds a run for text rewritten by substitution. Newlines in the
// text become w:br elements within the same run, matching how multi-line
// replacement values are rendered.
func NewRun(text string, format RunFormat) *Run {
	r := &Run{format: format, rprRaw: format.rpr()}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			r.children = append(r.children, &runBreak{})
		}
		if line != "" {
			r.children = append(r.children, &runText{text: line, preserve: true})
		}
	}
	return r
}

// Text returns the concatenated text content of the run.
func (r *Run) Text() string {
	var sb strings.Builder
	for _, c := range r.children {
		if t, ok := c.(*runText); ok {
			sb.WriteString(t.text)
		}
	}
	return sb.String()
}

// Format returns the parsed subset of the run's properties.
func (r *Run) Format() RunFormat {
	return r.format
}

func (r *Run) writeXML(sb *strings.Builder) {
	sb.WriteString("<w:r")
	for _, attr := range r.attrs {
		writeAttr(sb, attr)
	}
	sb.WriteString(">")
	if r.rprRaw != nil {
		sb.Write(r.rprRaw)
	}
	for _, c := range r.children {
		c.writeXML(sb)
	}
	sb.WriteString("</w:r>")
}

func parseRun(d *xml.Decoder, start xml.StartElement) (*Run, error) {
	run := &Run{attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				if err := run.parseProperties(d, t); err != nil {
					return nil, err
				}
			case "t":
				var text struct {
					Space   string `xml:"space,attr"`
					Content string `xml:",chardata"`
				}
				if err := d.DecodeElement(&text, &t); err != nil {
					return nil, err
				}
				run.children = append(run.children, &runText{
					text:     text.Content,
					preserve: text.Space == "preserve",
				})
			case "br":
				br := &runBreak{brType: attrValue(t.Attr, "type")}
				if err := d.Skip(); err != nil {
					return nil, err
				}
				run.children = append(run.children, br)
			default:
				// Tabs, drawings and anything else pass through verbatim.
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				run.children = append(run.children, &rawInline{raw: raw})
			}
		case xml.EndElement:
			if t.Name.Local == "r" {
				return run, nil
			}
		}
	}
}

// parseProperties captures the whole w:rPr verbatim while extracting the
// fields needed for formatting carry-over.
func (run *Run) parseProperties(d *xml.Decoder, start xml.StartElement) error {
	var sb strings.Builder
	sb.WriteString("<w:rPr")
	for _, attr := range start.Attr {
		writeAttr(&sb, attr)
	}
	sb.WriteString(">")
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "b":
				run.format.Bold = toggleOn(attrValue(t.Attr, "val"))
			case "i":
				run.format.Italic = toggleOn(attrValue(t.Attr, "val"))
			case "sz":
				run.format.Size = attrValue(t.Attr, "val")
			case "rFonts":
				run.format.FontASCII = attrValue(t.Attr, "ascii")
				run.format.FontHAnsi = attrValue(t.Attr, "hAnsi")
			}
			raw, err := captureElement(d, t)
			if err != nil {
				return err
			}
			sb.Write(raw)
		case xml.EndElement:
			if t.Name.Local == "rPr" {
				sb.WriteString("</w:rPr>")
				run.rprRaw = []byte(sb.String())
				return nil
			}
		}
	}
}

// toggleOn interprets OOXML boolean toggle attributes: absence means on,
// "0" and "false" mean off.
func toggleOn(val string) bool {
	return val != "0" && val != "false"
}

// rpr serializes the format subset as a fresh w:rPr for rewritten runs.
func (f RunFormat) rpr() []byte {
	if f.FontASCII == "" && f.FontHAnsi == "" && !f.Bold && !f.Italic && f.Size == "" {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("<w:rPr>")
	if f.FontASCII != "" || f.FontHAnsi != "" {
		sb.WriteString("<w:rFonts")
		if f.FontASCII != "" {
			sb.WriteString(` w:ascii="` + escapeAttr(f.FontASCII) + `"`)
		}
		if f.FontHAnsi != "" {
			sb.WriteString(` w:hAnsi="` + escapeAttr(f.FontHAnsi) + `"`)
		}
		sb.WriteString("/>")
	}
	if f.Bold {
		sb.WriteString("<w:b/>")
	}
	if f.Italic {
		sb.WriteString("<w:i/>")
	}
	if f.Size != "" {
		sb.WriteString(`<w:sz w:val="` + escapeAttr(f.Size) + `"/>`)
	}
	sb.WriteString("</w:rPr>")
	return []byte(sb.String())
}
