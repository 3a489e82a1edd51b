package ooxml

import (
	"encoding/xml"
	"strings"
)

type inline interface {
	writeXML(sb *strings.Builder)
}

// Paragraph is a w:p element. Element attributes (rsid markers, w14:paraId)
// and paragraph properties are preserved as parsed; inline content keeps its
// order, with non-run elements held verbatim.
type Paragraph struct {
	attrs    []xml.Attr
	props    []byte // raw w:pPr, nil when absent
	children []inline
}

// Text returns the concatenated text of the paragraph's runs. A token split
// across several runs is whole again in this view, which is what the
// substitution engine matches against.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, c := range p.children {
		if r, ok := c.(*Run); ok {
			sb.WriteString(r.Text())
		}
	}
	return sb.String()
}

// Runs returns the paragraph's runs in document order.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, c := range p.children {
		if r, ok := c.(*Run); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// SetText replaces the paragraph's content with a single run carrying the
// first existing run's font, size, bold and italic. Paragraph properties
// are kept; other run formatting and non-run inline content are dropped.
// This is the documented formatting collapse applied to changed paragraphs.
func (p *Paragraph) SetText(text string) {
	var format RunFormat
	if runs := p.Runs(); len(runs) > 0 {
		format = runs[0].format
	}
	p.children = []inline{NewRun(text, format)}
}

func (p *Paragraph) writeXML(sb *strings.Builder) {
	sb.WriteString("<w:p")
	for _, attr := range p.attrs {
		writeAttr(sb, attr)
	}
	sb.WriteString(">")
	if p.props != nil {
		sb.Write(p.props)
	}
	for _, c := range p.children {
		c.writeXML(sb)
	}
	sb.WriteString("</w:p>")
}

func parseParagraph(d *xml.Decoder, start xml.StartElement) (*Paragraph, error) {
	p := &Paragraph{attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				p.props = raw
			case "r":
				run, err := parseRun(d, t)
				if err != nil {
					return nil, err
				}
				p.children = append(p.children, run)
			default:
				// Hyperlinks, bookmarks, proofErr and fields stay verbatim.
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				p.children = append(p.children, &rawInline{raw: raw})
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				return p, nil
			}
		}
	}
}
