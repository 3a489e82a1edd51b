package ooxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Block is any element that can appear at body level: a paragraph, a table,
// or preserved raw markup.
type Block interface {
	writeXML(sb *strings.Builder)
}

// Document models one WordprocessingML part: word/document.xml, or a
// header/footer part. The root element and its namespace declarations are
// kept as parsed so the serialized part carries them unchanged.
type Document struct {
	rootName  xml.Name
	rootAttrs []xml.Attr
	hasBody   bool // document.xml wraps content in w:body, headers and footers do not
	// siblings of w:body (w:background) kept verbatim, split around it
	beforeBody []byte
	afterBody  []byte
	blocks     []Block
	sectPr     []byte // raw w:sectPr closing the body, nil for headers and footers
}

// Parse reads a WordprocessingML part. The root may be w:document, w:hdr
// or w:ftr.
func Parse(r io.Reader) (*Document, error) {
	d := xml.NewDecoder(r)
	doc := &Document{}

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing part: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		doc.rootName = start.Name
		doc.rootAttrs = start.Attr
		switch start.Name.Local {
		case "document":
			doc.hasBody = true
			if err := doc.parseDocumentContent(d); err != nil {
				return nil, err
			}
		case "hdr", "ftr":
			if err := doc.parseBlocks(d, start.Name.Local); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unexpected root element <%s>", start.Name.Local)
		}
		return doc, nil
	}
}

func (doc *Document) parseDocumentContent(d *xml.Decoder) error {
	bodySeen := false
	for {
		tok, err := d.Token()
		if err != nil {
			return fmt.Errorf("parsing document: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "body" {
				bodySeen = true
				if err := doc.parseBlocks(d, "body"); err != nil {
					return err
				}
				continue
			}
			raw, err := captureElement(d, t)
			if err != nil {
				return err
			}
			if bodySeen {
				doc.afterBody = append(doc.afterBody, raw...)
			} else {
				doc.beforeBody = append(doc.beforeBody, raw...)
			}
		case xml.EndElement:
			if t.Name.Local == "document" {
				return nil
			}
		}
	}
}

func (doc *Document) parseBlocks(d *xml.Decoder, endLocal string) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return fmt.Errorf("parsing <%s> content: %w", endLocal, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				p, err := parseParagraph(d, t)
				if err != nil {
					return err
				}
				doc.blocks = append(doc.blocks, p)
			case "tbl":
				tbl, err := parseTable(d, t)
				if err != nil {
					return err
				}
				doc.blocks = append(doc.blocks, tbl)
			case "sectPr":
				raw, err := captureElement(d, t)
				if err != nil {
					return err
				}
				doc.sectPr = raw
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return err
				}
				doc.blocks = append(doc.blocks, &rawBlock{raw: raw})
			}
		case xml.EndElement:
			if t.Name.Local == endLocal {
				return nil
			}
		}
	}
}

// Blocks returns the part's top-level blocks in order.
func (doc *Document) Blocks() []Block {
	return doc.blocks
}

// Paragraphs returns every paragraph in the part, including those nested in
// table cells, in document order. This is the traversal substitution works
// over.
func (doc *Document) Paragraphs() []*Paragraph {
	return collectParagraphs(doc.blocks)
}

func collectParagraphs(blocks []Block) []*Paragraph {
	var paras []*Paragraph
	for _, b := range blocks {
		switch el := b.(type) {
		case *Paragraph:
			paras = append(paras, el)
		case *Table:
			for _, row := range el.Rows() {
				for _, cell := range row.Cells() {
					paras = append(paras, collectParagraphs(cell.Blocks())...)
				}
			}
		}
	}
	return paras
}

// Bytes serializes the part back to XML.
func (doc *Document) Bytes() []byte {
	var sb strings.Builder
	sb.WriteString(xmlHeader)

	root := doc.rootName
	if prefix := prefixFor(root.Space); prefix != "" && prefix != root.Space {
		root = xml.Name{Local: prefix + ":" + root.Local}
	}
	sb.WriteString("<")
	sb.WriteString(root.Local)
	for _, attr := range doc.rootAttrs {
		writeAttr(&sb, attr)
	}
	sb.WriteString(">")

	if doc.hasBody {
		sb.Write(doc.beforeBody)
		sb.WriteString("<w:body>")
	}
	for _, b := range doc.blocks {
		b.writeXML(&sb)
	}
	if doc.sectPr != nil {
		sb.Write(doc.sectPr)
	}
	if doc.hasBody {
		sb.WriteString("</w:body>")
		sb.Write(doc.afterBody)
	}

	writeEndTag(&sb, xml.Name{Local: root.Local})
	return []byte(sb.String())
}
