package ooxml

import (
	"encoding/xml"
	"strings"
)

// Table is a w:tbl element. Element attributes and table, row and cell
// properties are preserved; only the paragraphs inside cells are modeled,
// so substitution reaches table content without touching layout.
type Table struct {
	attrs    []xml.Attr
	children []tableChild
}

type tableChild interface {
	writeXML(sb *strings.Builder)
}

// Rows returns the table's rows in order.
func (t *Table) Rows() []*TableRow {
	var rows []*TableRow
	for _, c := range t.children {
		if r, ok := c.(*TableRow); ok {
			rows = append(rows, r)
		}
	}
	return rows
}

func (t *Table) writeXML(sb *strings.Builder) {
	sb.WriteString("<w:tbl")
	for _, attr := range t.attrs {
		writeAttr(sb, attr)
	}
	sb.WriteString(">")
	for _, c := range t.children {
		c.writeXML(sb)
	}
	sb.WriteString("</w:tbl>")
}

// TableRow is a w:tr element.
type TableRow struct {
	attrs    []xml.Attr
	children []tableChild
}

// Cells returns the row's cells in order.
func (r *TableRow) Cells() []*TableCell {
	var cells []*TableCell
	for _, c := range r.children {
		if tc, ok := c.(*TableCell); ok {
			cells = append(cells, tc)
		}
	}
	return cells
}

func (r *TableRow) writeXML(sb *strings.Builder) {
	sb.WriteString("<w:tr")
	for _, attr := range r.attrs {
		writeAttr(sb, attr)
	}
	sb.WriteString(">")
	for _, c := range r.children {
		c.writeXML(sb)
	}
	sb.WriteString("</w:tr>")
}

// TableCell is a w:tc element holding block content.
type TableCell struct {
	attrs  []xml.Attr
	props  []byte // raw w:tcPr, nil when absent
	blocks []Block
}

// Blocks returns the cell's block content (paragraphs and nested tables).
func (c *TableCell) Blocks() []Block {
	return c.blocks
}

func (c *TableCell) writeXML(sb *strings.Builder) {
	sb.WriteString("<w:tc")
	for _, attr := range c.attrs {
		writeAttr(sb, attr)
	}
	sb.WriteString(">")
	if c.props != nil {
		sb.Write(c.props)
	}
	for _, b := range c.blocks {
		b.writeXML(sb)
	}
	sb.WriteString("</w:tc>")
}

func parseTable(d *xml.Decoder, start xml.StartElement) (*Table, error) {
	tbl := &Table{attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tr":
				row, err := parseTableRow(d, t)
				if err != nil {
					return nil, err
				}
				tbl.children = append(tbl.children, row)
			default:
				// tblPr and tblGrid pass through verbatim.
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				tbl.children = append(tbl.children, &rawBlock{raw: raw})
			}
		case xml.EndElement:
			if t.Name.Local == "tbl" {
				return tbl, nil
			}
		}
	}
}

func parseTableRow(d *xml.Decoder, start xml.StartElement) (*TableRow, error) {
	row := &TableRow{attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tc":
				cell, err := parseTableCell(d, t)
				if err != nil {
					return nil, err
				}
				row.children = append(row.children, cell)
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				row.children = append(row.children, &rawBlock{raw: raw})
			}
		case xml.EndElement:
			if t.Name.Local == "tr" {
				return row, nil
			}
		}
	}
}

func parseTableCell(d *xml.Decoder, start xml.StartElement) (*TableCell, error) {
	cell := &TableCell{attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tcPr":
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				cell.props = raw
			case "p":
				p, err := parseParagraph(d, t)
				if err != nil {
					return nil, err
				}
				cell.blocks = append(cell.blocks, p)
			case "tbl":
				nested, err := parseTable(d, t)
				if err != nil {
					return nil, err
				}
				cell.blocks = append(cell.blocks, nested)
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				cell.blocks = append(cell.blocks, &rawBlock{raw: raw})
			}
		case xml.EndElement:
			if t.Name.Local == "tc" {
				return cell, nil
			}
		}
	}
}
