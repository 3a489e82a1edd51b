package ooxml

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// nsPrefix maps namespace URIs back to their conventional prefixes.
// encoding/xml resolves prefixes to URIs while decoding, so the writers
// need this table to reconstruct the prefixed names Word expects.
var nsPrefix = map[string]string{
	"http://schemas.openxmlformats.org/wordprocessingml/2006/main":           "w",
	"http://schemas.openxmlformats.org/officeDocument/2006/relationships":    "r",
	"http://schemas.openxmlformats.org/officeDocument/2006/math":             "m",
	"http://www.w3.org/XML/1998/namespace":                                   "xml",
	"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
	"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
	"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":    "wp14",
	"http://schemas.microsoft.com/office/drawing/2010/main":                  "a14",
	"urn:schemas-microsoft-com:vml":                                          "v",
	"urn:schemas-microsoft-com:office:office":                                "o",
	"urn:schemas-microsoft-com:office:word":                                  "w10",
	"http://schemas.openxmlformats.org/markup-compatibility/2006":            "mc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":      "wps",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas":     "wpc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":      "wpg",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingInk":        "wpi",
	"http://schemas.microsoft.com/office/word/2010/wordml":                   "w14",
	"http://schemas.microsoft.com/office/word/2012/wordml":                   "w15",
	"http://schemas.microsoft.com/office/word/2016/wordml/cid":               "w16cid",
	"http://schemas.microsoft.com/office/word/2018/wordml":                   "w16",
	"http://schemas.microsoft.com/office/word/2018/wordml/cex":               "w16cex",
	"http://schemas.microsoft.com/office/word/2020/wordml/sdtdatahash":       "w16sdtdh",
	"http://schemas.microsoft.com/office/word/2015/wordml/symex":             "w16se",
	"http://schemas.microsoft.com/office/word/2006/wordml":                   "wne",
}

func prefixFor(space string) string {
	if p, ok := nsPrefix[space]; ok {
		return p
	}
	return space
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;")

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }

func writeName(sb *strings.Builder, name xml.Name) {
	if name.Space != "" {
		sb.WriteString(prefixFor(name.Space))
		sb.WriteString(":")
	}
	sb.WriteString(name.Local)
}

func writeAttr(sb *strings.Builder, attr xml.Attr) {
	sb.WriteString(" ")
	// xmlns declarations decode with the literal space "xmlns".
	if attr.Name.Space == "xmlns" {
		sb.WriteString("xmlns:")
		sb.WriteString(attr.Name.Local)
	} else {
		writeName(sb, attr.Name)
	}
	sb.WriteString("=\"")
	sb.WriteString(escapeAttr(attr.Value))
	sb.WriteString("\"")
}

func writeEndTag(sb *strings.Builder, name xml.Name) {
	sb.WriteString("</")
	writeName(sb, name)
	sb.WriteString(">")
}

// captureElement consumes the element opened by start, including all nested
// content, and returns it re-serialized with conventional prefixes. Empty
// elements come out self-closing, so capturing an already-serialized blob
// reproduces it exactly. This is how unknown markup (drawings, sdt blocks,
// properties) survives a parse and rewrite untouched.
func captureElement(d *xml.Decoder, start xml.StartElement) ([]byte, error) {
	var sb strings.Builder
	writeOpen := func(s xml.StartElement) {
		sb.WriteString("<")
		writeName(&sb, s.Name)
		for _, attr := range s.Attr {
			writeAttr(&sb, attr)
		}
	}
	writeOpen(start)
	open := true // the most recent start tag still lacks its ">"

	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("capturing <%s>: %w", start.Name.Local, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if open {
				sb.WriteString(">")
			}
			writeOpen(t)
			open = true
			depth++
		case xml.EndElement:
			depth--
			if open {
				sb.WriteString("/>")
				open = false
			} else {
				writeEndTag(&sb, t.Name)
			}
		case xml.CharData:
			if open {
				sb.WriteString(">")
				open = false
			}
			sb.WriteString(escapeText(string(t)))
		}
	}

	return []byte(sb.String()), nil
}

// rawBlock is a body-level element kept verbatim (sdt, bookmarks, etc.).
type rawBlock struct {
	raw []byte
}

func (b *rawBlock) writeXML(sb *strings.Builder) {
	sb.Write(b.raw)
}

// rawInline is paragraph-level content kept verbatim (hyperlinks, proofErr,
// bookmark markers, fields).
type rawInline struct {
	raw []byte
}

func (r *rawInline) writeXML(sb *strings.Builder) {
	sb.Write(r.raw)
}

func attrValue(attrs []xml.Attr, local string) string {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
