package termsheet

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmartel/termsheet/pkg/termsheet/ooxml"
)

// Output name suffixes for the two termsheet variants.
const (
	SuffixGFA = "genere"
	SuffixCII = "CII_genere"
)

const timestampLayout = "20060102_150405"

// Template is a prepared DOCX template. Rendering never mutates the
// template, so one Template can produce any number of documents.
type Template struct {
	source []byte
	reader *Reader
}

// PrepareFile loads and validates a DOCX template from disk.
func PrepareFile(path string) (*Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	tpl, err := Prepare(bytes.NewReader(content))
	if err != nil {
		return nil, NewDocumentError("prepare", path, err)
	}
	return tpl, nil
}

// Prepare loads and validates a DOCX template from a reader.
func Prepare(r io.Reader) (*Template, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	reader, err := NewReader(bytes.NewReader(source), int64(len(source)))
	if err != nil {
		return nil, err
	}
	return &Template{source: source, reader: reader}, nil
}

// Render applies the replacements to the document body, tables, headers
// and footers, and returns the produced DOCX.
func (t *Template) Render(m ReplacementMap) (io.Reader, error) {
	rewritten := make(map[string][]byte)

	parts := append([]string{"word/document.xml"}, t.reader.HeaderFooterParts()...)
	for _, name := range parts {
		content, err := t.reader.GetPart(name)
		if err != nil {
			return nil, NewPartError(name, err)
		}
		doc, err := ooxml.Parse(bytes.NewReader(content))
		if err != nil {
			return nil, NewPartError(name, err)
		}
		replaceInDocument(doc, m)
		rewritten[name] = doc.Bytes()
	}

	// Copy the package, swapping in the rewritten parts.
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	zipReader, err := zip.NewReader(bytes.NewReader(t.source), int64(len(t.source)))
	if err != nil {
		return nil, fmt.Errorf("failed to read source zip: %w", err)
	}
	for _, file := range zipReader.File {
		fw, err := w.Create(file.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", file.Name, err)
		}
		if content, ok := rewritten[file.Name]; ok {
			if _, err := fw.Write(content); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", file.Name, err)
			}
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
		}
		if _, err := io.Copy(fw, rc); err != nil {
			rc.Close()
			return nil, fmt.Errorf("failed to copy %s: %w", file.Name, err)
		}
		rc.Close()
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize output: %w", err)
	}
	return buf, nil
}

// RenderToFile renders the template and writes the result to path.
func (t *Template) RenderToFile(path string, m ReplacementMap) error {
	out, err := t.Render(m)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return NewDocumentError("create", path, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, out); err != nil {
		return NewDocumentError("write", path, err)
	}
	return nil
}

// OutputName derives the generated document's file name from the template's
// name: "<stem>_<suffix>_<YYYYMMDD_HHMMSS>.docx". The directory part of
// templatePath is dropped; the caller chooses the destination.
func OutputName(templatePath, suffix string, now time.Time) string {
	base := filepath.Base(templatePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%s_%s.docx", stem, suffix, now.Format(timestampLayout))
}
