package termsheet

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
	"sort"
)

// headerFooterRe matches the package parts substitution must also visit.
var headerFooterRe = regexp.MustCompile(`^word/(?:header|footer)\d+\.xml$`)

// Reader handles reading and parsing DOCX files
type Reader struct {
	reader *zip.Reader
	Parts  map[string]*zip.File
}

// NewReader creates a new DOCX reader
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	dr := &Reader{
		reader: zipReader,
		Parts:  make(map[string]*zip.File),
	}

	// Index all parts by name
	for _, file := range zipReader.File {
		dr.Parts[file.Name] = file
	}

	// Check if this is a valid DOCX file by looking for required parts
	if _, ok := dr.Parts["word/document.xml"]; !ok {
		return nil, fmt.Errorf("not a valid DOCX file: missing word/document.xml")
	}

	return dr, nil
}

// GetPart retrieves the content of a specific part
func (dr *Reader) GetPart(partName string) ([]byte, error) {
	file, ok := dr.Parts[partName]
	if !ok {
		return nil, fmt.Errorf("part %s not found", partName)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", partName, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read part %s: %w", partName, err)
	}

	return content, nil
}

// HeaderFooterParts returns the names of every header and footer part in
// stable order.
func (dr *Reader) HeaderFooterParts() []string {
	var names []string
	for name := range dr.Parts {
		if headerFooterRe.MatchString(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
