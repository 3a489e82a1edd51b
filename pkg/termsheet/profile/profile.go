// Package profile stores promoter profiles in an Excel workbook so the
// same contact details can be reused across termsheets. The workbook has a
// single sheet with one French-labelled header row; rows are matched by
// promoter name.
package profile

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// DefaultFileName is the workbook the tool looks for next to its templates.
const DefaultFileName = "profils.xlsx"

const sheetName = "Sheet1"

// headers is the column order of the workbook, fixed by the existing files
// in the field.
var headers = []string{
	"Nom du promoteur",
	"Nom du contact",
	"Adresse du promoteur",
	"Civilité",
}

// ErrNotFound is returned by Find when no row matches the promoter name.
var ErrNotFound = errors.New("profile not found")

// Profile is one saved promoter.
type Profile struct {
	NomPromoteur     string
	NomContact       string
	AdressePromoteur string
	Civilite         string
}

// Store is an in-memory view of the profile workbook. Mutations are kept in
// memory until Save.
type Store struct {
	path     string
	profiles []Profile
}

// Open loads the workbook at path. A missing file yields an empty store;
// Save will create it with the header row.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("open profile store: %w", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open profile store: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetList()
	if len(sheet) == 0 {
		return s, nil
	}
	rows, err := f.GetRows(sheet[0])
	if err != nil {
		return nil, fmt.Errorf("read profile store: %w", err)
	}
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		p := Profile{
			NomPromoteur:     cell(row, 0),
			NomContact:       cell(row, 1),
			AdressePromoteur: cell(row, 2),
			Civilite:         cell(row, 3),
		}
		if p.NomPromoteur == "" {
			continue
		}
		s.profiles = append(s.profiles, p)
	}
	return s, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// Path returns the workbook location the store was opened from.
func (s *Store) Path() string { return s.path }

// List returns the profiles in workbook order.
func (s *Store) List() []Profile {
	out := make([]Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Find returns the profile whose promoter name matches exactly.
func (s *Store) Find(nomPromoteur string) (Profile, error) {
	for _, p := range s.profiles {
		if p.NomPromoteur == nomPromoteur {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %s", ErrNotFound, nomPromoteur)
}

// Upsert replaces the row matching the profile's promoter name, or appends
// a new one. A profile without a promoter name is rejected.
func (s *Store) Upsert(p Profile) error {
	if p.NomPromoteur == "" {
		return errors.New("profile requires a promoter name")
	}
	for i, existing := range s.profiles {
		if existing.NomPromoteur == p.NomPromoteur {
			s.profiles[i] = p
			return nil
		}
	}
	s.profiles = append(s.profiles, p)
	return nil
}

// Save writes the workbook back, creating it with the header row when it
// does not exist yet.
func (s *Store) Save() error {
	f := excelize.NewFile()
	defer f.Close()

	for c, h := range headers {
		addr, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, addr, h); err != nil {
			return err
		}
	}
	for r, p := range s.profiles {
		for c, v := range []string{p.NomPromoteur, p.NomContact, p.AdressePromoteur, p.Civilite} {
			addr, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, addr, v); err != nil {
				return err
			}
		}
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save profile store: %w", err)
	}
	return nil
}
