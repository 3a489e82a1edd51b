package profile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestOpenMissingFileYieldsEmptyStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), DefaultFileName))
	require.NoError(t, err)
	assert.Empty(t, s.List())
}

func TestSaveCreatesWorkbookWithHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Upsert(Profile{
		NomPromoteur:     "Promoteur SA",
		NomContact:       "Jean Valjean",
		AdressePromoteur: "12 rue de la Paix, 69000 Lyon",
		Civilite:         "Monsieur",
	}))
	require.NoError(t, s.Save())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Nom du promoteur", "Nom du contact", "Adresse du promoteur", "Civilité"}, rows[0])
	assert.Equal(t, "Promoteur SA", rows[1][0])
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Upsert(Profile{NomPromoteur: "Alpha", NomContact: "A", Civilite: "Madame"}))
	require.NoError(t, s.Upsert(Profile{NomPromoteur: "Beta", NomContact: "B", Civilite: "Monsieur"}))
	require.NoError(t, s.Save())

	reopened, err := Open(path)
	require.NoError(t, err)
	require.Len(t, reopened.List(), 2)

	p, err := reopened.Find("Beta")
	require.NoError(t, err)
	assert.Equal(t, "B", p.NomContact)

	_, err = reopened.Find("Gamma")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertReplacesExistingRow(t *testing.T) {
	s := &Store{}
	require.NoError(t, s.Upsert(Profile{NomPromoteur: "Alpha", NomContact: "old"}))
	require.NoError(t, s.Upsert(Profile{NomPromoteur: "Alpha", NomContact: "new"}))
	require.Len(t, s.List(), 1)
	assert.Equal(t, "new", s.List()[0].NomContact)
}

func TestUpsertRejectsEmptyName(t *testing.T) {
	s := &Store{}
	assert.Error(t, s.Upsert(Profile{NomContact: "orphan"}))
}
