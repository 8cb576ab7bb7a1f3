package account

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountcheck/internal/models"
	"accountcheck/internal/parsererror"
	"accountcheck/internal/pdfext"
	"accountcheck/internal/statement"
	"accountcheck/internal/store"
)

func testRuleset() *store.Ruleset {
	return &store.Ruleset{
		Parse: statement.Rules{
			StopWord: "Neuer Saldo",
			Types: []statement.TypeMapping{
				{Token: "Gutschrift", Kind: "credit"},
				{Token: "Lastschrift", Kind: "debit"},
			},
		},
		Categories: []models.CategoryConfig{
			{Name: "Wohnen", Keywords: []string{"LANDLORD"}},
		},
	}
}

// touchPDFs creates empty placeholder files so directory globbing finds them;
// the mock extractor supplies the page text.
func touchPDFs(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0600))
		paths = append(paths, path)
	}
	return paths
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	paths := touchPDFs(t, dir, "2022-07.pdf", "2022-08.pdf")

	mock := pdfext.NewMock(map[string][]string{
		paths[0]: {"01.07.2022 Gutschrift ACME CORP 1.000,00\nNeuer Saldo"},
		paths[1]: {"01.08.2022 Lastschrift LANDLORD 500,00\nNeuer Saldo"},
	})

	acc := New(testRuleset(), mock, nil)
	diagnostics, err := acc.LoadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, diagnostics)
	require.Len(t, acc.Statements, 2)

	// Lexical filename order, document order within each statement.
	entries := acc.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "ACME CORP", entries[0].Target)
	assert.Equal(t, "LANDLORD", entries[1].Target)
	assert.Equal(t, "Wohnen", entries[1].Category)
	assert.Equal(t, models.FallbackCategory, entries[0].Category)
}

func TestLoadDirSkipsBadDocuments(t *testing.T) {
	// One document that fails to parse is skipped with a diagnostic; the
	// remaining statements still load.
	dir := t.TempDir()
	paths := touchPDFs(t, dir, "a.pdf", "b.pdf", "c.pdf")

	mock := pdfext.NewMock(map[string][]string{
		paths[0]: {"01.07.2022 Gutschrift ACME CORP 1.000,00\nNeuer Saldo"},
		// b.pdf: stop word missing, whole statement parse aborts.
		paths[1]: {"01.08.2022 Lastschrift LANDLORD 500,00"},
		paths[2]: {"01.09.2022 Lastschrift LANDLORD 500,00\nNeuer Saldo"},
	})

	acc := New(testRuleset(), mock, nil)
	diagnostics, err := acc.LoadDir(dir)
	require.NoError(t, err)

	require.Len(t, diagnostics, 1)
	assert.Equal(t, paths[1], diagnostics[0].FilePath)
	var stopErr *parsererror.StopWordError
	assert.ErrorAs(t, diagnostics[0].Err, &stopErr)

	require.Len(t, acc.Statements, 2)
	assert.Equal(t, paths[0], acc.Statements[0].SourceFile)
	assert.Equal(t, paths[2], acc.Statements[1].SourceFile)
}

func TestLoadDirExtractionFailure(t *testing.T) {
	dir := t.TempDir()
	touchPDFs(t, dir, "a.pdf")

	mock := &pdfext.Mock{Err: os.ErrPermission}
	acc := New(testRuleset(), mock, nil)

	diagnostics, err := acc.LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, diagnostics, 1)

	var extErr *parsererror.ExtractionError
	assert.ErrorAs(t, diagnostics[0].Err, &extErr)
	assert.Empty(t, acc.Statements)
}

func TestLoadDirMissingDirectory(t *testing.T) {
	acc := New(testRuleset(), pdfext.NewMock(nil), nil)
	_, err := acc.LoadDir(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	mock := pdfext.NewMock(map[string][]string{
		"x.pdf": {"01.07.2022 Lastschrift LANDLORD 500,00\nNeuer Saldo"},
	})
	acc := New(testRuleset(), mock, nil)

	st, err := acc.LoadFile("x.pdf")
	require.NoError(t, err)
	require.Len(t, st.Entries, 1)
	assert.Equal(t, "Wohnen", st.Entries[0].Category)
	assert.Empty(t, acc.Statements, "LoadFile must not append to the account")
}

func TestAccountString(t *testing.T) {
	mock := pdfext.NewMock(map[string][]string{
		"x.pdf": {"01.07.2022 Gutschrift ACME 1.000,00\nNeuer Saldo"},
	})
	acc := New(testRuleset(), mock, nil)
	st, err := acc.LoadFile("x.pdf")
	require.NoError(t, err)
	acc.Statements = append(acc.Statements, st)

	assert.Contains(t, acc.String(), "in:1000.00")
}
