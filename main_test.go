package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/orayew2002/rainfall-spi/domain"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_Matrix(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "daily.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Persian Date", "precipitation"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"1400/1/1", 4.5}))
	require.NoError(t, f.SaveAs(in))
	require.NoError(t, f.Close())

	out := filepath.Join(dir, "matrix.xlsx")
	stdout, err := runCLI(t, "matrix", in, out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "done: "+out)

	res, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer res.Close()
	v, err := res.GetCellValue("Sheet1", "B2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "4.5", v)
}

func TestCLI_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "matrix", filepath.Join(dir, "only-one-arg.xlsx"))
	assert.Error(t, err)

	_, err = runCLI(t, "spiprep", filepath.Join(dir, "absent.xlsx"), filepath.Join(dir, "out.xlsx"))
	assert.ErrorIs(t, err, domain.ErrIO)

	_, err = runCLI(t, "--config", filepath.Join(dir, "absent.yaml"), "charts", "a", "b")
	assert.ErrorIs(t, err, domain.ErrIO)
}
