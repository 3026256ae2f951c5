package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "cars.csv", "Brand,Price\nFord,22000\nBMW,25000\n")
	contract := writeFile(t, dir, "cars.yaml",
		"columns:\n  - Brand\n  - name: Price\n    type: int64\n")

	var out bytes.Buffer
	err := Check(&out, CheckOptions{DataPath: data, ContractPath: contract})
	require.NoError(t, err)
	require.Contains(t, out.String(), `satisfies contract "cars"`)
	require.Contains(t, out.String(), "2 rows")
}

func TestCheck_Failure(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "cars.csv", "Brand\nFord\n")
	contract := writeFile(t, dir, "cars.yaml", "columns:\n  - Brand\n  - Price\n")

	var out bytes.Buffer
	err := Check(&out, CheckOptions{DataPath: data, ContractPath: contract})
	require.ErrorContains(t, err, "Column Price missing from DataFrame")
}

func TestCheck_StrictFlagOverridesContract(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "cars.csv", "Brand,Extra\nFord,x\n")
	contract := writeFile(t, dir, "cars.yaml", "columns:\n  - Brand\n")

	var out bytes.Buffer
	require.NoError(t, Check(&out, CheckOptions{DataPath: data, ContractPath: contract}))

	err := Check(&out, CheckOptions{DataPath: data, ContractPath: contract, Strict: true})
	require.ErrorContains(t, err, "unexpected column(s): Extra")
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "cars.csv", "Brand,Price\nFord,22000\n")

	var out bytes.Buffer
	require.NoError(t, Describe(&out, data))
	require.Contains(t, out.String(), "Brand")
	require.Contains(t, out.String(), "int64")
}
