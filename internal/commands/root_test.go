package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/budget/internal/buildinfo"
	"github.com/cleared-dev/budget/internal/config"
	"github.com/cleared-dev/budget/internal/ledger"
)

func runBudget(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		// cobra falls back to os.Args when args is nil
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_FileFlag(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ledger.json")

	out, err := runBudget(t, "1\nSalary\n1000\n5\n",
		"--config", filepath.Join(dir, "absent.yaml"),
		"--file", file,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "[SUCCESS] Income of $1,000.00 added.")

	store := ledger.NewStore(file)
	require.NoError(t, store.Load())
	assert.Equal(t, 1, store.Len())
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(dir, "from-config.json")
	cfg.Display.Currency = "EUR"
	cfgPath := filepath.Join(dir, config.DefaultFile)
	require.NoError(t, config.Save(cfgPath, cfg))

	out, err := runBudget(t, "2\nTrain\n12.5\n5\n", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "[SUCCESS] Expense of")
	assert.Contains(t, out, "€")

	_, err = os.Stat(cfg.Storage.Path)
	require.NoError(t, err)
}

func TestRoot_CurrencyFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	out, err := runBudget(t, "3\n5\n",
		"--config", filepath.Join(dir, "absent.yaml"),
		"--file", filepath.Join(dir, "ledger.json"),
		"--currency", "GBP",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "£0.00")
}

func TestRoot_InvalidCurrency(t *testing.T) {
	dir := t.TempDir()
	_, err := runBudget(t, "",
		"--config", filepath.Join(dir, "absent.yaml"),
		"--file", filepath.Join(dir, "ledger.json"),
		"--currency", "ZZZ",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestRoot_MalformedConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.DefaultFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage: [\n"), 0o644))

	_, err := runBudget(t, "", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestRoot_MalformedImplicitConfigFallsBack(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(config.DefaultFile, []byte("storage: [\n"), 0o644))

	out, err := runBudget(t, "1\nSalary\n10\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "[WARNING] Ignoring budget.yaml")
	assert.Contains(t, out, "[SUCCESS] Income of $10.00 added.")

	_, err = os.Stat(filepath.Join(dir, ledger.DefaultFile))
	require.NoError(t, err, "defaults put the ledger in the working directory")
}

func TestRoot_InvalidImplicitConfigFallsBack(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(config.DefaultFile, []byte("display:\n  currency: ZZZ\n"), 0o644))

	out, err := runBudget(t, "3\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "unknown currency")
	assert.Contains(t, out, "$0.00")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := runBudget(t, "", "extra")
	require.Error(t, err)
}

func TestRoot_Version(t *testing.T) {
	out, err := runBudget(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, buildinfo.Version)
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
