package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountsCSV "github.com/tillbook-dev/tillbook/internal/accounts"
	"github.com/tillbook-dev/tillbook/internal/snapshot"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "tillbook-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "tillbook")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/tillbook")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runTillbook(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	_, err := runTillbook(t, "init", dir, "--name", "Corner Store")
	require.NoError(t, err)

	expectedDirs := []string{
		"accounts",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range expectedDirs {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runTillbook(t, "init", dir, "--name", "Corner Store", "--currency", "EUR")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "tillbook.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Corner Store")
	assert.Contains(t, contents, "currency: EUR")
	assert.Contains(t, contents, "epsilon: 0.01")
}

func TestInit_Accounts(t *testing.T) {
	dir := t.TempDir()
	_, err := runTillbook(t, "init", dir, "--name", "Corner Store")
	require.NoError(t, err)

	path := filepath.Join(dir, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	accts, err := accountsCSV.ReadAccounts(f)
	require.NoError(t, err)
	assert.Equal(t, accountsCSV.DefaultChart(), accts)
}

func TestInit_EmptyBooks(t *testing.T) {
	dir := t.TempDir()
	_, err := runTillbook(t, "init", dir, "--name", "Corner Store")
	require.NoError(t, err)

	books, err := snapshot.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, books.Customers)
	assert.Empty(t, books.Vouchers)
}

func TestInit_GitRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := runTillbook(t, "init", dir, "--name", "Corner Store")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	// git log should have an init commit.
	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init:")

	// Verify author.
	authorLog := exec.Command("git", "log", "--format=%an <%ae>", "-1")
	authorLog.Dir = dir
	out, err = authorLog.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Tillbook <books@tillbook.dev>")
}

func TestInit_Gitignore(t *testing.T) {
	dir := t.TempDir()
	_, err := runTillbook(t, "init", dir, "--name", "Corner Store")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	contents := string(data)

	for _, pattern := range []string{"import/", "exports/", "*.tmp"} {
		assert.Contains(t, contents, pattern, ".gitignore should contain %s", pattern)
	}
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	_, err := runTillbook(t, "init", dir)
	require.Error(t, err, "init without --name should fail")
}
