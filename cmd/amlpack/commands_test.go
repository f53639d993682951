package amlpack

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/amlpack/pkg/errors"
	"github.com/arthur-debert/amlpack/pkg/testutil"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	partA   = `<Item type="Part" id="1"><keyed_name>Widget</keyed_name><cost>1</cost></Item>`
	partA2  = `<Item type="Part" id="1"><keyed_name>Widget</keyed_name><cost>2</cost></Item>`
	partB   = `<Item type="Part" id="2"><keyed_name>Gadget</keyed_name></Item>`
	editA   = `<Item type="Part" id="1" action="edit"><state>Released</state></Item>`
	partNew = `<Item type="Part" id="3"><keyed_name>Gizmo</keyed_name></Item>`
)

// run executes the root command with args in an isolated environment
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeAML(t *testing.T, dir, name string, records ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(testutil.AMLDocument(records...)), 0644))
	return path
}

func TestExportCmd(t *testing.T) {
	dir := t.TempDir()
	input := writeAML(t, dir, "parts.xml", partA, partB, editA)
	output := filepath.Join(dir, "out")

	out, err := run(t, "export", input, "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported to "+output)

	assert.FileExists(t, filepath.Join(output, "Part", "Widget.xml"))
	assert.FileExists(t, filepath.Join(output, "Part", "Gadget.xml"))
	assert.FileExists(t, filepath.Join(output, "manifest.toml"))

	scripts, err := os.ReadDir(filepath.Join(output, "_Scripts"))
	require.NoError(t, err)
	assert.Len(t, scripts, 1)

	content, err := os.ReadFile(filepath.Join(output, "Part", "Gadget.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "<AML>")
	assert.NotContains(t, string(content), "<?xml")
}

func TestExportCmdDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeAML(t, dir, "parts.xml", partB)

	_, err := run(t, "export", input)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "parts", "Part", "Gadget.xml"))
}

func TestExportCmdDryRun(t *testing.T) {
	dir := t.TempDir()
	input := writeAML(t, dir, "parts.xml", partA, partB)
	output := filepath.Join(dir, "out")

	out, err := run(t, "export", input, "-o", output, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "Part/Widget.xml")
	assert.NoDirExists(t, output)
}

func TestExportCmdConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeAML(t, dir, "parts.xml", partA, editA)
	output := filepath.Join(dir, "out")

	cfgPath := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[export]
scripts_folder = "scripts"
manifest = "manifest.json"
`), 0644))

	_, err := run(t, "--config", cfgPath, "export", input, "-o", output)
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(output, "scripts"))
	assert.FileExists(t, filepath.Join(output, "manifest.json"))
}

func TestExportCmdErrors(t *testing.T) {
	_, err := run(t, "export", filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.xml")
	require.NoError(t, os.WriteFile(bad, []byte(`<Parts><Part/></Parts>`), 0644))
	_, err = run(t, "export", bad)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = run(t, "export")
	assert.Error(t, err)
}

func TestDiffCmd(t *testing.T) {
	dir := t.TempDir()
	base := writeAML(t, dir, "base.xml", partA, partB)
	head := writeAML(t, dir, "head.xml", partA2, partNew)

	out, err := run(t, "diff", base, head)
	require.NoError(t, err)
	assert.Contains(t, out, "~ changed")
	assert.Contains(t, out, "+ added")
	assert.Contains(t, out, "- removed")
	assert.Contains(t, out, "1 added, 1 removed, 1 changed, 0 unchanged")
}

func TestDiffCmdJSON(t *testing.T) {
	dir := t.TempDir()
	base := writeAML(t, dir, "base.xml", partA, partB)
	head := writeAML(t, dir, "head.xml", partA, partB)

	out, err := run(t, "diff", base, head, "--json")
	require.NoError(t, err)

	var report struct {
		Changes []struct {
			Key    string `json:"key"`
			Status string `json:"status"`
		} `json:"changes"`
		Summary struct {
			Unchanged int `json:"unchanged"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Changes, 2)
	assert.Equal(t, "Part: 1", report.Changes[0].Key)
	assert.Equal(t, "unchanged", report.Changes[0].Status)
	assert.Equal(t, 2, report.Summary.Unchanged)
}

func TestDiffCmdAgainstExport(t *testing.T) {
	dir := t.TempDir()
	base := writeAML(t, dir, "base.xml", partA, partB, editA)
	output := filepath.Join(dir, "out")

	_, err := run(t, "export", base, "-o", output)
	require.NoError(t, err)

	out, err := run(t, "diff", output, base, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"unchanged": 3`)

	out, err = run(t, "diff", filepath.Join(output, "manifest.toml"), writeAML(t, dir, "head.xml", partA2, partB, editA))
	require.NoError(t, err)
	assert.Contains(t, out, "1 changed")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "amlpack version dev")
}

func TestHelpTopics(t *testing.T) {
	out, err := run(t, "help", "layout")
	require.NoError(t, err)
	assert.Contains(t, out, "# Export layout")

	out, err = run(t, "help", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Plans the export")

	out, err = run(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "classification")
	assert.Contains(t, out, "--dry-run")
}

func TestDefaultOutput(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b"), defaultOutput(filepath.Join("a", "b.xml")))
	assert.Equal(t, "parts", defaultOutput("parts.xml"))
	assert.Equal(t, "parts", defaultOutput("parts"))
}
