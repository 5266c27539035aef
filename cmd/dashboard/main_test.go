package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/dashboard/usecase/settings"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "export", "import"}, names)
}

func TestReadBackup(t *testing.T) {
	payload, err := readBackup(strings.NewReader(`{"tasks":[]}`), "-")
	require.NoError(t, err)
	assert.Equal(t, `{"tasks":[]}`, string(payload))

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
	payload, err = readBackup(nil, path)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(payload))

	_, err = readBackup(nil, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, settings.ImportReport{HasUser: true, Tasks: 3, Notes: 1, ExportedAt: "2026-01-20T10:00:00Z"})

	out := buf.String()
	assert.Contains(t, out, "user:     yes")
	assert.Contains(t, out, "tasks:    3")
	assert.Contains(t, out, "notes:    1")
	assert.Contains(t, out, "exported: 2026-01-20T10:00:00Z")
}

func TestImportCmd_RequiresArgument(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"import"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	assert.Error(t, root.Execute())
}
