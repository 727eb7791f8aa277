package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestIteratorCommand_Sample(t *testing.T) {
	out, _, err := run(t, "iterator")
	require.NoError(t, err)
	assert.Equal(t, "DFS Traversal\n"+
		"root\nfile1.txt\nfile2.txt\nsubDir1\nfile3.txt\nsubDir2\n"+
		"BFS Traversal\n"+
		"root\nfile1.txt\nfile2.txt\nsubDir1\nfile3.txt\nsubDir2\n", out)
}

func TestIteratorCommand_TreeFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	doc := "name: r\nchildren:\n  - name: a\n    children:\n      - name: a1\n  - name: b\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := run(t, "iterator", "--tree", path)
	require.NoError(t, err)
	assert.Equal(t, "DFS Traversal\nr\na\na1\nb\nBFS Traversal\nr\na\nb\na1\n", out)
}

func TestIteratorCommand_MissingTree(t *testing.T) {
	_, _, err := run(t, "iterator", "--tree", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open tree")
}

func TestDemoCommands(t *testing.T) {
	cases := map[string]string{
		"adapter":   "Playing MP3 file: song.mp3\n",
		"builder":   "Gaming PC: Computer [CPU=High-end Gaming CPU",
		"facade":    "Leaving home...\n",
		"factory":   "Preparing Cheese Pizza...\n",
		"pubsub":    "Investor Elijah notified. Stock: Google is now 1300.0\n",
		"singleton": "Log: Starting the application...\n",
		"strategy":  "Paying 250.75 euros, using credit card...\n",
	}
	for name, prefix := range cases {
		t.Run(name, func(t *testing.T) {
			out, _, err := run(t, name)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, prefix), "output %q", out)
		})
	}
}

func TestAllCommand_Order(t *testing.T) {
	out, _, err := run(t, "all")
	require.NoError(t, err)

	markers := []string{
		"Playing MP3 file",
		"Gaming PC:",
		"Leaving home...",
		"Preparing Cheese Pizza...",
		"DFS Traversal",
		"Investor Elijah",
		"Log: Starting",
		"Paying 250.75",
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(out, m)
		require.GreaterOrEqual(t, idx, 0, "missing %q", m)
		assert.Greater(t, idx, last, "%q out of order", m)
		last = idx
	}
	assert.Equal(t, 7, strings.Count(out, "\n\n"), "demos are separated by one blank line")
}

func TestDebugFlag_LogsToStderr(t *testing.T) {
	out, errOut, err := run(t, "--debug", "facade")
	require.NoError(t, err)
	assert.NotContains(t, out, "demo.start")
	assert.Contains(t, errOut, "demo.start")
	assert.Contains(t, errOut, "demo=facade")
}

func TestUnknownArgs(t *testing.T) {
	_, _, err := run(t, "adapter", "extra")
	assert.Error(t, err)
}
