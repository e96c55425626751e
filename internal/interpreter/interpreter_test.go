package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/termhunt/internal/vfs"
)

func newTree(t *testing.T) *vfs.Tree {
	t.Helper()
	tree, err := vfs.New([]vfs.Entry{
		{Name: "logs", Children: []vfs.Entry{
			{Name: "system", Children: []vfs.Entry{
				{Name: "updater.sh", Content: "#!/bin/sh", Malicious: true},
			}},
			{Name: "access.log", Content: "GET /"},
		}},
		{Name: "documents", Children: []vfs.Entry{
			{Name: "archive", Dir: true},
			{Name: "downloads", Children: []vfs.Entry{
				{Name: "run_me.sh", Content: "echo hi"},
			}},
		}},
		{Name: "readme.txt", Content: "line one\nline two"},
	})
	require.NoError(t, err)
	return tree
}

func TestParse(t *testing.T) {
	verb, args := Parse("  LS   logs  extra ")
	assert.Equal(t, "ls", verb)
	assert.Equal(t, []string{"logs", "extra"}, args)

	verb, args = Parse("   ")
	assert.Equal(t, "", verb)
	assert.Nil(t, args)
}

func TestExecute_Blank(t *testing.T) {
	assert.Equal(t, Result{}, Execute(newTree(t), vfs.Root, ""))
}

func TestExecute_UnknownVerb(t *testing.T) {
	res := Execute(newTree(t), vfs.Root, "Sudo rm -rf")
	assert.Equal(t, []string{"Sudo: command not found"}, res.Output)
}

func TestExecute_VerbIsCaseInsensitive(t *testing.T) {
	res := Execute(newTree(t), vfs.Root, "HELP")
	assert.Equal(t, helpText, res.Output)
}

func TestList(t *testing.T) {
	tree := newTree(t)

	res := Execute(tree, vfs.Root, "ls")
	assert.Equal(t, []string{
		"drwxr-xr-x  logs",
		"drwxr-xr-x  documents",
		"-rwxr-xr-x  readme.txt",
	}, res.Output)
	assert.Empty(t, res.NextDir)
}

func TestList_EmptyDirectory(t *testing.T) {
	res := Execute(newTree(t), "~/documents/archive", "ls")
	assert.Equal(t, []string{EmptyDirectory}, res.Output)
}

func TestList_WithPath(t *testing.T) {
	tree := newTree(t)

	res := Execute(tree, vfs.Root, "ls logs/system")
	assert.Equal(t, []string{"-rwxr-xr-x  updater.sh"}, res.Output)

	res = Execute(tree, vfs.Root, "ls readme.txt")
	assert.Equal(t, []string{"-rwxr-xr-x  readme.txt"}, res.Output)

	res = Execute(tree, vfs.Root, "ls nope")
	assert.Equal(t, []string{"ls: nope: No such file or directory"}, res.Output)
}

func TestChangeDir(t *testing.T) {
	tree := newTree(t)

	tests := []struct {
		name    string
		cwd     string
		line    string
		wantDir string
		wantOut []string
	}{
		{"relative", "~", "cd logs", "~/logs", nil},
		{"nested", "~", "cd logs/system", "~/logs/system", nil},
		{"up", "~/logs/system", "cd ..", "~/logs", nil},
		{"up past root", "~", "cd ..", "~", nil},
		{"home", "~/logs/system", "cd ~", "~", nil},
		{"absolute", "~/logs", "cd ~/documents/archive", "~/documents/archive", nil},
		{"missing argument", "~", "cd", "", []string{"cd: missing argument"}},
		{"unknown", "~", "cd nowhere", "", []string{"cd: nowhere: No such file or directory"}},
		{"into a file", "~", "cd readme.txt", "", []string{"cd: readme.txt: Not a directory"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Execute(tree, tt.cwd, tt.line)
			assert.Equal(t, tt.wantDir, res.NextDir)
			assert.Equal(t, tt.wantOut, res.Output)
		})
	}
}

func TestCat(t *testing.T) {
	tree := newTree(t)

	res := Execute(tree, vfs.Root, "cat readme.txt")
	assert.Equal(t, []string{"line one", "line two"}, res.Output)

	res = Execute(tree, "~/logs", "cat ../readme.txt")
	assert.Equal(t, []string{"line one", "line two"}, res.Output)

	res = Execute(tree, vfs.Root, "cat")
	assert.Equal(t, []string{"cat: missing argument"}, res.Output)

	res = Execute(tree, vfs.Root, "cat logs")
	assert.Equal(t, []string{"cat: logs: No such file or directory"}, res.Output)

	res = Execute(tree, vfs.Root, "cat access.log")
	assert.Equal(t, []string{"cat: access.log: No such file or directory"}, res.Output)
}

func TestRemove(t *testing.T) {
	tree := newTree(t)

	res := Execute(tree, "~/documents/downloads", "rm run_me.sh")
	assert.Equal(t, []string{"File run_me.sh removed"}, res.Output)
	assert.Equal(t, "~/documents/downloads/run_me.sh", res.Removed)
	assert.False(t, res.Won)
	assert.True(t, tree.IsFile(res.Removed), "interpreter must not mutate the tree")
}

func TestRemove_Malicious(t *testing.T) {
	res := Execute(newTree(t), "~/logs/system", "rm updater.sh")

	assert.True(t, res.Won)
	assert.Equal(t, "~/logs/system/updater.sh", res.Removed)
	require.NotEmpty(t, res.Output)
	assert.Equal(t, "File updater.sh removed", res.Output[0])
}

func TestRemove_Errors(t *testing.T) {
	tree := newTree(t)

	res := Execute(tree, vfs.Root, "rm")
	assert.Equal(t, []string{"rm: missing argument"}, res.Output)

	res = Execute(tree, vfs.Root, "rm logs")
	assert.Equal(t, []string{"rm: logs: No such file or directory"}, res.Output)
	assert.Empty(t, res.Removed)

	res = Execute(tree, vfs.Root, "rm ghost.txt")
	assert.Equal(t, []string{"rm: ghost.txt: No such file or directory"}, res.Output)
	assert.False(t, res.Won)
}

func TestIsVerb(t *testing.T) {
	for _, v := range Verbs {
		assert.True(t, IsVerb(v))
	}
	assert.True(t, IsVerb("CAT"))
	assert.False(t, IsVerb("pwd"))
}
