package vfs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) *Tree {
	t.Helper()
	tree, err := New([]Entry{
		{Name: "logs", Children: []Entry{
			{Name: "system", Children: []Entry{
				{Name: "kernel.log", Content: "boot ok"},
				{Name: "svchost.exe", Content: "MZ", Malicious: true},
			}},
			{Name: "access.log", Content: "GET /"},
		}},
		{Name: "documents", Children: []Entry{
			{Name: "archive", Dir: true},
			{Name: "downloads", Children: []Entry{
				{Name: "run_me.sh", Content: "echo hi"},
			}},
		}},
		{Name: "readme.txt", Content: "line one\nline two"},
	})
	require.NoError(t, err)
	return tree
}

func TestNew_IndexesEveryNode(t *testing.T) {
	tree := fixture(t)

	assert.Equal(t, 11, tree.Len())
	assert.True(t, tree.IsDir(Root))
	assert.True(t, tree.IsDir("~/logs/system"))
	assert.True(t, tree.IsDir("~/documents/archive"))
	assert.True(t, tree.IsFile("~/documents/downloads/run_me.sh"))
	assert.Equal(t, "~/logs/system/svchost.exe", tree.MaliciousPath())

	n, ok := tree.Lookup("~/readme.txt")
	require.True(t, ok)
	assert.Equal(t, "readme.txt", n.Name)
	assert.Equal(t, KindFile, n.Kind)
	assert.Equal(t, "line one\nline two", n.Content)
}

func TestNew_RejectsInvalidTrees(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"no malicious file", []Entry{{Name: "a.txt"}}},
		{"two malicious files", []Entry{
			{Name: "a", Malicious: true},
			{Name: "d", Children: []Entry{{Name: "b", Malicious: true}}},
		}},
		{"malicious directory", []Entry{{Name: "d", Dir: true, Malicious: true}}},
		{"duplicate name", []Entry{{Name: "x", Malicious: true}, {Name: "x"}}},
		{"empty name", []Entry{{Name: "", Malicious: true}}},
		{"dot dot", []Entry{{Name: "..", Malicious: true}}},
		{"tilde", []Entry{{Name: "~", Malicious: true}}},
		{"slash", []Entry{{Name: "a/b", Malicious: true}}},
		{"whitespace", []Entry{{Name: "my file", Malicious: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := New(tt.entries)
			assert.Nil(t, tree)
			assert.True(t, errors.Is(err, ErrInvalidTree), "expected ErrInvalidTree, got: %v", err)
		})
	}
}

func TestChildren_DefinitionOrder(t *testing.T) {
	tree := fixture(t)

	var names []string
	for _, n := range tree.Children(Root) {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"logs", "documents", "readme.txt"}, names)
}

func TestChildren_FileOrMissingIsEmpty(t *testing.T) {
	tree := fixture(t)

	assert.Empty(t, tree.Children("~/readme.txt"))
	assert.Empty(t, tree.Children("~/nope"))
	assert.Empty(t, tree.Children("~/documents/archive"))
}

func TestRemove(t *testing.T) {
	tree := fixture(t)

	require.NoError(t, tree.Remove("~/logs/access.log"))
	_, ok := tree.Lookup("~/logs/access.log")
	assert.False(t, ok)
	assert.Len(t, tree.Children("~/logs"), 1)

	err := tree.Remove("~/logs/access.log")
	assert.True(t, errors.Is(err, ErrNotFound))

	err = tree.Remove("~/logs")
	assert.True(t, errors.Is(err, ErrIsDirectory))
	assert.True(t, tree.IsDir("~/logs"))
}

func TestRemove_MaliciousClearsMarker(t *testing.T) {
	tree := fixture(t)

	require.NoError(t, tree.Remove("~/logs/system/svchost.exe"))
	assert.Equal(t, "", tree.MaliciousPath())
}

func TestWalk(t *testing.T) {
	tree := fixture(t)

	var visited []string
	var depths []int
	tree.Walk(func(n Node, depth int) {
		visited = append(visited, n.Path)
		depths = append(depths, depth)
	})

	assert.Equal(t, tree.Len()-1, len(visited))
	assert.Equal(t, "~/logs", visited[0])
	assert.Equal(t, "~/logs/system", visited[1])
	assert.Equal(t, "~/logs/system/kernel.log", visited[2])
	assert.Equal(t, []int{1, 2, 3}, depths[:3])
}

func TestClone_IsIndependent(t *testing.T) {
	tree := fixture(t)
	clone := tree.Clone()

	require.NoError(t, clone.Remove("~/readme.txt"))
	require.NoError(t, clone.Remove("~/logs/system/svchost.exe"))

	assert.True(t, tree.IsFile("~/readme.txt"))
	assert.Len(t, tree.Children(Root), 3)
	assert.Equal(t, "~/logs/system/svchost.exe", tree.MaliciousPath())
	assert.Equal(t, tree.Len()-2, clone.Len())
}
