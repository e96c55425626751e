package vfs

import (
	"errors"
	"fmt"
	"strings"
)

// Root is the absolute path of the tree root.
const Root = "~"

var (
	// ErrNotFound is returned when a path does not name a node of the tree.
	ErrNotFound = errors.New("no such file or directory")

	// ErrIsDirectory is returned when a file operation targets a directory.
	ErrIsDirectory = errors.New("is a directory")

	// ErrInvalidTree is returned by New when the entries violate a tree invariant.
	ErrInvalidTree = errors.New("invalid tree")
)

// Kind distinguishes files from directories.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "directory"
	}
	return "file"
}

// Entry describes a node before the tree is built.
// An entry is a directory when Dir is set or when it has children.
type Entry struct {
	Name      string
	Dir       bool
	Content   string
	Malicious bool
	Children  []Entry
}

// IsDir reports whether the entry describes a directory.
func (e Entry) IsDir() bool {
	return e.Dir || len(e.Children) > 0
}

// Node is a read-only view of a tree node.
type Node struct {
	Name      string
	Path      string
	Kind      Kind
	Content   string
	Malicious bool
}

// IsDir reports whether the node is a directory.
func (n Node) IsDir() bool {
	return n.Kind == KindDir
}

type node struct {
	Node
	parent   int
	children []int
}

// Tree is an arena of nodes plus an absolute path index.
// It is not safe for concurrent mutation; sessions own their tree.
type Tree struct {
	nodes     []node
	index     map[string]int
	malicious string
}

// New validates the entries and builds a tree rooted at Root.
// Exactly one file across the whole tree must be marked malicious.
func New(root []Entry) (*Tree, error) {
	t := &Tree{
		index: make(map[string]int),
	}
	t.nodes = append(t.nodes, node{
		Node:   Node{Name: Root, Path: Root, Kind: KindDir},
		parent: -1,
	})
	t.index[Root] = 0

	if err := t.add(0, root); err != nil {
		return nil, err
	}
	if t.malicious == "" {
		return nil, fmt.Errorf("%w: no malicious file", ErrInvalidTree)
	}
	return t, nil
}

func (t *Tree) add(parent int, entries []Entry) error {
	parentPath := t.nodes[parent].Path
	for _, e := range entries {
		if err := validateName(e.Name); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTree, parentPath, err)
		}

		p := Join(parentPath, e.Name)
		if _, exists := t.index[p]; exists {
			return fmt.Errorf("%w: duplicate entry %s", ErrInvalidTree, p)
		}

		kind := KindFile
		if e.IsDir() {
			kind = KindDir
		}
		if e.Malicious {
			if kind == KindDir {
				return fmt.Errorf("%w: directory %s cannot be malicious", ErrInvalidTree, p)
			}
			if t.malicious != "" {
				return fmt.Errorf("%w: both %s and %s are malicious", ErrInvalidTree, t.malicious, p)
			}
			t.malicious = p
		}

		idx := len(t.nodes)
		t.nodes = append(t.nodes, node{
			Node: Node{
				Name:      e.Name,
				Path:      p,
				Kind:      kind,
				Content:   e.Content,
				Malicious: e.Malicious,
			},
			parent: parent,
		})
		t.index[p] = idx
		t.nodes[parent].children = append(t.nodes[parent].children, idx)

		if kind == KindDir {
			if err := t.add(idx, e.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateName(name string) error {
	switch name {
	case "":
		return errors.New("empty name")
	case ".", "..", Root:
		return fmt.Errorf("reserved name %q", name)
	}
	if strings.ContainsAny(name, "/ \t\r\n") {
		return fmt.Errorf("name %q contains a separator or whitespace", name)
	}
	return nil
}

// Lookup returns the node at an absolute path.
func (t *Tree) Lookup(path string) (Node, bool) {
	idx, ok := t.index[path]
	if !ok {
		return Node{}, false
	}
	return t.nodes[idx].Node, true
}

// IsDir reports whether path names a directory.
func (t *Tree) IsDir(path string) bool {
	n, ok := t.Lookup(path)
	return ok && n.Kind == KindDir
}

// IsFile reports whether path names a file.
func (t *Tree) IsFile(path string) bool {
	n, ok := t.Lookup(path)
	return ok && n.Kind == KindFile
}

// Children returns the entries of a directory in definition order.
// A file or a missing path yields an empty listing.
func (t *Tree) Children(path string) []Node {
	idx, ok := t.index[path]
	if !ok || t.nodes[idx].Kind != KindDir {
		return nil
	}
	out := make([]Node, 0, len(t.nodes[idx].children))
	for _, c := range t.nodes[idx].children {
		out = append(out, t.nodes[c].Node)
	}
	return out
}

// Remove deletes a file from its parent directory and from the index.
func (t *Tree) Remove(path string) error {
	idx, ok := t.index[path]
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if t.nodes[idx].Kind == KindDir {
		return fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}

	parent := &t.nodes[t.nodes[idx].parent]
	for i, c := range parent.children {
		if c == idx {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
	delete(t.index, path)

	if path == t.malicious {
		t.malicious = ""
	}
	return nil
}

// MaliciousPath returns the path of the malicious file, or "" once removed.
func (t *Tree) MaliciousPath() string {
	return t.malicious
}

// Len returns the number of reachable nodes, root included.
func (t *Tree) Len() int {
	return len(t.index)
}

// Walk visits every reachable node below the root depth-first, in definition
// order. Depth is 1 for the root's children.
func (t *Tree) Walk(fn func(n Node, depth int)) {
	t.walk(0, 1, fn)
}

func (t *Tree) walk(idx, depth int, fn func(Node, int)) {
	for _, c := range t.nodes[idx].children {
		fn(t.nodes[c].Node, depth)
		if t.nodes[c].Kind == KindDir {
			t.walk(c, depth+1, fn)
		}
	}
}

// Clone returns an independent copy of the tree, removals included.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		nodes:     make([]node, len(t.nodes)),
		index:     make(map[string]int, len(t.index)),
		malicious: t.malicious,
	}
	for i, n := range t.nodes {
		n.children = append([]int(nil), n.children...)
		c.nodes[i] = n
	}
	for p, i := range t.index {
		c.index[p] = i
	}
	return c
}
