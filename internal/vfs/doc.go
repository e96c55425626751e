// Package vfs implements the game's virtual filesystem.
//
// A Tree is built once from a list of Entry values and stored as an arena of
// nodes. Every node is addressable by its absolute path string through an
// index derived from the arena at build time, so directory checks and child
// listings never walk the tree:
//
//	tree, err := vfs.New([]vfs.Entry{
//	    {Name: "logs", Children: []vfs.Entry{{Name: "access.log", Content: "..."}}},
//	    {Name: "readme.txt", Content: "hello"},
//	})
//	dir, err := tree.Resolve("~", "logs")   // "~/logs"
//	entries := tree.Children(dir)          // [access.log]
//
// Paths are rooted at "~" and use "/" as separator. The only mutation a built
// tree supports is Remove, which deletes a single file.
package vfs
