package vfs

import "strings"

// Resolve turns a typed path fragment into an absolute path, relative to
// currentDir. The result always names an existing node; otherwise the error
// is ErrNotFound.
//
//	"~"          the root, from anywhere
//	".."         currentDir with its last segment popped (the root stays the root)
//	"~/a/b"      absolute
//	"a/../b"     relative, walked segment by segment
func (t *Tree) Resolve(currentDir, fragment string) (string, error) {
	var cur, rest string
	switch {
	case fragment == Root:
		return Root, nil
	case strings.HasPrefix(fragment, Root+"/"):
		cur, rest = Root, fragment[len(Root)+1:]
	default:
		cur, rest = currentDir, fragment
	}

	if !t.IsDir(cur) {
		return "", ErrNotFound
	}

	for _, seg := range strings.Split(rest, "/") {
		if seg == "" || seg == "." {
			continue
		}
		if !t.IsDir(cur) {
			return "", ErrNotFound
		}
		if seg == ".." {
			cur = Parent(cur)
			continue
		}
		next := Join(cur, seg)
		if _, ok := t.index[next]; !ok {
			return "", ErrNotFound
		}
		cur = next
	}
	return cur, nil
}

// Join appends a name to a directory path.
func Join(dir, name string) string {
	return strings.TrimSuffix(dir, "/") + "/" + name
}

// Parent returns the directory containing path. The parent of Root is Root.
func Parent(path string) string {
	i := strings.LastIndex(path, "/")
	if i <= 0 {
		return Root
	}
	return path[:i]
}

// Base returns the last segment of path.
func Base(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}
