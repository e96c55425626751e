// Package interpreter executes one typed command line against a filesystem
// tree and reports the output lines together with the state changes the
// session should apply. It never mutates the tree itself.
package interpreter

import (
	"fmt"
	"strings"

	"github.com/vvka-141/termhunt/internal/vfs"
)

// FS is the read-only view of the tree commands run against.
type FS interface {
	Resolve(currentDir, fragment string) (string, error)
	Lookup(path string) (vfs.Node, bool)
	Children(path string) []vfs.Node
}

// Result is the outcome of one command.
type Result struct {
	// Output holds the lines to append to the transcript.
	Output []string
	// NextDir is set when the command changes the working directory.
	NextDir string
	// Removed is the absolute path of a file the command deletes.
	Removed string
	// Won is set when the removed file is the malicious one.
	Won bool
}

// EmptyDirectory is the listing of a directory without entries.
const EmptyDirectory = "Directory is empty"

const (
	dirPrefix  = "drwxr-xr-x"
	filePrefix = "-rwxr-xr-x"
)

// Verbs is the fixed command vocabulary, in help order.
var Verbs = []string{"help", "ls", "cd", "cat", "rm"}

var helpText = []string{
	"Available commands:",
	"  help          Show this help message",
	"  ls [dir]      List directory contents",
	"  cd <dir>      Change directory (.. goes up, ~ goes home)",
	"  cat <file>    Print the contents of a file",
	"  rm <file>     Remove a file",
	"Press Tab to complete commands and file names.",
}

type handler func(fs FS, cwd string, args []string) Result

var handlers = map[string]handler{
	"help": runHelp,
	"ls":   runList,
	"cd":   runChangeDir,
	"cat":  runCat,
	"rm":   runRemove,
}

// Parse splits a line on whitespace. The verb is lower-cased.
func Parse(line string) (verb string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// IsVerb reports whether s names a known command, case-insensitively.
func IsVerb(s string) bool {
	_, ok := handlers[strings.ToLower(s)]
	return ok
}

// Execute runs line with cwd as the working directory.
// A blank line yields an empty Result; every other input yields at least one
// output line.
func Execute(fs FS, cwd, line string) Result {
	verb, args := Parse(line)
	if verb == "" {
		return Result{}
	}

	h, ok := handlers[verb]
	if !ok {
		return output(fmt.Sprintf("%s: command not found", strings.Fields(line)[0]))
	}
	return h(fs, cwd, args)
}

func output(lines ...string) Result {
	return Result{Output: lines}
}

func notFound(verb, arg string) Result {
	return output(fmt.Sprintf("%s: %s: No such file or directory", verb, arg))
}

func runHelp(FS, string, []string) Result {
	return output(helpText...)
}

func runList(fs FS, cwd string, args []string) Result {
	target := cwd
	if len(args) > 0 {
		p, err := fs.Resolve(cwd, args[0])
		if err != nil {
			return notFound("ls", args[0])
		}
		target = p
	}

	n, ok := fs.Lookup(target)
	if !ok {
		return output(EmptyDirectory)
	}
	if !n.IsDir() {
		return output(formatEntry(n))
	}

	children := fs.Children(target)
	if len(children) == 0 {
		return output(EmptyDirectory)
	}
	lines := make([]string, 0, len(children))
	for _, c := range children {
		lines = append(lines, formatEntry(c))
	}
	return output(lines...)
}

func formatEntry(n vfs.Node) string {
	if n.IsDir() {
		return dirPrefix + "  " + n.Name
	}
	return filePrefix + "  " + n.Name
}

func runChangeDir(fs FS, cwd string, args []string) Result {
	if len(args) == 0 {
		return output("cd: missing argument")
	}
	p, err := fs.Resolve(cwd, args[0])
	if err != nil {
		return notFound("cd", args[0])
	}
	if n, _ := fs.Lookup(p); !n.IsDir() {
		return output(fmt.Sprintf("cd: %s: Not a directory", args[0]))
	}
	return Result{NextDir: p}
}

// resolveFile returns the file named by arg, or false when arg is missing or
// names a directory.
func resolveFile(fs FS, cwd, arg string) (vfs.Node, bool) {
	p, err := fs.Resolve(cwd, arg)
	if err != nil {
		return vfs.Node{}, false
	}
	n, ok := fs.Lookup(p)
	if !ok || n.IsDir() {
		return vfs.Node{}, false
	}
	return n, true
}

func runCat(fs FS, cwd string, args []string) Result {
	if len(args) == 0 {
		return output("cat: missing argument")
	}
	n, ok := resolveFile(fs, cwd, args[0])
	if !ok {
		return notFound("cat", args[0])
	}
	return output(strings.Split(n.Content, "\n")...)
}

func runRemove(fs FS, cwd string, args []string) Result {
	if len(args) == 0 {
		return output("rm: missing argument")
	}
	n, ok := resolveFile(fs, cwd, args[0])
	if !ok {
		return notFound("rm", args[0])
	}

	if n.Malicious {
		return Result{
			Output: []string{
				fmt.Sprintf("File %s removed", args[0]),
				"*** THREAT NEUTRALIZED ***",
				"The malicious file has been deleted. The system is secure.",
			},
			Removed: n.Path,
			Won:     true,
		}
	}
	return Result{
		Output:  []string{fmt.Sprintf("File %s removed", args[0])},
		Removed: n.Path,
	}
}
