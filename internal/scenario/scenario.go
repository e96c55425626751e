// Package scenario loads the playable scenarios: a directory tree with one
// malicious file, plus the text shown to the player.
//
// Scenarios ship embedded in the binary as YAML documents; a scenario can also
// be loaded from a file path for custom play-throughs.
package scenario

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/termhunt/internal/vfs"
	"github.com/vvka-141/termhunt/pkg/termhunt"
)

//go:embed scenarios/*.yaml
var scenariosFS embed.FS

// Scenario is an immutable scenario definition.
// Every session builds its own tree from it with NewTree.
type Scenario struct {
	Name        string
	Title       string
	Description string
	// Countdown overrides the default countdown when positive.
	Countdown int

	root []vfs.Entry
}

type entryDoc struct {
	Name      string     `yaml:"name"`
	Dir       bool       `yaml:"dir,omitempty"`
	Content   string     `yaml:"content,omitempty"`
	Malicious bool       `yaml:"malicious,omitempty"`
	Children  []entryDoc `yaml:"children,omitempty"`
}

type scenarioDoc struct {
	Name        string     `yaml:"name"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Countdown   int        `yaml:"countdown,omitempty"`
	Root        []entryDoc `yaml:"root"`
}

// NewTree builds a fresh filesystem tree for one session.
func (s *Scenario) NewTree() (*vfs.Tree, error) {
	tree, err := vfs.New(s.root)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w: %w", s.Name, termhunt.ErrInvalidScenario, err)
	}
	return tree, nil
}

// Parse decodes and validates a scenario document.
// Unknown fields are rejected so typos in hand-written scenarios surface early.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc scenarioDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", termhunt.ErrInvalidScenario, err)
	}

	if strings.TrimSpace(doc.Name) == "" {
		return nil, fmt.Errorf("%w: missing name", termhunt.ErrInvalidScenario)
	}
	if doc.Countdown < 0 {
		return nil, fmt.Errorf("%w: %s: negative countdown %d", termhunt.ErrInvalidScenario, doc.Name, doc.Countdown)
	}

	s := &Scenario{
		Name:        doc.Name,
		Title:       doc.Title,
		Description: strings.TrimSpace(doc.Description),
		Countdown:   doc.Countdown,
		root:        convert(doc.Root),
	}

	// Building once proves every session will get a valid tree.
	if _, err := s.NewTree(); err != nil {
		return nil, err
	}
	return s, nil
}

func convert(docs []entryDoc) []vfs.Entry {
	entries := make([]vfs.Entry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, vfs.Entry{
			Name:      d.Name,
			Dir:       d.Dir,
			Content:   strings.TrimSuffix(d.Content, "\n"),
			Malicious: d.Malicious,
			Children:  convert(d.Children),
		})
	}
	return entries
}

// Load returns a scenario by embedded name, or reads it from disk when name
// looks like a path to a YAML file.
func Load(name string) (*Scenario, error) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return LoadFile(name)
	}

	data, err := scenariosFS.ReadFile(path.Join("scenarios", name+".yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", name, termhunt.ErrScenarioNotFound)
		}
		return nil, err
	}
	return Parse(data)
}

// LoadFile reads a scenario definition from a file.
func LoadFile(filePath string) (*Scenario, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", filePath, termhunt.ErrScenarioNotFound)
		}
		return nil, err
	}
	return Parse(data)
}

// List returns every embedded scenario sorted by name.
func List() ([]*Scenario, error) {
	entries, err := scenariosFS.ReadDir("scenarios")
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}

	var out []*Scenario
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := scenariosFS.ReadFile(path.Join("scenarios", e.Name()))
		if err != nil {
			return nil, err
		}
		s, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
