package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pondhop/pondhop/internal/game"
)

// yamlLevel is the on-disk YAML structure for a user-authored level.
// Rows use the same glyphs as the built-in layouts.
type yamlLevel struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Loader reads a level pack from a directory of .yaml/.yml files.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans the pack directory and returns a catalog of
// every valid level file, sorted by ID for deterministic ordering.
// Invalid files are skipped rather than failing the whole pack.
func (l *Loader) LoadAll() (*Catalog, error) {
	type packLevel struct {
		id    string
		level game.Level
	}
	var found []packLevel

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		level, id, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		found = append(found, packLevel{id: id, level: level})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking pack %s: %w", l.Root, err)
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].id < found[j].id
	})

	parsed := make([]game.Level, len(found))
	for i, p := range found {
		parsed[i] = p.level
	}

	cat, err := NewCatalog(parsed)
	if err != nil {
		return nil, fmt.Errorf("levels: pack %s has no valid levels", l.Root)
	}
	return cat, nil
}

// LoadFile loads a single level file and returns the level plus its pack
// ID (used for ordering).
func (l *Loader) LoadFile(path string) (game.Level, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Level{}, "", fmt.Errorf("levels: reading %s: %w", path, err)
	}
	return ParseYAML(data)
}

// ParseYAML parses a YAML level definition.
func ParseYAML(data []byte) (game.Level, string, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return game.Level{}, "", fmt.Errorf("levels: yaml unmarshal: %w", err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	level, err := ParseLayout(name, yl.Rows)
	if err != nil {
		return game.Level{}, "", err
	}
	return level, yl.ID, nil
}
