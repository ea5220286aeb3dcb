package stage

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/boxfish/internal/grid"
)

//go:embed campaign/*.yaml
var campaignFS embed.FS

// yamlStage represents the YAML structure for a stage file.
type yamlStage struct {
	ID     string    `yaml:"id"`
	Name   string    `yaml:"name"`
	Hint   string    `yaml:"hint,omitempty"`
	Origin yamlCoord `yaml:"origin"`
	Bits   []int     `yaml:"bits"`
	Layout string    `yaml:"layout"`
}

// yamlCoord represents a tile coordinate in YAML format.
type yamlCoord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Parse parses a YAML stage file.
func Parse(data []byte) (*Stage, error) {
	var ys yamlStage
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ys.ID == "" {
		return nil, fmt.Errorf("stage: missing id")
	}

	bits := make([]bool, len(ys.Bits))
	for i, b := range ys.Bits {
		if b != 0 && b != 1 {
			return nil, fmt.Errorf("stage %s: bit %d must be 0 or 1, got %d", ys.ID, i, b)
		}
		bits[i] = b == 1
	}

	return New(ys.ID, ys.Name, ys.Hint, ys.Layout, Spawn{
		Origin: grid.C(ys.Origin.X, ys.Origin.Y),
		Bits:   bits,
	})
}

// Loader handles loading stages from a directory tree or the embedded campaign.
type Loader struct {
	fsys  fs.FS
	root  string
	start string
}

// NewLoader creates a loader reading stage files under root on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root, start: "."}
}

// Campaign returns a loader over the stages compiled into the binary.
func Campaign() *Loader {
	return &Loader{fsys: campaignFS, root: "embedded", start: "campaign"}
}

// LoadAll recursively scans and loads all stage files.
// Returns stages sorted by ID. A single malformed file fails the whole load.
func (l *Loader) LoadAll() ([]*Stage, error) {
	var stages []*Stage

	err := fs.WalkDir(l.fsys, l.start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		s, err := l.loadFile(path)
		if err != nil {
			return err
		}
		stages = append(stages, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.root, err)
	}

	sort.Slice(stages, func(i, j int) bool {
		return stages[i].ID < stages[j].ID
	})
	return stages, nil
}

// LoadByID loads a specific stage by ID.
func (l *Loader) LoadByID(id string) (*Stage, error) {
	stages, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, s := range stages {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("stage not found: %s", id)
}

// loadFile loads a single stage file relative to the loader's file system.
func (l *Loader) loadFile(path string) (*Stage, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	s.FilePath = filepath.Join(l.root, path)
	return s, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
