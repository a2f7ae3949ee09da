package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/skyfall/internal/domain/entity"
)

// ModelNames lists the geometry manifests the game needs
var ModelNames = []string{"player", "fighter", "bomber", "boss", "final"}

// GameConfig holds all loaded configurations
type GameConfig struct {
	Combat *CombatConfig
	Models map[string]*entity.Model
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadCombat loads combat.json
func (l *Loader) LoadCombat() (*CombatConfig, error) {
	data, err := fs.ReadFile(l.fsys, "combat.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read combat.json: %w", err)
	}

	var cfg CombatConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse combat.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid combat.json: %w", err)
	}

	return &cfg, nil
}

// LoadGeometry loads a model manifest from models/<name>.yaml
func (l *Loader) LoadGeometry(name string) (*entity.Model, error) {
	path := "models/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", name, err)
	}

	var g GeometryConfig
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse model %s: %w", name, err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model %s: %w", name, err)
	}

	return g.Model(), nil
}

// LoadAll loads combat.json and every manifest in ModelNames
func (l *Loader) LoadAll() (*GameConfig, error) {
	combat, err := l.LoadCombat()
	if err != nil {
		return nil, err
	}

	models := make(map[string]*entity.Model, len(ModelNames))
	for _, name := range ModelNames {
		m, err := l.LoadGeometry(name)
		if err != nil {
			return nil, err
		}
		models[name] = m
	}

	return &GameConfig{
		Combat: combat,
		Models: models,
	}, nil
}
