package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/younwookim/skyfall/internal/domain/entity"
)

// GeometryConfig is a model manifest: the named bounding boxes baked out
// of a static model. Files live under models/<name>.yaml.
type GeometryConfig struct {
	Name    string         `yaml:"name"`
	Scale   float64        `yaml:"scale"`
	Objects []ObjectConfig `yaml:"objects"`
}

// ObjectConfig is one named sub-object with its local bounds
type ObjectConfig struct {
	Name string     `yaml:"name"`
	Min  Vec3Config `yaml:"min"`
	Max  Vec3Config `yaml:"max"`
}

// Validate checks that every object is named with ordered bounds
func (g *GeometryConfig) Validate() error {
	var errs []error
	if strings.TrimSpace(g.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if g.Scale < 0 {
		errs = append(errs, fmt.Errorf("scale must not be negative, got %.2f", g.Scale))
	}
	for i, obj := range g.Objects {
		if obj.Name == "" {
			errs = append(errs, fmt.Errorf("objects[%d]: name is required", i))
			continue
		}
		if obj.Min.X > obj.Max.X || obj.Min.Y > obj.Max.Y || obj.Min.Z > obj.Max.Z {
			errs = append(errs, fmt.Errorf("objects[%d] %s: min exceeds max", i, obj.Name))
		}
	}
	return errors.Join(errs...)
}

// Model converts the manifest to the model the hitbox registry reads
func (g *GeometryConfig) Model() *entity.Model {
	objects := make([]entity.ModelObject, 0, len(g.Objects))
	for _, obj := range g.Objects {
		objects = append(objects, entity.ModelObject{
			Name: obj.Name,
			Min:  obj.Min.Vec3(),
			Max:  obj.Max.Vec3(),
		})
	}
	return entity.NewModel(g.Name, g.Scale, objects)
}

// Vec3 converts to the domain vector
func (v Vec3Config) Vec3() entity.Vec3 {
	return entity.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}
