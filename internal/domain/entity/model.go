package entity

import "strings"

// ModelObject is a named sub-object of a static model with its pre-baked
// local bounding box.
type ModelObject struct {
	Name string
	Min  Vec3
	Max  Vec3
}

// ObjectSource provides the named sub-objects of a loaded model
type ObjectSource interface {
	Objects() []ModelObject
}

// Model is a static model reduced to its named bounding boxes
type Model struct {
	Name    string
	Scale   float64
	objects []ModelObject
}

// NewModel creates a model from its objects
func NewModel(name string, scale float64, objects []ModelObject) *Model {
	if scale <= 0 {
		scale = 1
	}
	return &Model{
		Name:    name,
		Scale:   scale,
		objects: objects,
	}
}

// Objects implements ObjectSource
func (m *Model) Objects() []ModelObject {
	return m.objects
}

// CountWithPrefix returns how many objects are named with prefix
func (m *Model) CountWithPrefix(prefix string) int {
	n := 0
	for _, obj := range m.objects {
		if strings.HasPrefix(obj.Name, prefix) {
			n++
		}
	}
	return n
}
