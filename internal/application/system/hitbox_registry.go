package system

import (
	"log"
	"strings"

	"github.com/younwookim/skyfall/internal/domain/entity"
)

// Hitbox arena sizing
const (
	DefaultHitboxCapacity    = 16
	DefaultMaxHitboxCapacity = 1024
)

// HitboxRegistry is the shared, append-only arena of hitboxes.
// Entities hold BoxRange handles into it; boxes are deactivated, never
// removed, so handles stay valid for the life of the level.
type HitboxRegistry struct {
	boxes   []entity.Hitbox
	maxCap  int
	enabled bool
	logger  *log.Logger
}

// NewHitboxRegistry creates a registry with the given initial and maximum
// capacity. Invalid capacities leave the registry disabled, in which case
// every operation is a no-op.
func NewHitboxRegistry(initialCapacity, maxCapacity int, logger *log.Logger) *HitboxRegistry {
	if logger == nil {
		logger = log.Default()
	}
	r := &HitboxRegistry{maxCap: maxCapacity, logger: logger}
	if initialCapacity <= 0 || maxCapacity < initialCapacity {
		logger.Printf("[Hitbox] invalid capacity %d/%d, registry disabled", initialCapacity, maxCapacity)
		return r
	}
	r.boxes = make([]entity.Hitbox, 0, initialCapacity)
	r.enabled = true
	return r
}

// NewDefaultHitboxRegistry creates a registry with default capacities
func NewDefaultHitboxRegistry(logger *log.Logger) *HitboxRegistry {
	return NewHitboxRegistry(DefaultHitboxCapacity, DefaultMaxHitboxCapacity, logger)
}

// Enabled reports whether the registry accepted its configuration
func (r *HitboxRegistry) Enabled() bool {
	return r.enabled
}

// Len returns the number of stored boxes
func (r *HitboxRegistry) Len() int {
	return len(r.boxes)
}

// Capacity returns the current arena capacity
func (r *HitboxRegistry) Capacity() int {
	return cap(r.boxes)
}

// Box returns a copy of the box at index i
func (r *HitboxRegistry) Box(i int) (entity.Hitbox, bool) {
	if i < 0 || i >= len(r.boxes) {
		return entity.Hitbox{}, false
	}
	return r.boxes[i], true
}

// grow doubles the arena, bounded by maxCap
func (r *HitboxRegistry) grow() bool {
	c := cap(r.boxes)
	if c >= r.maxCap {
		return false
	}
	next := c * 2
	if next > r.maxCap {
		next = r.maxCap
	}
	boxes := make([]entity.Hitbox, len(r.boxes), next)
	copy(boxes, r.boxes)
	r.boxes = boxes
	return true
}

// add appends a box, growing the arena if needed
func (r *HitboxRegistry) add(h entity.Hitbox) bool {
	if len(r.boxes) == cap(r.boxes) && !r.grow() {
		r.logger.Printf("[Hitbox] arena full at %d boxes, dropped %s", len(r.boxes), h.Name)
		return false
	}
	r.boxes = append(r.boxes, h)
	return true
}

// ExtractFromGeometry appends an active box for every object of src whose
// name starts with prefix, optionally translated by offset. The returned
// range covers exactly the boxes stored.
func (r *HitboxRegistry) ExtractFromGeometry(src entity.ObjectSource, prefix string, typ entity.HitboxType, offset ...entity.Vec3) entity.BoxRange {
	rng := entity.BoxRange{Start: len(r.boxes)}
	if !r.enabled || src == nil {
		return rng
	}

	var off entity.Vec3
	if len(offset) > 0 {
		off = offset[0]
	}

	for _, obj := range src.Objects() {
		if !strings.HasPrefix(obj.Name, prefix) {
			continue
		}
		lmin, lmax := obj.Min.Add(off), obj.Max.Add(off)
		ok := r.add(entity.Hitbox{
			Min:      lmin,
			Max:      lmax,
			LocalMin: lmin,
			LocalMax: lmax,
			Name:     obj.Name,
			Type:     typ,
			Active:   true,
		})
		if !ok {
			break
		}
		rng.Count++
	}

	if rng.Count == 0 {
		r.logger.Printf("[Hitbox] no objects matching %q", prefix)
	}
	return rng
}

// clampRange limits rng to stored indices
func (r *HitboxRegistry) clampRange(rng entity.BoxRange) (start, end int) {
	start, end = rng.Start, rng.End()
	if start < 0 {
		start = 0
	}
	if end > len(r.boxes) {
		end = len(r.boxes)
	}
	return start, end
}

// UpdateBoxRange re-derives the boxes in rng from their local extents
// under transform t. Repeated calls with the same inputs give the same
// boxes.
func (r *HitboxRegistry) UpdateBoxRange(rng entity.BoxRange, t entity.Transform) {
	if !r.enabled {
		return
	}
	start, end := r.clampRange(rng)
	for i := start; i < end; i++ {
		b := &r.boxes[i]
		b.Min, b.Max = t.Bounds(b.LocalMin, b.LocalMax)
	}
}

// UpdateByType re-derives every box of typ under transform t
func (r *HitboxRegistry) UpdateByType(typ entity.HitboxType, t entity.Transform) {
	if !r.enabled {
		return
	}
	for i := range r.boxes {
		b := &r.boxes[i]
		if b.Type == typ {
			b.Min, b.Max = t.Bounds(b.LocalMin, b.LocalMax)
		}
	}
}

// SetRangeActive sets the active flag of every box in rng
func (r *HitboxRegistry) SetRangeActive(rng entity.BoxRange, active bool) {
	if !r.enabled {
		return
	}
	start, end := r.clampRange(rng)
	for i := start; i < end; i++ {
		r.boxes[i].Active = active
	}
}

// RangeActive reports whether any box in rng is active
func (r *HitboxRegistry) RangeActive(rng entity.BoxRange) bool {
	start, end := r.clampRange(rng)
	for i := start; i < end; i++ {
		if r.boxes[i].Active {
			return true
		}
	}
	return false
}

// DeactivateType deactivates every box of typ
func (r *HitboxRegistry) DeactivateType(typ entity.HitboxType) {
	for i := range r.boxes {
		if r.boxes[i].Type == typ {
			r.boxes[i].Active = false
		}
	}
}

// CheckPoint returns the name of the first active box of typ containing p
func (r *HitboxRegistry) CheckPoint(p entity.Vec3, typ entity.HitboxType) (bool, string) {
	if !r.enabled {
		return false, ""
	}
	for i := range r.boxes {
		b := &r.boxes[i]
		if b.Active && b.Type == typ && b.Contains(p) {
			return true, b.Name
		}
	}
	return false, ""
}

// CheckPointInRange is CheckPoint restricted to the boxes in rng
func (r *HitboxRegistry) CheckPointInRange(p entity.Vec3, typ entity.HitboxType, rng entity.BoxRange) (bool, string) {
	if !r.enabled {
		return false, ""
	}
	start, end := r.clampRange(rng)
	for i := start; i < end; i++ {
		b := &r.boxes[i]
		if b.Active && b.Type == typ && b.Contains(p) {
			return true, b.Name
		}
	}
	return false, ""
}

// DeactivateByName deactivates every box named name and returns how many
// were found.
func (r *HitboxRegistry) DeactivateByName(name string) int {
	n := 0
	for i := range r.boxes {
		if r.boxes[i].Name == name {
			r.boxes[i].Active = false
			n++
		}
	}
	return n
}

// UpdateByName re-centers every box named name on center, keeping its size
func (r *HitboxRegistry) UpdateByName(name string, center entity.Vec3) bool {
	found := false
	for i := range r.boxes {
		b := &r.boxes[i]
		if b.Name != name {
			continue
		}
		half := b.Size().Scale(0.5)
		b.Min = center.Sub(half)
		b.Max = center.Add(half)
		found = true
	}
	return found
}

// HealthForType returns the health encoded in the name of the first box of
// typ, or 1 when there is none.
func (r *HitboxRegistry) HealthForType(typ entity.HitboxType) int {
	for i := range r.boxes {
		if r.boxes[i].Type == typ {
			return entity.ParseHealthFromName(r.boxes[i].Name)
		}
	}
	return 1
}

// HealthForRange returns the health encoded in the first box of rng, or 1
func (r *HitboxRegistry) HealthForRange(rng entity.BoxRange) int {
	start, end := r.clampRange(rng)
	if start >= end {
		return 1
	}
	return entity.ParseHealthFromName(r.boxes[start].Name)
}
