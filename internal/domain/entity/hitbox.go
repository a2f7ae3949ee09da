package entity

import (
	"strconv"
	"strings"
)

// Hitbox is a named, typed axis-aligned box used for containment tests.
// LocalMin/LocalMax keep the extents as extracted so the world box can be
// re-derived from any transform without drift.
type Hitbox struct {
	Min, Max           Vec3
	LocalMin, LocalMax Vec3
	Name               string
	Type               HitboxType
	Active             bool
}

// Contains reports whether p lies inside the box, bounds inclusive
func (h *Hitbox) Contains(p Vec3) bool {
	return p.X >= h.Min.X && p.X <= h.Max.X &&
		p.Y >= h.Min.Y && p.Y <= h.Max.Y &&
		p.Z >= h.Min.Z && p.Z <= h.Max.Z
}

// Center returns the midpoint of the world box
func (h *Hitbox) Center() Vec3 {
	return h.Min.Add(h.Max).Scale(0.5)
}

// Size returns the world box extents
func (h *Hitbox) Size() Vec3 {
	return h.Max.Sub(h.Min)
}

// ParseHealthFromName returns the integer after the last '_' in name.
// Missing, malformed or non-positive suffixes yield 1.
func ParseHealthFromName(name string) int {
	idx := strings.LastIndexByte(name, '_')
	if idx < 0 || idx == len(name)-1 {
		return 1
	}

	// Leading digits only, so "ENEMY_boss_50.001" still reads as 50
	suffix := name[idx+1:]
	end := 0
	for end < len(suffix) && suffix[end] >= '0' && suffix[end] <= '9' {
		end++
	}
	if end == 0 {
		return 1
	}

	n, err := strconv.Atoi(suffix[:end])
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// BoxRange is a handle to count consecutive hitboxes starting at Start
// in the shared hitbox arena.
type BoxRange struct {
	Start int
	Count int
}

// End returns one past the last index of the range
func (r BoxRange) End() int {
	return r.Start + r.Count
}

// Empty reports whether the range holds no boxes
func (r BoxRange) Empty() bool {
	return r.Count <= 0
}
