package catcher

import "math"

// Hitter is a clickable area.
type Hitter interface {
	Contains(p Point) bool
}

type Rect struct {
	Min, Max Point
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) Contains(p Point) bool {
	return math.Hypot(p.X-c.Center.X, p.Y-c.Center.Y) <= c.Radius
}

type Triangle [3]Point

// Contains uses the sign of the edge cross products; points on an edge count.
func (t Triangle) Contains(p Point) bool {
	cross := func(a, b Point) float64 {
		return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	}
	d1 := cross(t[0], t[1])
	d2 := cross(t[1], t[2])
	d3 := cross(t[2], t[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Region binds a clickable area to a handler.
type Region struct {
	Name   string
	Area   Hitter
	Action func()
}

// Regions is the click map for the current phase. Later entries are on top.
type Regions []Region

// Hit returns the topmost region containing p, or nil.
func (rs Regions) Hit(p Point) *Region {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i].Area.Contains(p) {
			return &rs[i]
		}
	}
	return nil
}

// Find returns the region with the given name, or nil.
func (rs Regions) Find(name string) *Region {
	for i := range rs {
		if rs[i].Name == name {
			return &rs[i]
		}
	}
	return nil
}
