package catcher

import "image/color"

var (
	ColorBlack   = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColorWhite   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorGrey    = color.RGBA{0xbe, 0xbe, 0xbe, 0xff}
	ColorFlipBg  = color.RGBA{0xe0, 0xf7, 0xff, 0xff}
	outlineWidth = float32(3)
)

type Point struct {
	X, Y float64
}

type ShapeKind int

const (
	KindPolygon ShapeKind = iota
	KindLine
	KindRect
	KindOval
	KindText
	KindButton
)

type TextStyle int

const (
	TextPlain TextStyle = iota
	TextTitle
	TextItalic
	TextBold
)

// Shape is one display-list entry. Which fields matter depends on Kind:
// polygons and lines use Points, rects and buttons use Points[0] as the top
// left and Points[1] as the bottom right corner, ovals use Center and Radius,
// text and buttons use Center and Text.
type Shape struct {
	Kind    ShapeKind
	Tag     string
	Points  []Point
	Center  Point
	Radius  float64
	Fill    color.RGBA
	Outline color.RGBA
	Width   float32
	Text    string
	Style   TextStyle
}

// Scene is the full picture for one frame, rebuilt on every state change.
type Scene struct {
	Background color.RGBA
	Shapes     []Shape
}

func (s *Scene) add(sh Shape) {
	s.Shapes = append(s.Shapes, sh)
}

// Tagged returns the shapes carrying tag, in draw order.
func (s *Scene) Tagged(tag string) []Shape {
	var out []Shape
	for _, sh := range s.Shapes {
		if sh.Tag == tag {
			out = append(out, sh)
		}
	}
	return out
}

// Texts returns every text and button label in draw order.
func (s *Scene) Texts() []string {
	var out []string
	for _, sh := range s.Shapes {
		if sh.Kind == KindText || sh.Kind == KindButton {
			out = append(out, sh.Text)
		}
	}
	return out
}
