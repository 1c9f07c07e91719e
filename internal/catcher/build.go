package catcher

import (
	"fmt"
	"strconv"

	"github.com/iburimskiy/shrubbery-seeker/internal/config"
	"github.com/iburimskiy/shrubbery-seeker/internal/fortune"
)

const (
	Title    = "Python Shrubbery Seeker"
	Subtitle = "Cootie catcher fortunes—no shrubbery required!"
)

// rebuild regenerates the display list and the click map from the current
// display state and phase. Regions only exist for actions the phase accepts.
func (s *Session) rebuild() {
	s.scene = Scene{Background: ColorWhite}
	s.regions = nil

	if !s.started {
		s.scene.Background = ColorGrey
		s.addButton("start", "Start", StartButton, func() { s.Start() })
		return
	}
	if s.anim.Fading() {
		s.scene.Background = ColorFlipBg
	}

	s.scene.add(Shape{Kind: KindText, Tag: "title", Center: Point{screenCenter.X, titleY}, Text: Title, Style: TextTitle})
	s.scene.add(Shape{Kind: KindText, Tag: "description", Center: Point{screenCenter.X, subtitleY}, Text: Subtitle, Style: TextItalic})

	if s.controls {
		s.addButton("generate", "Generate New", GenerateButton, func() { s.Generate() })
		s.addButton("play", "Play", PlayButton, func() { s.Play() })
		// Both buttons stay drawn; only the one the phase expects is clickable
		if s.phase != PhaseWaitingGenerate {
			s.regions = removeRegion(s.regions, "generate")
		}
		if s.phase != PhaseWaitingPlay {
			s.regions = removeRegion(s.regions, "play")
		}
	}

	switch s.board {
	case boardOpened:
		s.drawOpened()
	case boardGrid:
		s.drawGrid(false)
	case boardNumbers:
		s.drawGrid(true)
	}

	switch s.side {
	case sideColors:
		s.drawColorOptions()
	case sideNumbers:
		s.drawNumberOptions()
	}

	if s.caption != "" {
		s.scene.add(Shape{Kind: KindText, Tag: "fortune", Center: Point{screenCenter.X, captionY}, Text: s.caption, Style: s.captionStyle})
	}
	if s.again {
		s.addButton("again", "Play Again", AgainButton, func() { s.PlayAgain() })
	}
}

func (s *Session) addButton(name, label string, rect Rect, action func()) {
	s.scene.add(Shape{
		Kind:    KindButton,
		Tag:     name,
		Points:  []Point{rect.Min, rect.Max},
		Center:  Point{(rect.Min.X + rect.Max.X) / 2, (rect.Min.Y + rect.Max.Y) / 2},
		Text:    label,
		Outline: ColorBlack,
	})
	s.regions = append(s.regions, Region{Name: name, Area: rect, Action: action})
}

func removeRegion(rs Regions, name string) Regions {
	out := rs[:0]
	for _, r := range rs {
		if r.Name != name {
			out = append(out, r)
		}
	}
	return out
}

func (s *Session) drawOpened() {
	s.scene.add(Shape{Kind: KindPolygon, Tag: "rhombus", Points: diamond(), Fill: ColorWhite, Outline: ColorBlack, Width: outlineWidth})
	s.scene.add(Shape{Kind: KindLine, Tag: "rhombus", Points: []Point{{cx, cy - r}, {cx, cy + r}}, Outline: ColorBlack, Width: outlineWidth})
	s.scene.add(Shape{Kind: KindLine, Tag: "rhombus", Points: []Point{{cx - r, cy}, {cx + r, cy}}, Outline: ColorBlack, Width: outlineWidth})

	for i, c := range diamondCircles() {
		s.scene.add(Shape{Kind: KindOval, Tag: "colorCircles", Center: c, Radius: circleRadius, Fill: s.round.Colors[i].RGBA, Outline: ColorBlack, Width: 1})
	}
}

func (s *Session) drawGrid(numbers bool) {
	s.scene.add(Shape{Kind: KindRect, Tag: "squareShape", Points: []Point{{gx0, gy0}, {gx1, gy1}}, Fill: ColorWhite, Outline: ColorBlack, Width: outlineWidth})
	for _, l := range gridLines() {
		s.scene.add(Shape{Kind: KindLine, Tag: "squareShape", Points: []Point{l[0], l[1]}, Outline: ColorBlack, Width: outlineWidth})
	}

	for i, t := range outerTriangles() {
		s.scene.add(Shape{Kind: KindOval, Tag: "triangleCircles", Center: t.Centroid(), Radius: gridDotRadius, Fill: s.round.Colors[i].RGBA, Outline: ColorBlack, Width: 1})
	}

	if !numbers || !s.round.HasNumbers {
		return
	}
	for i, t := range Quadrants() {
		tag := fmt.Sprintf("fortune_num_%d", i)
		s.scene.add(Shape{Kind: KindText, Tag: tag, Center: t.Centroid(), Text: strconv.Itoa(s.round.Numbers[i]), Style: TextBold})
		if s.phase == PhaseWaitingFortune {
			idx := i
			s.regions = append(s.regions, Region{Name: fmt.Sprintf("quadrant-%d", i), Area: t, Action: func() { s.PickQuadrant(idx) }})
		}
	}
}

func (s *Session) drawColorOptions() {
	s.scene.add(Shape{Kind: KindText, Tag: "prompt", Center: Point{config.ColumnX, promptY}, Text: "Pick a color"})
	for i, c := range s.round.Colors {
		center := OptionCenter(i)
		s.scene.add(Shape{Kind: KindOval, Tag: "options", Center: center, Radius: config.OptionRadius, Fill: c.RGBA, Outline: ColorBlack, Width: 1})
		if s.phase == PhaseWaitingColor {
			idx := i
			s.regions = append(s.regions, Region{Name: fmt.Sprintf("color-%d", i), Area: Circle{center, config.OptionRadius}, Action: func() { s.PickColor(idx) }})
		}
	}
}

func (s *Session) drawNumberOptions() {
	s.scene.add(Shape{Kind: KindText, Tag: "prompt", Center: Point{config.ColumnX, promptY}, Text: "Pick a number"})
	for i := 0; i < fortune.Slots; i++ {
		center := OptionCenter(i)
		s.scene.add(Shape{Kind: KindText, Tag: "options", Center: center, Text: strconv.Itoa(s.round.Numbers[i]), Style: TextBold})
		if s.phase == PhaseWaitingNumber {
			idx := i
			s.regions = append(s.regions, Region{Name: fmt.Sprintf("number-%d", i), Area: Circle{center, numberHitRange}, Action: func() { s.PickNumber(idx) }})
		}
	}
}
