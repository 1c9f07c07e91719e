package game

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/shrubbery-seeker/internal/catcher"
)

// Debug font glyph size
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	buttonNormal  = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	buttonHovered = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	buttonPressed = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	buttonBorder  = color.RGBA{R: 150, G: 170, B: 200, A: 255}
)

func init() {
	whiteImage.Fill(color.White)
}

// The debug font only covers Latin-1
var latin1 = strings.NewReplacer(
	"—", " - ",
	"’", "'",
	"🏆", "",
)

func printable(s string) string {
	s = latin1.Replace(s)
	return strings.Map(func(r rune) rune {
		if r > 0xff {
			return -1
		}
		return r
	}, s)
}

func (g *Game) drawScene(screen *ebiten.Image, scene *catcher.Scene) {
	screen.Fill(scene.Background)

	for i := range scene.Shapes {
		sh := &scene.Shapes[i]
		switch sh.Kind {
		case catcher.KindPolygon:
			fillPolygon(screen, sh.Points, sh.Fill)
			for j := range sh.Points {
				a, b := sh.Points[j], sh.Points[(j+1)%len(sh.Points)]
				vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), sh.Width, sh.Outline, true)
			}
		case catcher.KindLine:
			a, b := sh.Points[0], sh.Points[1]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), sh.Width, sh.Outline, true)
		case catcher.KindRect:
			x, y := float32(sh.Points[0].X), float32(sh.Points[0].Y)
			w, h := float32(sh.Points[1].X)-x, float32(sh.Points[1].Y)-y
			vector.DrawFilledRect(screen, x, y, w, h, sh.Fill, true)
			vector.StrokeRect(screen, x, y, w, h, sh.Width, sh.Outline, true)
		case catcher.KindOval:
			vector.DrawFilledCircle(screen, float32(sh.Center.X), float32(sh.Center.Y), float32(sh.Radius), sh.Fill, true)
			vector.StrokeCircle(screen, float32(sh.Center.X), float32(sh.Center.Y), float32(sh.Radius), sh.Width, sh.Outline, true)
		case catcher.KindText:
			g.drawText(screen, sh.Text, sh.Center, sh.Style)
		case catcher.KindButton:
			g.drawButton(screen, sh)
		}
	}
}

func fillPolygon(dst *ebiten.Image, pts []catcher.Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 0xff
		vs[i].ColorG = float32(clr.G) / 0xff
		vs[i].ColorB = float32(clr.B) / 0xff
		vs[i].ColorA = float32(clr.A) / 0xff
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// textImage renders s once with the debug font and caches the result.
func (g *Game) textImage(s string) *ebiten.Image {
	if img, ok := g.texts[s]; ok {
		return img
	}
	w := len([]rune(s))*glyphWidth + 2
	img := ebiten.NewImage(w, glyphHeight+2)
	ebitenutil.DebugPrint(img, s)
	g.texts[s] = img
	return img
}

// drawText draws black text centred on c. Bold and title text are doubled
// one pixel apart, italic is sheared.
func (g *Game) drawText(screen *ebiten.Image, s string, c catcher.Point, style catcher.TextStyle) {
	s = printable(s)
	img := g.textImage(s)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	scale := 1.0
	if style == catcher.TextTitle {
		scale = 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	if style == catcher.TextItalic {
		op.GeoM.Skew(-0.2, 0)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(c.X, c.Y)
	// Debug glyphs are white; scale them down to black
	op.ColorScale.Scale(0, 0, 0, 1)
	screen.DrawImage(img, op)

	if style == catcher.TextBold || style == catcher.TextTitle {
		op.GeoM.Translate(1, 0)
		screen.DrawImage(img, op)
	}
}

func (g *Game) drawButton(screen *ebiten.Image, sh *catcher.Shape) {
	x, y := float32(sh.Points[0].X), float32(sh.Points[0].Y)
	w, h := float32(sh.Points[1].X)-x, float32(sh.Points[1].Y)-y

	mx, my := ebiten.CursorPosition()
	hovered := float32(mx) >= x && float32(mx) <= x+w && float32(my) >= y && float32(my) <= y+h

	bgColor := buttonNormal
	if hovered && g.pressed == sh.Tag {
		bgColor = buttonPressed
	} else if hovered {
		bgColor = buttonHovered
	}

	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, buttonBorder, false)

	label := printable(sh.Text)
	textX := int(sh.Center.X) - len(label)*glyphWidth/2
	textY := int(sh.Center.Y) - glyphHeight/2
	ebitenutil.DebugPrintAt(screen, label, textX, textY)
}
