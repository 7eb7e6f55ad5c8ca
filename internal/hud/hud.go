package hud

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"bullseye/internal/projectile"
	"bullseye/internal/session"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Position anchors a line on screen.
type Position int

const (
	TopCenter Position = iota
	TopLeft
	TopRight
	Center
	BottomCenter
)

const margin = 8

var (
	textColor     = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	gameOverColor = color.RGBA{R: 200, G: 20, B: 20, A: 255}
)

// Line is one piece of overlay text. Scale is an integer pixel multiplier
// of the 7x13 bitmap font.
type Line struct {
	Text  string
	Scale int
	Pos   Position
	Color color.RGBA
}

// Lines returns the overlay for the current session and arrow phase.
func Lines(s *session.Session, phase projectile.Phase) []Line {
	lines := []Line{
		{Text: fmt.Sprintf("SCORE: %d", s.Score), Scale: 3, Pos: TopCenter, Color: textColor},
		{Text: fmt.Sprintf("ARROWS: %d", s.Remaining()), Scale: 1, Pos: TopRight, Color: textColor},
	}
	if s.GameOver {
		lines = append(lines, Line{Text: "GAME OVER", Scale: 7, Pos: Center, Color: gameOverColor})
	}
	if phase == projectile.PhaseColliding {
		lines = append(lines, Line{Text: "Press C to recover the arrow", Scale: 1, Pos: BottomCenter, Color: textColor})
	}
	return lines
}

// FPSLine is the frame rate readout in the top left corner.
func FPSLine(fps int) Line {
	return Line{Text: fmt.Sprintf("%d fps", fps), Scale: 1, Pos: TopLeft, Color: textColor}
}

// Overlay keeps the rasterised HUD and redraws it only when its text or
// size changes.
type Overlay struct {
	img   *image.RGBA
	lines []Line
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update rasterises lines into a width x height image if anything changed
// and reports whether it did.
func (o *Overlay) Update(width, height int, lines []Line) bool {
	if o.img != nil && o.img.Rect.Dx() == width && o.img.Rect.Dy() == height && slices.Equal(o.lines, lines) {
		return false
	}
	o.img = Render(width, height, lines)
	o.lines = slices.Clone(lines)
	return true
}

// Image returns the last rasterised overlay, nil before the first Update.
func (o *Overlay) Image() *image.RGBA {
	return o.img
}

// Render draws lines onto a transparent image.
func Render(width, height int, lines []Line) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	for _, l := range lines {
		drawLine(dst, l)
	}
	return dst
}

func drawLine(dst *image.RGBA, l Line) {
	if l.Text == "" {
		return
	}
	face := basicfont.Face7x13
	scale := max(l.Scale, 1)

	w := font.MeasureString(face, l.Text).Ceil()
	h := face.Metrics().Height.Ceil()
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(l.Color),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(l.Text)

	sw, sh := w*scale, h*scale
	b := dst.Bounds()
	var at image.Point
	switch l.Pos {
	case TopCenter:
		at = image.Pt((b.Dx()-sw)/2, margin)
	case TopLeft:
		at = image.Pt(margin, margin)
	case TopRight:
		at = image.Pt(b.Dx()-sw-margin, margin)
	case Center:
		at = image.Pt((b.Dx()-sw)/2, (b.Dy()-sh)/2)
	case BottomCenter:
		at = image.Pt((b.Dx()-sw)/2, b.Dy()-sh-margin)
	}
	xdraw.NearestNeighbor.Scale(dst, image.Rectangle{Min: at, Max: at.Add(image.Pt(sw, sh))}, src, src.Bounds(), xdraw.Over, nil)
}
