package hud

import (
	"image"
	"testing"

	"bullseye/internal/projectile"
	"bullseye/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestLines(t *testing.T) {
	s := session.New(5)
	assert.Equal(t, []string{"SCORE: 0", "ARROWS: 5"}, texts(Lines(s, projectile.PhaseIdle)))

	s.RecordTargetHit(50)
	got := texts(Lines(s, projectile.PhaseColliding))
	assert.Equal(t, []string{"SCORE: 50", "ARROWS: 4", "Press C to recover the arrow"}, got)

	for i := 0; i < 4; i++ {
		s.RecordWallHit()
	}
	require.True(t, s.CheckTerminal())
	got = texts(Lines(s, projectile.PhaseIdle))
	assert.Contains(t, got, "GAME OVER")
	assert.Contains(t, got, "ARROWS: 0")
}

// opaqueBounds returns the box of pixels with any alpha.
func opaqueBounds(img *image.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			p := image.Rect(x, y, x+1, y+1)
			if r.Empty() {
				r = p
			} else {
				r = r.Union(p)
			}
		}
	}
	return r
}

func TestRenderPlacesText(t *testing.T) {
	img := Render(400, 300, []Line{{Text: "SCORE: 0", Scale: 2, Pos: TopCenter, Color: textColor}})
	r := opaqueBounds(img)
	require.False(t, r.Empty())
	assert.Less(t, r.Max.Y, 150)
	// roughly centred horizontally
	assert.InDelta(t, 200, (r.Min.X+r.Max.X)/2, 10)

	img = Render(400, 300, []Line{{Text: "x", Scale: 1, Pos: BottomCenter, Color: textColor}})
	assert.Greater(t, opaqueBounds(img).Min.Y, 250)

	assert.True(t, opaqueBounds(Render(100, 100, nil)).Empty())
}

func TestOverlayRedrawsOnChange(t *testing.T) {
	o := NewOverlay()
	assert.Nil(t, o.Image())

	s := session.New(5)
	lines := Lines(s, projectile.PhaseIdle)
	assert.True(t, o.Update(320, 200, lines))
	assert.False(t, o.Update(320, 200, Lines(s, projectile.PhaseIdle)))

	s.RecordWallHit()
	assert.True(t, o.Update(320, 200, Lines(s, projectile.PhaseIdle)))
	assert.True(t, o.Update(640, 400, Lines(s, projectile.PhaseIdle)))
	assert.Equal(t, 640, o.Image().Bounds().Dx())
}

func TestFPSLineTopLeft(t *testing.T) {
	l := FPSLine(60)
	assert.Equal(t, "60 fps", l.Text)

	r := opaqueBounds(Render(400, 300, []Line{l}))
	require.False(t, r.Empty())
	assert.Less(t, r.Max.X, 200)
	assert.Less(t, r.Max.Y, 150)
}
