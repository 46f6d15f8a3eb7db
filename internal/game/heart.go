package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Shared 1x1 white source texture for vector path fills.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// heartOutline is a heart of half-width 1 centered at the origin: a move
// point followed by six cubic segments (two symmetric lobes meeting at the
// bottom tip). Each cubic is three points: two controls and the end point.
var heartOutline = [19][2]float64{
	{0, -0.5909},
	{0, -0.6455}, {-0.0909, -0.8636}, {-0.4545, -0.8636},
	{-1, -0.8636}, {-1, -0.1818}, {-1, -0.1818},
	{-1, 0.1364}, {-0.6364, 0.5364}, {0, 0.8636},
	{0.6364, 0.5364}, {1, 0.1364}, {1, -0.1818},
	{1, -0.1818}, {1, -0.8636}, {0.6364, -0.8636},
	{0.2727, -0.8636}, {0, -0.6455}, {0, -0.5909},
}

// appendHeartPath adds a heart glyph to p, scaled to half-width size,
// rotated by rot degrees and centered at (x, y). The path points carry the
// transform themselves since vector.Path has no transform of its own.
func appendHeartPath(p *vector.Path, x, y, size, rot float64) {
	rad := rot * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	pt := func(i int) (float32, float32) {
		px, py := heartOutline[i][0]*size, heartOutline[i][1]*size
		return float32(x + px*cos - py*sin), float32(y + px*sin + py*cos)
	}
	mx, my := pt(0)
	p.MoveTo(mx, my)
	for i := 1; i < len(heartOutline); i += 3 {
		c0x, c0y := pt(i)
		c1x, c1y := pt(i + 1)
		ex, ey := pt(i + 2)
		p.CubicTo(c0x, c0y, c1x, c1y, ex, ey)
	}
	p.Close()
}

// fillHeart draws one heart at the given position, size, rotation and
// straight-alpha color.
func fillHeart(dst *ebiten.Image, x, y, size, rot float64, r, g, b uint8, alpha float64) {
	if alpha <= 0 {
		return
	}
	var p vector.Path
	appendHeartPath(&p, x, y, size, rot)

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	cr := float32(r) / 255
	cg := float32(g) / 255
	cb := float32(b) / 255
	ca := float32(clamp01(alpha))
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
