package game

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleText    = "Seni Seviyorum"
	questionText = "Benimle sevgili olur musun?"

	yesLabel   = "Evet"
	noLabel    = "Hayir"
	retryLabel = "Tekrar sor"
	shareLabel = "Paylas"

	messageYes = "Ben de seni çok seviyorum"
	messageNo  = "Üzüldüm... ama yine de seni seviyorum"
)

func messageFor(c Choice) string {
	if c == ChoiceYes {
		return messageYes
	}
	return messageNo
}

type button struct {
	x, y, w, h int
	label      string

	hovered bool
	pressed bool
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

func (b *button) place(x, y, w, h int) {
	b.x, b.y, b.w, b.h = x, y, w, h
}

// layoutButtons recomputes button rects from the current surface size so
// they track window resizes.
func (g *Game) layoutButtons() {
	btnW, btnH := 130, 44
	gap := 40
	cx := g.w / 2

	rowY := int(float64(g.h) * 0.62)
	g.yesBtn.place(cx-btnW-gap/2, rowY, btnW, btnH)
	g.noBtn.place(cx+gap/2, rowY, btnW, btnH)

	rowY = int(float64(g.h) * 0.72)
	g.retryBtn.place(cx-btnW-gap/2, rowY, btnW, btnH)
	g.shareBtn.place(cx+gap/2, rowY, btnW, btnH)

	g.muteBtn.place(g.w-52, 16, 36, 36)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	for y := 0; y < g.h; y++ {
		ratio := float64(y) / float64(g.h)
		r := uint8(30 + 24*ratio)
		gc := uint8(8 + 6*ratio)
		b := uint8(26 + 20*ratio)
		vector.StrokeLine(screen, 0, float32(y), float32(g.w), float32(y), 1,
			color.RGBA{R: r, G: gc, B: b, A: 255}, false)
	}
}

func (g *Game) drawQuestion(screen *ebiten.Image) {
	titleY := float64(g.h) * 0.3
	if !g.reducedMotion {
		titleY += 4 * math.Sin(float64(g.tick)*0.05)
	}
	drawCenteredText(screen, titleText, g.w/2, int(titleY))
	drawCenteredText(screen, questionText, g.w/2, int(float64(g.h)*0.38))

	g.drawButton(screen, &g.yesBtn)
	g.drawButton(screen, &g.noBtn)
}

func (g *Game) drawButton(screen *ebiten.Image, b *button) {
	var bg color.RGBA
	switch {
	case b.pressed:
		bg = color.RGBA{R: 140, G: 30, B: 70, A: 255}
	case b.hovered:
		bg = color.RGBA{R: 190, G: 50, B: 100, A: 255}
	default:
		bg = color.RGBA{R: 165, G: 40, B: 85, A: 255}
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2,
		color.RGBA{R: 235, G: 150, B: 180, A: 255}, false)
	drawCenteredText(screen, b.label, b.x+b.w/2, b.y+(b.h-8)/2)
}

func (g *Game) drawMessageCard(screen *ebiten.Image) {
	cardW := int(float64(g.w) * 0.7)
	if cardW > 520 {
		cardW = 520
	}
	cardH := 120
	x := (g.w - cardW) / 2
	// Slide up as the reveal spring settles.
	y := int(float64(g.h)*0.32 + (1-g.reveal)*30)

	alpha := clamp01(g.reveal)
	bgA := uint8(210 * alpha)
	borderA := uint8(255 * alpha)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(cardW), float32(cardH),
		color.RGBA{R: 20, G: 6, B: 16, A: bgA}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(cardW), float32(cardH), 2,
		color.RGBA{R: 235, G: 120, B: 160, A: borderA}, false)

	if g.reveal > 0.6 {
		drawCenteredText(screen, messageFor(g.flow.Choice()), g.w/2, y+cardH/2-4)
	}

	g.drawButton(screen, &g.retryBtn)
	g.drawButton(screen, &g.shareBtn)
}

func (g *Game) drawMuteButton(screen *ebiten.Image) {
	b := &g.muteBtn
	bg := color.RGBA{R: 40, G: 14, B: 30, A: 220}
	if b.hovered {
		bg = color.RGBA{R: 70, G: 24, B: 50, A: 220}
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1,
		color.RGBA{R: 200, G: 110, B: 150, A: 255}, false)

	// Speaker body and cone.
	iconCol := color.RGBA{R: 240, G: 200, B: 215, A: 255}
	bx, by := float32(b.x), float32(b.y)
	vector.DrawFilledRect(screen, bx+8, by+14, 6, 8, iconCol, false)
	vector.StrokeLine(screen, bx+14, by+14, bx+20, by+9, 2, iconCol, false)
	vector.StrokeLine(screen, bx+14, by+22, bx+20, by+27, 2, iconCol, false)
	vector.StrokeLine(screen, bx+20, by+9, bx+20, by+27, 2, iconCol, false)

	if g.music.Muted() {
		vector.StrokeLine(screen, bx+6, by+30, bx+30, by+6, 2,
			color.RGBA{R: 255, G: 90, B: 120, A: 255}, false)
	} else {
		vector.StrokeLine(screen, bx+24, by+14, bx+24, by+22, 2, iconCol, false)
		vector.StrokeLine(screen, bx+28, by+11, bx+28, by+25, 2, iconCol, false)
	}
}

func (g *Game) drawToast(screen *ebiten.Image) {
	if g.toast == "" {
		return
	}
	tw := textWidth(g.toast) + 24
	x := (g.w - tw) / 2
	y := g.h - 60
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(tw), 28,
		color.RGBA{R: 0, G: 0, B: 0, A: 200}, false)
	drawCenteredText(screen, g.toast, g.w/2, y+10)
}

// textWidth approximates the debug font's width for centering.
func textWidth(s string) int {
	return utf8.RuneCountInString(s) * 8
}

func drawCenteredText(screen *ebiten.Image, s string, cx, y int) {
	ebitenutil.DebugPrintAt(screen, s, cx-textWidth(s)/2, y)
}
