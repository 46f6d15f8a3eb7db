package game

import (
	"log"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/heartcard/internal/config"
)

// frameInput is one frame's worth of input, snapshotted in Update so the
// step logic stays testable without a window.
type frameInput struct {
	cursorX, cursorY int
	justPressed      bool
	justReleased     bool

	muteKey  bool
	retryKey bool
	quitKey  bool

	// any pointer, touch or key activity; unlocks deferred audio
	interacted bool
}

// Game wires the heart field, the answer flow and the audio companion into
// the ebiten frame loop.
type Game struct {
	field  *Field
	flow   *Flow
	music  *Music
	sharer *Sharer

	w, h          int
	reducedMotion bool

	dimSpring      harmonica.Spring
	dim, dimVel    float64
	revealSpring   harmonica.Spring
	reveal, revVel float64

	yesBtn   button
	noBtn    button
	retryBtn button
	shareBtn button
	muteBtn  button

	toast      string
	toastTicks int

	prevKey map[ebiten.Key]bool
	tick    int
}

// New builds the card for an initial viewport of w x h; narrow viewports
// get the compact particle profile.
func New(musicPath string, w, h int) *Game {
	if w < 1 {
		w = config.WindowWidth
	}
	if h < 1 {
		h = config.WindowHeight
	}
	compact := w < config.CompactWidth

	g := &Game{
		field:         NewField(w, h, config.ProfileFor(compact), time.Now().UnixNano()),
		flow:          NewFlow(),
		sharer:        NewSharer(),
		w:             w,
		h:             h,
		reducedMotion: config.ReducedMotion(),
		dim:           1,
		dimSpring:     harmonica.NewSpring(harmonica.FPS(60), 7.0, 1.0),
		revealSpring:  harmonica.NewSpring(harmonica.FPS(60), 6.0, 0.8),
		prevKey:       map[ebiten.Key]bool{},
	}
	g.yesBtn.label = yesLabel
	g.noBtn.label = noLabel
	g.retryBtn.label = retryLabel
	g.shareBtn.label = shareLabel

	if musicPath != "" {
		m, err := OpenMusic(musicPath)
		if err != nil {
			log.Printf("audio: track unavailable, continuing silent: %v", err)
		} else {
			g.music = m
			m.Start()
		}
	}
	return g
}

func (g *Game) Update() error {
	return g.step(g.readInput())
}

func (g *Game) readInput() frameInput {
	x, y := ebiten.CursorPosition()
	in := frameInput{cursorX: x, cursorY: y}

	in.justPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.justReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		in.interacted = true
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}
	in.muteKey = justPressed(ebiten.KeyM)
	in.retryKey = justPressed(ebiten.KeyR)
	in.quitKey = justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ)

	if in.justPressed || in.muteKey || in.retryKey {
		in.interacted = true
	}
	return in
}

// step runs one tick of game logic against a snapshotted input.
func (g *Game) step(in frameInput) error {
	if in.quitKey {
		return ebiten.Termination
	}
	if in.interacted {
		g.music.RetryDeferred()
	}

	g.layoutButtons()

	switch g.flow.State() {
	case StateUnanswered:
		if g.clicked(&g.yesBtn, in) {
			g.flow.Answer(ChoiceYes)
		}
		if g.clicked(&g.noBtn, in) {
			g.flow.Answer(ChoiceNo)
		}
	case StateMessageShown:
		if g.clicked(&g.retryBtn, in) || in.retryKey {
			g.flow.Retry()
		}
		if g.clicked(&g.shareBtn, in) {
			if toast := g.sharer.Share(g.flow.Choice()); toast != "" {
				g.showToast(toast)
			}
		}
	}
	if g.clicked(&g.muteBtn, in) || in.muteKey {
		g.music.ToggleMute()
	}

	g.flow.Tick()
	g.stepSprings()
	g.field.Update()

	if g.toastTicks > 0 {
		g.toastTicks--
		if g.toastTicks == 0 {
			g.toast = ""
		}
	}
	g.tick++
	return nil
}

// clicked runs the press-inside, release-inside click model on one button
// and refreshes its hover state.
func (g *Game) clicked(b *button, in frameInput) bool {
	b.hovered = b.contains(in.cursorX, in.cursorY)
	if b.hovered && in.justPressed {
		b.pressed = true
	}
	if in.justReleased {
		wasClick := b.pressed && b.hovered
		b.pressed = false
		return wasClick
	}
	return false
}

func (g *Game) stepSprings() {
	dimTarget := 1.0
	if g.flow.State() != StateUnanswered {
		dimTarget = config.DimFactor
	}
	revealTarget := 0.0
	if g.flow.State() == StateMessageShown {
		revealTarget = 1.0
	}

	if g.reducedMotion {
		g.dim, g.dimVel = dimTarget, 0
		g.reveal, g.revVel = revealTarget, 0
		return
	}
	g.dim, g.dimVel = g.dimSpring.Update(g.dim, g.dimVel, dimTarget)
	g.reveal, g.revVel = g.revealSpring.Update(g.reveal, g.revVel, revealTarget)
}

func (g *Game) showToast(msg string) {
	g.toast = msg
	g.toastTicks = 180
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.field.Draw(screen, g.dim, g.music.Level())

	switch g.flow.State() {
	case StateUnanswered:
		g.drawQuestion(screen)
	case StateMessageShown:
		g.drawMessageCard(screen)
	}
	g.drawMuteButton(screen)
	g.drawToast(screen)
}

// Layout follows the outside size so the drawing surface always matches the
// viewport; the field keeps its population across resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.field.Resize(g.w, g.h)
	}
	return g.w, g.h
}

func (g *Game) Close() {
	g.music.Close()
}
