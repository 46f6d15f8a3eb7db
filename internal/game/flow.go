package game

import "github.com/iburimskiy/heartcard/internal/config"

// Choice is the visitor's answer.
type Choice int

const (
	ChoiceYes Choice = iota
	ChoiceNo
)

// FlowState is the card's answer state.
type FlowState int

const (
	StateUnanswered FlowState = iota
	StateAnswered
	StateMessageShown
)

// pendingReveal is the armed one-shot delay between answering and showing
// the message. It carries the generation it was armed under so a reveal
// superseded by Retry counts down and then no-ops instead of overwriting a
// reset state.
type pendingReveal struct {
	gen       uint64
	remaining int
}

// Flow is the Unanswered -> Answered -> MessageShown machine. It is driven
// by Tick once per frame; the reveal delay is counted in ticks.
type Flow struct {
	state      FlowState
	choice     Choice
	delayTicks int
	gen        uint64
	pending    *pendingReveal
}

func NewFlow() *Flow {
	return &Flow{delayTicks: config.RevealDelayTicks}
}

func (f *Flow) State() FlowState { return f.state }
func (f *Flow) Choice() Choice   { return f.choice }

// Answer records the choice and arms the reveal delay. Only valid from
// Unanswered; repeat clicks while a reveal is pending are ignored.
func (f *Flow) Answer(c Choice) {
	if f.state != StateUnanswered {
		return
	}
	f.state = StateAnswered
	f.choice = c
	f.pending = &pendingReveal{gen: f.gen, remaining: f.delayTicks}
}

// Retry resets to Unanswered from any state. The pending reveal is not
// cancelled; bumping the generation makes it stale so it no-ops when it
// fires.
func (f *Flow) Retry() {
	f.gen++
	f.state = StateUnanswered
	f.choice = ChoiceYes
}

// Tick advances the pending reveal, if any. A reveal only applies when its
// generation still matches and the state is still Answered.
func (f *Flow) Tick() {
	p := f.pending
	if p == nil {
		return
	}
	p.remaining--
	if p.remaining > 0 {
		return
	}
	f.pending = nil
	if p.gen != f.gen || f.state != StateAnswered {
		return
	}
	f.state = StateMessageShown
}
