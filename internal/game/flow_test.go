package game

import (
	"testing"

	"github.com/iburimskiy/heartcard/internal/config"
)

func TestAnswerRevealsAfterDelay(t *testing.T) {
	f := NewFlow()
	f.Answer(ChoiceYes)
	if f.State() != StateAnswered {
		t.Fatalf("expected Answered immediately, got %v", f.State())
	}

	for i := 0; i < config.RevealDelayTicks-1; i++ {
		f.Tick()
		if f.State() != StateAnswered {
			t.Fatalf("expected Answered during the delay (tick %d), got %v", i, f.State())
		}
	}
	f.Tick()
	if f.State() != StateMessageShown {
		t.Fatalf("expected MessageShown after the delay, got %v", f.State())
	}
	if f.Choice() != ChoiceYes {
		t.Fatalf("expected choice Yes, got %v", f.Choice())
	}
}

func TestNoAnswerRevealsNegativeVariant(t *testing.T) {
	f := NewFlow()
	f.Answer(ChoiceNo)
	for i := 0; i < config.RevealDelayTicks; i++ {
		f.Tick()
	}
	if f.State() != StateMessageShown {
		t.Fatalf("expected MessageShown, got %v", f.State())
	}
	if got := messageFor(f.Choice()); got != messageNo {
		t.Fatalf("expected negative message, got %q", got)
	}
}

func TestStaleRevealAfterRetryIsIgnored(t *testing.T) {
	f := NewFlow()
	f.Answer(ChoiceYes)
	f.Tick()
	f.Tick()
	f.Retry()
	if f.State() != StateUnanswered {
		t.Fatalf("expected Unanswered after retry, got %v", f.State())
	}

	// Let the superseded reveal fire; it must no-op.
	for i := 0; i < config.RevealDelayTicks+10; i++ {
		f.Tick()
		if f.State() != StateUnanswered {
			t.Fatalf("expected stale reveal to be ignored, got %v at tick %d", f.State(), i)
		}
	}
}

func TestRetryResetsFromMessageShown(t *testing.T) {
	f := NewFlow()
	f.Answer(ChoiceNo)
	for i := 0; i < config.RevealDelayTicks; i++ {
		f.Tick()
	}
	f.Retry()
	if f.State() != StateUnanswered {
		t.Fatalf("expected Unanswered after retry, got %v", f.State())
	}
}

func TestAnswerIsIgnoredOutsideUnanswered(t *testing.T) {
	f := NewFlow()
	f.Answer(ChoiceYes)
	f.Answer(ChoiceNo)
	if f.Choice() != ChoiceYes {
		t.Fatalf("expected first choice to stick, got %v", f.Choice())
	}
}

func TestAnswerAfterRetryArmsFreshReveal(t *testing.T) {
	f := NewFlow()
	f.Answer(ChoiceYes)
	f.Tick()
	f.Retry()
	f.Answer(ChoiceNo)
	for i := 0; i < config.RevealDelayTicks; i++ {
		f.Tick()
	}
	if f.State() != StateMessageShown {
		t.Fatalf("expected MessageShown after fresh answer, got %v", f.State())
	}
	if f.Choice() != ChoiceNo {
		t.Fatalf("expected choice No, got %v", f.Choice())
	}
}

func TestAffirmativeMessage(t *testing.T) {
	if got := messageFor(ChoiceYes); got != "Ben de seni çok seviyorum" {
		t.Fatalf("expected affirmative message, got %q", got)
	}
}
