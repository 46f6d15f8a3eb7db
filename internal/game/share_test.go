package game

import (
	"errors"
	"strings"
	"testing"
)

func TestShareTextDependsOnChoice(t *testing.T) {
	yes := shareText(ChoiceYes)
	no := shareText(ChoiceNo)
	if yes == no {
		t.Fatal("expected choice-dependent share text")
	}
	if !strings.Contains(yes, projectURL) || !strings.Contains(no, projectURL) {
		t.Fatal("expected share text to carry the project URL")
	}
}

func TestSharePrefersPlatformHandler(t *testing.T) {
	copied := false
	s := &Sharer{
		openURL:  func(string) error { return nil },
		copyText: func(string) error { copied = true; return nil },
		notify:   func(string) error { return nil },
	}
	if toast := s.Share(ChoiceYes); toast != "" {
		t.Fatalf("expected no toast when the handler succeeds, got %q", toast)
	}
	if copied {
		t.Fatal("expected clipboard to be untouched when the handler succeeds")
	}
}

func TestShareFallsBackToClipboard(t *testing.T) {
	var copied string
	notified := false
	s := &Sharer{
		openURL:  func(string) error { return errors.New("no handler") },
		copyText: func(text string) error { copied = text; return nil },
		notify:   func(string) error { notified = true; return nil },
	}
	toast := s.Share(ChoiceNo)
	if toast != toastCopied {
		t.Fatalf("expected copy confirmation toast, got %q", toast)
	}
	if !strings.Contains(copied, projectURL) {
		t.Fatalf("expected copied text to carry the URL, got %q", copied)
	}
	if !notified {
		t.Fatal("expected a notification on the fallback path")
	}
}

func TestShareClipboardFailureDegrades(t *testing.T) {
	notified := false
	s := &Sharer{
		openURL:  func(string) error { return errors.New("no handler") },
		copyText: func(string) error { return errors.New("no clipboard") },
		notify:   func(string) error { notified = true; return nil },
	}
	if toast := s.Share(ChoiceYes); toast != "" {
		t.Fatalf("expected no toast when the clipboard fails, got %q", toast)
	}
	if notified {
		t.Fatal("expected no notification when nothing was copied")
	}
}

func TestShareNotifyFailureStillConfirmsInWindow(t *testing.T) {
	s := &Sharer{
		openURL:  func(string) error { return errors.New("no handler") },
		copyText: func(string) error { return nil },
		notify:   func(string) error { return errors.New("no notifier") },
	}
	if toast := s.Share(ChoiceYes); toast != toastCopied {
		t.Fatalf("expected in-window confirmation despite notify failure, got %q", toast)
	}
}

func TestShareMailtoIsEscaped(t *testing.T) {
	u := shareMailto("a b&c")
	if !strings.HasPrefix(u, "mailto:?subject=") {
		t.Fatalf("expected a mailto URL, got %q", u)
	}
	if strings.Contains(u, " ") {
		t.Fatalf("expected escaped spaces, got %q", u)
	}
}
