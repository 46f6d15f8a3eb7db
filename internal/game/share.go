package game

import (
	"log"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/ncruces/zenity"
)

const (
	shareTitle = "Seni Seviyorum"
	projectURL = "https://github.com/iburimskiy/heartcard"

	toastCopied = "Baglanti panoya kopyalandi"
)

func shareText(c Choice) string {
	if c == ChoiceYes {
		return "Evet dedim! Sen de sevdigine sor: " + projectURL
	}
	return "Bu sefer olmadi... Sansini sen de dene: " + projectURL
}

// Sharer performs the best-effort share action. The platform opener and the
// clipboard/notification hooks are injectable for tests.
type Sharer struct {
	openURL  func(string) error
	copyText func(string) error
	notify   func(string) error
}

func NewSharer() *Sharer {
	return &Sharer{
		openURL:  openURL,
		copyText: clipboard.WriteAll,
		notify: func(msg string) error {
			return zenity.Notify(msg, zenity.Title(shareTitle), zenity.InfoIcon)
		},
	}
}

// Share tries the platform share handler first and falls back to copying
// the text to the clipboard with a visible confirmation. It returns the
// toast to surface, or "" when no confirmation is needed. Every failure
// degrades; nothing here is fatal.
func (s *Sharer) Share(c Choice) string {
	text := shareText(c)
	if err := s.openURL(shareMailto(text)); err == nil {
		return ""
	} else {
		log.Printf("share: platform handler unavailable: %v", err)
	}
	if err := s.copyText(text); err != nil {
		log.Printf("share: clipboard unavailable: %v", err)
		return ""
	}
	if err := s.notify(toastCopied); err != nil {
		log.Printf("share: notification failed: %v", err)
	}
	return toastCopied
}

func shareMailto(text string) string {
	return "mailto:?subject=" + url.QueryEscape(shareTitle) + "&body=" + url.QueryEscape(text)
}

// openURL hands a URL to the OS handler. No library in use covers this, so
// it stays one exec call per platform.
func openURL(u string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", u).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", u).Start()
	default:
		return exec.Command("xdg-open", u).Start()
	}
}
