package rod

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultRecycleAfter is the number of pages rendered before Chrome is
// restarted. Chrome's memory baseline grows with every page it renders.
const DefaultRecycleAfter = 75

// session owns one launched Chrome process and its connection.
// It is used by a single goroutine.
type session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	limit    int
}

func newSession(limit int) (*session, error) {
	s := &session{limit: limit}
	if err := s.launch(); err != nil {
		return nil, err
	}
	return s, nil
}

// next returns the browser to render the next page with, restarting Chrome
// once the page limit is reached. A failed restart keeps the old browser.
func (s *session) next() *rod.Browser {
	if s.limit > 0 && s.pages >= s.limit {
		old, oldLauncher := s.browser, s.launcher
		if err := s.launch(); err == nil {
			_ = old.Close()
			oldLauncher.Kill()
			s.pages = 0
		}
	}
	s.pages++
	return s.browser
}

func (s *session) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	s.browser = b
	s.launcher = l
	return nil
}

func (s *session) close() error {
	var err error
	if s.browser != nil {
		err = s.browser.Close()
		s.browser = nil
	}
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher = nil
	}
	return err
}

func (s *session) pid() int {
	if s.launcher == nil {
		return 0
	}
	return s.launcher.PID()
}
