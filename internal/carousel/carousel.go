// Package carousel holds the slide arithmetic for the auto-rotating inline
// galleries on project pages. The browser keeps the timer; the server
// computes the next slide from what the browser reports.
package carousel

import (
	"math"
	"time"
)

const (
	// Interval between automatic slide changes.
	Interval = 2 * time.Second
	// ResumeAfterDot is the pause after a dot is clicked.
	ResumeAfterDot = 2 * time.Second
	// ResumeAfterTouch is the pause after a swipe.
	ResumeAfterTouch = 4 * time.Second
	// SwipeThreshold is the horizontal travel, in pixels, a touch needs
	// before it counts as a swipe.
	SwipeThreshold = 50.0
)

// Action is a user or timer input to a carousel.
type Action string

const (
	ActionNext  Action = "next"
	ActionPrev  Action = "prev"
	ActionShow  Action = "show"
	ActionSwipe Action = "swipe"
)

// Delay is how long the browser waits after a carousel handled action
// before the next automatic advance. Manual input holds the rotation
// longer than a timer tick.
func Delay(a Action) time.Duration {
	switch a {
	case ActionSwipe:
		return ResumeAfterTouch
	case ActionShow:
		return ResumeAfterDot
	default:
		return Interval
	}
}

// State is the active slide of a carousel with Count slides.
type State struct {
	Current int
	Count   int
}

// New returns the first slide of a carousel, clamping start into range.
func New(count, start int) State {
	s := State{Count: count}
	if count > 0 && start >= 0 && start < count {
		s.Current = start
	}
	return s
}

// Next advances one slide, wrapping to the first.
func (s State) Next() State {
	if s.Count == 0 {
		return s
	}
	s.Current = (s.Current + 1) % s.Count
	return s
}

// Prev goes back one slide, wrapping to the last.
func (s State) Prev() State {
	if s.Count == 0 {
		return s
	}
	s.Current = (s.Current - 1 + s.Count) % s.Count
	return s
}

// Show jumps to slide i. Out-of-range indices leave the state unchanged.
func (s State) Show(i int) State {
	if i < 0 || i >= s.Count {
		return s
	}
	s.Current = i
	return s
}

// Swipe applies a horizontal touch from startX to endX: a swipe left moves
// forward, a swipe right moves back, and short swipes do nothing.
func (s State) Swipe(startX, endX float64) State {
	diff := startX - endX
	if math.Abs(diff) <= SwipeThreshold {
		return s
	}
	if diff > 0 {
		return s.Next()
	}
	return s.Prev()
}

// Active reports whether slide i is the current one.
func (s State) Active(i int) bool { return i == s.Current }
