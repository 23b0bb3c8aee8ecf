package viewer

import (
	"math"
	"time"
)

// Key is a browser KeyboardEvent.key value.
type Key string

const (
	KeyEscape     Key = "Escape"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// HandleKey maps a key press onto the viewer and reports whether the key
// was consumed. Keys are ignored while the viewer is closed, and arrows
// are ignored outside gallery mode.
func HandleKey(v *Viewer, key Key) bool {
	if !v.IsOpen() {
		return false
	}
	switch key {
	case KeyEscape:
		v.Close()
		return true
	case KeyArrowLeft:
		if v.Mode() != OpenGallery {
			return false
		}
		v.Prev()
		return true
	case KeyArrowRight:
		if v.Mode() != OpenGallery {
			return false
		}
		v.Next()
		return true
	}
	return false
}

// Tap thresholds. Anything longer or further is treated as a scroll.
const (
	TapMaxDuration = 300 * time.Millisecond
	TapMaxTravel   = 10.0
)

// PointerSample is one touch point.
type PointerSample struct {
	X, Y float64
	At   time.Time
}

// Gesture is a touch from touchstart to touchend.
type Gesture struct {
	Start, End PointerSample
}

// Duration of the gesture.
func (g Gesture) Duration() time.Duration { return g.End.At.Sub(g.Start.At) }

// IsTap reports whether g is a short, low-movement touch that should count
// as a selection.
func IsTap(g Gesture) bool {
	d := g.Duration()
	if d < 0 || d >= TapMaxDuration {
		return false
	}
	return math.Abs(g.End.X-g.Start.X) < TapMaxTravel &&
		math.Abs(g.End.Y-g.Start.Y) < TapMaxTravel
}

// ControlStripFraction is the share of a video element's height, measured
// from the bottom, occupied by the native controls.
const ControlStripFraction = 0.2

// InControlStrip reports whether a click offsetY pixels below the top of a
// video element of the given height lands on its native controls.
func InControlStrip(offsetY, height float64) bool {
	if height <= 0 {
		return false
	}
	return offsetY > height*(1-ControlStripFraction)
}

// Source is the DOM event family that produced a selection.
type Source string

const (
	SourceClick Source = "click"
	SourceTouch Source = "touch"
	SourceKey   Source = "key"
)

// DefaultDedupWindow covers the delay between touchend and the click a
// browser synthesizes for the same tap.
const DefaultDedupWindow = 700 * time.Millisecond

// Deduper lets at most one open through per logical gesture when a device
// fires both touch and click events for it.
type Deduper struct {
	Window time.Duration

	seen      map[string]time.Time
	lastTouch time.Time
}

// NewDeduper returns a Deduper using window, or DefaultDedupWindow if
// window is zero.
func NewDeduper(window time.Duration) *Deduper {
	if window <= 0 {
		window = DefaultDedupWindow
	}
	return &Deduper{Window: window, seen: make(map[string]time.Time)}
}

// Allow reports whether a selection from src, identified by gestureID,
// should open the viewer. A repeated gesture id inside the window is
// dropped. Without an id, a click shortly after an accepted touch is
// taken to be the synthesized duplicate.
func (d *Deduper) Allow(gestureID string, src Source, now time.Time) bool {
	d.prune(now)
	if gestureID != "" {
		if _, dup := d.seen[gestureID]; dup {
			return false
		}
		d.seen[gestureID] = now
	} else if src == SourceClick && !d.lastTouch.IsZero() && now.Sub(d.lastTouch) < d.Window {
		return false
	}
	if src == SourceTouch {
		d.lastTouch = now
	}
	return true
}

func (d *Deduper) prune(now time.Time) {
	for id, at := range d.seen {
		if now.Sub(at) >= d.Window {
			delete(d.seen, id)
		}
	}
}

// OverlayTarget is what an overlay click landed on.
type OverlayTarget string

const (
	TargetBackdrop OverlayTarget = "backdrop"
	TargetContent  OverlayTarget = "content"
	TargetOther    OverlayTarget = "other"
)

// HandleOverlayClick closes the viewer when the click landed outside the
// media (on the backdrop or the bare content pane) and reports whether it
// did.
func HandleOverlayClick(v *Viewer, target OverlayTarget) bool {
	if !v.IsOpen() {
		return false
	}
	if target == TargetBackdrop || target == TargetContent {
		v.Close()
		return true
	}
	return false
}
