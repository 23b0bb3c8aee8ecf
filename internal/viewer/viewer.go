// Package viewer implements the fullscreen media viewer: a modal overlay
// showing one image or video at a time, optionally from an ordered gallery
// with prev/next navigation.
package viewer

import (
	"errors"
	"fmt"
	"log"
)

// Kind is the media kind of a viewable item.
type Kind int

const (
	Image Kind = iota
	Video
)

func (k Kind) String() string {
	if k == Video {
		return "video"
	}
	return "image"
}

// Item is one displayable unit. Items are owned by the data provider and
// referenced, never copied, by the viewer.
type Item struct {
	Kind      Kind
	SourceURL string
	Caption   string
	Poster    string // optional still frame for videos
}

func (it *Item) IsVideo() bool { return it.Kind == Video }

// Gallery is an ordered, read-only sequence of items.
type Gallery []*Item

// Mode is the viewer's state machine state.
type Mode int

const (
	Closed Mode = iota
	OpenSingle
	OpenGallery
)

func (m Mode) String() string {
	switch m {
	case OpenSingle:
		return "open-single"
	case OpenGallery:
		return "open-gallery"
	default:
		return "closed"
	}
}

var (
	ErrNoItem          = errors.New("viewer: no item to open")
	ErrIndexOutOfRange = errors.New("viewer: gallery index out of range")
	ErrItemMismatch    = errors.New("viewer: item is not the gallery entry at index")
)

// Player drives the overlay's video element.
type Player interface {
	// Load points the element at src and rewinds it to the start.
	Load(src string)
	// Play starts playback. Failures (autoplay policy) are expected.
	Play() error
	// Stop pauses playback and rewinds to the start.
	Stop()
}

// ScrollLocker suppresses scrolling of the page underneath the overlay.
type ScrollLocker interface {
	Lock()
	Unlock()
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithPlayer attaches the video element driver.
func WithPlayer(p Player) Option {
	return func(v *Viewer) { v.player = p }
}

// WithScrollLocker attaches the page scroll lock.
func WithScrollLocker(l ScrollLocker) Option {
	return func(v *Viewer) { v.scroll = l }
}

// Viewer is the overlay state. It is not safe for concurrent use; callers
// serialize access (see Registry).
type Viewer struct {
	open    bool
	gallery Gallery
	index   int
	current *Item
	caption string

	scrollLocked bool

	player Player
	scroll ScrollLocker
}

// New returns a closed viewer.
func New(opts ...Option) *Viewer {
	v := &Viewer{index: -1}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// OpenSingle shows item with no gallery.
func (v *Viewer) OpenSingle(item *Item, caption string) error {
	return v.Open(item, caption, nil, -1)
}

// Open shows item, replacing whatever is on screen. When gallery is
// non-nil, index must address item within it; the viewer does not search
// the gallery. On error the state is left untouched.
func (v *Viewer) Open(item *Item, caption string, gallery Gallery, index int) error {
	if item == nil {
		return ErrNoItem
	}
	if gallery != nil {
		if index < 0 || index >= len(gallery) {
			return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(gallery))
		}
		if gallery[index] != item {
			return fmt.Errorf("%w %d", ErrItemMismatch, index)
		}
	} else {
		index = -1
	}

	// A video from the previous item must not keep playing behind the new one.
	if v.current != nil && v.current.Kind == Video && v.player != nil {
		v.player.Stop()
	}

	v.open = true
	v.current = item
	v.caption = caption
	if len(gallery) > 0 {
		v.gallery = gallery
		v.index = index
	} else {
		v.gallery = nil
		v.index = -1
	}

	if item.Kind == Video && v.player != nil {
		v.player.Load(item.SourceURL)
		if err := v.player.Play(); err != nil {
			log.Printf("viewer: playback of %s did not start: %v", item.SourceURL, err)
		}
	}

	if !v.scrollLocked {
		if v.scroll != nil {
			v.scroll.Lock()
		}
		v.scrollLocked = true
	}
	return nil
}

// Next moves to the following gallery item. It is a no-op outside gallery
// mode and on the last item.
func (v *Viewer) Next() {
	if v.Mode() != OpenGallery || v.index >= len(v.gallery)-1 {
		return
	}
	v.step(v.index + 1)
}

// Prev moves to the preceding gallery item. It is a no-op outside gallery
// mode and on the first item.
func (v *Viewer) Prev() {
	if v.Mode() != OpenGallery || v.index <= 0 {
		return
	}
	v.step(v.index - 1)
}

func (v *Viewer) step(to int) {
	item := v.gallery[to]
	if item == nil {
		return
	}
	if err := v.Open(item, item.Caption, v.gallery, to); err != nil {
		log.Printf("viewer: step to %d: %v", to, err)
	}
}

// Close stops any video, drops every reference to the displayed content
// and releases the scroll lock. Closing a closed viewer does nothing.
func (v *Viewer) Close() {
	if !v.open {
		return
	}
	if v.current != nil && v.current.Kind == Video && v.player != nil {
		v.player.Stop()
	}
	v.open = false
	v.gallery = nil
	v.index = -1
	v.current = nil
	v.caption = ""
	if v.scrollLocked {
		if v.scroll != nil {
			v.scroll.Unlock()
		}
		v.scrollLocked = false
	}
}

// Mode reports the current state machine state.
func (v *Viewer) Mode() Mode {
	switch {
	case !v.open:
		return Closed
	case len(v.gallery) > 1:
		return OpenGallery
	default:
		return OpenSingle
	}
}

func (v *Viewer) IsOpen() bool     { return v.open }
func (v *Viewer) Current() *Item   { return v.current }
func (v *Viewer) Caption() string  { return v.caption }
func (v *Viewer) Gallery() Gallery { return v.gallery }

// Index returns the active gallery index, if a gallery is present.
func (v *Viewer) Index() (int, bool) {
	if v.gallery == nil {
		return 0, false
	}
	return v.index, true
}
