package viewer

import (
	"strconv"
	"strings"
)

// View is the render-ready projection of the viewer state. Templates only
// ever read a View; they never touch the Viewer.
type View struct {
	Open         bool
	Mode         string
	IsVideo      bool
	Autoplay     bool
	Src          string
	Poster       string
	Alt          string
	Caption      string
	ShowCaption  bool
	ShowNav      bool
	PrevDisabled bool
	NextDisabled bool
	ScrollLocked bool
	Position     string
}

// View projects the current state. Button flags are derived from the
// active index on every call.
func (v *Viewer) View() View {
	if !v.open || v.current == nil {
		return View{Mode: Closed.String()}
	}
	caption := strings.TrimSpace(v.caption)
	out := View{
		Open:         true,
		Mode:         v.Mode().String(),
		IsVideo:      v.current.Kind == Video,
		Src:          v.current.SourceURL,
		Poster:       v.current.Poster,
		Alt:          caption,
		Caption:      caption,
		ShowCaption:  caption != "",
		ScrollLocked: v.scrollLocked,
	}
	if v.Mode() == OpenGallery {
		out.ShowNav = true
		out.PrevDisabled = v.index == 0
		out.NextDisabled = v.index == len(v.gallery)-1
		out.Position = strconv.Itoa(v.index+1) + " / " + strconv.Itoa(len(v.gallery))
	}
	return out
}
