package portfolio

import (
	"path"
	"strings"

	"github.com/Paridhii27/portfolio/internal/viewer"
)

var videoExts = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
	".m4v":  true,
	".ogv":  true,
}

// KindOf infers the media kind from a source URL. GIFs are images: they
// animate in an <img> and a <video> element cannot play them.
func KindOf(src string) viewer.Kind {
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	if videoExts[strings.ToLower(path.Ext(src))] {
		return viewer.Video
	}
	return viewer.Image
}

// IsGIF reports whether src points at a GIF.
func IsGIF(src string) bool {
	return strings.EqualFold(path.Ext(src), ".gif")
}

// media builds a viewable item, inferring its kind from src.
func media(src, caption string) *viewer.Item {
	return &viewer.Item{Kind: KindOf(src), SourceURL: src, Caption: caption}
}

// video builds a video item with a poster frame.
func video(src, poster, caption string) *viewer.Item {
	it := media(src, caption)
	it.Poster = poster
	return it
}
