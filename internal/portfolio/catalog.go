// Package portfolio is the static content of the site: projects, their
// media and galleries, and the about page.
package portfolio

import (
	"github.com/Paridhii27/portfolio/internal/viewer"
)

// Project is one portfolio entry.
type Project struct {
	ID          string
	Title       string
	Year        string
	Class       string // extra CSS class, e.g. "research"
	Description string
	Thumbnail   string
	Video       string // featured clip on the home page; may be a GIF
	URL         string
	Categories  []string
	Tools       []string

	// Inline holds standalone media embedded in the write-up.
	Inline []*viewer.Item
	// Gallery is the ordered gallery grid at the bottom of the page.
	Gallery viewer.Gallery
	// Slides feed the auto-rotating carousel.
	Slides []string
}

// HasCategory reports whether p is tagged with category.
func (p *Project) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// InlineItem returns the i-th standalone item, or nil.
func (p *Project) InlineItem(i int) *viewer.Item {
	if i < 0 || i >= len(p.Inline) {
		return nil
	}
	return p.Inline[i]
}

// FeaturedMedia describes how the home page shows a featured project.
type FeaturedMedia struct {
	Src     string
	Poster  string
	IsVideo bool
}

// Featured returns the home page media for p. A GIF clip is shown as an
// image; a real clip as a looping video with the thumbnail as poster.
func (p *Project) Featured() FeaturedMedia {
	switch {
	case p.Video != "" && IsGIF(p.Video):
		return FeaturedMedia{Src: p.Video}
	case p.Video != "":
		return FeaturedMedia{Src: p.Video, Poster: p.Thumbnail, IsVideo: true}
	default:
		return FeaturedMedia{Src: p.Thumbnail}
	}
}

// FilterButton is one category filter on the projects page.
type FilterButton struct {
	Filter string
	Label  string
}

// Catalog is the ordered, read-only set of projects.
type Catalog struct {
	projects []*Project
	byID     map[string]*Project
	featured []string
}

// NewCatalog indexes projects. featured lists, in order, the projects that
// rotate through the home page slot.
func NewCatalog(projects []*Project, featured []string) *Catalog {
	c := &Catalog{
		projects: projects,
		byID:     make(map[string]*Project, len(projects)),
	}
	for _, p := range projects {
		c.byID[p.ID] = p
	}
	for _, id := range featured {
		if _, ok := c.byID[id]; ok {
			c.featured = append(c.featured, id)
		}
	}
	return c
}

// Project looks a project up by id.
func (c *Catalog) Project(id string) (*Project, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns every project in display order.
func (c *Catalog) All() []*Project { return c.projects }

// Filter returns the projects tagged with category, in display order.
// "all" and the empty string select everything.
func (c *Catalog) Filter(category string) []*Project {
	if category == "" || category == "all" {
		return c.projects
	}
	var out []*Project
	for _, p := range c.projects {
		if p.HasCategory(category) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns each category once, in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.projects {
		for _, cat := range p.Categories {
			if !seen[cat] {
				seen[cat] = true
				out = append(out, cat)
			}
		}
	}
	return out
}

// DefaultFeatured is the id shown first on the home page.
func (c *Catalog) DefaultFeatured() string {
	if len(c.featured) == 0 {
		return ""
	}
	return c.featured[0]
}

// IsFeatured reports whether id may occupy the home page slot.
func (c *Catalog) IsFeatured(id string) bool {
	for _, f := range c.featured {
		if f == id {
			return true
		}
	}
	return false
}

// Thumbnails returns the featured projects other than featuredID.
func (c *Catalog) Thumbnails(featuredID string) []*Project {
	var out []*Project
	for _, id := range c.featured {
		if id != featuredID {
			out = append(out, c.byID[id])
		}
	}
	return out
}

// FilterButtons returns the category filters shown above the project grid.
func FilterButtons() []FilterButton {
	return []FilterButton{
		{Filter: "all", Label: "All Projects"},
		{Filter: "aiweb", Label: "AI Applications"},
		{Filter: "interactive", Label: "Installations"},
		{Filter: "narrative", Label: "3D Environments"},
		{Filter: "others", Label: "Others"},
	}
}
