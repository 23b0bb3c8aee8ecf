package portfolio

import "github.com/Paridhii27/portfolio/internal/viewer"

const (
	thumbs = "/assets/images/thumbnails/"
	videos = "/assets/videos/"
	shots  = "/assets/images/projects/"
)

// Default builds the site's catalog.
func Default() *Catalog {
	return NewCatalog(projects(), []string{
		"machine-stranger",
		"fleeting-states",
		"move-a-bit",
		"granny-bytes",
	})
}

func projects() []*Project {
	return []*Project{
		{
			ID:    "machine-stranger",
			Title: "This Machine is a Stranger",
			Class: "research",
			Year:  "2025",
			Description: `"This Machine is a Stranger" investigates how one can navigate life at the intersection of
human intuition and the quiet, calculated logic of autonomous machines, questioning how much a person
implicitly trusts or mistrusts a machine.`,
			Thumbnail:  thumbs + "machine-stranger.jpg",
			Video:      videos + "thismachine.mp4",
			URL:        "/projects/machine-stranger",
			Categories: []string{"interactive", "aiweb"},
			Tools:      []string{"Human-Machine Interactions", "AI Ethics", "Interactive Installation"},
			Inline: []*viewer.Item{
				media(shots+"machine-stranger/setup.jpg", "The installation before visitors arrive"),
				video(videos+"machine-stranger-walkthrough.mp4", shots+"machine-stranger/walkthrough.jpg", "A visitor negotiating with the machine"),
			},
			Gallery: viewer.Gallery{
				media(shots+"machine-stranger/gallery-1.jpg", "Prototype of the sensing rig"),
				media(shots+"machine-stranger/gallery-2.jpg", "Calibrating the proximity sensors"),
				video(videos+"machine-stranger-test.mp4", shots+"machine-stranger/gallery-3.jpg", "First public test"),
				media(shots+"machine-stranger/gallery-4.jpg", ""),
				media(shots+"machine-stranger/gallery-5.jpg", "Exhibition view"),
			},
			Slides: []string{
				shots + "machine-stranger/slide-1.jpg",
				shots + "machine-stranger/slide-2.jpg",
				shots + "machine-stranger/slide-3.jpg",
			},
		},
		{
			ID:    "fleeting-states",
			Title: "Fleeting States + Measured Values",
			Year:  "2024",
			Description: `Fleeting States + Measured Values depicts the visible and invisible sides of quantum
computing through a touchscreen interface and programmable LED qubits.`,
			Thumbnail:  thumbs + "fleeting-states.jpg",
			Video:      videos + "fleetingstates.mp4",
			URL:        "/projects/fleeting-states",
			Categories: []string{"interactive"},
			Tools:      []string{"Quantum physics", "Multimedia", "Interactive Installation", "LED Mapping", "Science communication"},
			Inline: []*viewer.Item{
				media(shots+"fleeting-states/interface.png", "The touchscreen interface"),
			},
			Gallery: viewer.Gallery{
				media(shots+"fleeting-states/qubits.jpg", "LED qubits in superposition"),
				media(shots+"fleeting-states/measure.jpg", "Measurement collapses the display"),
				video(videos+"fleeting-states-loop.mp4", shots+"fleeting-states/loop.jpg", "Idle loop"),
			},
			Slides: []string{
				shots + "fleeting-states/slide-1.jpg",
				shots + "fleeting-states/slide-2.jpg",
			},
		},
		{
			ID:    "move-a-bit",
			Title: "Move a Bit",
			Year:  "2022",
			Description: `Move a Bit features a live motion capture experience bringing quantum computing to life
through an interactive display that visually showcases entanglement.`,
			Thumbnail:  thumbs + "move-a-bit.jpg",
			Video:      videos + "moveabit.mp4",
			URL:        "/projects/move-a-bit",
			Categories: []string{"interactive"},
			Tools:      []string{"Quantum computing", "Motion capture", "Interactive Installation"},
			Gallery: viewer.Gallery{
				media(shots+"move-a-bit/capture.jpg", "Motion capture stage"),
				media(shots+"move-a-bit/entangled.jpg", "Two dancers, one state"),
			},
		},
		{
			ID:    "computerized-memories",
			Title: "Computerized Memories",
			Class: "research",
			Year:  "2023",
			Description: `"Computerized memories" explores the biological structure and psychological character
of memory.`,
			Thumbnail:  thumbs + "computerized-memories.jpg",
			URL:        "/projects/computerized-memories",
			Categories: []string{"narrative"},
			Tools:      []string{"3D modelling and rendering", "Procedural Shaders", "Memories"},
			Gallery: viewer.Gallery{
				media(shots+"computerized-memories/render-1.png", "Hippocampus as a city"),
			},
		},
		{
			ID:    "postcards-between-worlds",
			Title: "Postcards Between Worlds",
			Year:  "2023",
			Description: `A story of two people in the future who send postcards to each other because societal
systems have created physical barriers between them.`,
			Thumbnail:  thumbs + "postcards-between-worlds.png",
			URL:        "/projects/postcards-between-worlds",
			Categories: []string{"narrative"},
			Tools:      []string{"3D Environments", "Speculative futures", "Writing"},
		},
		{
			ID:          "sights-and-insights",
			Title:       "Sights and Insights",
			Year:        "2024",
			Description: `A browser experiment that narrates what a vision model notices in everyday photographs.`,
			Thumbnail:   thumbs + "sights-and-insights.jpg",
			URL:         "/projects/sights-and-insights",
			Categories:  []string{"aiweb"},
			Tools:       []string{"Computer vision", "Web"},
		},
		{
			ID:          "granny-bytes",
			Title:       "Granny Bytes",
			Year:        "2023",
			Description: `Granny Bytes explores intergenerational connections and how they can manifest within our interactions with technology.`,
			Thumbnail:   thumbs + "granny-bytes.png",
			Video:       videos + "grannybytes.gif",
			URL:         "/projects/granny-bytes",
			Categories:  []string{"aiweb"},
			Tools:       []string{"Conversational AI", "Intergenerational design"},
			Gallery: viewer.Gallery{
				media(videos+"grannybytes.gif", "The chat companion"),
				media(shots+"granny-bytes/workshop.jpg", "Workshop with grandparents"),
			},
		},
		{
			ID:          "firefly-symphony",
			Title:       "A Firefly Symphony",
			Year:        "2022",
			Description: `Synchronised LEDs that learn to blink together, like fireflies on a summer night.`,
			Thumbnail:   thumbs + "firefly-symphony.jpg",
			URL:         "/projects/firefly-symphony",
			Categories:  []string{"others"},
			Tools:       []string{"Physical computing", "Emergence"},
		},
	}
}
