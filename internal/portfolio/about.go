package portfolio

// ContactLink is an icon link on the about page.
type ContactLink struct {
	ID        string
	Href      string
	Target    string
	Logo      string
	HoverLogo string
	Alt       string
}

// Exhibition is one entry of the exhibitions list.
type Exhibition struct {
	Number   string
	Name     string
	Location string
}

// About is the content of the about page.
type About struct {
	Bio         string
	Portrait    string
	Links       []ContactLink
	Exhibitions []Exhibition
}

const logos = "/assets/images/logos/contact/"

var AboutMe = About{
	Bio: `I am a creative technologist working where interaction design meets emerging technology.
Most of my projects start from a question about how people relate to machines and turn into
installations, speculative stories or small web experiments.`,
	Portrait: "/assets/images/about/portrait.jpg",
	Links: []ContactLink{
		{ID: "email", Href: "mailto:hello@example.com?subject=Hello", Logo: logos + "email.png", HoverLogo: logos + "emailHover.png", Alt: "Email"},
		{ID: "instagram", Href: "https://www.instagram.com/", Target: "_blank", Logo: logos + "instagram.png", HoverLogo: logos + "InstagramHover.png", Alt: "Instagram"},
		{ID: "github", Href: "https://github.com/Paridhii27", Target: "_blank", Logo: logos + "github.png", HoverLogo: logos + "githubHover.png", Alt: "GitHub"},
		{ID: "linkedin", Href: "https://www.linkedin.com/", Target: "_blank", Logo: logos + "linkedin.png", HoverLogo: logos + "LinkedInHover.png", Alt: "LinkedIn"},
	},
	Exhibitions: []Exhibition{
		{Number: "01.", Name: "Quantum Art: Creative Expressions of the Infamously Counter Intuitive", Location: "Microscope Gallery, New York, NY"},
		{Number: "02.", Name: "How to show off quantum computing", Location: "KISD, Cologne, Germany"},
	},
}

// NavLink is one entry of the site navigation bar.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// NavLinks generates the navigation bar with the entry for active marked.
func NavLinks(active string) []NavLink {
	links := []NavLink{
		{Label: "Home", Href: "/"},
		{Label: "Projects", Href: "/projects"},
		{Label: "About", Href: "/about"},
	}
	for i := range links {
		links[i].Active = links[i].Label == active
	}
	return links
}
