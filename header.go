package adaptable

import (
	"context"
)

const (
	headerTemplate = "header.html.tmpl"
	navbarTemplate = "navbar.html.tmpl"

	bsOptionsModule = "theme_adaptable/bsoptions"
)

var _ Renderable = Header{}
var _ ComponentUser = Header{}
var _ CSSLinker = Header{}
var _ AMDCaller = Navbar{}

// Header is the page shell: the document head, the opening body, the page
// wrapper and the header region. It's rendered through html/template, and
// every decision it makes comes from Flags.
type Header struct {
	Request Request
	Flags   Flags
	Navbar  Navbar
}

// NewHeader decides the Flags for req against theme's configuration and
// returns the Header to render.
func NewHeader(theme *Theme, req Request) Header {
	flags := Decide(State{
		Config:   theme.Config,
		Settings: theme.Settings,
		Request:  req,
	})
	return Header{
		Request: req,
		Flags:   flags,
		Navbar:  Navbar{Fixed: flags.FixedHeader},
	}
}

func (Header) Templates(_ context.Context) []string {
	return []string{headerTemplate}
}

func (h Header) UseComponents(_ context.Context) []Component {
	return []Component{h.Navbar}
}

func (Header) Key(_ context.Context) string {
	return "header"
}

func (Header) ExecutedTemplate(_ context.Context) string {
	return headerTemplate
}

// LinkCSS links the icon font stylesheet followed by the configured web
// fonts.
func (h Header) LinkCSS(_ context.Context) []CSSLink {
	links := []CSSLink{
		{Href: h.Flags.AssetRoot + "/theme/adaptable/style/font-awesome.min.css", Rel: "stylesheet"},
	}
	for _, font := range h.Flags.Fonts {
		links = append(links, CSSLink{Href: font.Href, Rel: "stylesheet", Type: "text/css"})
	}
	return links
}

// Navbar is the navigation bar inside the header. Its template only renders
// it when the header's Flags allow.
type Navbar struct {
	// Fixed pins the navbar to the top of the viewport on the client.
	Fixed bool
}

func (Navbar) Templates(_ context.Context) []string {
	return []string{navbarTemplate}
}

// CallAMD initializes the client-side navbar behaviour. It's attached even
// when the navbar is hidden.
func (n Navbar) CallAMD(_ context.Context) []AMDCall {
	return []AMDCall{
		{Module: bsOptionsModule, Function: "init", Args: []any{n.Fixed}},
	}
}
