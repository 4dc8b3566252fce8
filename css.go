package adaptable

import (
	"context"
)

// CSSLink is a stylesheet loaded through a <link> element.
type CSSLink struct {
	// Href is the URL of the stylesheet.
	Href string

	// Rel is the link relationship. It's almost always "stylesheet".
	Rel string

	// Type is the optional MIME type, e.g. "text/css".
	Type string
}

// CSSLinker is an interface that Components can fulfill to include some CSS
// that should be loaded through a <link> element. The links are made
// available to the template as .LinkedCSS.
type CSSLinker interface {
	// LinkCSS returns the stylesheets that should be linked to from the
	// output HTML, in the order they should appear.
	LinkCSS(context.Context) []CSSLink
}

func getComponentCSSLinks(ctx context.Context, component Component) []CSSLink {
	var results []CSSLink
	seen := map[string]struct{}{}
	components := getRecursiveComponents(ctx, component)
	for _, comp := range components {
		link, ok := comp.(CSSLinker)
		if !ok {
			continue
		}
		for _, sheet := range link.LinkCSS(ctx) {
			if _, ok := seen[sheet.Href]; ok {
				continue
			}
			results = append(results, sheet)
			seen[sheet.Href] = struct{}{}
		}
	}
	return results
}
