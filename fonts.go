package adaptable

import (
	"strings"
)

const (
	// DefaultFontWeight is the weight requested for the body and header
	// fonts when none is configured.
	DefaultFontWeight = "400"

	// DefaultTitleFontWeight is the weight requested for the title font
	// when none is configured.
	DefaultTitleFontWeight = "700"

	fontsBaseURL = "https://fonts.googleapis.com/css?family="
)

// BuildFontQuery returns the family parameter for a web-font stylesheet
// request, e.g. "Open+Sans:400,400i&subset=latin,cyrillic". Spaces in name
// become "+", the weight is requested in regular and italic, and defaultWeight
// is used when weight is empty. The subset, if any, is always requested
// alongside latin.
//
// It returns false when name is empty or "default", meaning no font should be
// requested at all.
func BuildFontQuery(name, weight, subset, defaultWeight string) (string, bool) {
	family := strings.ReplaceAll(name, " ", "+")
	if family == "" || family == "default" {
		return "", false
	}
	if weight == "" {
		weight = defaultWeight
	}
	query := family + ":" + weight + "," + weight + "i"
	if subset != "" {
		query += "&subset=latin," + subset
	}
	return query, true
}

// FontRole is the part of the page a configured font applies to.
type FontRole string

const (
	FontRoleBody   FontRole = "body"
	FontRoleHeader FontRole = "header"
	FontRoleTitle  FontRole = "title"
)

// FontLink is a web-font stylesheet requested for one FontRole.
type FontLink struct {
	Role FontRole
	Href string
}

func fontLinks(settings Settings) []FontLink {
	roles := []struct {
		role          FontRole
		name, weight  string
		defaultWeight string
	}{
		{FontRoleBody, settings.FontName, settings.FontWeight, DefaultFontWeight},
		{FontRoleHeader, settings.FontHeaderName, settings.FontHeaderWeight, DefaultFontWeight},
		{FontRoleTitle, settings.FontTitleName, settings.FontTitleWeight, DefaultTitleFontWeight},
	}
	var links []FontLink
	for _, r := range roles {
		query, ok := BuildFontQuery(r.name, r.weight, settings.FontSubset, r.defaultWeight)
		if !ok {
			continue
		}
		links = append(links, FontLink{Role: r.role, Href: fontsBaseURL + query})
	}
	return links
}
