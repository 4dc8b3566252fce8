package preview

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"impractical.co/adaptable"
)

// Params describe a page view to preview. The host normally supplies all of
// this; here it comes from query parameters or command line flags.
type Params struct {
	PageType  string
	BodyID    string
	Title     string
	CourseID  int64
	Lang      string
	RTL       bool
	LoggedIn  bool
	Guest     bool
	User      string
	Zoom      string
	Full      string
	UserAgent string
}

// ParseParams reads Params from query values. Unparseable numbers and
// booleans are errors; missing values keep their zero value.
func ParseParams(values url.Values) (Params, error) {
	params := Params{
		PageType:  values.Get("pagetype"),
		BodyID:    values.Get("bodyid"),
		Title:     values.Get("title"),
		Lang:      values.Get("lang"),
		User:      values.Get("user"),
		Zoom:      values.Get("zoom"),
		Full:      values.Get("full"),
		UserAgent: values.Get("ua"),
	}
	var err error
	if raw := values.Get("course"); raw != "" {
		params.CourseID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Params{}, fmt.Errorf("invalid course %q: %w", raw, err)
		}
	}
	bools := map[string]*bool{
		"rtl":      &params.RTL,
		"loggedin": &params.LoggedIn,
		"guest":    &params.Guest,
	}
	for name, dest := range bools {
		raw := values.Get(name)
		if raw == "" {
			continue
		}
		*dest, err = strconv.ParseBool(raw)
		if err != nil {
			return Params{}, fmt.Errorf("invalid %s %q: %w", name, raw, err)
		}
	}
	return params, nil
}

// Request turns the Params into an adaptable.Request, with placeholder
// fragments standing in for the host's menus and user picture.
func (p Params) Request() adaptable.Request {
	title := p.Title
	if title == "" {
		title = "Preview"
	}
	user := p.User
	if user == "" && p.LoggedIn && !p.Guest {
		user = "Admin User"
	}
	req := adaptable.Request{
		Page: adaptable.PageInfo{
			Type:     p.PageType,
			BodyID:   p.BodyID,
			Title:    title,
			CourseID: p.CourseID,
			Lang:     p.Lang,
			RTL:      p.RTL,
		},
		Session: adaptable.Session{
			LoggedIn:     p.LoggedIn || p.Guest,
			Guest:        p.Guest,
			UserFullName: user,
			Zoom:         p.Zoom,
			Full:         p.Full,
		},
		UserAgent: p.UserAgent,
		Fragments: adaptable.Fragments{
			NavigationMenu: `<ul class="nav"><li><a href="#">Home</a></li></ul>`,
			LogoTitle:      `<span class="sitename">Adaptable</span>`,
		},
	}
	if req.Session.Authenticated() {
		escaped := template.HTMLEscapeString(user)
		req.Fragments.UserPicture = template.HTML(`<img class="userpicture" alt="` + escaped + `" src="data:," width="80" height="80">`) // #nosec G203
		req.Fragments.UserProfileMenu = template.HTML(`<li><span>` + escaped + `</span></li>`)                                                    // #nosec G203
	}
	if strings.HasPrefix(p.PageType, "course") {
		req.Page.BodyClasses = []string{"path-course"}
	}
	return req
}
