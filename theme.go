package adaptable

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

var _ Site = &Theme{}
var _ ServerErrorPager = &Theme{}
var _ FuncMapExtender = &Theme{}

// Theme is the Site for the Adaptable theme. It holds the site configuration,
// the theme settings and the string table, none of which change between
// requests. It must be created with NewTheme.
type Theme struct {
	*CachedSite

	Config   SiteConfig
	Settings Settings
	Strings  *StringTable

	alerts []RenderedAlert
}

// NewTheme returns a Theme using the bundled templates. A nil strings table
// means the bundled language packs.
func NewTheme(config SiteConfig, settings Settings, strings *StringTable) (*Theme, error) {
	templates, err := fs.Sub(bundled, "templates")
	if err != nil {
		return nil, fmt.Errorf("error opening bundled templates: %w", err)
	}
	return NewThemeWithTemplates(templates, config, settings, strings)
}

// NewThemeWithTemplates is like NewTheme, but reads templates from the passed
// fs.FS. It must provide header.html.tmpl, navbar.html.tmpl and
// server_error.html.tmpl.
func NewThemeWithTemplates(templates fs.FS, config SiteConfig, settings Settings, strings *StringTable) (*Theme, error) {
	if strings == nil {
		var err error
		strings, err = DefaultStrings()
		if err != nil {
			return nil, err
		}
	}
	alerts, err := renderAlerts(settings.Alerts)
	if err != nil {
		return nil, err
	}
	return &Theme{
		CachedSite: NewCachedSite(templates),
		Config:     config,
		Settings:   settings,
		Strings:    strings,
		alerts:     alerts,
	}, nil
}

// Alerts returns the enabled site alerts, converted to HTML.
func (t *Theme) Alerts() []RenderedAlert {
	return t.alerts
}

// FuncMap makes the string table available to templates as
// {{ str $lang "key" }}.
func (t *Theme) FuncMap(_ context.Context) template.FuncMap {
	return template.FuncMap{
		"str": t.Strings.Get,
	}
}

// ServerErrorPage is rendered in place of a page that fails to render.
func (*Theme) ServerErrorPage(_ context.Context) Renderable {
	return serverErrorPage{}
}

// Header builds the Header page for req.
func (t *Theme) Header(req Request) Header {
	return NewHeader(t, req)
}

// RenderHeader renders the page shell for req to out.
func (t *Theme) RenderHeader(ctx context.Context, out io.Writer, req Request) {
	Render(ctx, out, t, t.Header(req))
}

type serverErrorPage struct{}

func (serverErrorPage) Templates(_ context.Context) []string {
	return []string{"server_error.html.tmpl"}
}

func (serverErrorPage) Key(_ context.Context) string {
	return "server_error"
}

func (serverErrorPage) ExecutedTemplate(_ context.Context) string {
	return "server_error.html.tmpl"
}
