// Package adaptable renders the page shell for the Adaptable CMS theme: the
// document head, the opening body, the page wrapper and the header region
// with its navbar, login form and user menu.
//
// Rendering is split in two. Decide is a pure function that turns the
// host-provided State (site configuration, theme settings, page information,
// session and user agent) into a set of Flags. The Header page then emits
// markup from those Flags through html/template, without making any
// decisions of its own.
//
// The markup is produced by a small Component and Page framework. A Component
// lists the templates it needs and can optionally link stylesheets, attach
// client-side AMD calls, add template functions, or use other Components. A
// Page is a Component that gets rendered itself. A Site, usually a *Theme,
// holds the templates and anything shared across requests, and is available
// at render time as .Site; the Page is available as .Page.
//
// Hosts usually only need a Theme:
//
//	theme, err := adaptable.NewTheme(siteConfig, settings, nil)
//	if err != nil {
//		return err
//	}
//	theme.RenderHeader(ctx, w, adaptable.Request{...})
package adaptable
