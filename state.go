package adaptable

import (
	"html/template"
	"strings"
)

// SiteConfig is the host's site-wide configuration.
type SiteConfig struct {
	// WWWRoot is the site's base URL, without a trailing slash.
	WWWRoot string `koanf:"wwwroot"`

	// HTTPSWWWRoot is the base URL used for theme assets. It defaults to
	// WWWRoot, switched to https when LoginHTTPS is set.
	HTTPSWWWRoot string `koanf:"httpswwwroot"`

	// LoginHTTPS sends the login form over https even when WWWRoot is
	// plain http.
	LoginHTTPS bool `koanf:"loginhttps"`

	// FullName is the site's name, used in social meta tags.
	FullName string `koanf:"fullname"`

	// Favicon is the URL of the site's icon. No icon link is rendered when
	// it's empty.
	Favicon string `koanf:"favicon"`
}

func (c SiteConfig) httpsRoot() string {
	root := strings.TrimSuffix(c.WWWRoot, "/")
	if c.LoginHTTPS {
		root = strings.Replace(root, "http://", "https://", 1)
	}
	return root
}

func (c SiteConfig) assetRoot() string {
	if c.HTTPSWWWRoot != "" {
		return strings.TrimSuffix(c.HTTPSWWWRoot, "/")
	}
	return c.httpsRoot()
}

// LoginStyle selects the login widget shown to visitors who aren't signed
// in.
type LoginStyle string

const (
	// LoginNone shows no login widget.
	LoginNone LoginStyle = ""

	// LoginBox shows username and password fields with a submit button.
	LoginBox LoginStyle = "box"

	// LoginButton shows a single button leading to the login page.
	LoginButton LoginStyle = "button"
)

// Alert is a site-wide message shown at the top of the page.
type Alert struct {
	Enabled bool `koanf:"enabled"`

	// Type is one of info, success, warning or danger. Anything else is
	// shown as info.
	Type string `koanf:"type"`

	// Text is markdown.
	Text string `koanf:"text"`
}

// Settings are the theme's presentation settings, as stored by the host's
// theme admin UI.
type Settings struct {
	MainColor string `koanf:"maincolor"`

	FontName         string `koanf:"fontname"`
	FontHeaderName   string `koanf:"fontheadername"`
	FontTitleName    string `koanf:"fonttitlename"`
	FontWeight       string `koanf:"fontweight"`
	FontHeaderWeight string `koanf:"fontheaderweight"`
	FontTitleWeight  string `koanf:"fonttitleweight"`
	FontSubset       string `koanf:"fontsubset"`

	// HeaderBgImage is the URL of the header background image.
	HeaderBgImage string `koanf:"headerbgimage"`

	StickyNavbar bool `koanf:"stickynavbar"`
	BlockIcons   bool `koanf:"blockicons"`

	// ViewSelect makes full width the default view for users who haven't
	// chosen one.
	ViewSelect bool `koanf:"viewselect"`

	EnableZoom           bool       `koanf:"enablezoom"`
	EnableShowHideBlocks bool       `koanf:"enableshowhideblocks"`
	DisplayLogin         LoginStyle `koanf:"displaylogin"`

	EnableNavbarWhenLoggedOut bool `koanf:"enablenavbarwhenloggedout"`
	DisableCustomMenu         bool `koanf:"disablecustommenu"`
	EnableToolsMenus          bool `koanf:"enabletoolsmenus"`

	CoursePageHeaderHideSiteTitle bool `koanf:"coursepageheaderhidesitetitle"`

	HideHeaderMobile bool `koanf:"hideheadermobile"`
	HideAlertsMobile bool `koanf:"hidealertsmobile"`
	HideSocialMobile bool `koanf:"hidesocialmobile"`

	Footnote string  `koanf:"footnote"`
	Alerts   []Alert `koanf:"alerts"`
}

// PageInfo describes the page being rendered.
type PageInfo struct {
	// Type is the host's page type, e.g. "course-view-topics" or
	// "grade-report-grader-index".
	Type string

	// BodyID is the id of the body element. It defaults to "page-" followed
	// by Type.
	BodyID string

	Title    string
	CourseID int64
	RTL      bool

	// Lang is the page language. It defaults to "en".
	Lang string

	// BodyClasses are extra classes the host wants on the body element.
	BodyClasses []string

	// Regions lists the block regions that have content.
	Regions []string
}

// Session is the visitor's authentication state and preferences.
type Session struct {
	LoggedIn bool

	// Guest is set for the guest account, which counts as logged in but
	// not authenticated.
	Guest bool

	UserFullName string

	// Zoom is the user's zoom preference, e.g. "zoomin" or "nozoom".
	Zoom string

	// Full is the user's width preference, e.g. "fullin" or "nofull".
	Full string
}

// Authenticated reports whether the visitor is logged in as a real user.
func (s Session) Authenticated() bool {
	return s.LoggedIn && !s.Guest
}

// Fragments are pieces of markup rendered by the host. They're trusted and
// included in the output as-is.
type Fragments struct {
	StandardHead      template.HTML
	TopOfBody         template.HTML
	DevAlert          template.HTML
	NavigationMenu    template.HTML
	LogoTitle         template.HTML
	CustomMenu        template.HTML
	ToolsMenu         template.HTML
	PageHeadingMenu   template.HTML
	UserPicture       template.HTML
	UserProfileMenu   template.HTML
	PageHeadingButton template.HTML
}

// Request is everything about a single page view that the host supplies.
type Request struct {
	Page      PageInfo
	Session   Session
	UserAgent string
	Fragments Fragments
}

// State is the complete, read-only input to Decide.
type State struct {
	Config   SiteConfig
	Settings Settings
	Request  Request
}
