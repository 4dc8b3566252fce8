package adaptable

import (
	"slices"
	"strings"
)

const (
	graderReportPageType = "grade-report-grader-index"
	graderReportBodyID   = "page-grade-report-grader-index"

	// FullWidth is the wrapper class for the full-width layout.
	FullWidth = "fullin"

	// ShowBlockIcons is the wrapper class that makes block icons visible.
	ShowBlockIcons = "showblockicons"

	regionMainAndPre  = "region-bs-main-and-pre"
	regionMainAndPost = "region-bs-main-and-post"
)

// Flags are the display decisions for a single render. They're derived from a
// State by Decide and are all the header templates look at.
type Flags struct {
	// LoginRoot is the base URL the login form posts to.
	LoginRoot string

	// SiteRoot is the base URL of the host application, used by the quick
	// action forms.
	SiteRoot string

	// AssetRoot is the base URL of theme assets.
	AssetRoot string

	HideSiteTitle bool
	Device        Device

	// Zoom is the zoom class added to the body, if any.
	Zoom string

	// Full is the width class added to the page wrapper, if any.
	Full string

	// FixedHeader pins the navbar to the top of the viewport.
	FixedHeader bool

	// HeaderBg is the URL of the header background image, if any.
	HeaderBg string

	Fonts []FontLink

	// RegionBSID is the id of the main block region container, which
	// depends on the text direction.
	RegionBSID string

	// IconsClass is ShowBlockIcons or a single space.
	IconsClass string

	ShowNavbar     bool
	ShowCustomMenu bool
	ShowToolsMenu  bool
	ShowHideBlocks bool
	ShowZoom       bool

	// ShowLogin is set for anonymous and guest visitors, who get
	// LoginStyle's widget instead of the user menu.
	ShowLogin  bool
	LoginStyle LoginStyle

	// ShowUserMenu is set for authenticated visitors, who get the avatar,
	// profile dropdown and quick actions.
	ShowUserMenu bool

	ShowAlerts       bool
	HideHeaderMobile bool
	HideSocialMobile bool
	HasMiddle        bool
	HasFootnote      bool

	Dir       string
	Lang      string
	BodyID    string
	BodyClass string
	PageClass string
}

// Decide derives the display Flags for a render. It never fails: missing
// settings fall back to their defaults and unknown values are treated like
// the last alternative of each rule.
func Decide(st State) Flags {
	settings := st.Settings
	page := st.Request.Page
	session := st.Request.Session

	flags := Flags{
		LoginRoot:        st.Config.httpsRoot(),
		SiteRoot:         strings.TrimSuffix(st.Config.WWWRoot, "/"),
		AssetRoot:        st.Config.assetRoot(),
		HideSiteTitle:    hideSiteTitle(page, settings),
		Device:           ClassifyDevice(st.Request.UserAgent),
		Zoom:             session.Zoom,
		FixedHeader:      settings.StickyNavbar && !isGraderReport(page),
		HeaderBg:         settings.HeaderBgImage,
		Fonts:            fontLinks(settings),
		RegionBSID:       regionMainAndPre,
		IconsClass:       " ",
		ShowCustomMenu:   !settings.DisableCustomMenu,
		ShowToolsMenu:    settings.EnableToolsMenus,
		HideHeaderMobile: settings.HideHeaderMobile,
		HideSocialMobile: settings.HideSocialMobile,
		HasMiddle:        slices.Contains(page.Regions, "middle"),
		HasFootnote:      settings.Footnote != "",
		Dir:              "ltr",
		Lang:             page.Lang,
		BodyID:           page.BodyID,
	}
	if page.RTL {
		flags.RegionBSID = regionMainAndPost
		flags.Dir = "rtl"
	}
	if flags.Lang == "" {
		flags.Lang = "en"
	}
	if flags.BodyID == "" {
		flags.BodyID = "page-" + page.Type
	}
	if settings.BlockIcons {
		flags.IconsClass = ShowBlockIcons
	}

	// width preferences only stick for logged in users
	if session.LoggedIn {
		flags.Full = session.Full
	}
	if settings.ViewSelect && flags.Full == "" {
		flags.Full = FullWidth
	}

	flags.ShowNavbar = session.Authenticated() || settings.EnableNavbarWhenLoggedOut
	flags.ShowHideBlocks = session.LoggedIn && settings.EnableShowHideBlocks
	flags.ShowZoom = session.LoggedIn && settings.EnableZoom
	flags.ShowLogin = !session.Authenticated()
	flags.ShowUserMenu = session.Authenticated()
	if flags.ShowLogin {
		switch settings.DisplayLogin {
		case LoginBox, LoginButton:
			flags.LoginStyle = settings.DisplayLogin
		default:
			flags.LoginStyle = LoginNone
		}
	}

	switch flags.Device {
	case DeviceDesktop:
		flags.ShowAlerts = true
	case DeviceMobile:
		flags.ShowAlerts = !settings.HideAlertsMobile
	}

	flags.BodyClass = joinClasses(append(slices.Clone(page.BodyClasses),
		"dir-"+flags.Dir,
		"lang-"+flags.Lang,
		"two-column",
		flags.Zoom,
	)...)
	flags.PageClass = "container-fluid " + flags.Full + " " + flags.IconsClass
	return flags
}

// hideSiteTitle hides the title on course pages, and on module pages inside a
// real course, when the theme asks for it.
func hideSiteTitle(page PageInfo, settings Settings) bool {
	if strings.Contains(page.Type, "course") ||
		(strings.Contains(page.Type, "mod") && page.CourseID > 1) {
		return settings.CoursePageHeaderHideSiteTitle
	}
	return false
}

func isGraderReport(page PageInfo) bool {
	return page.Type == graderReportPageType || page.BodyID == graderReportBodyID
}

func joinClasses(classes ...string) string {
	var out []string
	for _, class := range classes {
		class = strings.TrimSpace(class)
		if class == "" {
			continue
		}
		out = append(out, class)
	}
	return strings.Join(out, " ")
}
