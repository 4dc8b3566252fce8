package adaptable_test

import (
	"testing"

	"impractical.co/adaptable"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	type check func(t *testing.T, flags adaptable.Flags)

	tests := map[string]struct {
		state  func(st *adaptable.State)
		checks []check
	}{
		"defaults": {
			state: func(_ *adaptable.State) {},
			checks: []check{
				func(t *testing.T, f adaptable.Flags) {
					if f.LoginRoot != "http://school.example.com" {
						t.Errorf("Expected login root %q, got %q", "http://school.example.com", f.LoginRoot)
					}
					if f.RegionBSID != "region-bs-main-and-pre" {
						t.Errorf("Expected LTR region id, got %q", f.RegionBSID)
					}
					if f.IconsClass != " " {
						t.Errorf("Expected blank icons class, got %q", f.IconsClass)
					}
					if f.Full != "" {
						t.Errorf("Expected no full width class, got %q", f.Full)
					}
					if f.ShowNavbar {
						t.Error("Expected navbar to be hidden for anonymous visitors")
					}
					if !f.ShowLogin || f.ShowUserMenu {
						t.Errorf("Expected login for anonymous visitors, got login=%v usermenu=%v", f.ShowLogin, f.ShowUserMenu)
					}
					if f.Lang != "en" || f.Dir != "ltr" {
						t.Errorf("Expected en/ltr, got %s/%s", f.Lang, f.Dir)
					}
					if f.BodyID != "page-site-index" {
						t.Errorf("Expected body id page-site-index, got %q", f.BodyID)
					}
				},
			},
		},
		"https login": {
			state: func(st *adaptable.State) {
				st.Config.LoginHTTPS = true
			},
			checks: []check{
				func(t *testing.T, f adaptable.Flags) {
					if f.LoginRoot != "https://school.example.com" {
						t.Errorf("Expected https login root, got %q", f.LoginRoot)
					}
					if f.SiteRoot != "http://school.example.com" {
						t.Errorf("Expected site root to stay on http, got %q", f.SiteRoot)
					}
					if f.AssetRoot != "https://school.example.com" {
						t.Errorf("Expected https asset root, got %q", f.AssetRoot)
					}
				},
			},
		},
		"rtl": {
			state: func(st *adaptable.State) {
				st.Request.Page.RTL = true
			},
			checks: []check{
				func(t *testing.T, f adaptable.Flags) {
					if f.RegionBSID != "region-bs-main-and-post" {
						t.Errorf("Expected RTL region id, got %q", f.RegionBSID)
					}
					if f.BodyClass != "dir-rtl lang-en two-column" {
						t.Errorf("Unexpected body class %q", f.BodyClass)
					}
				},
			},
		},
		"sticky navbar": {
			state: func(st *adaptable.State) {
				st.Settings.StickyNavbar = true
			},
			checks: []check{
				func(t *testing.T, f adaptable.Flags) {
					if !f.FixedHeader {
						t.Error("Expected navbar to be fixed")
					}
				},
			},
		},
		"sticky navbar on grader report": {
			state: func(st *adaptable.State) {
				st.Settings.StickyNavbar = true
				st.Request.Page.Type = "grade-report-grader-index"
			},
			checks: []check{
				func(t *testing.T, f adaptable.Flags) {
					if f.FixedHeader {
						t.Error("Expected navbar not to be fixed on the grader report")
					}
				},
			},
		},
		"navbar when logged out": {
			state: func(st *adaptable.State) {
				st.Settings.EnableNavbarWhenLoggedOut = true
				st.Settings.EnableZoom = true
				st.Settings.DisplayLogin = adaptable.LoginButton
			},
			checks: []check{
				func(t *testing.T, f adaptable.Flags) {
					if !f.ShowNavbar {
						t.Error("Expected navbar to show")
					}
					if f.ShowZoom {
						t.Error("Expected zoom controls to stay hidden when logged out")
					}
					if f.LoginStyle != adaptable.LoginButton {
						t.Errorf("Expected button login, got %q", f.LoginStyle)
					}
				},
			},
		},
		"unknown login style": {
			state: func(st *adaptable.State) {
				st.Settings.DisplayLogin = "popup"
			},
			checks: []check{
				func(t *testing.T, f adaptable.Flags) {
					if f.LoginStyle != adaptable.LoginNone {
						t.Errorf("Expected no login widget, got %q", f.LoginStyle)
					}
				},
			},
		},
		"authenticated user": {
			state: func(st *adaptable.State) {
				st.Request.Session = adaptable.Session{LoggedIn: true, Full: "nofull", Zoom: "zoomin"}
				st.Settings.ViewSelect = true
				st.Settings.EnableShowHideBlocks = true
				st.Settings.DisplayLogin = adaptable.LoginBox
			},
			checks: []check{
				func(t *testing.T, f adaptable.Flags) {
					if !f.ShowNavbar || !f.ShowUserMenu || f.ShowLogin {
						t.Errorf("Expected navbar and user menu, got navbar=%v usermenu=%v login=%v", f.ShowNavbar, f.ShowUserMenu, f.ShowLogin)
					}
					if f.LoginStyle != adaptable.LoginNone {
						t.Errorf("Expected no login style for authenticated users, got %q", f.LoginStyle)
					}
					if f.Full != "nofull" {
						t.Errorf("Expected user's width preference to win, got %q", f.Full)
					}
					if !f.ShowHideBlocks {
						t.Error("Expected show/hide blocks controls")
					}
					if f.BodyClass != "dir-ltr lang-en two-column zoomin" {
						t.Errorf("Unexpected body class %q", f.BodyClass)
					}
				},
			},
		},
		"default view with no preference": {
			state: func(st *adaptable.State) {
				st.Settings.ViewSelect = true
				st.Settings.BlockIcons = true
			},
			checks: []check{
				func(t *testing.T, f adaptable.Flags) {
					if f.Full != adaptable.FullWidth {
						t.Errorf("Expected %q, got %q", adaptable.FullWidth, f.Full)
					}
					if f.PageClass != "container-fluid fullin showblockicons" {
						t.Errorf("Unexpected page class %q", f.PageClass)
					}
				},
			},
		},
		"width preference ignored when logged out": {
			state: func(st *adaptable.State) {
				st.Request.Session.Full = adaptable.FullWidth
			},
			checks: []check{
				func(t *testing.T, f adaptable.Flags) {
					if f.Full != "" {
						t.Errorf("Expected no width class, got %q", f.Full)
					}
				},
			},
		},
		"middle region and footnote": {
			state: func(st *adaptable.State) {
				st.Request.Page.Regions = []string{"side-pre", "middle"}
				st.Settings.Footnote = "Footer"
			},
			checks: []check{
				func(t *testing.T, f adaptable.Flags) {
					if !f.HasMiddle || !f.HasFootnote {
						t.Errorf("Expected middle region and footnote, got %v/%v", f.HasMiddle, f.HasFootnote)
					}
				},
			},
		},
		"alerts on tablet": {
			state: func(st *adaptable.State) {
				st.Request.UserAgent = "Mozilla/5.0 (iPad; CPU OS 17_5 like Mac OS X)"
			},
			checks: []check{
				func(t *testing.T, f adaptable.Flags) {
					if f.Device != adaptable.DeviceTablet {
						t.Errorf("Expected tablet, got %q", f.Device)
					}
					if f.ShowAlerts {
						t.Error("Expected alerts to be hidden on tablets")
					}
				},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			st := adaptable.State{
				Config: adaptable.SiteConfig{WWWRoot: "http://school.example.com/"},
				Request: adaptable.Request{
					Page: adaptable.PageInfo{Type: "site-index"},
				},
			}
			tc.state(&st)
			flags := adaptable.Decide(st)
			for _, c := range tc.checks {
				c(t, flags)
			}
		})
	}
}
