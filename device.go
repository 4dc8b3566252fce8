package adaptable

import (
	"strings"
)

// Device is the broad class of device a page is being rendered for.
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceTablet  Device = "tablet"
	DeviceMobile  Device = "mobile"
)

var (
	tabletMarkers = []string{"ipad", "tablet", "kindle", "silk/", "playbook"}
	phoneMarkers  = []string{"iphone", "ipod", "windows phone", "blackberry", "opera mini", "iemobile"}
)

// ClassifyDevice guesses the Device from a User-Agent header. Unknown and
// empty user agents are treated as desktops.
func ClassifyDevice(userAgent string) Device {
	ua := strings.ToLower(userAgent)
	for _, marker := range tabletMarkers {
		if strings.Contains(ua, marker) {
			return DeviceTablet
		}
	}
	for _, marker := range phoneMarkers {
		if strings.Contains(ua, marker) {
			return DeviceMobile
		}
	}
	// Android phones say "Mobile", Android tablets don't
	if strings.Contains(ua, "android") && !strings.Contains(ua, "mobile") {
		return DeviceTablet
	}
	if strings.Contains(ua, "mobile") {
		return DeviceMobile
	}
	return DeviceDesktop
}
