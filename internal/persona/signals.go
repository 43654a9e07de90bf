package persona

// #region imports
import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// #endregion imports

// #region device-detection

var mobileMarkers = []string{"iphone", "android", "mobile", "windows phone"}
var tabletMarkers = []string{"ipad", "tablet", "kindle", "silk"}

// DeviceClassFromUserAgent derives a coarse device class from a raw
// user-agent string. Unknown or empty agents map to desktop the way most
// traffic does; callers wanting "no signal" pass an empty bundle field.
func DeviceClassFromUserAgent(ua string) DeviceClass {
	if strings.TrimSpace(ua) == "" {
		return ""
	}
	lower := strings.ToLower(ua)
	for _, m := range tabletMarkers {
		if strings.Contains(lower, m) {
			return DeviceTablet
		}
	}
	for _, m := range mobileMarkers {
		if strings.Contains(lower, m) {
			return DeviceMobile
		}
	}
	return DeviceDesktop
}

// #endregion device-detection

// #region bundle-from-request

// BundleFromRequest builds a signal bundle from request primitives:
// the Referer header, the User-Agent header, the raw query string, and
// the request time. Session signals (search terms, cart size) ride in the
// query under q/cart for the demo surface; real callers set them directly.
func BundleFromRequest(referrer, userAgent, rawQuery string, at time.Time) SignalBundle {
	b := SignalBundle{
		Referrer:    referrer,
		DeviceClass: DeviceClassFromUserAgent(userAgent),
		ObservedAt:  at,
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		// Malformed queries carry no campaign signal; classification
		// degrades instead of failing.
		return b
	}

	b.UTMCampaign = values.Get("utm_campaign")
	b.UTMSource = values.Get("utm_source")
	b.UTMSegment = values.Get("utm_segment")
	b.Poll = values.Get("poll")

	if q := strings.TrimSpace(values.Get("q")); q != "" {
		b.SearchTerms = strings.Fields(strings.ToLower(q))
	}
	if cart := values.Get("cart"); cart != "" {
		if n, err := strconv.Atoi(cart); err == nil && n > 0 {
			b.CartSize = n
		}
	}

	return b
}

// #endregion bundle-from-request
