package persona

// #region imports
import "time"

// #endregion imports

// #region segment

// Segment labels an audience bucket. Closed set; experiments and document
// variants are namespaced per segment.
type Segment string

const (
	SegmentGeneral      Segment = "general" // designated fallback
	SegmentMaker        Segment = "maker"
	SegmentProfessional Segment = "professional"
	SegmentSmallBiz     Segment = "smallbiz"
	SegmentEnterprise   Segment = "enterprise"
)

// DefaultSegment is the tie-break and low-confidence fallback target.
const DefaultSegment = SegmentGeneral

// Segments returns every known segment, default first.
func Segments() []Segment {
	return []Segment{
		SegmentGeneral,
		SegmentMaker,
		SegmentProfessional,
		SegmentSmallBiz,
		SegmentEnterprise,
	}
}

// ValidSegment reports whether s is in the known enumeration.
func ValidSegment(s Segment) bool {
	for _, known := range Segments() {
		if s == known {
			return true
		}
	}
	return false
}

// #endregion segment

// #region device-class

// DeviceClass is the coarse device family derived from a user agent.
type DeviceClass string

const (
	DeviceDesktop DeviceClass = "desktop"
	DeviceMobile  DeviceClass = "mobile"
	DeviceTablet  DeviceClass = "tablet"
)

// #endregion device-class

// #region signal-bundle

// SignalBundle carries the per-request signals classification works from.
// Every field is optional; an empty bundle classifies to the default
// segment at the confidence floor. Built fresh per request, never stored.
type SignalBundle struct {
	Referrer    string
	DeviceClass DeviceClass
	UTMCampaign string
	UTMSource   string
	UTMSegment  string // explicit segment-valued campaign parameter
	Poll        string // explicit end-user segment selection, short-circuits
	ObservedAt  time.Time
	SearchTerms []string
	CartSize    int
}

// #endregion signal-bundle

// #region classification

// Classification is the classifier's verdict for one request.
// Confidence is certainty about the audience segment, not to be confused
// with the strategist's posterior mean.
type Classification struct {
	Segment    Segment
	Confidence float64
	Rationale  []string
}

// #endregion classification
