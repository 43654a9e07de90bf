package persona

// #region imports
import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// #endregion imports

// #region constants

const (
	pollConfidence     = 0.95
	confidenceFloor    = 0.30
	confidenceCeiling  = 0.95
	overrideThreshold  = 0.40
	overrideConfidence = 0.35

	weightExplicitSegment = 3.0
	weightCampaign        = 2.0
	weightReferrer        = 1.5
	weightSearch          = 1.0
	weightCart            = 1.0
	weightBigCart         = 1.5
	weightTimeWindow      = 0.5
	weightDevice          = 0.25
	weightBaseline        = 0.25
)

// #endregion constants

// #region keywords

var campaignKeywords = map[Segment][]string{
	SegmentMaker:        {"diy", "workshop", "weekend-build", "hobby", "maker"},
	SegmentProfessional: {"pro-tools", "productivity", "career", "certified"},
	SegmentSmallBiz:     {"smb", "shopfront", "main-street", "storefront"},
	SegmentEnterprise:   {"enterprise", "procurement", "rollout", "at-scale"},
}

var referrerKeywords = map[Segment][]string{
	SegmentMaker:        {"forum", "reddit", "instructables", "youtube"},
	SegmentProfessional: {"linkedin", "newsletter"},
	SegmentSmallBiz:     {"chamber", "local", "yelp"},
	SegmentEnterprise:   {"gartner", "procurement", "rfp"},
}

var searchKeywords = map[Segment][]string{
	SegmentMaker:        {"kit", "build your own", "project"},
	SegmentProfessional: {"review", "comparison", "best"},
	SegmentSmallBiz:     {"invoice", "bulk", "wholesale"},
	SegmentEnterprise:   {"sla", "integration", "api", "sso"},
}

// #endregion keywords

// #region rule-table

// contribution is one rule's additive effect on one segment's score.
type contribution struct {
	segment   Segment
	weight    float64
	rationale string
}

// scoringRule is an independent heuristic evaluated against the bundle.
// Rules never see each other's output; scores are summed afterwards.
type scoringRule struct {
	name  string
	apply func(b SignalBundle) []contribution
}

var scoringRules = []scoringRule{
	{name: "explicit-segment-param", apply: explicitSegmentRule},
	{name: "campaign-keywords", apply: campaignRule},
	{name: "referrer-keywords", apply: referrerRule},
	{name: "time-window", apply: timeWindowRule},
	{name: "device-class", apply: deviceRule},
	{name: "search-terms", apply: searchRule},
	{name: "cart-size", apply: cartRule},
}

// #endregion rule-table

// #region classify

// Classify maps a signal bundle to a segment with confidence and rationale.
// Never returns an error: an empty bundle degrades to the default segment
// at the confidence floor.
func Classify(b SignalBundle) Classification {
	// Poll override short-circuits all scoring.
	if b.Poll != "" {
		if seg := Segment(strings.ToLower(strings.TrimSpace(b.Poll))); ValidSegment(seg) {
			return Classification{
				Segment:    seg,
				Confidence: pollConfidence,
				Rationale:  []string{fmt.Sprintf("explicit poll selection: %s", seg)},
			}
		}
	}

	scores := make(map[Segment]float64, len(Segments()))
	var rationale []string

	for _, rule := range scoringRules {
		for _, c := range rule.apply(b) {
			scores[c.segment] += c.weight
			rationale = append(rationale, c.rationale)
		}
	}

	// Baseline nudge toward the default segment breaks ties sensibly.
	scores[DefaultSegment] += weightBaseline

	ranked := rankSegments(scores)
	top, second := ranked[0], ranked[1]

	confidence := clampConfidence(scores[top] - scores[second])

	if confidence < overrideThreshold && top != DefaultSegment {
		rationale = append(rationale,
			fmt.Sprintf("low confidence (%.2f), overriding %s to %s", confidence, top, DefaultSegment))
		return Classification{
			Segment:    DefaultSegment,
			Confidence: overrideConfidence,
			Rationale:  rationale,
		}
	}

	if len(rationale) == 0 {
		rationale = []string{"default classification"}
	}

	return Classification{
		Segment:    top,
		Confidence: confidence,
		Rationale:  rationale,
	}
}

// #endregion classify

// #region ranking

// rankSegments orders segments by score descending, ties broken by the
// canonical Segments() order so results are reproducible.
func rankSegments(scores map[Segment]float64) []Segment {
	ranked := Segments()
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}

func clampConfidence(diff float64) float64 {
	if diff < confidenceFloor {
		return confidenceFloor
	}
	if diff > confidenceCeiling {
		return confidenceCeiling
	}
	return diff
}

// #endregion ranking

// #region rules

func explicitSegmentRule(b SignalBundle) []contribution {
	seg := Segment(strings.ToLower(strings.TrimSpace(b.UTMSegment)))
	if seg == "" || !ValidSegment(seg) {
		return nil
	}
	return []contribution{{
		segment:   seg,
		weight:    weightExplicitSegment,
		rationale: fmt.Sprintf("campaign segment parameter: %s", seg),
	}}
}

func campaignRule(b SignalBundle) []contribution {
	haystack := strings.ToLower(b.UTMCampaign + " " + b.UTMSource)
	if strings.TrimSpace(haystack) == "" {
		return nil
	}
	return matchKeywords(haystack, campaignKeywords, weightCampaign, "campaign keyword")
}

func referrerRule(b SignalBundle) []contribution {
	ref := strings.ToLower(b.Referrer)
	if ref == "" {
		return nil
	}
	return matchKeywords(ref, referrerKeywords, weightReferrer, "referrer keyword")
}

func timeWindowRule(b SignalBundle) []contribution {
	if b.ObservedAt.IsZero() {
		return nil
	}
	hour := b.ObservedAt.Hour()
	day := b.ObservedAt.Weekday()
	weekend := day == time.Saturday || day == time.Sunday

	var out []contribution
	if hour >= 5 && hour < 8 {
		out = append(out, contribution{
			segment:   SegmentMaker,
			weight:    weightTimeWindow,
			rationale: "early-morning visit",
		})
	}
	if !weekend && ((hour >= 7 && hour < 9) || (hour >= 17 && hour < 19)) {
		out = append(out, contribution{
			segment:   SegmentProfessional,
			weight:    weightTimeWindow,
			rationale: "weekday commute-hour visit",
		})
	}
	if weekend {
		out = append(out,
			contribution{segment: SegmentMaker, weight: weightTimeWindow, rationale: "weekend visit"},
			contribution{segment: SegmentSmallBiz, weight: weightTimeWindow, rationale: "weekend visit"},
		)
	}
	return out
}

func deviceRule(b SignalBundle) []contribution {
	switch b.DeviceClass {
	case DeviceDesktop:
		return []contribution{
			{segment: SegmentProfessional, weight: weightDevice, rationale: "desktop device"},
			{segment: SegmentEnterprise, weight: weightDevice, rationale: "desktop device"},
		}
	case DeviceMobile:
		return []contribution{
			{segment: SegmentGeneral, weight: weightDevice, rationale: "mobile device"},
			{segment: SegmentMaker, weight: weightDevice, rationale: "mobile device"},
		}
	case DeviceTablet:
		return []contribution{
			{segment: SegmentGeneral, weight: weightDevice, rationale: "tablet device"},
		}
	}
	return nil
}

func searchRule(b SignalBundle) []contribution {
	if len(b.SearchTerms) == 0 {
		return nil
	}
	haystack := strings.ToLower(strings.Join(b.SearchTerms, " "))
	return matchKeywords(haystack, searchKeywords, weightSearch, "search term")
}

func cartRule(b SignalBundle) []contribution {
	switch {
	case b.CartSize >= 10:
		return []contribution{{
			segment:   SegmentEnterprise,
			weight:    weightBigCart,
			rationale: fmt.Sprintf("large cart (%d items)", b.CartSize),
		}}
	case b.CartSize >= 3:
		return []contribution{{
			segment:   SegmentSmallBiz,
			weight:    weightCart,
			rationale: fmt.Sprintf("multi-item cart (%d items)", b.CartSize),
		}}
	}
	return nil
}

func matchKeywords(haystack string, table map[Segment][]string, weight float64, label string) []contribution {
	var out []contribution
	for _, seg := range Segments() {
		for _, kw := range table[seg] {
			if strings.Contains(haystack, kw) {
				out = append(out, contribution{
					segment:   seg,
					weight:    weight,
					rationale: fmt.Sprintf("%s %q matched %s", label, kw, seg),
				})
			}
		}
	}
	return out
}

// #endregion rules
