package persona

import (
	"testing"
	"time"
)

func TestClassify_PollOverride(t *testing.T) {
	// Poll selection wins regardless of every other signal present.
	b := SignalBundle{
		Poll:        "maker",
		UTMSegment:  "enterprise",
		UTMCampaign: "enterprise-rollout",
		Referrer:    "https://www.linkedin.com/feed",
		CartSize:    12,
	}
	got := Classify(b)
	if got.Segment != SegmentMaker {
		t.Errorf("segment: got %q, want %q", got.Segment, SegmentMaker)
	}
	if got.Confidence != 0.95 {
		t.Errorf("confidence: got %.2f, want 0.95", got.Confidence)
	}
	if len(got.Rationale) != 1 {
		t.Errorf("expected single rationale entry, got %v", got.Rationale)
	}
}

func TestClassify_UnknownPollFallsThrough(t *testing.T) {
	got := Classify(SignalBundle{Poll: "astronaut", UTMCampaign: "smb-shopfront"})
	if got.Segment != SegmentSmallBiz {
		t.Errorf("got %q, want %q", got.Segment, SegmentSmallBiz)
	}
}

func TestClassify_EmptyBundle(t *testing.T) {
	got := Classify(SignalBundle{})
	if got.Segment != SegmentGeneral {
		t.Errorf("segment: got %q, want %q", got.Segment, SegmentGeneral)
	}
	if got.Confidence != 0.30 {
		t.Errorf("confidence: got %.2f, want floor 0.30", got.Confidence)
	}
	if len(got.Rationale) != 1 || got.Rationale[0] != "default classification" {
		t.Errorf("rationale: got %v", got.Rationale)
	}
}

func TestClassify_SignalRouting(t *testing.T) {
	tests := []struct {
		name string
		b    SignalBundle
		want Segment
	}{
		{"campaign-maker", SignalBundle{UTMCampaign: "spring-diy-push"}, SegmentMaker},
		{"source-enterprise", SignalBundle{UTMSource: "procurement-brief"}, SegmentEnterprise},
		{"explicit-param", SignalBundle{UTMSegment: "professional"}, SegmentProfessional},
		{"referrer-linkedin", SignalBundle{Referrer: "https://www.linkedin.com/feed", UTMCampaign: "pro-tools-q3"}, SegmentProfessional},
		{"search-sso", SignalBundle{SearchTerms: []string{"sso", "setup"}, UTMCampaign: "enterprise-rollout"}, SegmentEnterprise},
		{"big-cart", SignalBundle{CartSize: 12, UTMCampaign: "at-scale"}, SegmentEnterprise},
		{"smb-cart", SignalBundle{CartSize: 4, UTMCampaign: "smb-storefront"}, SegmentSmallBiz},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.b)
			if got.Segment != tt.want {
				t.Errorf("got %q (rationale %v), want %q", got.Segment, got.Rationale, tt.want)
			}
		})
	}
}

func TestClassify_LowConfidenceOverride(t *testing.T) {
	// Time-window weights alone never separate segments by the 0.40
	// threshold, so a weekday-evening visit with nothing else falls back
	// to the default segment.
	at := time.Date(2025, 11, 18, 18, 30, 0, 0, time.UTC) // Tuesday 18:30
	got := Classify(SignalBundle{ObservedAt: at})
	if got.Segment != SegmentGeneral {
		t.Errorf("segment: got %q, want %q", got.Segment, SegmentGeneral)
	}
	if got.Confidence != 0.35 {
		t.Errorf("confidence: got %.2f, want override 0.35", got.Confidence)
	}
}

func TestClassify_TimeWindows(t *testing.T) {
	// Campaign ties the score; the time window decides the segment.
	weekend := time.Date(2025, 11, 22, 14, 0, 0, 0, time.UTC) // Saturday
	got := Classify(SignalBundle{
		ObservedAt:  weekend,
		UTMCampaign: "weekend-build-hobby", // maker twice over
	})
	if got.Segment != SegmentMaker {
		t.Errorf("got %q (rationale %v), want maker", got.Segment, got.Rationale)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	b := SignalBundle{
		Referrer:    "https://news.ycombinator.com",
		UTMCampaign: "pro-tools-launch",
		DeviceClass: DeviceDesktop,
		ObservedAt:  time.Date(2025, 11, 19, 8, 15, 0, 0, time.UTC),
		SearchTerms: []string{"comparison"},
	}
	first := Classify(b)
	for i := 0; i < 20; i++ {
		again := Classify(b)
		if again.Segment != first.Segment || again.Confidence != first.Confidence {
			t.Fatalf("run %d: classification drifted: %+v vs %+v", i, again, first)
		}
	}
}

func TestDeviceClassFromUserAgent(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want DeviceClass
	}{
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", DeviceMobile},
		{"android", "Mozilla/5.0 (Linux; Android 14; Pixel 8)", DeviceMobile},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)", DeviceTablet},
		{"desktop", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", DeviceDesktop},
		{"empty", "", DeviceClass("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeviceClassFromUserAgent(tt.ua); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBundleFromRequest(t *testing.T) {
	at := time.Date(2025, 11, 19, 9, 0, 0, 0, time.UTC)
	b := BundleFromRequest(
		"https://www.linkedin.com/feed",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		"utm_campaign=pro-tools-q3&utm_source=newsletter&utm_segment=professional&q=API+integration&cart=2",
		at,
	)
	if b.DeviceClass != DeviceDesktop {
		t.Errorf("device: got %q", b.DeviceClass)
	}
	if b.UTMCampaign != "pro-tools-q3" || b.UTMSegment != "professional" {
		t.Errorf("utm: got %+v", b)
	}
	if len(b.SearchTerms) != 2 || b.SearchTerms[0] != "api" {
		t.Errorf("search terms: got %v", b.SearchTerms)
	}
	if b.CartSize != 2 {
		t.Errorf("cart: got %d", b.CartSize)
	}

	// Malformed query drops campaign signal without failing.
	b2 := BundleFromRequest("", "", "%zz=1", at)
	if b2.UTMCampaign != "" {
		t.Errorf("expected empty campaign, got %q", b2.UTMCampaign)
	}
}
