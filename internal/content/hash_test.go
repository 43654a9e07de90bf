package content

import (
	"encoding/json"
	"testing"
)

func TestHash_KeyOrderIndependent(t *testing.T) {
	a := Section{Slot: "hero", Content: json.RawMessage(`{"headline":"Ship faster","cta":"Start now","tone":"direct"}`)}
	b := Section{Slot: "hero", Content: json.RawMessage(`{"tone":"direct","cta":"Start now","headline":"Ship faster"}`)}

	ha, err := Hash(a)
	if err != nil {
		t.Fatalf("Hash(a): %v", err)
	}
	hb, err := Hash(b)
	if err != nil {
		t.Fatalf("Hash(b): %v", err)
	}
	if ha != hb {
		t.Errorf("expected identical hashes, got %s vs %s", ha, hb)
	}
	if len(ha) != 64 {
		t.Errorf("expected 64-char hex digest, got %d chars", len(ha))
	}
}

func TestHash_DiffersOnAnyField(t *testing.T) {
	base := Section{Slot: "hero", Content: json.RawMessage(`{"headline":"Ship faster","cta":"Start now"}`)}
	variants := []Section{
		{Slot: "hero", Content: json.RawMessage(`{"headline":"Ship sooner","cta":"Start now"}`)},
		{Slot: "hero", Content: json.RawMessage(`{"headline":"Ship faster","cta":"Try free"}`)},
		{Slot: "hero", Content: json.RawMessage(`{"headline":"Ship faster"}`)},
		// Same copy in another slot is a different variant.
		{Slot: "banner", Content: json.RawMessage(`{"headline":"Ship faster","cta":"Start now"}`)},
	}

	hBase, err := Hash(base)
	if err != nil {
		t.Fatalf("Hash(base): %v", err)
	}
	for i, v := range variants {
		hv, err := Hash(v)
		if err != nil {
			t.Fatalf("Hash(variant %d): %v", i, err)
		}
		if hv == hBase {
			t.Errorf("variant %d: expected different hash", i)
		}
	}
}

func TestHash_NestedObjects(t *testing.T) {
	a := Section{Slot: "features", Content: json.RawMessage(`{"items":[{"title":"A","body":"x"},{"title":"B","body":"y"}]}`)}
	b := Section{Slot: "features", Content: json.RawMessage(`{"items":[{"body":"x","title":"A"},{"body":"y","title":"B"}]}`)}

	ha, _ := Hash(a)
	hb, _ := Hash(b)
	if ha != hb {
		t.Errorf("nested key order changed the hash")
	}

	// Array order is meaningful and must change the hash.
	c := Section{Slot: "features", Content: json.RawMessage(`{"items":[{"title":"B","body":"y"},{"title":"A","body":"x"}]}`)}
	hc, _ := Hash(c)
	if hc == ha {
		t.Errorf("array reorder should change the hash")
	}
}

func TestHash_MalformedContent(t *testing.T) {
	tests := []struct {
		name string
		sec  Section
	}{
		{"empty", Section{Slot: "hero"}},
		{"truncated", Section{Slot: "hero", Content: json.RawMessage(`{"headline":`)}},
		{"garbage", Section{Slot: "hero", Content: json.RawMessage(`not json`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Hash(tt.sec); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	ok := Section{Slot: "hero", Content: json.RawMessage(`{"headline":"x"}`)}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid section: %v", err)
	}
	bad := Section{Content: json.RawMessage(`{}`)}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for missing slot")
	}
}

func TestDocumentValidate(t *testing.T) {
	ok := Document{ID: "home", Sections: []Section{
		{Slot: "hero", Content: json.RawMessage(`{"headline":"x"}`)},
		{Slot: "cta", Content: json.RawMessage(`{"label":"go"}`)},
	}}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid document: %v", err)
	}

	empty := Document{ID: "home"}
	if err := empty.Validate(); err == nil {
		t.Error("expected error for empty document")
	}

	dup := Document{ID: "home", Sections: []Section{
		{Slot: "hero", Content: json.RawMessage(`{}`)},
		{Slot: "hero", Content: json.RawMessage(`{}`)},
	}}
	if err := dup.Validate(); err == nil {
		t.Error("expected error for repeated slot")
	}
}
