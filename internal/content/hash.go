package content

// #region imports
import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// #endregion imports

// #region hash

// Hash computes the content-addressed variant identifier for a section.
// Content is decoded and re-encoded so that JSON object keys end up in
// sorted order; two sections with the same field values hash identically
// no matter how the object was constructed. The slot name is part of the
// digest: identical copy in different slots is still two distinct
// variants. The identifier is used as a database key component, hence a
// cryptographic digest.
func Hash(s Section) (string, error) {
	if len(s.Content) == 0 {
		return "", fmt.Errorf("hash section %q: empty content", s.Slot)
	}

	var decoded any
	if err := json.Unmarshal(s.Content, &decoded); err != nil {
		return "", fmt.Errorf("hash section %q: %w", s.Slot, err)
	}

	// encoding/json writes map keys in sorted order, which is the whole
	// canonicalization step.
	canonical, err := json.Marshal(map[string]any{
		"slot":    s.Slot,
		"content": decoded,
	})
	if err != nil {
		return "", fmt.Errorf("hash section %q: %w", s.Slot, err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// #endregion hash
