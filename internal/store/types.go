package store

// #region imports
import "time"

// #endregion imports

// #region arm-state

// ArmState is the persisted Beta posterior for one
// (scope, slot, variant) experiment arm. Alpha and Beta never drop
// below 1; (1, 1) is the uniform prior.
type ArmState struct {
	Scope     string
	Slot      string
	Variant   string
	Alpha     int
	Beta      int
	UpdatedAt time.Time
}

// #endregion arm-state

// #region event

// Event kinds written by the strategist and the serving layer.
const (
	EventSelected       = "selected"
	EventDeployed       = "deployed"
	EventConversion     = "conversion"
	EventTimeoutPenalty = "timeout_penalty"
	EventReset          = "reset"
)

// Event is an append-only record of one observed interaction or decision.
// Variant may be empty for page-level events.
type Event struct {
	ID        string
	Scope     string
	Segment   string
	Slot      string
	Variant   string
	Kind      string
	Metadata  map[string]string
	CreatedAt time.Time
}

// #endregion event
