package strategist

// #region imports
import (
	"context"
	"time"

	"github.com/zhang-liz/buildstory/internal/content"
	"github.com/zhang-liz/buildstory/internal/store"
)

// #endregion imports

// #region store-interface

// Store is the persistence the strategist requires. *store.Store satisfies
// it; tests substitute failing or scripted implementations.
type Store interface {
	GetArmState(ctx context.Context, scope, slot, variant string) (store.ArmState, bool, error)
	EnsureArmState(ctx context.Context, scope, slot, variant string) (store.ArmState, error)
	ApplyReward(ctx context.Context, scope, slot, variant string, reward int) (store.ArmState, error)
	UpsertArmState(ctx context.Context, rec store.ArmState) error
	ListArmStates(ctx context.Context, scope, slot string) ([]store.ArmState, error)
	AppendEvent(ctx context.Context, ev store.Event) error
	CountEvents(ctx context.Context, scope, slot, variant, kind string, since time.Time) (int, error)
}

// #endregion store-interface

// #region choice

// Choice is the outcome of one per-slot variant selection.
// PosteriorMean is the winning arm's alpha/(alpha+beta), an estimated
// conversion rate, unrelated to classifier confidence.
type Choice struct {
	Section       content.Section
	VariantID     string
	PosteriorMean float64
	IsNew         bool
}

// #endregion choice

// #region performance

// ArmPerformance summarizes one arm for reporting.
type ArmPerformance struct {
	Variant        string
	Alpha          int
	Beta           int
	ConversionRate float64
	IntervalLow    float64
	IntervalHigh   float64
	Trials         int
}

// PerformanceReport covers every arm tracked under one slot.
type PerformanceReport struct {
	Scope       string
	Slot        string
	Arms        []ArmPerformance
	BestVariant string
}

// #endregion performance
