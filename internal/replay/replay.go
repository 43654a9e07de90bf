package replay

// #region imports
import (
	"context"
	"fmt"

	"github.com/zhang-liz/buildstory/internal/bandit"
	"github.com/zhang-liz/buildstory/internal/store"
)

// #endregion imports

// #region types

// Store is the read surface the rebuild needs.
type Store interface {
	ListEvents(ctx context.Context, scope string, kinds []string) ([]store.Event, error)
	ListArmStates(ctx context.Context, scope, slot string) ([]store.ArmState, error)
}

// Drift is one arm whose stored counters disagree with what the event log
// reproduces.
type Drift struct {
	Slot         string
	Variant      string
	StoredAlpha  int
	StoredBeta   int
	RebuiltAlpha int
	RebuiltBeta  int
}

// Report summarizes one rebuild pass over a scope.
type Report struct {
	Scope  string
	Arms   int
	Drifts []Drift
}

// #endregion types

// #region rebuild

// Rebuild replays a scope's conversion and timeout-penalty events from the
// append-only log and compares the reproduced posteriors against the
// stored arm counters. Drift normally means the log and counters diverged
// (e.g. a partial write); arms reset since their history was recorded will
// also report drift, since reset rewinds counters but keeps events.
func Rebuild(ctx context.Context, st Store, scope string) (Report, error) {
	events, err := st.ListEvents(ctx, scope, []string{store.EventConversion, store.EventTimeoutPenalty})
	if err != nil {
		return Report{}, fmt.Errorf("replay %s: %w", scope, err)
	}

	type armKey struct{ slot, variant string }
	rebuilt := make(map[armKey]bandit.State)

	for _, ev := range events {
		if ev.Slot == "" || ev.Variant == "" {
			continue // page-level events carry no arm
		}
		key := armKey{ev.Slot, ev.Variant}
		state, ok := rebuilt[key]
		if !ok {
			state = bandit.NewState()
		}
		rebuilt[key] = bandit.Update(state, eventReward(ev))
	}

	arms, err := st.ListArmStates(ctx, scope, "")
	if err != nil {
		return Report{}, fmt.Errorf("replay %s: %w", scope, err)
	}

	report := Report{Scope: scope, Arms: len(arms)}
	for _, arm := range arms {
		want, ok := rebuilt[armKey{arm.Slot, arm.Variant}]
		if !ok {
			want = bandit.NewState() // no rewards on record: expect the prior
		}
		if arm.Alpha != want.Alpha || arm.Beta != want.Beta {
			report.Drifts = append(report.Drifts, Drift{
				Slot:         arm.Slot,
				Variant:      arm.Variant,
				StoredAlpha:  arm.Alpha,
				StoredBeta:   arm.Beta,
				RebuiltAlpha: want.Alpha,
				RebuiltBeta:  want.Beta,
			})
		}
	}
	return report, nil
}

// eventReward maps an event back to the binary reward it carried.
// Conversions default to success when the metadata is missing; timeout
// penalties are always failures.
func eventReward(ev store.Event) int {
	if ev.Kind == store.EventTimeoutPenalty {
		return 0
	}
	if ev.Metadata["reward"] == "0" {
		return 0
	}
	return 1
}

// #endregion rebuild
