package strategist

// #region imports
import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/zhang-liz/buildstory/internal/bandit"
	"github.com/zhang-liz/buildstory/internal/content"
	"github.com/zhang-liz/buildstory/internal/store"
)

// #endregion imports

// #region errors

// ErrNoCandidates is returned when selection is asked to choose from an
// empty candidate list.
var ErrNoCandidates = fmt.Errorf("strategist: no candidate sections")

// ErrBadReward is returned for rewards outside {0, 1}.
var ErrBadReward = fmt.Errorf("strategist: reward must be 0 or 1")

// #endregion errors

// #region strategist-struct

// Strategist runs per-slot Thompson Sampling experiments against the
// backing store. It holds no arm state in process; every decision
// round-trips through the store so multiple instances can share one
// database.
type Strategist struct {
	store   Store
	sampler *bandit.Sampler
	now     func() time.Time
}

// NewStrategist creates a strategist. A nil sampler gets a time-seeded,
// lock-guarded one safe for concurrent slot resolution.
func NewStrategist(st Store, sampler *bandit.Sampler) *Strategist {
	if sampler == nil {
		src := bandit.NewLockedSource(rand.New(rand.NewSource(time.Now().UnixNano())))
		sampler = bandit.NewSampler(src)
	}
	return &Strategist{store: st, sampler: sampler, now: time.Now}
}

// #endregion strategist-struct

// #region choose

// ChooseOptimalVariant picks one section for a slot from the candidate
// list. Arms are materialized lazily at the uniform prior before any
// sampling. A single candidate is returned directly with no draw, so the
// IsNew signal stays meaningful for genuinely contested slots.
func (s *Strategist) ChooseOptimalVariant(ctx context.Context, scope, slot string, candidates []content.Section) (Choice, error) {
	if len(candidates) == 0 {
		return Choice{}, ErrNoCandidates
	}

	ids := make([]string, len(candidates))
	for i, sec := range candidates {
		id, err := content.Hash(sec)
		if err != nil {
			return Choice{}, err
		}
		ids[i] = id
	}

	if len(candidates) == 1 {
		rec, err := s.store.EnsureArmState(ctx, scope, slot, ids[0])
		if err != nil {
			return Choice{}, err
		}
		choice := Choice{Section: candidates[0], VariantID: ids[0], PosteriorMean: 1.0, IsNew: false}
		s.emitSelection(ctx, scope, slot, choice, bandit.State{Alpha: rec.Alpha, Beta: rec.Beta}, 1)
		return choice, nil
	}

	arms := make([]bandit.Arm, len(candidates))
	states := make([]store.ArmState, len(candidates))
	for i, id := range ids {
		rec, err := s.store.EnsureArmState(ctx, scope, slot, id)
		if err != nil {
			return Choice{}, err
		}
		states[i] = rec
		arms[i] = bandit.Arm{ID: id, Alpha: rec.Alpha, Beta: rec.Beta}
	}

	winner, err := s.sampler.ChooseArm(arms)
	if err != nil {
		return Choice{}, err
	}

	idx := 0
	for i, id := range ids {
		if id == winner {
			idx = i
			break
		}
	}
	winState := bandit.State{Alpha: states[idx].Alpha, Beta: states[idx].Beta}

	choice := Choice{
		Section:       candidates[idx],
		VariantID:     winner,
		PosteriorMean: bandit.ConversionRate(winState.Alpha, winState.Beta),
		IsNew:         winState.IsPrior(),
	}
	s.emitSelection(ctx, scope, slot, choice, winState, len(candidates))

	log.Printf("[STRAT] choose: scope=%s slot=%s variant=%.12s mean=%.3f new=%v candidates=%d",
		scope, slot, winner, choice.PosteriorMean, choice.IsNew, len(candidates))
	return choice, nil
}

func (s *Strategist) emitSelection(ctx context.Context, scope, slot string, c Choice, state bandit.State, nCandidates int) {
	ev := store.Event{
		Scope:   scope,
		Slot:    slot,
		Variant: c.VariantID,
		Kind:    store.EventSelected,
		Metadata: map[string]string{
			"posterior_mean": fmt.Sprintf("%.4f", c.PosteriorMean),
			"alpha":          strconv.Itoa(state.Alpha),
			"beta":           strconv.Itoa(state.Beta),
			"candidates":     strconv.Itoa(nCandidates),
		},
	}
	// Selection events are observability, not correctness; losing one must
	// not fail the page.
	if err := s.store.AppendEvent(ctx, ev); err != nil {
		log.Printf("[STRAT] selection event dropped: %v", err)
	}
}

// #endregion choose

// #region record-conversion

// RecordConversion folds a binary reward into an arm. The arm is created
// at the prior if absent; a conversion can arrive for an arm this process
// has never initialized, e.g. after a restart.
func (s *Strategist) RecordConversion(ctx context.Context, scope, slot, variantID string, reward int) (store.ArmState, error) {
	if reward != 0 && reward != 1 {
		return store.ArmState{}, ErrBadReward
	}

	rec, err := s.store.ApplyReward(ctx, scope, slot, variantID, reward)
	if err != nil {
		return store.ArmState{}, err
	}

	ev := store.Event{
		Scope:    scope,
		Slot:     slot,
		Variant:  variantID,
		Kind:     store.EventConversion,
		Metadata: map[string]string{"reward": strconv.Itoa(reward)},
	}
	if err := s.store.AppendEvent(ctx, ev); err != nil {
		return store.ArmState{}, err
	}

	log.Printf("[STRAT] conversion: scope=%s slot=%s variant=%.12s reward=%d -> (%d,%d)",
		scope, slot, variantID, reward, rec.Alpha, rec.Beta)
	return rec, nil
}

// #endregion record-conversion

// #region deploy

// DeployVariant registers a section as a live experiment arm without
// touching its counters.
func (s *Strategist) DeployVariant(ctx context.Context, scope, slot string, sec content.Section) (string, error) {
	if err := sec.Validate(); err != nil {
		return "", err
	}
	id, err := content.Hash(sec)
	if err != nil {
		return "", err
	}
	if _, err := s.store.EnsureArmState(ctx, scope, slot, id); err != nil {
		return "", err
	}
	ev := store.Event{Scope: scope, Slot: slot, Variant: id, Kind: store.EventDeployed}
	if err := s.store.AppendEvent(ctx, ev); err != nil {
		return "", err
	}
	log.Printf("[STRAT] deploy: scope=%s slot=%s variant=%.12s", scope, slot, id)
	return id, nil
}

// #endregion deploy

// #region timeouts

// ProcessTimeouts applies an implicit negative reward to every arm in the
// scope with no conversion event inside the trailing window. Sweeps are
// idempotent per window-aligned bucket: an arm already penalized in the
// current bucket is skipped, so overlapping sweep invocations add at most
// one failure per arm per window. Returns the number of arms penalized.
func (s *Strategist) ProcessTimeouts(ctx context.Context, scope string, window time.Duration) (int, error) {
	if window <= 0 {
		return 0, fmt.Errorf("strategist: timeout window must be positive, got %v", window)
	}

	arms, err := s.store.ListArmStates(ctx, scope, "")
	if err != nil {
		return 0, err
	}

	now := s.now().UTC()
	since := now.Add(-window)
	bucket := now.Truncate(window)

	penalized := 0
	for _, arm := range arms {
		conversions, err := s.store.CountEvents(ctx, arm.Scope, arm.Slot, arm.Variant, store.EventConversion, since)
		if err != nil {
			return penalized, err
		}
		if conversions > 0 {
			continue
		}

		already, err := s.store.CountEvents(ctx, arm.Scope, arm.Slot, arm.Variant, store.EventTimeoutPenalty, bucket)
		if err != nil {
			return penalized, err
		}
		if already > 0 {
			continue
		}

		if _, err := s.store.ApplyReward(ctx, arm.Scope, arm.Slot, arm.Variant, 0); err != nil {
			return penalized, err
		}
		// Stamped with the sweep's clock so the bucket check above reads
		// the same timeline it writes.
		ev := store.Event{
			Scope:     arm.Scope,
			Slot:      arm.Slot,
			Variant:   arm.Variant,
			Kind:      store.EventTimeoutPenalty,
			CreatedAt: now,
			Metadata: map[string]string{
				"window": window.String(),
				"bucket": bucket.Format(time.RFC3339),
			},
		}
		if err := s.store.AppendEvent(ctx, ev); err != nil {
			return penalized, err
		}
		penalized++
	}

	if penalized > 0 {
		log.Printf("[STRAT] timeout sweep: scope=%s window=%v penalized=%d", scope, window, penalized)
	}
	return penalized, nil
}

// #endregion timeouts

// #region performance

// SectionPerformance reports every arm tracked under a slot with its
// conversion-rate estimate, 95% interval, and trial count, plus which arm
// currently estimates best.
func (s *Strategist) SectionPerformance(ctx context.Context, scope, slot string) (PerformanceReport, error) {
	arms, err := s.store.ListArmStates(ctx, scope, slot)
	if err != nil {
		return PerformanceReport{}, err
	}

	report := PerformanceReport{Scope: scope, Slot: slot}
	bestRate := -1.0
	for _, arm := range arms {
		rate := bandit.ConversionRate(arm.Alpha, arm.Beta)
		lo, hi := bandit.ConfidenceInterval(arm.Alpha, arm.Beta, 0.95)
		report.Arms = append(report.Arms, ArmPerformance{
			Variant:        arm.Variant,
			Alpha:          arm.Alpha,
			Beta:           arm.Beta,
			ConversionRate: rate,
			IntervalLow:    lo,
			IntervalHigh:   hi,
			Trials:         arm.Alpha + arm.Beta - 2,
		})
		if rate > bestRate {
			bestRate = rate
			report.BestVariant = arm.Variant
		}
	}
	return report, nil
}

// #endregion performance

// #region reset

// ResetSectionBandit puts every arm under the slot back to the uniform
// prior. Operational utility; the event log keeps the history.
func (s *Strategist) ResetSectionBandit(ctx context.Context, scope, slot string) error {
	arms, err := s.store.ListArmStates(ctx, scope, slot)
	if err != nil {
		return err
	}
	for _, arm := range arms {
		arm.Alpha, arm.Beta = 1, 1
		if err := s.store.UpsertArmState(ctx, arm); err != nil {
			return err
		}
	}
	ev := store.Event{Scope: scope, Slot: slot, Kind: store.EventReset,
		Metadata: map[string]string{"arms": strconv.Itoa(len(arms))}}
	if err := s.store.AppendEvent(ctx, ev); err != nil {
		return err
	}
	log.Printf("[STRAT] reset: scope=%s slot=%s arms=%d", scope, slot, len(arms))
	return nil
}

// #endregion reset
