package strategist

import (
	"context"
	"encoding/json"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/zhang-liz/buildstory/internal/bandit"
	"github.com/zhang-liz/buildstory/internal/content"
	"github.com/zhang-liz/buildstory/internal/store"
)

func tempStrategist(t *testing.T) (*Strategist, *store.Store) {
	t.Helper()
	st, err := store.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	sampler := bandit.NewSampler(rand.New(rand.NewSource(99)))
	return NewStrategist(st, sampler), st
}

func sec(slot, headline string) content.Section {
	return content.Section{Slot: slot, Content: json.RawMessage(`{"headline":"` + headline + `"}`)}
}

func TestChooseOptimalVariant_Empty(t *testing.T) {
	s, _ := tempStrategist(t)
	if _, err := s.ChooseOptimalVariant(context.Background(), "page-1", "hero", nil); err != ErrNoCandidates {
		t.Errorf("expected ErrNoCandidates, got %v", err)
	}
}

func TestChooseOptimalVariant_SingleCandidate(t *testing.T) {
	s, st := tempStrategist(t)
	ctx := context.Background()
	only := sec("hero", "Ship faster")

	choice, err := s.ChooseOptimalVariant(ctx, "page-1", "hero", []content.Section{only})
	if err != nil {
		t.Fatalf("ChooseOptimalVariant: %v", err)
	}
	if choice.PosteriorMean != 1.0 {
		t.Errorf("posterior mean: got %v, want 1.0", choice.PosteriorMean)
	}
	if choice.IsNew {
		t.Error("single-candidate choice must not report IsNew")
	}

	// Arm materialized at the prior.
	rec, ok, err := st.GetArmState(ctx, "page-1", "hero", choice.VariantID)
	if err != nil || !ok {
		t.Fatalf("arm not materialized: ok=%v err=%v", ok, err)
	}
	if rec.Alpha != 1 || rec.Beta != 1 {
		t.Errorf("got (%d,%d), want (1,1)", rec.Alpha, rec.Beta)
	}
}

func TestChooseOptimalVariant_MultiCandidate(t *testing.T) {
	s, st := tempStrategist(t)
	ctx := context.Background()
	candidates := []content.Section{
		sec("hero", "Ship faster"),
		sec("hero", "Build with confidence"),
		sec("hero", "Your team, unblocked"),
	}

	choice, err := s.ChooseOptimalVariant(ctx, "page-1", "hero", candidates)
	if err != nil {
		t.Fatalf("ChooseOptimalVariant: %v", err)
	}
	if !choice.IsNew {
		t.Error("all arms at prior: winner must report IsNew")
	}
	if choice.PosteriorMean != 0.5 {
		t.Errorf("posterior mean at prior: got %v, want 0.5", choice.PosteriorMean)
	}
	if choice.Section.Slot != "hero" {
		t.Errorf("wrong section: %+v", choice.Section)
	}

	// Every candidate arm exists now.
	arms, err := st.ListArmStates(ctx, "page-1", "hero")
	if err != nil {
		t.Fatal(err)
	}
	if len(arms) != 3 {
		t.Errorf("got %d arms, want 3", len(arms))
	}

	// Selection event emitted for the winner.
	n, err := st.CountEvents(ctx, "page-1", "hero", choice.VariantID, store.EventSelected, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("selected events: got %d, want 1", n)
	}
}

func TestChooseOptimalVariant_TrainedArmStopsBeingNew(t *testing.T) {
	s, _ := tempStrategist(t)
	ctx := context.Background()
	a, b := sec("hero", "A"), sec("hero", "B")

	idA, err := content.Hash(a)
	if err != nil {
		t.Fatal(err)
	}
	idB, err := content.Hash(b)
	if err != nil {
		t.Fatal(err)
	}
	// Train both arms so neither is at the prior.
	for _, id := range []string{idA, idB} {
		if _, err := s.RecordConversion(ctx, "page-1", "hero", id, 1); err != nil {
			t.Fatal(err)
		}
	}

	choice, err := s.ChooseOptimalVariant(ctx, "page-1", "hero", []content.Section{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if choice.IsNew {
		t.Error("trained winner should not be IsNew")
	}
	// Both arms are (2,1): posterior mean 2/3.
	if choice.PosteriorMean < 0.66 || choice.PosteriorMean > 0.67 {
		t.Errorf("posterior mean: got %v, want 2/3", choice.PosteriorMean)
	}
}

func TestChooseOptimalVariant_MalformedCandidate(t *testing.T) {
	s, _ := tempStrategist(t)
	bad := content.Section{Slot: "hero", Content: json.RawMessage(`{"broken":`)}
	_, err := s.ChooseOptimalVariant(context.Background(), "page-1", "hero", []content.Section{bad})
	if err == nil {
		t.Error("expected hash error")
	}
}

func TestRecordConversion(t *testing.T) {
	s, st := tempStrategist(t)
	ctx := context.Background()

	// Arm never seen before: created at prior, then rewarded.
	rec, err := s.RecordConversion(ctx, "page-1", "hero", "unseen-variant", 1)
	if err != nil {
		t.Fatalf("RecordConversion: %v", err)
	}
	if rec.Alpha != 2 || rec.Beta != 1 {
		t.Errorf("got (%d,%d), want (2,1)", rec.Alpha, rec.Beta)
	}

	n, err := st.CountEvents(ctx, "page-1", "hero", "unseen-variant", store.EventConversion, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("conversion events: got %d, want 1", n)
	}

	if _, err := s.RecordConversion(ctx, "page-1", "hero", "unseen-variant", 7); err != ErrBadReward {
		t.Errorf("expected ErrBadReward, got %v", err)
	}
}

func TestDeployVariant(t *testing.T) {
	s, st := tempStrategist(t)
	ctx := context.Background()

	id, err := s.DeployVariant(ctx, "page-1", "hero", sec("hero", "New angle"))
	if err != nil {
		t.Fatalf("DeployVariant: %v", err)
	}
	rec, ok, err := st.GetArmState(ctx, "page-1", "hero", id)
	if err != nil || !ok {
		t.Fatalf("arm missing: ok=%v err=%v", ok, err)
	}
	if rec.Alpha != 1 || rec.Beta != 1 {
		t.Errorf("deploy mutated counters: (%d,%d)", rec.Alpha, rec.Beta)
	}

	n, _ := st.CountEvents(ctx, "page-1", "hero", id, store.EventDeployed, time.Time{})
	if n != 1 {
		t.Errorf("deployed events: got %d, want 1", n)
	}
}

func TestProcessTimeouts_PenalizesSilentArms(t *testing.T) {
	s, st := tempStrategist(t)
	ctx := context.Background()

	idActive, err := s.DeployVariant(ctx, "page-1", "hero", sec("hero", "active"))
	if err != nil {
		t.Fatal(err)
	}
	idSilent, err := s.DeployVariant(ctx, "page-1", "hero", sec("hero", "silent"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordConversion(ctx, "page-1", "hero", idActive, 1); err != nil {
		t.Fatal(err)
	}

	penalized, err := s.ProcessTimeouts(ctx, "page-1", 30*time.Minute)
	if err != nil {
		t.Fatalf("ProcessTimeouts: %v", err)
	}
	if penalized != 1 {
		t.Errorf("penalized: got %d, want 1", penalized)
	}

	silent, _, err := st.GetArmState(ctx, "page-1", "hero", idSilent)
	if err != nil {
		t.Fatal(err)
	}
	if silent.Alpha != 1 || silent.Beta != 2 {
		t.Errorf("silent arm: got (%d,%d), want (1,2)", silent.Alpha, silent.Beta)
	}

	active, _, err := st.GetArmState(ctx, "page-1", "hero", idActive)
	if err != nil {
		t.Fatal(err)
	}
	if active.Beta != 1 {
		t.Errorf("converting arm penalized: beta=%d", active.Beta)
	}
}

func TestProcessTimeouts_IdempotentWithinBucket(t *testing.T) {
	s, st := tempStrategist(t)
	ctx := context.Background()

	id, err := s.DeployVariant(ctx, "page-1", "hero", sec("hero", "quiet"))
	if err != nil {
		t.Fatal(err)
	}

	// Pin the clock so both sweeps land in one window bucket.
	fixed := time.Date(2025, 11, 20, 12, 10, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	for i := 0; i < 3; i++ {
		if _, err := s.ProcessTimeouts(ctx, "page-1", 30*time.Minute); err != nil {
			t.Fatalf("sweep %d: %v", i, err)
		}
	}

	rec, _, err := st.GetArmState(ctx, "page-1", "hero", id)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Beta != 2 {
		t.Errorf("beta: got %d, want 2 (one penalty despite repeated sweeps)", rec.Beta)
	}

	// Next bucket penalizes again.
	s.now = func() time.Time { return fixed.Add(31 * time.Minute) }
	if _, err := s.ProcessTimeouts(ctx, "page-1", 30*time.Minute); err != nil {
		t.Fatal(err)
	}
	rec, _, _ = st.GetArmState(ctx, "page-1", "hero", id)
	if rec.Beta != 3 {
		t.Errorf("beta after next bucket: got %d, want 3", rec.Beta)
	}
}

func TestSectionPerformance(t *testing.T) {
	s, _ := tempStrategist(t)
	ctx := context.Background()

	idA, err := s.DeployVariant(ctx, "page-1", "hero", sec("hero", "A"))
	if err != nil {
		t.Fatal(err)
	}
	idB, err := s.DeployVariant(ctx, "page-1", "hero", sec("hero", "B"))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := s.RecordConversion(ctx, "page-1", "hero", idA, 1); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.RecordConversion(ctx, "page-1", "hero", idB, 0); err != nil {
		t.Fatal(err)
	}

	report, err := s.SectionPerformance(ctx, "page-1", "hero")
	if err != nil {
		t.Fatalf("SectionPerformance: %v", err)
	}
	if len(report.Arms) != 2 {
		t.Fatalf("arms: got %d, want 2", len(report.Arms))
	}
	if report.BestVariant != idA {
		t.Errorf("best: got %.12s, want %.12s", report.BestVariant, idA)
	}
	for _, arm := range report.Arms {
		if arm.Variant == idA {
			if arm.ConversionRate != 0.8 { // (1+3)/(4+1)
				t.Errorf("rate A: got %v, want 0.8", arm.ConversionRate)
			}
			if arm.Trials != 3 {
				t.Errorf("trials A: got %d, want 3", arm.Trials)
			}
		}
		if arm.IntervalLow < 0 || arm.IntervalHigh > 1 || arm.IntervalLow > arm.IntervalHigh {
			t.Errorf("interval malformed: %+v", arm)
		}
	}
}

func TestResetSectionBandit(t *testing.T) {
	s, st := tempStrategist(t)
	ctx := context.Background()

	id, err := s.DeployVariant(ctx, "page-1", "hero", sec("hero", "A"))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if _, err := s.RecordConversion(ctx, "page-1", "hero", id, i%2); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.ResetSectionBandit(ctx, "page-1", "hero"); err != nil {
		t.Fatalf("ResetSectionBandit: %v", err)
	}
	rec, _, err := st.GetArmState(ctx, "page-1", "hero", id)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Alpha != 1 || rec.Beta != 1 {
		t.Errorf("got (%d,%d), want (1,1)", rec.Alpha, rec.Beta)
	}

	evs, err := st.ListEvents(ctx, "page-1", []string{store.EventReset})
	if err != nil {
		t.Fatal(err)
	}
	if len(evs) != 1 {
		t.Errorf("reset events: got %d, want 1", len(evs))
	}
}
