package bandit

// #region imports
import (
	"fmt"
	"math"
	"sync"
)

// #endregion imports

// #region errors

// ErrNoArms is returned when arm selection is asked to choose from nothing.
var ErrNoArms = fmt.Errorf("bandit: no arms to choose from")

// ErrInvalidShape is returned for non-positive Beta shape parameters.
var ErrInvalidShape = fmt.Errorf("bandit: beta sample requires positive shapes")

// #endregion errors

// #region uniform-source

// UniformSource yields uniform draws on [0, 1). math/rand's *rand.Rand
// satisfies it; tests inject counting or scripted sources.
type UniformSource interface {
	Float64() float64
}

// LockedSource serializes draws from an underlying source so one Sampler
// can serve concurrent slot resolutions.
type LockedSource struct {
	mu  sync.Mutex
	src UniformSource
}

// NewLockedSource wraps src with a mutex.
func NewLockedSource(src UniformSource) *LockedSource {
	return &LockedSource{src: src}
}

func (l *LockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// #endregion uniform-source

// #region sampler

// Sampler draws Beta-distributed samples and runs Thompson Sampling over
// arm posteriors. Concurrency-safe exactly when its source is; wrap shared
// sources in a LockedSource.
type Sampler struct {
	src UniformSource
}

// NewSampler creates a sampler over the given uniform source.
func NewSampler(src UniformSource) *Sampler {
	return &Sampler{src: src}
}

// #endregion sampler

// #region sample-beta

// SampleBeta draws from Beta(alpha, beta) via the Gamma-ratio construction:
// X ~ Gamma(alpha, 1), Y ~ Gamma(beta, 1), X/(X+Y). Integer shapes only;
// each Gamma variate is the sum of shape unit-exponential draws.
func (s *Sampler) SampleBeta(alpha, beta int) (float64, error) {
	if alpha <= 0 || beta <= 0 {
		return 0, fmt.Errorf("%w: alpha=%d beta=%d", ErrInvalidShape, alpha, beta)
	}

	x := s.gamma(alpha)
	y := s.gamma(beta)

	// Underflow guard; the event itself has probability zero.
	if x+y == 0 {
		return 0.5, nil
	}
	return x / (x + y), nil
}

// gamma draws Gamma(shape, 1) as a sum of unit exponentials.
func (s *Sampler) gamma(shape int) float64 {
	var sum float64
	for i := 0; i < shape; i++ {
		// Float64 is in [0, 1); 1-u is in (0, 1], keeping the log finite.
		sum += -math.Log(1 - s.src.Float64())
	}
	return sum
}

// #endregion sample-beta

// #region arm

// Arm pairs a variant identifier with its Beta posterior counts.
type Arm struct {
	ID    string
	Alpha int
	Beta  int
}

// #endregion arm

// #region choose-arm

// ChooseArm runs one round of Thompson Sampling and returns the winning
// arm's ID. A single-arm list returns immediately without consuming
// randomness; callers rely on that to keep the untouched-prior signal
// meaningful. Ties go to the earlier arm in the input order.
func (s *Sampler) ChooseArm(arms []Arm) (string, error) {
	if len(arms) == 0 {
		return "", ErrNoArms
	}
	if len(arms) == 1 {
		return arms[0].ID, nil
	}

	best := arms[0].ID
	bestSample := -1.0
	for _, arm := range arms {
		sample, err := s.SampleBeta(arm.Alpha, arm.Beta)
		if err != nil {
			return "", err
		}
		if sample > bestSample {
			bestSample = sample
			best = arm.ID
		}
	}
	return best, nil
}

// #endregion choose-arm

// #region state

// State is one arm's posterior counts. Alpha and Beta are always >= 1;
// (1, 1) is the uniform prior of a freshly materialized arm.
type State struct {
	Alpha int
	Beta  int
}

// NewState returns the uniform prior.
func NewState() State {
	return State{Alpha: 1, Beta: 1}
}

// Update folds a binary reward into the posterior and returns the new
// state. Pure; the receiver is untouched.
func Update(s State, reward int) State {
	if reward > 0 {
		return State{Alpha: s.Alpha + 1, Beta: s.Beta}
	}
	return State{Alpha: s.Alpha, Beta: s.Beta + 1}
}

// Trials is the number of rewards folded into the posterior so far.
func (s State) Trials() int {
	return s.Alpha + s.Beta - 2
}

// IsPrior reports whether the arm has never received a reward.
func (s State) IsPrior() bool {
	return s.Alpha == 1 && s.Beta == 1
}

// #endregion state

// #region estimates

// ConversionRate is the posterior mean alpha/(alpha+beta).
func ConversionRate(alpha, beta int) float64 {
	return float64(alpha) / float64(alpha+beta)
}

// ConfidenceInterval returns a normal-approximation interval around the
// posterior mean, clipped to [0, 1]. Supported levels are 0.95 and 0.99;
// anything else falls back to the 95% z-score.
func ConfidenceInterval(alpha, beta int, level float64) (lo, hi float64) {
	z := 1.96
	if level == 0.99 {
		z = 2.58
	}

	mean := ConversionRate(alpha, beta)
	n := float64(alpha + beta)
	variance := float64(alpha) * float64(beta) / (n * n * (n + 1))
	margin := z * math.Sqrt(variance)

	lo = math.Max(0, mean-margin)
	hi = math.Min(1, mean+margin)
	return lo, hi
}

// #endregion estimates
