// Package wheel implements the seeded random selection behind a spin.
//
// A seed fully determines the draw, so the same seed over the same ordered
// candidate list always selects the same winner, in any process. The
// presentational rotation is derived from the winner afterwards and never
// feeds back into the selection.
package wheel

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"math"
	mathrand "math/rand/v2"

	domainerrors "justchoose/internal/domain/errors"

	"github.com/pkg/errors"
)

const (
	// MinOptions is the smallest candidate list that can be spun.
	MinOptions = 2

	// SeedLength is the length of generated seeds.
	SeedLength = 8

	seedAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	fullTurn     = 2 * math.Pi
)

// State is the lifecycle of a single wheel.
type State int

const (
	StateIdle State = iota
	StateSpinning
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpinning:
		return "spinning"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// ErrNotIdle is returned when a spin is started on a wheel that has not been reset.
var ErrNotIdle = errors.New("wheel is not idle")

// Outcome binds a seed to the winner it produced.
type Outcome struct {
	Seed        string
	WinnerIndex int
	Count       int
}

// Wheel tracks Idle -> Spinning -> Settled for one spin at a time.
type Wheel struct {
	state   State
	outcome *Outcome
}

// New returns an idle wheel.
func New() *Wheel {
	return &Wheel{state: StateIdle}
}

// State returns the current state.
func (w *Wheel) State() State {
	return w.state
}

// Outcome returns the settled outcome, or nil before the wheel settles.
func (w *Wheel) Outcome() *Outcome {
	if w.state != StateSettled {
		return nil
	}
	out := *w.outcome

	return &out
}

// Spin selects a winner among count candidates. An empty seed is replaced by a generated one.
// The wheel must be idle; on a precondition failure it stays idle.
func (w *Wheel) Spin(count int, seed string) (Outcome, error) {
	if w.state != StateIdle {
		return Outcome{}, errors.Wrapf(ErrNotIdle, "state %s", w.state)
	}

	outcome, err := Select(count, seed)
	if err != nil {
		return Outcome{}, err
	}

	w.state = StateSpinning
	w.outcome = &outcome
	w.state = StateSettled

	return outcome, nil
}

// Reset returns a settled wheel to idle, discarding the previous outcome.
func (w *Wheel) Reset() {
	w.state = StateIdle
	w.outcome = nil
}

// Select is the stateless form of Spin.
func Select(count int, seed string) (Outcome, error) {
	if count < MinOptions {
		return Outcome{}, domainerrors.ErrInsufficientOptions.WithDetails("options must contain at least 2 places")
	}

	if seed == "" {
		generated, err := GenerateSeed()
		if err != nil {
			return Outcome{}, err
		}
		seed = generated
	}

	return Outcome{
		Seed:        seed,
		WinnerIndex: WinnerIndex(Draw(seed), count),
		Count:       count,
	}, nil
}

// Draw maps seed to a uniform value in [0, 1).
func Draw(seed string) float64 {
	sum := sha256.Sum256([]byte(seed))
	rng := mathrand.New(mathrand.NewPCG(
		binary.BigEndian.Uint64(sum[0:8]),
		binary.BigEndian.Uint64(sum[8:16]),
	))

	return rng.Float64()
}

// WinnerIndex maps a draw in [0, 1) uniformly onto [0, count).
func WinnerIndex(draw float64, count int) int {
	idx := int(math.Floor(draw * float64(count)))

	return min(max(idx, 0), count-1)
}

// GenerateSeed returns a random lower-case alphanumeric token.
func GenerateSeed() (string, error) {
	buf := make([]byte, SeedLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random seed")
	}

	out := make([]byte, SeedLength)
	for i, b := range buf {
		out[i] = seedAlphabet[int(b)%len(seedAlphabet)]
	}

	return string(out), nil
}

// Rotation returns the absolute wheel angle, in radians, that rests the center of the
// winning slice under the pointer at angle 0 after extraTurns full turns past prior.
func Rotation(winnerIndex, count int, prior float64, extraTurns int) float64 {
	if count <= 0 {
		return prior
	}

	slice := fullTurn / float64(count)
	center := float64(winnerIndex)*slice + slice/2

	// Orientation the wheel must end at, then the forward distance to it from prior.
	target := normalizeAngle(-center)
	delta := normalizeAngle(target - prior)

	return prior + float64(max(extraTurns, 0))*fullTurn + delta
}

// ExtraTurns picks a cosmetic turn count in [minTurns, maxTurns).
func ExtraTurns(minTurns, maxTurns int) int {
	if maxTurns <= minTurns {
		return minTurns
	}

	return minTurns + mathrand.IntN(maxTurns-minTurns)
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn {
		a -= fullTurn
	}

	return a
}
