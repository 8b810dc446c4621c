// Package dice implements roll specifications, their token grammar, and the
// simulation of dice rolls through caller-supplied value generators.
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidToken indicates a token does not decompose into a usable
// count/sides pair. Every parse failure wraps this sentinel.
var ErrInvalidToken = errors.New("invalid roll token")

// RollSpec describes a batch of dice to roll: Count dice with Sides sides
// each. A RollSpec is a plain value; it is never mutated by simulation and
// may be reused to produce any number of independent outcomes.
type RollSpec struct {
	Count uint
	Sides uint
}

// Generator produces a single die value for the given number of sides.
//
// Generators own the value range. The simulator records whatever a
// generator returns verbatim, which is what lets deterministic stand-ins
// replace OS randomness in tests.
type Generator func(sides uint) uint

// ParseSpec parses a roll token into a RollSpec.
//
// The token is split on the literal "d" and each fragment is parsed as an
// unsigned integer. Fragments that fail to parse are dropped before the
// remaining integers are counted:
//
//   - two integers, as in "2d6": RollSpec{Count: 2, Sides: 6}
//   - one integer, as in "6": RollSpec{Count: 1, Sides: 6}
//   - anything else ("abc", "2d6d1", ""): ErrInvalidToken
//
// Dropping unparseable fragments means "d6" parses as 1d6: the empty
// fragment before the "d" is discarded rather than failing the token.
// Callers that need stricter input handling should reject such tokens
// themselves before parsing.
//
// ParseSpec is a pure function of its input.
func ParseSpec(token string) (RollSpec, error) {
	fragments := strings.Split(token, "d")
	numbers := make([]uint, 0, len(fragments))
	for _, fragment := range fragments {
		value, err := strconv.ParseUint(fragment, 10, 32)
		if err != nil {
			continue
		}
		numbers = append(numbers, uint(value))
	}

	switch len(numbers) {
	case 2:
		return RollSpec{Count: numbers[0], Sides: numbers[1]}, nil
	case 1:
		return RollSpec{Count: 1, Sides: numbers[0]}, nil
	default:
		return RollSpec{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
}

// Result simulates the roll described by the spec.
//
// # Ordering
//
// The generator is invoked once per die, Count times in total, left to
// right. Values appear in the outcome in call order.
//
// # Validation
//
// Result performs none. Returned values are not clamped or range-checked;
// producing values in [1, Sides] is the generator's contract, not the
// simulator's. Result is total for any non-nil generator.
func (s RollSpec) Result(gen Generator) Outcome {
	values := make(Outcome, 0, s.Count)
	for i := uint(0); i < s.Count; i++ {
		values = append(values, gen(s.Sides))
	}
	return values
}
