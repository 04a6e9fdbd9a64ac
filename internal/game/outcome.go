// Package game picks the settlement outcome for a round. The pick is
// biased toward the least-staked colour and number so the house pays
// out the minority side most of the time, with a random fallback that
// keeps the result from being fully predictable.
package game

import (
	"math/rand"

	"colour-trade/internal/model"

	"github.com/shopspring/decimal"
)

// Rand is the source of randomness the selector draws from. *rand.Rand
// satisfies it; tests substitute a fixed sequence.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

const numberBuckets = 10

type Selector struct {
	edgeProbability float64
	rng             Rand
}

// NewSelector builds a selector with the given house-edge probability.
// If rng is nil a time-seeded source is used.
func NewSelector(edgeProbability float64, rng Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Selector{edgeProbability: edgeProbability, rng: rng}
}

// SelectOutcome picks the settlement colour and number for the given
// round's bets. With probability edgeProbability (and at least one
// staked unit) it returns the least-staked colour and number among the
// buckets that received stakes, ties broken by colour enumeration
// order and ascending number. Otherwise both are drawn uniformly and
// independently. ok is false when there are no bets; such a round
// produces no outcome.
func (s *Selector) SelectOutcome(bets []*model.Bet) (model.Outcome, bool) {
	if len(bets) == 0 {
		return model.Outcome{}, false
	}

	colourStakes := make(map[model.Colour]decimal.Decimal, len(model.Colours))
	numberStakes := make(map[int]decimal.Decimal, numberBuckets)

	totalStaked := decimal.Zero
	for _, bet := range bets {
		colourStakes[bet.Colour] = colourStakes[bet.Colour].Add(bet.Amount)
		numberStakes[bet.Number] = numberStakes[bet.Number].Add(bet.Amount)
		totalStaked = totalStaked.Add(bet.Amount)
	}

	if s.rng.Float64() < s.edgeProbability && totalStaked.IsPositive() {
		return model.Outcome{
			Colour: leastStakedColour(colourStakes),
			Number: leastStakedNumber(numberStakes),
		}, true
	}

	return model.Outcome{
		Colour: model.Colours[s.rng.Intn(len(model.Colours))],
		Number: s.rng.Intn(numberBuckets),
	}, true
}

// leastStakedColour returns the staked colour with the minimum
// aggregate stake; the first minimum in enumeration order wins.
func leastStakedColour(stakes map[model.Colour]decimal.Decimal) model.Colour {
	var least model.Colour
	for _, c := range model.Colours {
		staked, ok := stakes[c]
		if !ok {
			continue
		}
		if least == "" || staked.LessThan(stakes[least]) {
			least = c
		}
	}
	return least
}

// leastStakedNumber returns the staked number with the minimum
// aggregate stake; the lowest number wins ties.
func leastStakedNumber(stakes map[int]decimal.Decimal) int {
	least := -1
	for n := 0; n < numberBuckets; n++ {
		staked, ok := stakes[n]
		if !ok {
			continue
		}
		if least < 0 || staked.LessThan(stakes[least]) {
			least = n
		}
	}
	return least
}
