package game

import "golang.org/x/exp/rand"

// Dice produces six-sided rolls.
type Dice interface {
	Roll() int
}

type randomDice struct {
	rng *rand.Rand
}

func NewDice(rng *rand.Rand) Dice {
	return &randomDice{rng: rng}
}

func (d *randomDice) Roll() int {
	return d.rng.Intn(6) + 1
}

// FixedDice replays the given rolls in a loop.
type FixedDice struct {
	Rolls []int
	next  int
}

func (d *FixedDice) Roll() int {
	if len(d.Rolls) == 0 {
		panic("FixedDice has no rolls")
	}
	r := d.Rolls[d.next%len(d.Rolls)]
	d.next++
	return r
}
