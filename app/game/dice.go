package game

import "math/rand"

// Source is the randomness the engine consumes. *rand.Rand satisfies it;
// tests substitute scripted sources for deterministic replay.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Dice holds the last roll of two six-sided dice.
type Dice struct {
	src  Source
	die1 int
	die2 int
}

func NewDice(src Source) *Dice {
	return &Dice{src: src}
}

// NewSeededDice is a convenience for a self-contained seeded roller.
func NewSeededDice(seed int64) *Dice {
	return NewDice(rand.New(rand.NewSource(seed)))
}

// Roll draws both dice and returns their sum.
func (d *Dice) Roll() int {
	d.die1 = d.src.Intn(6) + 1
	d.die2 = d.src.Intn(6) + 1
	return d.die1 + d.die2
}

// Doubles reports whether the last roll showed the same value twice.
func (d *Dice) Doubles() bool {
	return d.die1 != 0 && d.die1 == d.die2
}

// Values returns the last two die faces.
func (d *Dice) Values() (int, int) {
	return d.die1, d.die2
}

// Total returns the sum of the last roll.
func (d *Dice) Total() int {
	return d.die1 + d.die2
}
