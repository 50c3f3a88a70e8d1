// Package game implements the monopoly rules engine: board topology,
// property ownership and development, player ledgers, the two card decks
// and the turn state machine with jail, doubles and bankruptcy handling.
//
// The engine is deterministic: dice rolls and deck shuffles come from an
// injectable Source, so a seeded game replays turn by turn. One Game owns
// all of its Player and Property state and is single-threaded; hosts that
// run many games serialize each instance (see platform/session).
package game
