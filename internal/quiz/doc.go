// Package quiz holds the session controller: the state machine that moves a
// player between the start, game and end screens and sequences card flips.
//
// The controller never touches a UI directly. It issues commands to a
// Surface and defers the second half of an advance through a Scheduler, so
// any host (HTML page, terminal, test double) can drive it.
package quiz
