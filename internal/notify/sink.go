// Package notify delivers engine events (achievement grants, rank-ups,
// level-ups) to the player. Delivery is fire-and-forget: the engine
// publishes after commit and never blocks on the sink.
package notify

import "github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"

type Sink interface {
	Publish(ev domain.Event)
}

// Noop discards every event; used in tests and when no push channel is
// wired up.
type Noop struct{}

func (Noop) Publish(domain.Event) {}
