package services

import "seekfs/internal/domain"

// SearchEvent is one event from a running search. HasMatch marks a found
// entry; otherwise the event is a progress tick. Completed is only seen by
// consumers as the channel-closed sentinel.
type SearchEvent struct {
	Match     domain.Match
	HasMatch  bool
	Visited   int64
	Completed bool
}

type EventsProvider interface {
	Events() <-chan SearchEvent
}

type MountLister interface {
	External() []string
}
