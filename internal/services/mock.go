package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"seekfs/internal/domain"
)

type MockSearcher struct {
	mu      sync.RWMutex
	events  chan SearchEvent
	Matches []domain.Match
}

func NewMockSearcher(matches []domain.Match) *MockSearcher {
	return &MockSearcher{Matches: matches}
}

func (searcher *MockSearcher) Events() <-chan SearchEvent {
	searcher.mu.RLock()
	defer searcher.mu.RUnlock()
	return searcher.events
}

func (searcher *MockSearcher) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	start := time.Now()
	events := make(chan SearchEvent, len(searcher.Matches)+1)
	searcher.mu.Lock()
	searcher.events = events
	searcher.mu.Unlock()
	defer close(events)

	for _, match := range searcher.Matches {
		select {
		case <-ctx.Done():
			return SearchResult{Keyword: req.Keyword}, ctx.Err()
		case events <- SearchEvent{Match: match, HasMatch: true}:
		}
	}
	return SearchResult{
		Keyword:  req.Keyword,
		Matches:  len(searcher.Matches),
		Visited:  int64(len(searcher.Matches)),
		Duration: time.Since(start),
	}, nil
}

type MockActions struct {
	Requests []ActionRequest
}

func NewMockActions() *MockActions {
	return &MockActions{}
}

func (actions *MockActions) Execute(ctx context.Context, req ActionRequest) (ActionResult, error) {
	actions.Requests = append(actions.Requests, req)
	return ActionResult{
		Type:    req.Type,
		Message: fmt.Sprintf("%s completed", req.Type),
	}, nil
}
