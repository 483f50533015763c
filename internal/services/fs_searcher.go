package services

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"seekfs/internal/domain"
)

// progressEvery is the visited-directory interval between progress events.
const progressEvery = 500

type FSSearcher struct {
	mu     sync.RWMutex
	events chan SearchEvent
}

func NewFSSearcher() *FSSearcher {
	return &FSSearcher{}
}

func (searcher *FSSearcher) Events() <-chan SearchEvent {
	searcher.mu.RLock()
	defer searcher.mu.RUnlock()
	return searcher.events
}

func (searcher *FSSearcher) setEvents(events chan SearchEvent) {
	searcher.mu.Lock()
	defer searcher.mu.Unlock()
	searcher.events = events
}

// Search walks every root and emits a SearchEvent for each entry whose base
// name contains the keyword, case-insensitive. The event channel is closed
// when the run ends, whether by exhaustion or cancellation; already-emitted
// matches stay valid either way.
func (searcher *FSSearcher) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	start := time.Now()
	keyword := strings.ToLower(strings.TrimSpace(req.Keyword))
	roots := NormalizeRoots(req.Roots)

	events := make(chan SearchEvent, 64)
	searcher.setEvents(events)
	defer close(events)

	var visited int64
	var matches int
	for _, root := range roots {
		walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable or vanished entries are skipped, never fatal.
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if entry.IsDir() {
				visited++
				if visited%progressEvery == 0 {
					eventNonBlocking(events, SearchEvent{Visited: visited})
				}
			}
			if strings.Contains(strings.ToLower(entry.Name()), keyword) {
				kind := domain.KindFile
				if entry.IsDir() {
					kind = domain.KindDir
				}
				if err := emitMatch(ctx, events, domain.Match{Path: path, Kind: kind}, visited); err != nil {
					return err
				}
				matches++
			}
			return nil
		})
		if walkErr != nil {
			return SearchResult{Keyword: req.Keyword, Matches: matches, Visited: visited, Duration: time.Since(start)}, walkErr
		}
	}

	return SearchResult{Keyword: req.Keyword, Matches: matches, Visited: visited, Duration: time.Since(start)}, nil
}

// emitMatch must not drop: it blocks on the channel until the consumer
// drains it or the run is cancelled.
func emitMatch(ctx context.Context, events chan<- SearchEvent, match domain.Match, visited int64) error {
	select {
	case events <- SearchEvent{Match: match, HasMatch: true, Visited: visited}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// eventNonBlocking drops progress ticks when the consumer lags. Progress is
// advisory only.
func eventNonBlocking(events chan<- SearchEvent, event SearchEvent) {
	select {
	case events <- event:
	default:
	}
}

// NormalizeRoots cleans each root to an absolute path, removes duplicates and
// removes roots nested under another requested root, so overlapping roots
// never produce duplicate matches.
func NormalizeRoots(roots []string) []string {
	cleaned := make([]string, 0, len(roots))
	for _, root := range roots {
		if strings.TrimSpace(root) == "" {
			continue
		}
		cleaned = append(cleaned, cleanPath(root))
	}

	kept := make([]string, 0, len(cleaned))
	for i, root := range cleaned {
		covered := false
		for j, other := range cleaned {
			if j == i {
				continue
			}
			if other == root {
				if j < i {
					covered = true
					break
				}
				continue
			}
			if isWithin(other, root) {
				covered = true
				break
			}
		}
		if !covered {
			kept = append(kept, root)
		}
	}
	return kept
}

func isWithin(root, path string) bool {
	if root == path {
		return true
	}
	rootWithSep := root + string(filepath.Separator)
	if root == string(filepath.Separator) {
		rootWithSep = root
	}
	return strings.HasPrefix(path, rootWithSep)
}

func cleanPath(path string) string {
	clean := filepath.Clean(path)
	abs, err := filepath.Abs(clean)
	if err != nil {
		return clean
	}
	return abs
}
