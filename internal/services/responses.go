package services

import "time"

type SearchResult struct {
	Keyword  string
	Matches  int
	Visited  int64
	Duration time.Duration
}

type ActionResult struct {
	Type    ActionType
	Message string
}
