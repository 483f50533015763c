package ui

import "seekfs/internal/services"

// run stamps tie a message to the search that produced it; messages from a
// superseded run are dropped.
type searchResultMsg struct {
	run    int
	result services.SearchResult
	err    error
}

type searchEventMsg struct {
	run   int
	event services.SearchEvent
}

type actionResultMsg struct {
	result services.ActionResult
	err    error
}
