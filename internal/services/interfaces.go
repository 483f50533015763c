package services

import "context"

type Searcher interface {
	Search(ctx context.Context, req SearchRequest) (SearchResult, error)
}

type Actions interface {
	Execute(ctx context.Context, req ActionRequest) (ActionResult, error)
}
