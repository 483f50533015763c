package domain

type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
)

// Match is one search hit: a file or directory whose base name contains
// the keyword. Owned by the result list once emitted, never mutated.
type Match struct {
	Path string
	Kind EntryKind
}
