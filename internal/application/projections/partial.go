package projections

// SourceFailure records one park whose fetch failed during an aggregate
// listing.
type SourceFailure struct {
	ParqueID string
	Err      error
}

// PartialResult carries the items that did load alongside the per-park
// failures, so a screen can render "3 de 5 parques carregados" instead of
// silently hiding the gap.
type PartialResult[T any] struct {
	Items    []T
	Failures []SourceFailure
}

// Complete reports whether every source settled successfully.
func (r PartialResult[T]) Complete() bool {
	return len(r.Failures) == 0
}
