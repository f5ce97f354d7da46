package memory

// sequence hands out integer identifiers for one collection. Ids start at 1
// and strictly increase for the lifetime of the process, so a deleted
// record's id is never reused and every new id is greater than every id
// ever stored in the collection.
//
// sequence is not safe for concurrent use on its own; callers hold the
// owning store's mutex across next().
type sequence struct {
	last int
}

// next returns the next identifier in the sequence.
func (s *sequence) next() int {
	s.last++
	return s.last
}
