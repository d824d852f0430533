package models

// keyed is implemented by stitch types whose Compare defines the ordering key
// a StitchSet indexes by. The key deliberately ignores the palette index, so
// a reference stitch with a zero palindex still finds the stored element.
type keyed[T any] interface {
	comparable
	Compare(T) int
}

// StitchSet is an ordered set of stitches of one kind. Elements are kept
// sorted by their ordering key; lookups are binary searches.
type StitchSet[T keyed[T]] struct {
	items []T
}

// NewStitchSet builds a set from a slice. Elements with duplicate keys
// replace earlier ones.
func NewStitchSet[T keyed[T]](items []T) StitchSet[T] {
	var s StitchSet[T]
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// search returns the insertion index for v and whether an element with the
// same key is already stored there.
func (s *StitchSet[T]) search(v T) (int, bool) {
	lo, hi := 0, len(s.items)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.items[mid].Compare(v) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(s.items) && s.items[lo].Compare(v) == 0
}

// Len returns the number of stitches in the set.
func (s *StitchSet[T]) Len() int { return len(s.items) }

// Contains reports whether the set holds a stitch structurally equal to v.
// The lookup is by key, but the stored element is compared field by field,
// so a stitch with the same position and a different palette index does not
// count as contained.
func (s *StitchSet[T]) Contains(v T) bool {
	i, ok := s.search(v)
	return ok && s.items[i] == v
}

// Get fetches the stored element with the same ordering key as v.
func (s *StitchSet[T]) Get(v T) (T, bool) {
	if i, ok := s.search(v); ok {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Insert adds a stitch to the set, replacing and returning any existing
// element with the same ordering key.
func (s *StitchSet[T]) Insert(v T) (T, bool) {
	i, ok := s.search(v)
	if ok {
		replaced := s.items[i]
		s.items[i] = v
		return replaced, true
	}
	var zero T
	s.items = append(s.items, zero)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = v
	return zero, false
}

// Take removes and returns the stored element with the same ordering key as
// v. The returned value carries the full stored state, not the reference's.
func (s *StitchSet[T]) Take(v T) (T, bool) {
	i, ok := s.search(v)
	if !ok {
		var zero T
		return zero, false
	}
	taken := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return taken, true
}

// Extend inserts every stitch from the slice.
func (s *StitchSet[T]) Extend(items []T) {
	for _, item := range items {
		s.Insert(item)
	}
}

// All returns the stitches in key order. The slice is a copy.
func (s *StitchSet[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// retain keeps only the stitches the predicate accepts and returns the
// rejected ones in key order.
func (s *StitchSet[T]) retain(keep func(T) bool) []T {
	var rejected []T
	kept := s.items[:0]
	for _, item := range s.items {
		if keep(item) {
			kept = append(kept, item)
		} else {
			rejected = append(rejected, item)
		}
	}
	s.items = kept
	return rejected
}

// palindexed is implemented by every stitch type that references the palette.
type palindexed[T any] interface {
	keyed[T]
	PalIndex() uint32
	WithPalIndex(uint32) T
}

// RemoveByPalindexes removes every stitch whose palette index is in the
// sorted set palindexes and rewrites the survivors' indices down so they
// stay consistent with the shrunk palette. The removed stitches are returned
// in key order, still carrying their original indices.
func RemoveByPalindexes[T palindexed[T]](s *StitchSet[T], palindexes []uint32) []T {
	removed := s.retain(func(v T) bool { return !containsIndex(palindexes, v.PalIndex()) })
	for i, v := range s.items {
		shift := uint32(0)
		for _, palindex := range palindexes {
			if palindex < v.PalIndex() {
				shift++
			}
		}
		if shift > 0 {
			s.items[i] = v.WithPalIndex(v.PalIndex() - shift)
		}
	}
	return removed
}

// RestoreByPalindexes is the inverse of RemoveByPalindexes: it rewrites the
// surviving stitches' indices back up, skipping the slots the removed
// entries are about to reoccupy, and merges the removed stitches back in.
// palsize is the palette size after the restore.
func RestoreByPalindexes[T palindexed[T]](s *StitchSet[T], removed []T, palindexes []uint32, palsize uint32) {
	mapping := make(map[uint32]uint32, palsize)
	counter := uint32(0)
	for palindex := uint32(0); palindex < palsize; palindex++ {
		for containsIndex(palindexes, palindex+counter) {
			counter++
		}
		mapping[palindex] = palindex + counter
	}
	for i, v := range s.items {
		s.items[i] = v.WithPalIndex(mapping[v.PalIndex()])
	}
	s.Extend(removed)
}

func containsIndex(palindexes []uint32, palindex uint32) bool {
	for _, p := range palindexes {
		if p == palindex {
			return true
		}
	}
	return false
}
