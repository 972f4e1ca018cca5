package nibble

import "iter"

// Compare returns -1, 0 or +1 the way cmp.Compare does.
func (n Nibble) Compare(rhs Nibble) int {
	switch {
	case n.v < rhs.v:
		return -1
	case n.v > rhs.v:
		return 1
	default:
		return 0
	}
}

func (n Nibble) Less(rhs Nibble) bool  { return n.v < rhs.v }
func (n Nibble) Equal(rhs Nibble) bool { return n.v == rhs.v }

// Next returns the successor, or false at Max.
func (n Nibble) Next() (Nibble, bool) {
	if n.v == MaxValue {
		return n, false
	}
	return Nibble{v: n.v + 1}, true
}

// Prev returns the predecessor, or false at Min.
func (n Nibble) Prev() (Nibble, bool) {
	if n.v == MinValue {
		return n, false
	}
	return Nibble{v: n.v - 1}, true
}

// Range yields lo through hi inclusive. It yields nothing when lo > hi.
func Range(lo, hi Nibble) iter.Seq[Nibble] {
	return func(yield func(Nibble) bool) {
		for v := int(lo.v); v <= int(hi.v); v++ {
			if !yield(Nibble{v: uint8(v)}) {
				return
			}
		}
	}
}

// All yields every nibble from Min to Max.
func All() iter.Seq[Nibble] {
	return Range(Min(), Max())
}
