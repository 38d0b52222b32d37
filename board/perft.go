package board

// Perft counts the leaf nodes of the legal move tree at the given depth.
// Reference values are a combined regression check on the generator and
// the legality filter.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	mvs := b.GenerateMoves()
	if depth == 1 {
		return uint64(len(mvs))
	}
	var nodes uint64
	for _, mv := range mvs {
		bb := b.Clone()
		bb.Apply(mv)
		nodes += Perft(bb, depth-1)
	}
	return nodes
}

// PerftDivide reports the node count below each root move, keyed by UCI
// notation. Useful when chasing a generator discrepancy.
func PerftDivide(b *Board, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	for _, mv := range b.GenerateMoves() {
		bb := b.Clone()
		bb.Apply(mv)
		div[mv.UCI()] = Perft(bb, depth-1)
	}
	return div
}
