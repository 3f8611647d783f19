package onoro

// CurrentPlayer and Finished adapt Board's domain-native accessors
// (PlayerColor, Winner) to the generic search.Game[Self, M, P] contract so
// *Board can be plugged into internal/search without that package needing
// to know about PlayerColor/Winner by name.
func (b *Board) CurrentPlayer() Color { return b.PlayerColor() }

// Finished adapts Winner to the name search.Game expects.
func (b *Board) Finished() (Color, bool) { return b.Winner() }

// CanonicalHash keys the shared search tables: two boards that are the same
// abstract position under symmetry (see Canonicalize) hash identically.
func (b *Board) CanonicalHash() uint64 { return Canonicalize(b).Hash }
