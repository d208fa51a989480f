// Package weather implements the per-frame simulation that drives the ambient
// background: a grid of weather cells evolved by a chain of composable passes.
// It contains no terminal or Bubble Tea dependencies; the platform layer reads
// the grid and maps cells to glyphs.
package weather

// Kind is the visual state held by a weather cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindFast
	KindNormal
	KindSlow
	KindTail
)

// IsDropping reports whether the kind is a moving head (falls with gravity).
func (k Kind) IsDropping() bool {
	return k == KindFast || k == KindNormal || k == KindSlow
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindFast:
		return "Fast"
	case KindNormal:
		return "Normal"
	case KindSlow:
		return "Slow"
	case KindTail:
		return "Tail"
	default:
		return "Unknown"
	}
}

// Entry is a kind plus its tail-length payload.
// Len is 0 for heads and 1..TailCap for tail markers.
type Entry struct {
	Kind Kind
	Len  uint8
}

// E is shorthand for a zero-length entry of the given kind.
func E(k Kind) Entry {
	return Entry{Kind: k}
}
