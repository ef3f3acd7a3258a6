package engine

// Options configures a Searcher. Use NewOptions for the defaults.
type Options struct {
	// TTBits is log2 of the transposition table slot count.
	TTBits uint
	// QuiescenceDepth caps the capture sequence explored past the horizon.
	QuiescenceDepth int
	UseTT           bool
	OrderMoves      bool
	// Evaluator scores leaf positions. Nil selects the default evaluator.
	Evaluator Evaluator
}

func NewOptions() Options {
	return Options{
		TTBits:          20,
		QuiescenceDepth: 32,
		UseTT:           true,
		OrderMoves:      true,
	}
}
