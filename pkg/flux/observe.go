package flux

// PassStats summarizes one elimination pass of the Reducer.
type PassStats struct {
	Pass    int
	Removed int
	Fixed   int
	Active  int
}

// Observer receives the statistics of each elimination pass. Implementations
// must not retain references into reducer state.
type Observer interface {
	ObservePass(PassStats)
}
