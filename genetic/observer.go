package genetic

import "time"

// GenerationReport describes one finished generation. Stats are taken after
// local search and before selection, which is also when History is recorded.
type GenerationReport struct {
	Generation       int
	Stats            Stats
	LocalSearchSteps int
	Duration         time.Duration
}

// Observer receives Engine events on the goroutine that called Run.
// Implementations must not block for long; the loop waits for them.
type Observer interface {
	// OnPhase is called on entry to every phase. generation is the index of
	// the current generation; PhaseTerminated carries the generation count.
	OnPhase(generation int, phase Phase)

	// OnGeneration is called once per completed generation.
	OnGeneration(report GenerationReport)
}

// NopObserver ignores every event.
type NopObserver struct{}

// OnPhase implements Observer.
func (NopObserver) OnPhase(int, Phase) {}

// OnGeneration implements Observer.
func (NopObserver) OnGeneration(GenerationReport) {}

// MultiObserver fans every event out to its members in order.
type MultiObserver []Observer

// OnPhase implements Observer.
func (m MultiObserver) OnPhase(generation int, phase Phase) {
	for _, o := range m {
		o.OnPhase(generation, phase)
	}
}

// OnGeneration implements Observer.
func (m MultiObserver) OnGeneration(report GenerationReport) {
	for _, o := range m {
		o.OnGeneration(report)
	}
}
