package genetic

import "fmt"

// Phase is a state of the Engine's generation loop.
type Phase int

const (
	// PhaseInitialized follows creation of the random initial population.
	PhaseInitialized Phase = iota
	// PhaseLocalSearch replaces every individual by its local optimum.
	PhaseLocalSearch
	// PhaseSelect draws the parents.
	PhaseSelect
	// PhaseCrossover pairs parents into PMX children.
	PhaseCrossover
	// PhaseMutate applies insertion mutation to the children.
	PhaseMutate
	// PhaseSurvive truncates parents plus offspring to the population size.
	PhaseSurvive
	// PhaseTerminated is entered once, after the last generation.
	PhaseTerminated
)

var phaseNames = [...]string{
	PhaseInitialized: "initialized",
	PhaseLocalSearch: "local_search",
	PhaseSelect:      "select",
	PhaseCrossover:   "crossover",
	PhaseMutate:      "mutate",
	PhaseSurvive:     "survive",
	PhaseTerminated:  "terminated",
}

// String returns the lower-case phase name used in metric labels.
func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}

	return fmt.Sprintf("Phase(%d)", int(p))
}
