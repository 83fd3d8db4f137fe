package solver

import "time"

// Phase marks where in a solver call an Event was emitted.
type Phase string

const (
	PhaseStart  Phase = "start"
	PhaseFinish Phase = "finish"
)

// Event describes one observation point of a solver call. Selection, Err
// and Elapsed are only set on PhaseFinish.
type Event struct {
	Strategy  string
	Phase     Phase
	Items     int
	Budget    float64
	Selection Selection
	Err       error
	Elapsed   time.Duration
}

// Observer receives coarse-grained events from solver calls. A nil Observer
// is valid and ignored.
type Observer func(Event)

func (o Observer) notify(e Event) {
	if o != nil {
		o(e)
	}
}

// observe wraps one solver invocation with start and finish events.
func observe(o Observer, strategy string, catalog Catalog, budget float64, solve func() (Selection, error)) (Selection, error) {
	o.notify(Event{Strategy: strategy, Phase: PhaseStart, Items: len(catalog), Budget: budget})
	started := time.Now()
	selection, err := solve()
	o.notify(Event{
		Strategy:  strategy,
		Phase:     PhaseFinish,
		Items:     len(catalog),
		Budget:    budget,
		Selection: selection,
		Err:       err,
		Elapsed:   time.Since(started),
	})
	return selection, err
}
