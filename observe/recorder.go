package observe

import (
	"sync"

	"github.com/katalvlaran/lvroute/allocate"
	"github.com/katalvlaran/lvroute/route"
)

// Signal is one recorded emission. Fields not relevant to Name are zero.
type Signal struct {
	Name   string      `json:"name"`
	Start  string      `json:"start,omitempty"`
	End    string      `json:"end,omitempty"`
	Route  route.Route `json:"route"`
	Asset  string      `json:"asset,omitempty"`
	Demand string      `json:"demand,omitempty"`
	Path   []string    `json:"path,omitempty"`
	Amount float64     `json:"amount,omitempty"`
}

// Recorder keeps every signal in memory, in emission order.
type Recorder struct {
	mu      sync.Mutex
	signals []Signal
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) add(s Signal) {
	r.mu.Lock()
	r.signals = append(r.signals, s)
	r.mu.Unlock()
}

func (r *Recorder) RoutePlanned(start, end string, rt route.Route) {
	r.add(Signal{Name: route.SignalPlanned, Start: start, End: end, Route: rt})
}

func (r *Recorder) RouteUnreachable(start, end string) {
	r.add(Signal{Name: route.SignalUnreachable, Start: start, End: end})
}

func (r *Recorder) Allocated(e allocate.Event) {
	r.add(Signal{
		Name:   allocate.SignalAllocation,
		Asset:  e.Asset,
		Demand: e.Demand,
		Path:   append([]string(nil), e.Path...),
		Amount: e.Amount,
	})
}

// Signals returns a copy of everything recorded so far.
func (r *Recorder) Signals() []Signal {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Signal(nil), r.signals...)
}

// Count returns how many signals named name were recorded.
func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, s := range r.signals {
		if s.Name == name {
			n++
		}
	}

	return n
}

// Reset drops all recorded signals.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.signals = nil
	r.mu.Unlock()
}
