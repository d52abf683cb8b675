// SPDX-License-Identifier: MIT
package allocate

// DemandReport is the fulfilment of one demand.
type DemandReport struct {
	ID        string  `json:"id" yaml:"id"`
	Node      string  `json:"node" yaml:"node"`
	Priority  float64 `json:"priority" yaml:"priority"`
	Requested float64 `json:"requested" yaml:"requested"`
	Allocated float64 `json:"allocated" yaml:"allocated"`
	Shortfall float64 `json:"shortfall" yaml:"shortfall"`
}

// Report summarizes an allocation run, demands in input order.
type Report struct {
	Demands   []DemandReport `json:"demands" yaml:"demands"`
	Requested float64        `json:"requested" yaml:"requested"`
	Allocated float64        `json:"allocated" yaml:"allocated"`
	Shortfall float64        `json:"shortfall" yaml:"shortfall"`
}

// Summarize totals allocs per demand. Allocations naming unknown demands
// are ignored; non-positive requests count as zero.
func Summarize(allocs []Allocation, demands []Demand) Report {
	got := make(map[string]float64, len(demands))
	for _, al := range allocs {
		got[al.DemandID] += al.Amount
	}

	rep := Report{Demands: make([]DemandReport, 0, len(demands))}
	for _, d := range demands {
		req := d.Amount
		if req < 0 {
			req = 0
		}
		dr := DemandReport{
			ID:        d.ID,
			Node:      d.Node,
			Priority:  d.Priority,
			Requested: req,
			Allocated: got[d.ID],
		}
		if short := req - dr.Allocated; short > DefaultEpsilon {
			dr.Shortfall = short
		}
		rep.Demands = append(rep.Demands, dr)
		rep.Requested += dr.Requested
		rep.Allocated += dr.Allocated
		rep.Shortfall += dr.Shortfall
	}

	return rep
}

// Unmet returns the demands with a positive shortfall.
func (r Report) Unmet() []DemandReport {
	var out []DemandReport
	for _, d := range r.Demands {
		if d.Shortfall > 0 {
			out = append(out, d)
		}
	}

	return out
}

// Fulfilment is Allocated/Requested, or 1 when nothing was requested.
func (r Report) Fulfilment() float64 {
	if r.Requested <= 0 {
		return 1
	}

	return r.Allocated / r.Requested
}
