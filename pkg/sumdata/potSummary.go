package sumdata

import "fmt"

// POTSummary accumulates the protons-on-target bookkeeping of a
// subrun: delivered beam and spill counts, total and after quality
// cuts.
type POTSummary struct {
	TotPOT     float64 // total protons on target
	TotGoodPOT float64 // protons on target in good spills
	TotSpills  uint32  // total number of spills
	GoodSpills uint32  // number of good spills
}

// Aggregate adds the exposure of another fragment to this one,
// field by field. No overflow check is performed.
func (p *POTSummary) Aggregate(other POTSummary) {
	p.TotPOT += other.TotPOT
	p.TotGoodPOT += other.TotGoodPOT
	p.TotSpills += other.TotSpills
	p.GoodSpills += other.GoodSpills
}

func (p POTSummary) String() string {
	return fmt.Sprintf("This sub-run has %d total spills with %d good spills and %g good POT",
		p.TotSpills, p.GoodSpills, p.TotGoodPOT)
}
