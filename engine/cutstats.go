package engine

import (
	"fmt"
	"io"
)

// CutStatistics collects counts for each cutoff mechanism.
type CutStatistics struct {
	TTHits           uint64
	TTMisses         uint64
	TTCutoffs        uint64
	BetaCutoffs      uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
}

func (c *CutStatistics) reset() {
	*c = CutStatistics{}
}

// Write dumps the counters, one per line.
func (c CutStatistics) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Cut statistics:\n"+
			"  TT hits: %d\n"+
			"  TT misses: %d\n"+
			"  TT cutoffs: %d\n"+
			"  Beta cutoffs: %d\n"+
			"  QStandPat cutoffs: %d\n"+
			"  QBeta cutoffs: %d\n",
		c.TTHits, c.TTMisses, c.TTCutoffs, c.BetaCutoffs, c.QStandPatCutoffs, c.QBetaCutoffs)
	return err
}
