package stats

// DefaultTopN is how many projects the views show.
const DefaultTopN = 10

// Aggregator holds the view settings shared by all aggregations.
type Aggregator struct {
	excluded []string
	topN     int
}

// New creates an Aggregator. A nil excluded list means DefaultExcludedPaths;
// a non-positive topN means DefaultTopN.
func New(excluded []string, topN int) *Aggregator {
	if excluded == nil {
		excluded = DefaultExcludedPaths
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Aggregator{excluded: excluded, topN: topN}
}

// TopN returns the configured number of projects per view.
func (a *Aggregator) TopN() int { return a.topN }
