package parser

import (
	"encoding/json"
	"sort"

	"github.com/Velocidex/ordereddict"
)

// Counters collected while running the correlation filter.
type CorrelationStats struct {
	Records         int
	Candidates      int
	Placeholders    int
	CorrelationKeys int
	Correlated      int
	Excluded        int
	Duplicates      int
	Results         int

	// How often each reason flag appeared on a candidate record.
	CandidateReasons map[string]int
}

func newCorrelationStats() *CorrelationStats {
	return &CorrelationStats{
		CandidateReasons: make(map[string]int),
	}
}

func (self *CorrelationStats) addCandidate(record *USNRecord) {
	self.Candidates++
	for _, reason := range record.Reasons() {
		self.CandidateReasons[reason]++
	}
}

func (self *CorrelationStats) ToDict() *ordereddict.Dict {
	reasons := ordereddict.NewDict()
	names := make([]string, 0, len(self.CandidateReasons))
	for k := range self.CandidateReasons {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		reasons.Set(k, self.CandidateReasons[k])
	}

	return ordereddict.NewDict().
		Set("Records", self.Records).
		Set("Candidates", self.Candidates).
		Set("Placeholders", self.Placeholders).
		Set("CorrelationKeys", self.CorrelationKeys).
		Set("Correlated", self.Correlated).
		Set("Excluded", self.Excluded).
		Set("Duplicates", self.Duplicates).
		Set("Results", self.Results).
		Set("CandidateReasons", reasons)
}

func (self *CorrelationStats) DebugString() string {
	serialized, _ := json.MarshalIndent(self.ToDict(), "", " ")
	return string(serialized)
}
