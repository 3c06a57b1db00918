package parser

import (
	"fmt"
	"strings"
)

// A single row of an exported USN journal ($J) CSV. Only the columns
// we need are kept.
type USNRecord struct {
	EntryNumber          int64
	UpdateTimestamp      string
	UpdateReasons        string
	Name                 string
	UpdateSequenceNumber string
	ParentPath           string
}

// Records with the same CorrelationKey describe the same filesystem
// event seen through different journal entries.
type CorrelationKey struct {
	EntryNumber     int64
	UpdateTimestamp string
}

type nameKey struct {
	CorrelationKey
	Name string
}

func (self *USNRecord) Key() CorrelationKey {
	return CorrelationKey{
		EntryNumber:     self.EntryNumber,
		UpdateTimestamp: self.UpdateTimestamp,
	}
}

func (self *USNRecord) nameKey() nameKey {
	return nameKey{CorrelationKey: self.Key(), Name: self.Name}
}

// Reasons splits the UpdateReasons column into its flag names.
func (self *USNRecord) Reasons() []string {
	result := []string{}
	for _, reason := range strings.Split(self.UpdateReasons, "|") {
		reason = strings.TrimSpace(reason)
		if reason != "" {
			result = append(result, reason)
		}
	}
	return result
}

func (self *USNRecord) FullPath(separator string) string {
	return self.ParentPath + separator + self.Name
}

func (self *USNRecord) DebugString() string {
	return fmt.Sprintf("USN %v: Entry %v @ %v\n  Name: %v\n  Reasons: %v\n  ParentPath: %v\n",
		self.UpdateSequenceNumber, self.EntryNumber, self.UpdateTimestamp,
		self.Name, self.UpdateReasons, self.ParentPath)
}
