// Implement some easy APIs.
package parser

// FindArtifacts loads an exported USN journal and returns the names
// recovered from SDelete activity.
func FindArtifacts(path string) ([]*USNRecord, *CorrelationStats, error) {
	records, err := ParseUSNCSVFile(path)
	if err != nil {
		return nil, nil, err
	}
	DebugRecords("Input", records)

	results, stats := CorrelateWithStats(records)
	DebugRecords("Results", results)

	return results, stats, nil
}
