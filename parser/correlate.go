package parser

import "sort"

// Correlate recovers the original names of files deleted by SDelete.
//
// SDelete renames the target through placeholder names (AAAA.AAA,
// BBBB.BBB ...) and the journal logs each rename with the same
// timestamp and entry number as the record carrying the real
// name. We find the placeholder records, then pull every other
// record sharing their (EntryNumber, UpdateTimestamp) out of the
// full input.
func Correlate(records []*USNRecord) []*USNRecord {
	result, _ := CorrelateWithStats(records)
	return result
}

func CorrelateWithStats(records []*USNRecord) ([]*USNRecord, *CorrelationStats) {
	stats := newCorrelationStats()
	stats.Records = len(records)

	// Timestamps seen more than once over the whole input.
	timestamp_count := make(map[string]int)
	for _, record := range records {
		timestamp_count[record.UpdateTimestamp]++
	}

	// Keys and (key, name) triples of the placeholder candidates.
	placeholder_keys := make(map[CorrelationKey]bool)
	placeholder_names := make(map[nameKey]bool)

	for _, record := range records {
		if timestamp_count[record.UpdateTimestamp] < 2 ||
			!IsSDeleteReason(record.UpdateReasons) {
			continue
		}
		stats.addCandidate(record)

		if !HasPlaceholderPattern(record.Name) {
			continue
		}

		stats.Placeholders++
		placeholder_keys[record.Key()] = true
		placeholder_names[record.nameKey()] = true
	}
	stats.CorrelationKeys = len(placeholder_keys)

	DebugPrint("Found %v placeholder records over %v keys\n",
		stats.Placeholders, stats.CorrelationKeys)

	// The join goes back to the full input so records whose reasons
	// are not in SDELETE_REASONS are still recovered.
	result := []*USNRecord{}
	seen_names := make(map[string]bool)
	for _, record := range records {
		if !placeholder_keys[record.Key()] {
			continue
		}
		stats.Correlated++

		if placeholder_names[record.nameKey()] {
			stats.Excluded++
			continue
		}

		if seen_names[record.Name] {
			stats.Duplicates++
			continue
		}
		seen_names[record.Name] = true

		result = append(result, record)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].EntryNumber != result[j].EntryNumber {
			return result[i].EntryNumber < result[j].EntryNumber
		}
		return result[i].UpdateTimestamp < result[j].UpdateTimestamp
	})

	stats.Results = len(result)
	return result, stats
}
