package availability

import (
	"sort"

	"stylebook/models"
)

// Range is a [Start, End) interval in minutes after midnight.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// MergeRanges turns a day's raw windows into sorted, non-overlapping ranges.
// Unless minutePrecision is set, both bounds are truncated to the whole hour.
// Windows that cannot be parsed or that cover no time are dropped.
func MergeRanges(slots []models.TimeRange, minutePrecision bool) []Range {
	parse := parseHour
	if minutePrecision {
		parse = ParseClock
	}

	ranges := make([]Range, 0, len(slots))
	for _, slot := range slots {
		from, ok := parse(slot.From)
		if !ok {
			continue
		}
		to, ok := parse(slot.To)
		if !ok || to <= from {
			continue
		}
		ranges = append(ranges, Range{Start: from, End: to})
	}
	if len(ranges) == 0 {
		return ranges
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })

	merged := []Range{ranges[0]}
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
