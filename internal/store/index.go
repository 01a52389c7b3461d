package store

import (
	"sort"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

// spinRange is the [start, end) byte range of one spin in the JSONL file.
// start is the offset of the spin_start line; end is the offset of the
// first byte after the settled line.
type spinRange struct {
	start int64
	end   int64
}

// fileIndex maintains in-memory byte-offset bookmarks per settled spin.
// It is updated by onAppend as each event is written and provides O(1)
// lookup for SpinLog reads via file.ReadAt.
type fileIndex struct {
	summaries []SpinSummary        // ordered by settle time
	ranges    map[string]spinRange // spin ID → byte range
	pending   *pendingSpin         // spin in flight (nil if none)
}

// pendingSpin accumulates state for the spin currently in flight.
type pendingSpin struct {
	startOffset int64
	summary     SpinSummary
}

func newFileIndex() *fileIndex {
	return &fileIndex{ranges: make(map[string]spinRange)}
}

// onAppend updates the index when an event line has been appended.
// lineOffset is the byte offset of the first byte of the written line;
// lineLen is the total bytes written (including the trailing newline).
func (idx *fileIndex) onAppend(e wheel.Event, lineOffset, lineLen int64) {
	switch e.Kind {
	case wheel.EventSpinStart:
		idx.pending = &pendingSpin{
			startOffset: lineOffset,
			summary: SpinSummary{
				SpinID:     e.SpinID,
				Index:      -1,
				Names:      len(e.Names),
				Rigged:     e.Rigged,
				DurationMs: e.DurationMs,
				Angle:      e.Angle,
				StartAt:    e.Timestamp,
			},
		}
	case wheel.EventSettled:
		if idx.pending == nil || idx.pending.summary.SpinID != e.SpinID {
			idx.pending = nil
			return
		}
		s := idx.pending.summary
		s.Winner = e.Name
		s.Index = e.Index
		s.EndAt = e.Timestamp
		idx.ranges[s.SpinID] = spinRange{
			start: idx.pending.startOffset,
			end:   lineOffset + lineLen,
		}
		idx.summaries = append(idx.summaries, s)
		idx.pending = nil
	case wheel.EventReset:
		// A reset mid-spin abandons it; nothing settles.
		idx.pending = nil
	}
}

// tally counts wins per name, most wins first, ties by name.
func tally(summaries []SpinSummary) []NameCount {
	counts := make(map[string]int)
	for _, s := range summaries {
		counts[s.Winner]++
	}
	out := make([]NameCount, 0, len(counts))
	for name, wins := range counts {
		out = append(out, NameCount{Name: name, Wins: wins})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Name < out[j].Name
	})
	return out
}
