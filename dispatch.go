package opencc

import (
	"runtime"
	"sync"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
	"github.com/laisuk/opencc-fmmseg-sub000/dicts"
)

// chunkRange is a half-open [Start,End) span of code points, either one
// delimiter or a maximal delimiter-free run.
type chunkRange struct {
	Start, End int
}

// splitRanges cuts chars into ranges at delimiter boundaries. With
// inclusive=false every delimiter becomes its own one-element range;
// with inclusive=true a delimiter closes the preceding content range.
// Concatenating the ranges always reproduces chars exactly.
func splitRanges(chars []rune, inclusive bool) []chunkRange {
	var ranges []chunkRange
	start := 0
	for i, r := range chars {
		if !IsDelimiter(r) {
			continue
		}
		if inclusive {
			ranges = append(ranges, chunkRange{start, i + 1})
		} else {
			if i > start {
				ranges = append(ranges, chunkRange{start, i})
			}
			ranges = append(ranges, chunkRange{i, i + 1})
		}
		start = i + 1
	}
	if start < len(chars) {
		ranges = append(ranges, chunkRange{start, len(chars)})
	}
	return ranges
}

// segmentReplace runs one conversion round over the whole string:
// split at delimiters, convert every chunk independently, concatenate
// in original order. Delimiters come through untouched. The parallel
// and sequential paths produce byte-identical output.
func segmentReplace(text string, round []*dicts.DictMaxLen, maxWordLen int, union *dicts.StarterUnion, parallel bool) string {
	chars := []rune(text)
	ranges := splitRanges(chars, false)

	if !parallel || len(ranges) < 2 {
		b := borrowBuilder()
		b.Grow(len(text))
		for _, r := range ranges {
			b.WriteString(convertSegment(chars[r.Start:r.End], round, maxWordLen, union))
		}
		s := b.String()
		releaseBuilder(b)
		return s
	}
	return convertChunksParallel(chars, ranges, round, maxWordLen, union)
}

// chunkResult tags a converted chunk with its position so results can
// be reordered after the workers finish.
type chunkResult struct {
	Index int
	Text  string
}

func byChunkIndex(a, b interface{}) int {
	return utils.IntComparator(a.(chunkResult).Index, b.(chunkResult).Index)
}

// convertChunksParallel fans the chunks out to a fixed pool of
// runtime.NumCPU() workers. Workers append index-tagged results to a
// shared list; sorting by index afterwards restores input order, so
// output is deterministic regardless of scheduling.
func convertChunksParallel(chars []rune, ranges []chunkRange, round []*dicts.DictMaxLen, maxWordLen int, union *dicts.StarterUnion) string {
	workers := runtime.NumCPU()
	if workers > len(ranges) {
		workers = len(ranges)
	}
	tracer().Debugf("converting %d chunks on %d workers", len(ranges), workers)

	jobs := make(chan int, len(ranges))
	results := arraylist.New()
	var mx sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r := ranges[i]
				converted := convertSegment(chars[r.Start:r.End], round, maxWordLen, union)
				mx.Lock()
				results.Add(chunkResult{Index: i, Text: converted})
				mx.Unlock()
			}
		}()
	}
	for i := range ranges {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	results.Sort(byChunkIndex)
	b := borrowBuilder()
	b.Grow(len(chars))
	it := results.Iterator()
	for it.Next() {
		b.WriteString(it.Value().(chunkResult).Text)
	}
	s := b.String()
	releaseBuilder(b)
	return s
}
