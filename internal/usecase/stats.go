package usecase

import (
	"math"
	"sort"

	"github.com/fadilmartias/feedback-service/internal/dto"
)

const topTagLimit = 10

// avgOf is the average over the supplied values rounded to 3 decimals, or
// nil when there are none. Facet ratings are sparse, so callers collect
// only the non-null values of each field before averaging.
func avgOf(vals []int) *float64 {
	if len(vals) == 0 {
		return nil
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	avg := math.Round(float64(sum)/float64(len(vals))*1000) / 1000
	return &avg
}

// ratingDistribution buckets primary ratings into a histogram over "1".."5".
// All buckets are present even when empty.
func ratingDistribution(vals []int) map[string]int {
	dist := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for _, v := range vals {
		switch v {
		case 1:
			dist["1"]++
		case 2:
			dist["2"]++
		case 3:
			dist["3"]++
		case 4:
			dist["4"]++
		case 5:
			dist["5"]++
		}
	}
	return dist
}

// topTags counts tag occurrences across the qualifying records and returns
// the heaviest n, ordered by count descending then tag ascending so equal
// counts resolve deterministically.
func topTags(tagLists [][]string, n int) []dto.TagCount {
	counts := map[string]int{}
	for _, tags := range tagLists {
		for _, t := range tags {
			counts[t]++
		}
	}

	out := make([]dto.TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, dto.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
