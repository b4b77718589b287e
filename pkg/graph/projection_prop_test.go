package graph

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dmelton/costar/pkg/dataset"
)

// recordsFromCasts builds a dataset where movie m's cast is casts[m];
// actor indexes map to synthetic names. Duplicate indexes within a
// cast are legal input and must not disturb the projection.
func recordsFromCasts(casts [][]int) []dataset.Record {
	var records []dataset.Record
	for m, cast := range casts {
		for _, a := range cast {
			records = append(records, dataset.Record{
				Actor: fmt.Sprintf("actor-%02d", a),
				Title: fmt.Sprintf("movie-%02d", m),
				Year:  1990 + m,
			})
		}
	}
	return records
}

func genCasts() gopter.Gen {
	return gen.SliceOf(gen.SliceOf(gen.IntRange(0, 9)))
}

func TestProjectionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("symmetric with zero diagonal", prop.ForAll(
		func(casts [][]int) bool {
			_, adj := Projection(recordsFromCasts(casts))
			for i := 0; i < adj.Len(); i++ {
				if adj.Connected(i, i) {
					return false
				}
				for j := 0; j < adj.Len(); j++ {
					if adj.Connected(i, j) != adj.Connected(j, i) {
						return false
					}
				}
			}
			return true
		},
		genCasts(),
	))

	properties.Property("reprocessing the same relation is idempotent", prop.ForAll(
		func(casts [][]int) bool {
			records := recordsFromCasts(casts)
			_, first := Projection(records)
			_, second := Projection(append(records, records...))
			if first.Len() != second.Len() {
				return false
			}
			for i := 0; i < first.Len(); i++ {
				for j := 0; j < first.Len(); j++ {
					if first.Connected(i, j) != second.Connected(i, j) {
						return false
					}
				}
			}
			return true
		},
		genCasts(),
	))

	properties.Property("a c-actor movie sets c*(c-1)/2 pairs", prop.ForAll(
		func(c int) bool {
			cast := make([]int, c)
			for i := range cast {
				cast[i] = i
			}
			_, adj := Projection(recordsFromCasts([][]int{cast}))
			return adj.Edges() == c*(c-1)/2
		},
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}
