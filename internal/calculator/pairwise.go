package calculator

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"place-distance/internal/models"
)

// ProgressCallback reports how many pairs have been computed so far.
type ProgressCallback func(current, total int)

// Below this many points the chunked workers cost more than they save.
const parallelThreshold = 64

// Pairwise computes the great-circle distance for every unordered pair of
// distinct points and returns one record per pair, sorted ascending by
// distance. For n points that is exactly n*(n-1)/2 records; fewer than two
// points yields none. onProgress may be nil.
//
// Each worker owns a disjoint range of first indices and writes into the
// slot the sequential i<j walk would use, so enumeration order — and with it
// the tie order under the stable sort — does not depend on scheduling.
func Pairwise(points []models.Point, onProgress ProgressCallback) []models.DistanceRecord {
	n := len(points)
	if n < 2 {
		return nil
	}

	total := n * (n - 1) / 2
	records := make([]models.DistanceRecord, total)

	workers := runtime.NumCPU()
	if workers < 1 || n < parallelThreshold {
		workers = 1
	}
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	var processed int64

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if start >= n {
			break
		}
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()

			for i := s; i < e; i++ {
				a := points[i]
				base := i*n - i*(i+1)/2 - i

				for j := i + 1; j < n; j++ {
					b := points[j]
					records[base+j-1] = models.DistanceRecord{
						PlaceA:   a.Name,
						PlaceB:   b.Name,
						Distance: GreatCircle(a.Lat, a.Lon, b.Lat, b.Lon),
					}

					count := atomic.AddInt64(&processed, 1)
					if onProgress != nil && count%500 == 0 {
						onProgress(int(count), total)
					}
				}
			}
		}(start, end)
	}

	wg.Wait()

	if onProgress != nil {
		onProgress(total, total)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Distance < records[j].Distance
	})

	return records
}
