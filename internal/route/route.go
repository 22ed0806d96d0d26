// Package route orders delivery stops with a greedy nearest-neighbor
// heuristic. It is O(n²) and meant for a single courier's daily stops, not
// city-scale routing.
package route

import "math"

// Point is a geographic coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Sequence returns the points reordered by repeatedly visiting the nearest
// unvisited point, starting from the first input point. Distance is plain
// Euclidean over raw lat/lng — good enough for short intra-city spans. Ties
// go to the first-encountered index. The input slice is never mutated and the
// result is always a permutation of it; two or fewer points are returned
// unchanged.
func Sequence(points []Point) []Point {
	if len(points) <= 2 {
		return points
	}

	remaining := make([]Point, len(points))
	copy(remaining, points)

	result := make([]Point, 0, len(points))
	current := remaining[0]
	remaining = remaining[1:]
	result = append(result, current)

	for len(remaining) > 0 {
		bestIdx := 0
		bestDist := math.Inf(1)
		for i, p := range remaining {
			d := math.Hypot(p.Lat-current.Lat, p.Lng-current.Lng)
			if d < bestDist {
				bestDist = d
				bestIdx = i
			}
		}
		current = remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		result = append(result, current)
	}
	return result
}
