// Package vertsort orders 2D polygon vertices by a greedy
// nearest-neighbour walk so a randomly ordered vertex dump can be
// rebuilt into a drawable ring.
package vertsort

import "math"

type Point struct {
	X float64
	Y float64
}

// Order arranges the points by repeatedly walking to the nearest
// unvisited point, starting from the first one. Duplicate points are
// collapsed before the walk and every step marks exactly one point
// visited, so the walk always terminates after one pass regardless of
// input. Empty input yields an empty result. O(n²).
func Order(pts []Point) []Point {
	uniq := dedup(pts)
	if len(uniq) == 0 {
		return []Point{}
	}

	ordered := make([]Point, 0, len(uniq))
	visited := make([]bool, len(uniq))

	cur := 0
	visited[0] = true
	ordered = append(ordered, uniq[0])

	for len(ordered) < len(uniq) {
		next := -1
		best := math.Inf(1)
		for i, p := range uniq {
			if visited[i] {
				continue
			}
			if d := sqDist(uniq[cur], p); d < best {
				best = d
				next = i
			}
		}
		visited[next] = true
		ordered = append(ordered, uniq[next])
		cur = next
	}

	return ordered
}

// dedup drops exact duplicates, keeping first occurrences in order.
func dedup(pts []Point) []Point {
	seen := make(map[Point]bool, len(pts))
	uniq := make([]Point, 0, len(pts))
	for _, p := range pts {
		if seen[p] {
			continue
		}
		seen[p] = true
		uniq = append(uniq, p)
	}
	return uniq
}

// sqDist is the squared distance; ordering by it matches ordering by
// distance and skips the square root.
func sqDist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
