package charts

import (
	"hash/fnv"
	"math"
	"math/rand"
	"sort"
)

const layoutIterations = 50

// springLayout computes force-directed (Fruchterman-Reingold) positions for
// the given nodes in the unit square. The RNG is seeded from the node set so
// repeated builds of the same graph place nodes identically; positions still
// change whenever the node set does, which is why coordinates are documented
// as unstable.
func springLayout(ids []string, edges []Edge) map[string][2]float64 {
	n := len(ids)
	pos := make(map[string][2]float64, n)
	if n == 0 {
		return pos
	}
	if n == 1 {
		pos[ids[0]] = [2]float64{0.5, 0.5}
		return pos
	}

	rng := rand.New(rand.NewSource(layoutSeed(ids)))
	xs := make([]float64, n)
	ys := make([]float64, n)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
		xs[i] = rng.Float64()
		ys[i] = rng.Float64()
	}

	k := math.Sqrt(1.0 / float64(n)) // ideal edge length for unit area
	temp := 0.1

	dispX := make([]float64, n)
	dispY := make([]float64, n)
	for iter := 0; iter < layoutIterations; iter++ {
		for i := range dispX {
			dispX[i], dispY[i] = 0, 0
		}

		// Repulsion between all pairs.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx, dy := xs[i]-xs[j], ys[i]-ys[j]
				dist := math.Hypot(dx, dy)
				if dist < 1e-9 {
					dx, dy, dist = 1e-4, 1e-4, math.Sqrt2*1e-4
				}
				force := k * k / dist
				dispX[i] += dx / dist * force
				dispY[i] += dy / dist * force
				dispX[j] -= dx / dist * force
				dispY[j] -= dy / dist * force
			}
		}

		// Attraction along edges.
		for _, e := range edges {
			i, iok := index[e.Source]
			j, jok := index[e.Target]
			if !iok || !jok || i == j {
				continue
			}
			dx, dy := xs[i]-xs[j], ys[i]-ys[j]
			dist := math.Hypot(dx, dy)
			if dist < 1e-9 {
				continue
			}
			force := dist * dist / k
			dispX[i] -= dx / dist * force
			dispY[i] -= dy / dist * force
			dispX[j] += dx / dist * force
			dispY[j] += dy / dist * force
		}

		// Apply displacements, capped by the cooling temperature.
		for i := 0; i < n; i++ {
			d := math.Hypot(dispX[i], dispY[i])
			if d < 1e-9 {
				continue
			}
			step := math.Min(d, temp)
			xs[i] += dispX[i] / d * step
			ys[i] += dispY[i] / d * step
			xs[i] = math.Min(1, math.Max(0, xs[i]))
			ys[i] = math.Min(1, math.Max(0, ys[i]))
		}
		temp *= 0.95
	}

	for id, i := range index {
		pos[id] = [2]float64{xs[i], ys[i]}
	}
	return pos
}

// layoutSeed derives a deterministic seed from the node set, order-independent.
func layoutSeed(ids []string) int64 {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	h := fnv.New64a()
	for _, id := range sorted {
		h.Write([]byte(id))
		h.Write([]byte{0})
	}
	return int64(h.Sum64())
}
