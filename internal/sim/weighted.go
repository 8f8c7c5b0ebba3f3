package sim

import "github.com/KirkDiggler/hoopsim/internal/dice"

// SelectWeighted picks one item with probability proportional to its weight.
// Negative weights count as zero. When the total weight is zero the first item
// is returned. The bool is false only for an empty slice.
func SelectWeighted[T any](rng dice.Roller, items []T, weight func(T) float64) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}

	weights := make([]float64, len(items))
	var total float64
	for i, item := range items {
		w := weight(item)
		if w > 0 {
			weights[i] = w
			total += w
		}
	}
	if total <= 0 {
		return items[0], true
	}

	draw := rng.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if draw < cumulative {
			return items[i], true
		}
	}
	// float rounding can leave draw at the very top
	for i := len(items) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return items[i], true
		}
	}
	return items[0], true
}
