package quiz

import "math/rand/v2"

// intn returns a uniform integer in [0, n). Tests replace it.
var intn = rand.IntN

// Shuffle permutes items in place with the Fisher-Yates algorithm.
func Shuffle[T any](items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
