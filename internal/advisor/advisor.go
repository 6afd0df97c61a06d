// Package advisor implements the design-assistant conveniences: style
// matching, tile pairing and the chat advisor. These are simulated
// heuristics: randomized sampling over the in-memory catalog with
// synthetic confidence and reason strings, never real image analysis or
// language understanding. The random source is injected so tests can pin
// the output.
package advisor

import (
	"math/rand"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
)

// shuffled returns a shuffled copy, leaving the catalog slice untouched.
func shuffled(r *rand.Rand, tiles []models.Product) []models.Product {
	out := make([]models.Product, len(tiles))
	copy(out, tiles)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
