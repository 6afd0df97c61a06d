package advisor

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
)

const maxMatches = 3

// MatchSuggestion is one style-matcher result with its synthetic
// confidence label.
type MatchSuggestion struct {
	ID     string          `json:"id"`
	TileID models.FlexID   `json:"tileId"`
	Name   string          `json:"name"`
	Type   models.TileType `json:"type"`
	Match  string          `json:"match"`
	Image  string          `json:"image,omitempty"`
}

// StyleMatcher simulates matching an uploaded inspiration image against
// the catalog. The uploaded image is never inspected.
type StyleMatcher struct {
	rng *rand.Rand
}

func NewStyleMatcher(rng *rand.Rand) *StyleMatcher {
	return &StyleMatcher{rng: rng}
}

// Match picks up to three random catalog tiles and labels each with a
// match percentage in [85, 99). An empty catalog yields no suggestions.
func (m *StyleMatcher) Match(tiles []models.Product) []MatchSuggestion {
	picks := shuffled(m.rng, tiles)
	if len(picks) > maxMatches {
		picks = picks[:maxMatches]
	}

	suggestions := make([]MatchSuggestion, 0, len(picks))
	for _, tile := range picks {
		suggestions = append(suggestions, MatchSuggestion{
			ID:     uuid.NewString(),
			TileID: tile.ID,
			Name:   tile.Design,
			Type:   tile.Type,
			Match:  fmt.Sprintf("%d%%", 85+m.rng.Intn(14)),
			Image:  tile.Image,
		})
	}
	return suggestions
}
