package advisor

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
)

const maxPairings = 2

// PairSuggestion is a complementary-tile recommendation with its canned
// reason string.
type PairSuggestion struct {
	ID     string        `json:"id"`
	TileID models.FlexID `json:"tileId"`
	Name   string        `json:"name"`
	Image  string        `json:"image,omitempty"`
	Reason string        `json:"reason"`
}

// Pairing suggests tiles to combine with a chosen base tile by shuffling
// the rest of the catalog.
type Pairing struct {
	rng *rand.Rand
}

func NewPairing(rng *rand.Rand) *Pairing {
	return &Pairing{rng: rng}
}

func (p *Pairing) reasons(tile models.Product) []string {
	return []string{
		fmt.Sprintf("The texture of %s provides a striking contrast to the selected tile.", tile.Design),
		fmt.Sprintf("This %s tile shares complementary undertones, creating a cohesive look.", tile.Type),
		"A perfect match! The finish of this tile balances the base selection beautifully.",
		"This pairing works well because the neutral colors ground the bolder base tile.",
	}
}

// Suggest returns up to two tiles that are not the base, each with one of
// the fixed reason strings.
func (p *Pairing) Suggest(baseID models.FlexID, tiles []models.Product) []PairSuggestion {
	others := make([]models.Product, 0, len(tiles))
	for _, tile := range tiles {
		if tile.ID != baseID {
			others = append(others, tile)
		}
	}

	picks := shuffled(p.rng, others)
	if len(picks) > maxPairings {
		picks = picks[:maxPairings]
	}

	suggestions := make([]PairSuggestion, 0, len(picks))
	for _, tile := range picks {
		reasons := p.reasons(tile)
		suggestions = append(suggestions, PairSuggestion{
			ID:     uuid.NewString(),
			TileID: tile.ID,
			Name:   tile.Design,
			Image:  tile.Image,
			Reason: reasons[p.rng.Intn(len(reasons))],
		})
	}
	return suggestions
}
