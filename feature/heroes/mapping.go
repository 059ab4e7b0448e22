package heroes

import (
	"hero-catalog/core/superhero"
	"hero-catalog/feature/heroes/models"
)

// FromCharacter maps a remote character onto a catalog hero. The favorite flag
// always starts false; reconciliation restores it from the store.
func FromCharacter(c superhero.Character) models.Hero {
	intelligence := c.PowerStats.Intelligence
	strength := c.PowerStats.Strength

	return models.Hero{
		ID:           c.ID,
		Name:         c.Name,
		Description:  models.StatsDescription(intelligence, strength),
		ImageURL:     c.Images.LG,
		ComicsCount:  len(c.Biography.Aliases),
		Intelligence: &intelligence,
		Strength:     &strength,
	}
}

// FromCharacters maps a batch of characters, preserving order.
func FromCharacters(chars []superhero.Character) []models.Hero {
	out := make([]models.Hero, len(chars))
	for i, c := range chars {
		out[i] = FromCharacter(c)
	}
	return out
}

// FilterPublisher keeps the characters whose biography names exactly publisher.
func FilterPublisher(chars []superhero.Character, publisher string) []superhero.Character {
	out := make([]superhero.Character, 0, len(chars))
	for _, c := range chars {
		if c.Biography.Publisher == publisher {
			out = append(out, c)
		}
	}
	return out
}

// BiographyFromRemote converts the remote biography payload into the detail model.
func BiographyFromRemote(b *superhero.Biography) *models.Biography {
	if b == nil {
		return nil
	}
	return &models.Biography{
		FullName:        b.FullName,
		AlterEgos:       b.AlterEgos,
		Aliases:         append([]string(nil), b.Aliases...),
		PlaceOfBirth:    b.PlaceOfBirth,
		FirstAppearance: b.FirstAppearance,
		Publisher:       b.Publisher,
		Alignment:       b.Alignment,
	}
}
