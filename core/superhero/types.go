package superhero

// Character is one entry of the remote all.json catalog.
type Character struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	PowerStats PowerStats `json:"powerstats"`
	Biography  Biography  `json:"biography"`
	Appearance Appearance `json:"appearance"`
	Work       Work       `json:"work"`
	Images     Images     `json:"images"`
}

// PowerStats holds the numeric attributes of a character.
type PowerStats struct {
	Intelligence int `json:"intelligence"`
	Strength     int `json:"strength"`
	Speed        int `json:"speed"`
	Durability   int `json:"durability"`
	Power        int `json:"power"`
	Combat       int `json:"combat"`
}

// Biography holds the extended biographical fields served by biography/{id}.json.
type Biography struct {
	FullName        string   `json:"fullName"`
	AlterEgos       string   `json:"alterEgos"`
	Aliases         []string `json:"aliases"`
	PlaceOfBirth    string   `json:"placeOfBirth"`
	FirstAppearance string   `json:"firstAppearance"`
	Publisher       string   `json:"publisher"`
	Alignment       string   `json:"alignment"`
}

// Appearance describes the physical appearance of a character.
type Appearance struct {
	Gender    string   `json:"gender"`
	Race      string   `json:"race"`
	Height    []string `json:"height"`
	Weight    []string `json:"weight"`
	EyeColor  string   `json:"eyeColor"`
	HairColor string   `json:"hairColor"`
}

// Work describes occupation and base of operations.
type Work struct {
	Occupation string `json:"occupation"`
	Base       string `json:"base"`
}

// Images holds portrait URLs in increasing size.
type Images struct {
	XS string `json:"xs"`
	SM string `json:"sm"`
	MD string `json:"md"`
	LG string `json:"lg"`
}
