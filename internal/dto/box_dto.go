package dto

type BoxCreateDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Slug        *string `json:"slug"`
	UnitID      uint    `json:"unit_id"`
}

// BoxUpdateDTO has no slug: a slug never changes once issued.
type BoxUpdateDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	UnitID      *uint   `json:"unit_id"`
}
