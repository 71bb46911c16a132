package dto

type UnitCreateDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UnitUpdateDTO fields left nil keep their stored value.
type UnitUpdateDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
