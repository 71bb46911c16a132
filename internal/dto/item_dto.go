package dto

type ItemCreateDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
	Category    *string `json:"category"`
	BoxID       uint    `json:"box_id"`
}

type ItemUpdateDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
	Category    *string `json:"category"`
	BoxID       *uint   `json:"box_id"`
}
