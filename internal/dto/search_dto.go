package dto

import "WhereIsIt/internal/models"

type SearchResultDTO struct {
	Boxes []models.StorageBox `json:"boxes"`
	Items []models.Item       `json:"items"`
}
