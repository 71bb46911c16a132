package mapper

import (
	"WhereIsIt/internal/dto"
	"WhereIsIt/internal/models"
	"strings"
)

// OptionalText trims s and turns a blank value into nil.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// columnValue is what an update writes for an optional text column: NULL
// for a blank value.
func columnValue(s *string) interface{} {
	if value := OptionalText(s); value != nil {
		return *value
	}
	return nil
}

func ToUnitModel(d dto.UnitCreateDTO) *models.StorageUnit {
	return &models.StorageUnit{
		Name:        strings.TrimSpace(d.Name),
		Description: OptionalText(d.Description),
		Boxes:       []models.StorageBox{},
	}
}

func ToUnitUpdateFields(d dto.UnitUpdateDTO) map[string]interface{} {
	fields := make(map[string]interface{})
	if d.Name != nil {
		fields["name"] = strings.TrimSpace(*d.Name)
	}
	if d.Description != nil {
		fields["description"] = columnValue(d.Description)
	}
	return fields
}

func ToBoxModel(d dto.BoxCreateDTO, slug string) *models.StorageBox {
	return &models.StorageBox{
		Name:        strings.TrimSpace(d.Name),
		Description: OptionalText(d.Description),
		Slug:        slug,
		UnitID:      d.UnitID,
		Items:       []models.Item{},
	}
}

func ToBoxUpdateFields(d dto.BoxUpdateDTO) map[string]interface{} {
	fields := make(map[string]interface{})
	if d.Name != nil {
		fields["name"] = strings.TrimSpace(*d.Name)
	}
	if d.Description != nil {
		fields["description"] = columnValue(d.Description)
	}
	if d.UnitID != nil {
		fields["unit_id"] = *d.UnitID
	}
	return fields
}

// ToItemModel builds an item for boxID. A missing quantity defaults to one.
func ToItemModel(boxID uint, d dto.ItemCreateDTO) *models.Item {
	quantity := 1
	if d.Quantity != nil {
		quantity = *d.Quantity
	}
	return &models.Item{
		Name:        strings.TrimSpace(d.Name),
		Description: OptionalText(d.Description),
		Quantity:    quantity,
		Category:    OptionalText(d.Category),
		BoxID:       boxID,
	}
}

func ToItemUpdateFields(d dto.ItemUpdateDTO) map[string]interface{} {
	fields := make(map[string]interface{})
	if d.Name != nil {
		fields["name"] = strings.TrimSpace(*d.Name)
	}
	if d.Description != nil {
		fields["description"] = columnValue(d.Description)
	}
	if d.Quantity != nil {
		fields["quantity"] = *d.Quantity
	}
	if d.Category != nil {
		fields["category"] = columnValue(d.Category)
	}
	if d.BoxID != nil {
		fields["box_id"] = *d.BoxID
	}
	return fields
}

func ToSearchResultDTO(boxes []models.StorageBox, items []models.Item) *dto.SearchResultDTO {
	if boxes == nil {
		boxes = []models.StorageBox{}
	}
	if items == nil {
		items = []models.Item{}
	}
	return &dto.SearchResultDTO{Boxes: boxes, Items: items}
}
