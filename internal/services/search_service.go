package services

import (
	"WhereIsIt/internal/dto"
	"WhereIsIt/internal/mapper"
	"WhereIsIt/internal/models"
	"WhereIsIt/internal/repository"
	"strings"
)

type SearchService interface {
	Search(query string, category *string) (*dto.SearchResultDTO, error)
}

type searchServiceImpl struct {
	boxRepo  repository.BoxRepository
	itemRepo repository.ItemRepository
}

func NewSearchService(boxRepo repository.BoxRepository, itemRepo repository.ItemRepository) SearchService {
	return &searchServiceImpl{boxRepo: boxRepo, itemRepo: itemRepo}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern is a LIKE pattern matching value as a literal substring.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(value)) + "%"
}

func containsClause(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

// ItemFilter builds the where clause for item search. An empty query adds no
// text condition and a nil category adds no category condition.
func ItemFilter(query string, category *string) (string, []interface{}) {
	var conditions []string
	var params []interface{}
	if category != nil {
		conditions = append(conditions, "category = ?")
		params = append(params, *category)
	}
	if query != "" {
		pattern := containsPattern(query)
		conditions = append(conditions, "("+containsClause("name")+" OR "+containsClause("category")+")")
		params = append(params, pattern, pattern)
	}
	return strings.Join(conditions, " AND "), params
}

// BoxFilter matches box names. An empty query matches every box.
func BoxFilter(query string) (string, []interface{}) {
	if query == "" {
		return "", nil
	}
	return containsClause("name"), []interface{}{containsPattern(query)}
}

// Search never returns boxes when a category is given since boxes carry no
// category.
func (s *searchServiceImpl) Search(query string, category *string) (*dto.SearchResultDTO, error) {
	if category != nil && *category == "" {
		category = nil
	}

	var boxes []models.StorageBox
	if category == nil {
		whereClause, args := BoxFilter(query)
		var err error
		if boxes, err = s.boxRepo.BoxesSearch(whereClause, args); err != nil {
			return nil, err
		}
	}

	whereClause, args := ItemFilter(query, category)
	items, err := s.itemRepo.ItemsSearch(whereClause, args, "id", 0, 0)
	if err != nil {
		return nil, err
	}
	return mapper.ToSearchResultDTO(boxes, items), nil
}
