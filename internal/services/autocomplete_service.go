package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/justsurfingit/scrapnalyze/internal/models"
)

const suggestionLimit = 10

var ErrColumnNotSuggestible = errors.New("column does not support autocomplete")

type AutocompleteService struct {
	Store JobStore
}

func NewAutocompleteService(store JobStore) *AutocompleteService {
	return &AutocompleteService{Store: store}
}

// Suggest returns up to ten distinct values of column containing query. An
// empty query returns nothing without touching the store.
func (s *AutocompleteService) Suggest(ctx context.Context, column models.Column, query string) ([]string, error) {
	if column != models.ColumnTitle && column != models.ColumnLocation {
		return nil, fmt.Errorf("%s: %w", column, ErrColumnNotSuggestible)
	}
	if query == "" {
		return []string{}, nil
	}
	return s.Store.DistinctValues(ctx, column, query, suggestionLimit)
}
