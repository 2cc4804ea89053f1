package services

import (
	"context"
	"testing"

	"github.com/justsurfingit/scrapnalyze/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestEmptyQuerySkipsStore(t *testing.T) {
	store := &fakeStore{distinctVals: []string{"should not be returned"}}
	svc := NewAutocompleteService(store)

	got, err := svc.Suggest(context.Background(), models.ColumnTitle, "")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, store.calls)
}

func TestSuggestAsksForTenValues(t *testing.T) {
	store := &fakeStore{distinctVals: []string{"London", "london"}}
	svc := NewAutocompleteService(store)

	got, err := svc.Suggest(context.Background(), models.ColumnLocation, "lon")
	require.NoError(t, err)
	assert.Equal(t, []string{"London", "london"}, got)
	assert.Equal(t, models.ColumnLocation, store.lastColumn)
	assert.Equal(t, "lon", store.lastSubstr)
	assert.Equal(t, 10, store.lastLimit)
}

func TestSuggestRejectsOtherColumns(t *testing.T) {
	store := &fakeStore{}
	_, err := NewAutocompleteService(store).Suggest(context.Background(), models.ColumnSalary, "50")
	assert.ErrorIs(t, err, ErrColumnNotSuggestible)
	assert.Zero(t, store.calls)
}
