package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/mock"
	"github.com/vheb/biomap/internal/store"
	"github.com/vheb/biomap/models"
)

func newTestSearchSvc(t *testing.T) (*searchService, *mock.MockSpeciesRepository, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSpeciesRepository(ctrl)
	svc := NewSearchService(repo, logger.Nop()).(*searchService)
	return svc, repo, ctrl
}

func TestSearchService_Suggest_ShortQueryShortCircuits(t *testing.T) {
	svc, _, ctrl := newTestSearchSvc(t)
	defer ctrl.Finish()

	// No repository expectation: a one-rune query must not touch the store.
	suggestions, err := svc.Suggest(context.Background(), "m", models.SuggestByCommonName)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSearchService_Suggest_DeduplicatesAndCaps(t *testing.T) {
	svc, repo, ctrl := newTestSearchSvc(t)
	defer ctrl.Finish()

	rows := make([]models.Suggestion, 0, 20)
	for i := 0; i < 10; i++ {
		// every pair appears twice; dedupe must keep first occurrences only
		s := models.Suggestion{Common: "muriqui", Scientific: "Brachyteles arachnoides"}
		if i%2 == 0 {
			s = models.Suggestion{Common: "onca", Scientific: "Panthera onca"}
		}
		rows = append(rows, s, s)
	}

	repo.EXPECT().
		SuggestNames(gomock.Any(), "muri", models.SuggestByCommonName, uint64(suggestFetchLimit)).
		Return(rows, nil)

	suggestions, err := svc.Suggest(context.Background(), "muri", models.SuggestByCommonName)
	require.NoError(t, err)
	assert.Len(t, suggestions, 2)
	assert.Equal(t, "Panthera onca", suggestions[0].Scientific)
}

func TestSearchService_Suggest_UnknownModeFallsBackToCommon(t *testing.T) {
	svc, repo, ctrl := newTestSearchSvc(t)
	defer ctrl.Finish()

	repo.EXPECT().
		SuggestNames(gomock.Any(), "muri", models.SuggestByCommonName, gomock.Any()).
		Return(nil, nil)

	_, err := svc.Suggest(context.Background(), "muri", models.SuggestionMode("bogus"))
	require.NoError(t, err)
}

func TestSearchService_Resolve_ExactTierWins(t *testing.T) {
	svc, repo, ctrl := newTestSearchSvc(t)
	defer ctrl.Finish()

	want := models.Species{SpeciesID: 1, ScientificName: "Panthera onca"}

	repo.EXPECT().
		FindByNameExact(gomock.Any(), "Panthera onca").
		Return(want, nil)

	got, err := svc.Resolve(context.Background(), "  Panthera onca  ")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearchService_Resolve_FallsThroughToSubstring(t *testing.T) {
	svc, repo, ctrl := newTestSearchSvc(t)
	defer ctrl.Finish()

	want := models.Species{SpeciesID: 2, ScientificName: "Panthera onca"}

	repo.EXPECT().
		FindByNameExact(gomock.Any(), "onca").
		Return(models.Species{}, store.ErrNotFound)
	repo.EXPECT().
		FindByNameSubstring(gomock.Any(), "onca").
		Return(want, nil)

	got, err := svc.Resolve(context.Background(), "onca")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearchService_Resolve_NormalizedEquality(t *testing.T) {
	svc, repo, ctrl := newTestSearchSvc(t)
	defer ctrl.Finish()

	// "Açaí monkeyus" matches "acai monkeyus" only after diacritic folding.
	want := models.Species{SpeciesID: 3, ScientificName: "Açaí monkeyus"}

	repo.EXPECT().
		FindByNameExact(gomock.Any(), "acai monkeyus").
		Return(models.Species{}, store.ErrNotFound)
	repo.EXPECT().
		FindByNameSubstring(gomock.Any(), "acai monkeyus").
		Return(models.Species{}, store.ErrNotFound)
	repo.EXPECT().
		ListScientificNames(gomock.Any()).
		Return([]store.SpeciesName{
			{SpeciesID: 3, ScientificName: "Açaí monkeyus"},
			{SpeciesID: 9, ScientificName: "Açaí monkeyus minor"},
		}, nil)
	repo.EXPECT().
		GetSpeciesByID(gomock.Any(), int64(3)).
		Return(want, nil)

	got, err := svc.Resolve(context.Background(), "acai monkeyus")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearchService_Resolve_NormalizedContainmentPicksLowestID(t *testing.T) {
	svc, repo, ctrl := newTestSearchSvc(t)
	defer ctrl.Finish()

	want := models.Species{SpeciesID: 5, ScientificName: "Grandus açaí minoris"}

	repo.EXPECT().
		FindByNameExact(gomock.Any(), "açai minor").
		Return(models.Species{}, store.ErrNotFound)
	repo.EXPECT().
		FindByNameSubstring(gomock.Any(), "açai minor").
		Return(models.Species{}, store.ErrNotFound)
	// No exact normalized match; ids 5 and 8 both contain the folded query
	// and the id-ordered list resolves the tie to the lowest id.
	repo.EXPECT().
		ListScientificNames(gomock.Any()).
		Return([]store.SpeciesName{
			{SpeciesID: 2, ScientificName: "Panthera onca"},
			{SpeciesID: 5, ScientificName: "Grandus açaí minoris"},
			{SpeciesID: 8, ScientificName: "Açaí minor monkeyus"},
		}, nil)
	repo.EXPECT().
		GetSpeciesByID(gomock.Any(), int64(5)).
		Return(want, nil)

	got, err := svc.Resolve(context.Background(), "açai minor")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearchService_Resolve_NotFound(t *testing.T) {
	svc, repo, ctrl := newTestSearchSvc(t)
	defer ctrl.Finish()

	repo.EXPECT().
		FindByNameExact(gomock.Any(), "Ghostus").
		Return(models.Species{}, store.ErrNotFound)
	repo.EXPECT().
		FindByNameSubstring(gomock.Any(), "Ghostus").
		Return(models.Species{}, store.ErrNotFound)
	repo.EXPECT().
		ListScientificNames(gomock.Any()).
		Return([]store.SpeciesName{{SpeciesID: 1, ScientificName: "Panthera onca"}}, nil)

	_, err := svc.Resolve(context.Background(), "Ghostus")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSearchService_Resolve_EmptyQuery(t *testing.T) {
	svc, _, ctrl := newTestSearchSvc(t)
	defer ctrl.Finish()

	_, err := svc.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSearchService_Resolve_RepositoryFailureIsWrapped(t *testing.T) {
	svc, repo, ctrl := newTestSearchSvc(t)
	defer ctrl.Finish()

	dbErr := errors.New("db down")

	repo.EXPECT().
		FindByNameExact(gomock.Any(), "onca").
		Return(models.Species{}, dbErr)

	_, err := svc.Resolve(context.Background(), "onca")
	assert.ErrorIs(t, err, dbErr)
}
