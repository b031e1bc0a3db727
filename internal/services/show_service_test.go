package services

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"booking-backend/internal/events"
	"booking-backend/internal/models"
	"booking-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func showForm() url.Values {
	return url.Values{
		"artist_id":  {"4"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01 20:00:00"},
	}
}

func TestCreateShow(t *testing.T) {
	ctx := context.Background()
	repo := &MockShowRepository{}
	publisher := &MockPublisher{}
	svc := NewShowService(repo, publisher, quietLogger())

	repo.On("Create", ctx, mock.AnythingOfType("*models.Show")).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Show).ID = 10 }).
		Return(nil)
	publisher.On("Publish", ctx, events.RoutingShowScheduled, events.ShowScheduled{
		ShowID:    10,
		VenueID:   1,
		ArtistID:  4,
		StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
	}).Return(nil)

	show, err := svc.CreateShow(ctx, showForm())

	require.NoError(t, err)
	assert.EqualValues(t, 10, show.ID)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateShow_UnparseableForm(t *testing.T) {
	repo := &MockShowRepository{}
	svc := NewShowService(repo, &MockPublisher{}, quietLogger())
	form := showForm()
	form.Set("start_time", "tomorrow night")

	_, err := svc.CreateShow(context.Background(), form)

	assert.Equal(t, []string{"start_time"}, fieldNames(t, err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateShow_MissingReferences(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		fields []string
	}{
		{"venue", repository.ErrVenueReference, []string{"venue_id"}},
		{"artist", repository.ErrArtistReference, []string{"artist_id"}},
		{"both", errors.Join(repository.ErrVenueReference, repository.ErrArtistReference), []string{"artist_id", "venue_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := &MockShowRepository{}
			publisher := &MockPublisher{}
			svc := NewShowService(repo, publisher, quietLogger())
			repo.On("Create", ctx, mock.Anything).Return(tt.err)

			_, err := svc.CreateShow(ctx, showForm())

			assert.Equal(t, tt.fields, fieldNames(t, err))
			publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateShow_StorageFailure(t *testing.T) {
	ctx := context.Background()
	repo := &MockShowRepository{}
	svc := NewShowService(repo, &MockPublisher{}, quietLogger())
	repo.On("Create", ctx, mock.Anything).Return(errors.New("deadlock detected"))

	_, err := svc.CreateShow(ctx, showForm())

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "create show", storageErr.Op)
}

func TestListShows(t *testing.T) {
	ctx := context.Background()
	repo := &MockShowRepository{}
	svc := NewShowService(repo, &MockPublisher{}, quietLogger())
	listing := []models.ShowListing{{ID: 1, VenueName: "The Musical Hop", ArtistName: "Guns N Petals"}}
	repo.On("FindAll", ctx).Return(listing, nil)

	shows, err := svc.ListShows(ctx)

	require.NoError(t, err)
	assert.Equal(t, listing, shows)
}

func TestDeleteShow(t *testing.T) {
	ctx := context.Background()
	repo := &MockShowRepository{}
	publisher := &MockPublisher{}
	svc := NewShowService(repo, publisher, quietLogger())
	repo.On("Delete", ctx, uint(1)).Return(nil)
	repo.On("Delete", ctx, uint(2)).Return(repository.ErrNotFound)
	publisher.On("Publish", ctx, events.RoutingShowCancelled, events.ShowCancelled{ShowID: 1}).Return(nil)

	require.NoError(t, svc.DeleteShow(ctx, 1))
	assert.ErrorIs(t, svc.DeleteShow(ctx, 2), repository.ErrNotFound)
	publisher.AssertExpectations(t)
}
