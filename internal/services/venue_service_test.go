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

var fixedNow = time.Date(2030, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestVenueService() (*venueService, *MockVenueRepository, *MockPublisher) {
	repo := &MockVenueRepository{}
	publisher := &MockPublisher{}
	svc := NewVenueService(repo, publisher, quietLogger()).(*venueService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, publisher
}

func TestCreateVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("valid form is stored", func(t *testing.T) {
		svc, repo, _ := newTestVenueService()
		repo.On("Create", ctx, mock.AnythingOfType("*models.Venue")).
			Run(func(args mock.Arguments) { args.Get(1).(*models.Venue).ID = 1 }).
			Return(nil)

		venue, err := svc.CreateVenue(ctx, validVenueForm())

		require.NoError(t, err)
		assert.EqualValues(t, 1, venue.ID)
		assert.Equal(t, "1015 Folsom Street", venue.Address)
		assert.True(t, venue.SeekingTalent)
		repo.AssertExpectations(t)
	})

	t.Run("invalid form writes nothing", func(t *testing.T) {
		svc, repo, _ := newTestVenueService()
		form := validVenueForm()
		form.Set("name", "")
		form.Set("website_link", "not a url")

		venue, err := svc.CreateVenue(ctx, form)

		assert.Nil(t, venue)
		assert.Equal(t, []string{"name", "website_link"}, fieldNames(t, err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		svc, repo, _ := newTestVenueService()
		dbErr := errors.New("connection reset")
		repo.On("Create", ctx, mock.Anything).Return(dbErr)

		_, err := svc.CreateVenue(ctx, validVenueForm())

		var storageErr *StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "create venue", storageErr.Op)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestSearchVenues(t *testing.T) {
	ctx := context.Background()

	t.Run("blank term runs no query", func(t *testing.T) {
		svc, repo, _ := newTestVenueService()

		for _, term := range []string{"", "   "} {
			result, err := svc.SearchVenues(ctx, term)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrEmptySearchTerm)
		}
		repo.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything)
	})

	t.Run("matches are summarized", func(t *testing.T) {
		svc, repo, _ := newTestVenueService()
		repo.On("SearchByName", ctx, "Music").Return([]models.Venue{
			{ID: 1, Name: "The Musical Hop", Shows: []models.Show{
				{StartTime: fixedNow.Add(-time.Hour)},
				{StartTime: fixedNow.Add(time.Hour)},
				{StartTime: fixedNow.AddDate(0, 1, 0)},
			}},
			{ID: 3, Name: "Park Square Live Music & Coffee"},
		}, nil)

		result, err := svc.SearchVenues(ctx, " Music ")

		require.NoError(t, err)
		assert.Equal(t, "Music", result.SearchTerm)
		assert.Equal(t, 2, result.Count)
		assert.Equal(t, []models.VenueSummary{
			{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2},
			{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 0},
		}, result.Data)
	})

	t.Run("surrounding whitespace is not part of the term", func(t *testing.T) {
		svc, repo, _ := newTestVenueService()
		repo.On("SearchByName", ctx, "Hop").Return([]models.Venue{{ID: 1, Name: "The Musical Hop"}}, nil)

		result, err := svc.SearchVenues(ctx, "Hop ")

		require.NoError(t, err)
		assert.Equal(t, "Hop", result.SearchTerm)
		assert.Equal(t, 1, result.Count)
		repo.AssertExpectations(t)
	})

	t.Run("no matches is an empty result", func(t *testing.T) {
		svc, repo, _ := newTestVenueService()
		repo.On("SearchByName", ctx, "zzz").Return([]models.Venue{}, nil)

		result, err := svc.SearchVenues(ctx, "zzz")

		require.NoError(t, err)
		assert.Equal(t, 0, result.Count)
		assert.NotNil(t, result.Data)
		assert.Empty(t, result.Data)
	})
}

func TestGetVenue_PartitionsShows(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestVenueService()
	artist := &models.Artist{ID: 4, Name: "Guns N Petals", ImageLink: "https://images.example.com/petals.jpg"}
	repo.On("FindByIDWithShows", ctx, uint(1)).Return(&models.Venue{
		ID:   1,
		Name: "The Musical Hop",
		Shows: []models.Show{
			{ArtistID: 4, Artist: artist, StartTime: fixedNow.AddDate(0, -1, 0)},
			{ArtistID: 4, Artist: artist, StartTime: fixedNow},
			{ArtistID: 4, Artist: artist, StartTime: fixedNow.Add(time.Second)},
		},
	}, nil)

	detail, err := svc.GetVenue(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", detail.Name)
	assert.Equal(t, 2, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	assert.Len(t, detail.PastShows, 2)
	require.Len(t, detail.UpcomingShows, 1)
	assert.Equal(t, "Guns N Petals", detail.UpcomingShows[0].ArtistName)
	assert.Equal(t, artist.ImageLink, detail.UpcomingShows[0].ArtistImageLink)
	assert.True(t, fixedNow.Add(time.Second).Equal(detail.UpcomingShows[0].StartTime))
}

func TestGetVenue_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestVenueService()
	repo.On("FindByIDWithShows", ctx, uint(9)).Return(nil, repository.ErrNotFound)
	repo.On("FindByID", ctx, uint(9)).Return(nil, repository.ErrNotFound)

	_, err := svc.GetVenue(ctx, 9)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.GetVenueForEdit(ctx, 9)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	var storageErr *StorageError
	assert.False(t, errors.As(err, &storageErr))
}

func TestUpdateVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("every field is overwritten", func(t *testing.T) {
		svc, repo, _ := newTestVenueService()
		form := url.Values{
			"name":    {"The Musical Hop"},
			"city":    {"Oakland"},
			"state":   {"CA"},
			"address": {"1 Main Street"},
			"genres":  {"Jazz"},
		}
		var stored *models.Venue
		repo.On("Update", ctx, uint(1), mock.AnythingOfType("*models.Venue")).
			Run(func(args mock.Arguments) { stored = args.Get(2).(*models.Venue) }).
			Return(nil)

		_, err := svc.UpdateVenue(ctx, 1, form)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Oakland", stored.City)
		assert.False(t, stored.SeekingTalent)
		assert.Empty(t, stored.Phone)
		assert.Empty(t, stored.SeekingDescription)
		assert.Equal(t, []string{"Jazz"}, stored.Genres)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, repo, _ := newTestVenueService()
		repo.On("Update", ctx, uint(42), mock.Anything).Return(repository.ErrNotFound)

		_, err := svc.UpdateVenue(ctx, 42, validVenueForm())

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("invalid form is rejected before lookup", func(t *testing.T) {
		svc, repo, _ := newTestVenueService()
		form := validVenueForm()
		form.Del("genres")

		_, err := svc.UpdateVenue(ctx, 42, form)

		assert.Equal(t, []string{"genres"}, fieldNames(t, err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("replaced image is removed from the store", func(t *testing.T) {
		svc, repo, _ := newTestVenueService()
		images := &MockImageStore{}
		svc.SetImageStore(images)
		oldLink := "http://localhost:9000/booking-images/hop_1234abcd.jpg"
		repo.On("FindByID", ctx, uint(1)).Return(&models.Venue{ID: 1, ImageLink: oldLink}, nil)
		repo.On("Update", ctx, uint(1), mock.Anything).Return(nil)
		images.On("Owns", oldLink).Return(true)
		repo.On("ImageInUse", ctx, oldLink).Return(false, nil)
		images.On("DeleteFile", ctx, oldLink).Return(nil)

		_, err := svc.UpdateVenue(ctx, 1, validVenueForm())

		require.NoError(t, err)
		images.AssertExpectations(t)
	})

	t.Run("image shared with another record is kept", func(t *testing.T) {
		svc, repo, _ := newTestVenueService()
		images := &MockImageStore{}
		svc.SetImageStore(images)
		sharedLink := "http://localhost:9000/booking-images/poster_9f8e7d6c.jpg"
		repo.On("FindByID", ctx, uint(1)).Return(&models.Venue{ID: 1, ImageLink: sharedLink}, nil)
		repo.On("Update", ctx, uint(1), mock.Anything).Return(nil)
		images.On("Owns", sharedLink).Return(true)
		repo.On("ImageInUse", ctx, sharedLink).Return(true, nil)

		_, err := svc.UpdateVenue(ctx, 1, validVenueForm())

		require.NoError(t, err)
		images.AssertNotCalled(t, "DeleteFile", mock.Anything, mock.Anything)
	})

	t.Run("reference check failure keeps the image", func(t *testing.T) {
		svc, repo, _ := newTestVenueService()
		images := &MockImageStore{}
		svc.SetImageStore(images)
		oldLink := "http://localhost:9000/booking-images/hop_1234abcd.jpg"
		repo.On("FindByID", ctx, uint(1)).Return(&models.Venue{ID: 1, ImageLink: oldLink}, nil)
		repo.On("Update", ctx, uint(1), mock.Anything).Return(nil)
		images.On("Owns", oldLink).Return(true)
		repo.On("ImageInUse", ctx, oldLink).Return(false, errors.New("connection reset"))

		_, err := svc.UpdateVenue(ctx, 1, validVenueForm())

		require.NoError(t, err)
		images.AssertNotCalled(t, "DeleteFile", mock.Anything, mock.Anything)
	})
}

func TestDeleteVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes the cascade", func(t *testing.T) {
		svc, repo, publisher := newTestVenueService()
		repo.On("Delete", ctx, uint(1)).Return(&models.Venue{ID: 1, Name: "The Musical Hop"}, int64(3), nil)
		publisher.On("Publish", ctx, events.RoutingVenueDeleted,
			events.RecordDeleted{ID: 1, Name: "The Musical Hop", ShowsRemoved: 3}).Return(nil)

		require.NoError(t, svc.DeleteVenue(ctx, 1))
		publisher.AssertExpectations(t)
	})

	t.Run("publish failure does not fail the delete", func(t *testing.T) {
		svc, repo, publisher := newTestVenueService()
		repo.On("Delete", ctx, uint(1)).Return(&models.Venue{ID: 1}, int64(0), nil)
		publisher.On("Publish", ctx, events.RoutingVenueDeleted, mock.Anything).Return(errors.New("broker down"))

		assert.NoError(t, svc.DeleteVenue(ctx, 1))
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, repo, publisher := newTestVenueService()
		repo.On("Delete", ctx, uint(7)).Return(nil, int64(0), repository.ErrNotFound)

		err := svc.DeleteVenue(ctx, 7)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListVenueAreas(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestVenueService()
	repo.On("FindAllWithShows", ctx).Return([]models.Venue{
		{ID: 3, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA",
			Shows: []models.Show{{StartTime: fixedNow.Add(time.Hour)}}},
		{ID: 2, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
	}, nil)

	areas, err := svc.ListVenueAreas(ctx)

	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "New York", areas[0].City)
	assert.Len(t, areas[0].Venues, 1)
	assert.Equal(t, "San Francisco", areas[1].City)
	assert.Equal(t, []models.VenueSummary{
		{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 1},
		{ID: 2, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 0},
	}, areas[1].Venues)
}
