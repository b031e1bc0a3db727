package handlers

import (
	"context"
	"io"
	"net/url"

	"booking-backend/internal/models"
	"booking-backend/internal/services"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type MockVenueService struct {
	mock.Mock
}

func (m *MockVenueService) ListVenues(ctx context.Context) ([]models.Venue, error) {
	args := m.Called(ctx)
	venues, _ := args.Get(0).([]models.Venue)
	return venues, args.Error(1)
}

func (m *MockVenueService) ListVenueAreas(ctx context.Context) ([]models.VenueArea, error) {
	args := m.Called(ctx)
	areas, _ := args.Get(0).([]models.VenueArea)
	return areas, args.Error(1)
}

func (m *MockVenueService) SearchVenues(ctx context.Context, term string) (*services.SearchResult[models.VenueSummary], error) {
	args := m.Called(ctx, term)
	result, _ := args.Get(0).(*services.SearchResult[models.VenueSummary])
	return result, args.Error(1)
}

func (m *MockVenueService) GetVenue(ctx context.Context, id uint) (*models.VenueDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*models.VenueDetail)
	return detail, args.Error(1)
}

func (m *MockVenueService) GetVenueForEdit(ctx context.Context, id uint) (*models.Venue, error) {
	args := m.Called(ctx, id)
	venue, _ := args.Get(0).(*models.Venue)
	return venue, args.Error(1)
}

func (m *MockVenueService) CreateVenue(ctx context.Context, form url.Values) (*models.Venue, error) {
	args := m.Called(ctx, form)
	venue, _ := args.Get(0).(*models.Venue)
	return venue, args.Error(1)
}

func (m *MockVenueService) UpdateVenue(ctx context.Context, id uint, form url.Values) (*models.Venue, error) {
	args := m.Called(ctx, id, form)
	venue, _ := args.Get(0).(*models.Venue)
	return venue, args.Error(1)
}

func (m *MockVenueService) DeleteVenue(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockArtistService struct {
	mock.Mock
}

func (m *MockArtistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	args := m.Called(ctx)
	artists, _ := args.Get(0).([]models.Artist)
	return artists, args.Error(1)
}

func (m *MockArtistService) SearchArtists(ctx context.Context, term string) (*services.SearchResult[models.ArtistSummary], error) {
	args := m.Called(ctx, term)
	result, _ := args.Get(0).(*services.SearchResult[models.ArtistSummary])
	return result, args.Error(1)
}

func (m *MockArtistService) GetArtist(ctx context.Context, id uint) (*models.ArtistDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*models.ArtistDetail)
	return detail, args.Error(1)
}

func (m *MockArtistService) GetArtistForEdit(ctx context.Context, id uint) (*models.Artist, error) {
	args := m.Called(ctx, id)
	artist, _ := args.Get(0).(*models.Artist)
	return artist, args.Error(1)
}

func (m *MockArtistService) CreateArtist(ctx context.Context, form url.Values) (*models.Artist, error) {
	args := m.Called(ctx, form)
	artist, _ := args.Get(0).(*models.Artist)
	return artist, args.Error(1)
}

func (m *MockArtistService) UpdateArtist(ctx context.Context, id uint, form url.Values) (*models.Artist, error) {
	args := m.Called(ctx, id, form)
	artist, _ := args.Get(0).(*models.Artist)
	return artist, args.Error(1)
}

func (m *MockArtistService) DeleteArtist(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockShowService struct {
	mock.Mock
}

func (m *MockShowService) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	args := m.Called(ctx)
	shows, _ := args.Get(0).([]models.ShowListing)
	return shows, args.Error(1)
}

func (m *MockShowService) CreateShow(ctx context.Context, form url.Values) (*models.Show, error) {
	args := m.Called(ctx, form)
	show, _ := args.Get(0).(*models.Show)
	return show, args.Error(1)
}

func (m *MockShowService) DeleteShow(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) PresignUpload(ctx context.Context, filename string) (*services.UploadTicket, error) {
	args := m.Called(ctx, filename)
	ticket, _ := args.Get(0).(*services.UploadTicket)
	return ticket, args.Error(1)
}

func (m *MockImageStore) Owns(link string) bool {
	return m.Called(link).Bool(0)
}

func (m *MockImageStore) DeleteFile(ctx context.Context, link string) error {
	return m.Called(ctx, link).Error(0)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
