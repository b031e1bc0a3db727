package services

import (
	"context"
	"io"

	"booking-backend/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) Update(ctx context.Context, id uint, venue *models.Venue) error {
	args := m.Called(ctx, id, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) Delete(ctx context.Context, id uint) (*models.Venue, int64, error) {
	args := m.Called(ctx, id)
	venue, _ := args.Get(0).(*models.Venue)
	return venue, args.Get(1).(int64), args.Error(2)
}

func (m *MockVenueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	args := m.Called(ctx, id)
	venue, _ := args.Get(0).(*models.Venue)
	return venue, args.Error(1)
}

func (m *MockVenueRepository) FindByIDWithShows(ctx context.Context, id uint) (*models.Venue, error) {
	args := m.Called(ctx, id)
	venue, _ := args.Get(0).(*models.Venue)
	return venue, args.Error(1)
}

func (m *MockVenueRepository) FindAll(ctx context.Context) ([]models.Venue, error) {
	args := m.Called(ctx)
	venues, _ := args.Get(0).([]models.Venue)
	return venues, args.Error(1)
}

func (m *MockVenueRepository) FindAllWithShows(ctx context.Context) ([]models.Venue, error) {
	args := m.Called(ctx)
	venues, _ := args.Get(0).([]models.Venue)
	return venues, args.Error(1)
}

func (m *MockVenueRepository) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	args := m.Called(ctx, term)
	venues, _ := args.Get(0).([]models.Venue)
	return venues, args.Error(1)
}

func (m *MockVenueRepository) ImageInUse(ctx context.Context, link string) (bool, error) {
	args := m.Called(ctx, link)
	return args.Bool(0), args.Error(1)
}

type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) Create(ctx context.Context, artist *models.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) Update(ctx context.Context, id uint, artist *models.Artist) error {
	args := m.Called(ctx, id, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) Delete(ctx context.Context, id uint) (*models.Artist, int64, error) {
	args := m.Called(ctx, id)
	artist, _ := args.Get(0).(*models.Artist)
	return artist, args.Get(1).(int64), args.Error(2)
}

func (m *MockArtistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	args := m.Called(ctx, id)
	artist, _ := args.Get(0).(*models.Artist)
	return artist, args.Error(1)
}

func (m *MockArtistRepository) FindByIDWithShows(ctx context.Context, id uint) (*models.Artist, error) {
	args := m.Called(ctx, id)
	artist, _ := args.Get(0).(*models.Artist)
	return artist, args.Error(1)
}

func (m *MockArtistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	args := m.Called(ctx)
	artists, _ := args.Get(0).([]models.Artist)
	return artists, args.Error(1)
}

func (m *MockArtistRepository) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	args := m.Called(ctx, term)
	artists, _ := args.Get(0).([]models.Artist)
	return artists, args.Error(1)
}

func (m *MockArtistRepository) ImageInUse(ctx context.Context, link string) (bool, error) {
	args := m.Called(ctx, link)
	return args.Bool(0), args.Error(1)
}

type MockShowRepository struct {
	mock.Mock
}

func (m *MockShowRepository) Create(ctx context.Context, show *models.Show) error {
	args := m.Called(ctx, show)
	return args.Error(0)
}

func (m *MockShowRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShowRepository) FindAll(ctx context.Context) ([]models.ShowListing, error) {
	args := m.Called(ctx)
	shows, _ := args.Get(0).([]models.ShowListing)
	return shows, args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) PresignUpload(ctx context.Context, filename string) (*UploadTicket, error) {
	args := m.Called(ctx, filename)
	ticket, _ := args.Get(0).(*UploadTicket)
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
