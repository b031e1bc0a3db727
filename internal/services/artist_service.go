package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"booking-backend/internal/events"
	"booking-backend/internal/models"
	"booking-backend/internal/monitoring"
	"booking-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type ArtistService interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) (*SearchResult[models.ArtistSummary], error)
	GetArtist(ctx context.Context, id uint) (*models.ArtistDetail, error)
	GetArtistForEdit(ctx context.Context, id uint) (*models.Artist, error)
	CreateArtist(ctx context.Context, form url.Values) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id uint, form url.Values) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id uint) error
}

type artistService struct {
	repo      repository.ArtistRepository
	publisher events.Publisher
	images    ImageStore
	logger    *logrus.Logger
	now       func() time.Time
}

func NewArtistService(repo repository.ArtistRepository, publisher events.Publisher, logger *logrus.Logger) ArtistService {
	return &artistService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *artistService) SetImageStore(store ImageStore) {
	s.images = store
}

func (s *artistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	artists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, wrapStorage("list artists", err)
	}
	return artists, nil
}

func (s *artistService) SearchArtists(ctx context.Context, term string) (*SearchResult[models.ArtistSummary], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		monitoring.TrackSearchWithoutTerm("artist")
		return nil, ErrEmptySearchTerm
	}

	artists, err := s.repo.SearchByName(ctx, term)
	monitoring.TrackSearch("artist", len(artists), err)
	if err != nil {
		return nil, wrapStorage("search artists", err)
	}

	now := s.now()
	result := &SearchResult[models.ArtistSummary]{
		SearchTerm: term,
		Count:      len(artists),
		Data:       make([]models.ArtistSummary, 0, len(artists)),
	}
	for _, a := range artists {
		result.Data = append(result.Data, models.ArtistSummary{
			ID:               a.ID,
			Name:             a.Name,
			NumUpcomingShows: models.CountUpcoming(a.Shows, now),
		})
	}
	return result, nil
}

func (s *artistService) GetArtist(ctx context.Context, id uint) (*models.ArtistDetail, error) {
	artist, err := s.repo.FindByIDWithShows(ctx, id)
	if err != nil {
		return nil, wrapStorage("get artist", err)
	}
	return newArtistDetail(artist, s.now()), nil
}

func (s *artistService) GetArtistForEdit(ctx context.Context, id uint) (*models.Artist, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStorage("get artist", err)
	}
	return artist, nil
}

func (s *artistService) CreateArtist(ctx context.Context, form url.Values) (*models.Artist, error) {
	input := ArtistInputFromForm(form)
	if err := input.Validate(); err != nil {
		monitoring.TrackMutation("artist", "create", err)
		return nil, err
	}

	artist := input.Model()
	err := s.repo.Create(ctx, artist)
	monitoring.TrackMutation("artist", "create", err)
	if err != nil {
		return nil, wrapStorage("create artist", err)
	}

	s.logger.WithFields(logrus.Fields{
		"artist_id": artist.ID,
		"name":      artist.Name,
	}).Info("Artist listed")
	return artist, nil
}

func (s *artistService) UpdateArtist(ctx context.Context, id uint, form url.Values) (*models.Artist, error) {
	input := ArtistInputFromForm(form)
	if err := input.Validate(); err != nil {
		monitoring.TrackMutation("artist", "update", err)
		return nil, err
	}

	var previousImage string
	if s.images != nil {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			monitoring.TrackMutation("artist", "update", err)
			return nil, wrapStorage("update artist", err)
		}
		previousImage = existing.ImageLink
	}

	artist := input.Model()
	err := s.repo.Update(ctx, id, artist)
	monitoring.TrackMutation("artist", "update", err)
	if err != nil {
		return nil, wrapStorage("update artist", err)
	}

	if previousImage != artist.ImageLink {
		s.removeImage(ctx, previousImage)
	}

	s.logger.WithField("artist_id", id).Info("Artist updated")
	return artist, nil
}

func (s *artistService) DeleteArtist(ctx context.Context, id uint) error {
	artist, showsRemoved, err := s.repo.Delete(ctx, id)
	monitoring.TrackMutation("artist", "delete", err)
	if err != nil {
		return wrapStorage("delete artist", err)
	}

	s.removeImage(ctx, artist.ImageLink)

	event := events.RecordDeleted{ID: artist.ID, Name: artist.Name, ShowsRemoved: showsRemoved}
	if err := s.publisher.Publish(ctx, events.RoutingArtistDeleted, event); err != nil {
		s.logger.WithError(err).WithField("artist_id", id).Warn("Failed to publish artist deleted event")
	}

	s.logger.WithFields(logrus.Fields{
		"artist_id":     id,
		"shows_removed": showsRemoved,
	}).Info("Artist deleted")
	return nil
}

// removeImage deletes link from the image store when the store owns it and
// no venue or artist refers to it anymore.
// Failures are logged only; the record change has already committed.
func (s *artistService) removeImage(ctx context.Context, link string) {
	if s.images == nil || !s.images.Owns(link) {
		return
	}
	inUse, err := s.repo.ImageInUse(ctx, link)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to check artist image references, keeping image")
		return
	}
	if inUse {
		s.logger.WithField("image_link", link).Debug("Image still referenced, keeping it")
		return
	}
	if err := s.images.DeleteFile(ctx, link); err != nil {
		s.logger.WithError(err).Warn("Failed to delete old artist image from MinIO")
	}
}
