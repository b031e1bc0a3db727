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

type VenueService interface {
	ListVenues(ctx context.Context) ([]models.Venue, error)
	ListVenueAreas(ctx context.Context) ([]models.VenueArea, error)
	SearchVenues(ctx context.Context, term string) (*SearchResult[models.VenueSummary], error)
	GetVenue(ctx context.Context, id uint) (*models.VenueDetail, error)
	GetVenueForEdit(ctx context.Context, id uint) (*models.Venue, error)
	CreateVenue(ctx context.Context, form url.Values) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id uint, form url.Values) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error
}

type venueService struct {
	repo      repository.VenueRepository
	publisher events.Publisher
	images    ImageStore
	logger    *logrus.Logger
	now       func() time.Time
}

func NewVenueService(repo repository.VenueRepository, publisher events.Publisher, logger *logrus.Logger) VenueService {
	return &venueService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *venueService) SetImageStore(store ImageStore) {
	s.images = store
}

func (s *venueService) ListVenues(ctx context.Context) ([]models.Venue, error) {
	venues, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, wrapStorage("list venues", err)
	}
	return venues, nil
}

func (s *venueService) ListVenueAreas(ctx context.Context) ([]models.VenueArea, error) {
	venues, err := s.repo.FindAllWithShows(ctx)
	if err != nil {
		return nil, wrapStorage("list venue areas", err)
	}
	return groupVenueAreas(venues, s.now()), nil
}

func (s *venueService) SearchVenues(ctx context.Context, term string) (*SearchResult[models.VenueSummary], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		monitoring.TrackSearchWithoutTerm("venue")
		return nil, ErrEmptySearchTerm
	}

	venues, err := s.repo.SearchByName(ctx, term)
	monitoring.TrackSearch("venue", len(venues), err)
	if err != nil {
		return nil, wrapStorage("search venues", err)
	}

	now := s.now()
	result := &SearchResult[models.VenueSummary]{
		SearchTerm: term,
		Count:      len(venues),
		Data:       make([]models.VenueSummary, 0, len(venues)),
	}
	for _, v := range venues {
		result.Data = append(result.Data, models.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: models.CountUpcoming(v.Shows, now),
		})
	}
	return result, nil
}

func (s *venueService) GetVenue(ctx context.Context, id uint) (*models.VenueDetail, error) {
	venue, err := s.repo.FindByIDWithShows(ctx, id)
	if err != nil {
		return nil, wrapStorage("get venue", err)
	}
	return newVenueDetail(venue, s.now()), nil
}

func (s *venueService) GetVenueForEdit(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStorage("get venue", err)
	}
	return venue, nil
}

func (s *venueService) CreateVenue(ctx context.Context, form url.Values) (*models.Venue, error) {
	input := VenueInputFromForm(form)
	if err := input.Validate(); err != nil {
		monitoring.TrackMutation("venue", "create", err)
		return nil, err
	}

	venue := input.Model()
	err := s.repo.Create(ctx, venue)
	monitoring.TrackMutation("venue", "create", err)
	if err != nil {
		return nil, wrapStorage("create venue", err)
	}

	s.logger.WithFields(logrus.Fields{
		"venue_id": venue.ID,
		"name":     venue.Name,
	}).Info("Venue listed")
	return venue, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, id uint, form url.Values) (*models.Venue, error) {
	input := VenueInputFromForm(form)
	if err := input.Validate(); err != nil {
		monitoring.TrackMutation("venue", "update", err)
		return nil, err
	}

	var previousImage string
	if s.images != nil {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			monitoring.TrackMutation("venue", "update", err)
			return nil, wrapStorage("update venue", err)
		}
		previousImage = existing.ImageLink
	}

	venue := input.Model()
	err := s.repo.Update(ctx, id, venue)
	monitoring.TrackMutation("venue", "update", err)
	if err != nil {
		return nil, wrapStorage("update venue", err)
	}

	if previousImage != venue.ImageLink {
		s.removeImage(ctx, previousImage)
	}

	s.logger.WithField("venue_id", id).Info("Venue updated")
	return venue, nil
}

func (s *venueService) DeleteVenue(ctx context.Context, id uint) error {
	venue, showsRemoved, err := s.repo.Delete(ctx, id)
	monitoring.TrackMutation("venue", "delete", err)
	if err != nil {
		return wrapStorage("delete venue", err)
	}

	s.removeImage(ctx, venue.ImageLink)

	event := events.RecordDeleted{ID: venue.ID, Name: venue.Name, ShowsRemoved: showsRemoved}
	if err := s.publisher.Publish(ctx, events.RoutingVenueDeleted, event); err != nil {
		s.logger.WithError(err).WithField("venue_id", id).Warn("Failed to publish venue deleted event")
	}

	s.logger.WithFields(logrus.Fields{
		"venue_id":      id,
		"shows_removed": showsRemoved,
	}).Info("Venue deleted")
	return nil
}

// removeImage deletes link from the image store when the store owns it and
// no venue or artist refers to it anymore.
// Failures are logged only; the record change has already committed.
func (s *venueService) removeImage(ctx context.Context, link string) {
	if s.images == nil || !s.images.Owns(link) {
		return
	}
	inUse, err := s.repo.ImageInUse(ctx, link)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to check venue image references, keeping image")
		return
	}
	if inUse {
		s.logger.WithField("image_link", link).Debug("Image still referenced, keeping it")
		return
	}
	if err := s.images.DeleteFile(ctx, link); err != nil {
		s.logger.WithError(err).Warn("Failed to delete old venue image from MinIO")
	}
}
