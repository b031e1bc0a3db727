package services

import (
	"context"
	"errors"
	"net/url"

	"booking-backend/internal/events"
	"booking-backend/internal/models"
	"booking-backend/internal/monitoring"
	"booking-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type ShowService interface {
	ListShows(ctx context.Context) ([]models.ShowListing, error)
	CreateShow(ctx context.Context, form url.Values) (*models.Show, error)
	DeleteShow(ctx context.Context, id uint) error
}

type showService struct {
	repo      repository.ShowRepository
	publisher events.Publisher
	logger    *logrus.Logger
}

func NewShowService(repo repository.ShowRepository, publisher events.Publisher, logger *logrus.Logger) ShowService {
	return &showService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *showService) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	shows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, wrapStorage("list shows", err)
	}
	return shows, nil
}

func (s *showService) CreateShow(ctx context.Context, form url.Values) (*models.Show, error) {
	show, err := ShowInputFromForm(form).Parse()
	if err != nil {
		monitoring.TrackMutation("show", "create", err)
		return nil, err
	}

	err = s.repo.Create(ctx, show)
	monitoring.TrackMutation("show", "create", err)
	if err != nil {
		if refErr := referenceError(err); refErr != nil {
			return nil, refErr
		}
		return nil, wrapStorage("create show", err)
	}

	event := events.ShowScheduled{
		ShowID:    show.ID,
		VenueID:   show.VenueID,
		ArtistID:  show.ArtistID,
		StartTime: show.StartTime,
	}
	if err := s.publisher.Publish(ctx, events.RoutingShowScheduled, event); err != nil {
		s.logger.WithError(err).WithField("show_id", show.ID).Warn("Failed to publish show scheduled event")
	}

	s.logger.WithFields(logrus.Fields{
		"show_id":   show.ID,
		"venue_id":  show.VenueID,
		"artist_id": show.ArtistID,
	}).Info("Show listed")
	return show, nil
}

func (s *showService) DeleteShow(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	monitoring.TrackMutation("show", "delete", err)
	if err != nil {
		return wrapStorage("delete show", err)
	}

	if err := s.publisher.Publish(ctx, events.RoutingShowCancelled, events.ShowCancelled{ShowID: id}); err != nil {
		s.logger.WithError(err).WithField("show_id", id).Warn("Failed to publish show cancelled event")
	}

	s.logger.WithField("show_id", id).Info("Show deleted")
	return nil
}

// referenceError turns dangling venue or artist references into field
// errors. It returns nil when err is about something else.
func referenceError(err error) error {
	ve := &ValidationError{}
	if errors.Is(err, repository.ErrArtistReference) {
		ve.Fields = append(ve.Fields, FieldError{Field: "artist_id", Message: "no artist with this id"})
	}
	if errors.Is(err, repository.ErrVenueReference) {
		ve.Fields = append(ve.Fields, FieldError{Field: "venue_id", Message: "no venue with this id"})
	}
	if len(ve.Fields) == 0 {
		return nil
	}
	return ve
}
