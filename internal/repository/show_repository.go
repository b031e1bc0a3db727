package repository

import (
	"context"
	"errors"
	"time"

	"booking-backend/internal/database"
	"booking-backend/internal/models"

	"gorm.io/gorm"
)

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	Delete(ctx context.Context, id uint) error
	FindAll(ctx context.Context) ([]models.ShowListing, error)
}

type showRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewShowRepository(db *database.Database) ShowRepository {
	return &showRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *showRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts a show after checking, in the same transaction, that both
// the venue and the artist exist. Missing references come back joined so the
// caller can report each one.
func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		var missing []error

		var venues int64
		if err := tx.Model(&models.Venue{}).Where("id = ?", show.VenueID).Count(&venues).Error; err != nil {
			return err
		}
		if venues == 0 {
			missing = append(missing, ErrVenueReference)
		}

		var artists int64
		if err := tx.Model(&models.Artist{}).Where("id = ?", show.ArtistID).Count(&artists).Error; err != nil {
			return err
		}
		if artists == 0 {
			missing = append(missing, ErrArtistReference)
		}

		if len(missing) > 0 {
			return errors.Join(missing...)
		}

		return tx.Omit("Venue", "Artist").Create(show).Error
	})
	return translateError(err)
}

func (r *showRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		res := tx.Delete(&models.Show{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *showRepository) FindAll(ctx context.Context) ([]models.ShowListing, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var shows []models.ShowListing
	err := r.db.WithContext(ctx).
		Table("shows").
		Select("shows.id, shows.start_time, shows.venue_id, venue.name AS venue_name, " +
			"shows.artist_id, artist.name AS artist_name, artist.image_link AS artist_image_link").
		Joins("JOIN venue ON venue.id = shows.venue_id").
		Joins("JOIN artist ON artist.id = shows.artist_id").
		Order("shows.start_time, shows.id").
		Scan(&shows).Error
	return shows, err
}
