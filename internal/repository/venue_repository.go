package repository

import (
	"context"
	"errors"
	"time"

	"booking-backend/internal/database"
	"booking-backend/internal/models"

	"gorm.io/gorm"
)

// venueColumns are overwritten on every update, zero values included.
var venueColumns = []string{
	"name", "city", "state", "address", "phone", "genres", "image_link",
	"website_link", "facebook_link", "seeking_talent", "seeking_description",
}

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, id uint, venue *models.Venue) error
	Delete(ctx context.Context, id uint) (*models.Venue, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindByIDWithShows(ctx context.Context, id uint) (*models.Venue, error)
	FindAll(ctx context.Context) ([]models.Venue, error)
	FindAllWithShows(ctx context.Context) ([]models.Venue, error)
	SearchByName(ctx context.Context, term string) ([]models.Venue, error)
	ImageInUse(ctx context.Context, link string) (bool, error)
}

type venueRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewVenueRepository(db *database.Database) VenueRepository {
	return &venueRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *venueRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		return tx.Omit("Shows").Create(venue).Error
	})
}

func (r *venueRepository) Update(ctx context.Context, id uint, venue *models.Venue) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		var existing models.Venue
		if err := tx.Select("id", "created_at").First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		venue.ID = existing.ID
		venue.CreatedAt = existing.CreatedAt
		return tx.Model(venue).Select(venueColumns).Updates(venue).Error
	})
}

func (r *venueRepository) Delete(ctx context.Context, id uint) (*models.Venue, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venue models.Venue
	var showsRemoved int64
	err := r.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		res := tx.Where("venue_id = ?", id).Delete(&models.Show{})
		if res.Error != nil {
			return res.Error
		}
		showsRemoved = res.RowsAffected

		return tx.Delete(&models.Venue{}, id).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return &venue, showsRemoved, nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venue models.Venue
	err := r.db.WithContext(ctx).First(&venue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindByIDWithShows(ctx context.Context, id uint) (*models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venue models.Venue
	err := r.db.WithContext(ctx).
		Preload("Shows", func(db *gorm.DB) *gorm.DB { return db.Order("start_time") }).
		Preload("Shows.Artist").
		First(&venue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context) ([]models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).Order("id").Find(&venues).Error
	return venues, err
}

func (r *venueRepository) FindAllWithShows(ctx context.Context) ([]models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).Preload("Shows").Order("state, city, id").Find(&venues).Error
	return venues, err
}

func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Preload("Shows").
		Where("name ILIKE ?", containsPattern(term)).
		Order("id").
		Find(&venues).Error
	return venues, err
}

func (r *venueRepository) ImageInUse(ctx context.Context, link string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return imageLinkInUse(r.db.WithContext(ctx), link)
}
