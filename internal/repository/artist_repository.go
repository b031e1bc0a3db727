package repository

import (
	"context"
	"errors"
	"time"

	"booking-backend/internal/database"
	"booking-backend/internal/models"

	"gorm.io/gorm"
)

var artistColumns = []string{
	"name", "city", "state", "phone", "genres", "image_link",
	"facebook_link", "website_link", "seeking_venue", "seeking_description",
}

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	Update(ctx context.Context, id uint, artist *models.Artist) error
	Delete(ctx context.Context, id uint) (*models.Artist, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindByIDWithShows(ctx context.Context, id uint) (*models.Artist, error)
	FindAll(ctx context.Context) ([]models.Artist, error)
	SearchByName(ctx context.Context, term string) ([]models.Artist, error)
	ImageInUse(ctx context.Context, link string) (bool, error)
}

type artistRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewArtistRepository(db *database.Database) ArtistRepository {
	return &artistRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *artistRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		return tx.Omit("Shows").Create(artist).Error
	})
}

func (r *artistRepository) Update(ctx context.Context, id uint, artist *models.Artist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		var existing models.Artist
		if err := tx.Select("id", "created_at").First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		artist.ID = existing.ID
		artist.CreatedAt = existing.CreatedAt
		return tx.Model(artist).Select(artistColumns).Updates(artist).Error
	})
}

func (r *artistRepository) Delete(ctx context.Context, id uint) (*models.Artist, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artist models.Artist
	var showsRemoved int64
	err := r.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		res := tx.Where("artist_id = ?", id).Delete(&models.Show{})
		if res.Error != nil {
			return res.Error
		}
		showsRemoved = res.RowsAffected

		return tx.Delete(&models.Artist{}, id).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return &artist, showsRemoved, nil
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artist models.Artist
	err := r.db.WithContext(ctx).First(&artist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindByIDWithShows(ctx context.Context, id uint) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artist models.Artist
	err := r.db.WithContext(ctx).
		Preload("Shows", func(db *gorm.DB) *gorm.DB { return db.Order("start_time") }).
		Preload("Shows.Venue").
		First(&artist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artists []models.Artist
	err := r.db.WithContext(ctx).Order("id").Find(&artists).Error
	return artists, err
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artists []models.Artist
	err := r.db.WithContext(ctx).
		Preload("Shows").
		Where("name ILIKE ?", containsPattern(term)).
		Order("id").
		Find(&artists).Error
	return artists, err
}

func (r *artistRepository) ImageInUse(ctx context.Context, link string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return imageLinkInUse(r.db.WithContext(ctx), link)
}
