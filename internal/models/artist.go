package models

import (
	"time"

	"gorm.io/gorm"
)

type Artist struct {
	ID                 uint      `gorm:"primaryKey" json:"id" example:"4"`
	Name               string    `gorm:"size:255;not null;index" json:"name" example:"Guns N Petals"`
	City               string    `gorm:"size:120" json:"city" example:"San Francisco"`
	State              string    `gorm:"size:120" json:"state" example:"CA"`
	Phone              string    `gorm:"size:120" json:"phone" example:"326-123-5000"`
	Genres             []string  `gorm:"type:jsonb;not null;serializer:json" json:"genres"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string    `gorm:"size:120" json:"website_link"`
	SeekingVenue       bool      `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string    `gorm:"size:500" json:"seeking_description"`
	Shows              []Show    `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Artist) TableName() string {
	return "artist"
}

func (a *Artist) BeforeSave(tx *gorm.DB) error {
	if a.Genres == nil {
		a.Genres = []string{}
	}
	return nil
}

type ArtistDetail struct {
	Artist
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type ArtistSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}
