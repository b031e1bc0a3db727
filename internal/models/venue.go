package models

import (
	"time"

	"gorm.io/gorm"
)

type Venue struct {
	ID                 uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name               string    `gorm:"size:255;not null;index" json:"name" example:"The Musical Hop"`
	City               string    `gorm:"size:120" json:"city" example:"San Francisco"`
	State              string    `gorm:"size:120" json:"state" example:"CA"`
	Address            string    `gorm:"size:120" json:"address" example:"1015 Folsom Street"`
	Phone              string    `gorm:"size:120" json:"phone" example:"123-123-1234"`
	Genres             []string  `gorm:"type:jsonb;not null;serializer:json" json:"genres"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	WebsiteLink        string    `gorm:"size:120" json:"website_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	SeekingTalent      bool      `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string    `gorm:"size:500" json:"seeking_description"`
	Shows              []Show    `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Venue) TableName() string {
	return "venue"
}

// BeforeSave keeps the non-null genres column from receiving a JSON null.
func (v *Venue) BeforeSave(tx *gorm.DB) error {
	if v.Genres == nil {
		v.Genres = []string{}
	}
	return nil
}

// VenueDetail is a venue with its shows split around the time of the read.
type VenueDetail struct {
	Venue
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// VenueSummary is the row shown in search results and area listings.
type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueArea groups venues that share a city and state.
type VenueArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}
