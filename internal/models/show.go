package models

import "time"

type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	Venue     *Venue    `gorm:"foreignKey:VenueID" json:"-"`
	Artist    *Artist   `gorm:"foreignKey:ArtistID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Show) TableName() string {
	return "shows"
}

// IsPast reports whether the show started at or before now.
func (s Show) IsPast(now time.Time) bool {
	return !s.StartTime.After(now)
}

// ShowListing is a show joined with the names of its venue and artist.
type ShowListing struct {
	ID              uint      `json:"id"`
	StartTime       time.Time `json:"start_time"`
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
}

// ArtistShow is a show as seen from a venue page.
type ArtistShow struct {
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueShow is a show as seen from an artist page.
type VenueShow struct {
	VenueID        uint      `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// CountUpcoming returns how many shows start strictly after now.
func CountUpcoming(shows []Show, now time.Time) int {
	n := 0
	for _, s := range shows {
		if !s.IsPast(now) {
			n++
		}
	}
	return n
}
