// Package events defines the messages published to the broker after a
// booking change commits, and the publisher that sends them.
package events

import "time"

const (
	RoutingShowScheduled = "show.scheduled"
	RoutingShowCancelled = "show.cancelled"
	RoutingVenueDeleted  = "venue.deleted"
	RoutingArtistDeleted = "artist.deleted"
)

// ShowScheduled is published when a show is listed.
type ShowScheduled struct {
	ShowID    uint      `json:"show_id"`
	VenueID   uint      `json:"venue_id"`
	ArtistID  uint      `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

type ShowCancelled struct {
	ShowID uint `json:"show_id"`
}

// RecordDeleted is published for venue and artist deletions. ShowsRemoved
// counts the shows that went with the record.
type RecordDeleted struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	ShowsRemoved int64  `json:"shows_removed"`
}
