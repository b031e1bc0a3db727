package services

import (
	"time"

	"booking-backend/internal/models"
)

// SearchResult is what a name search returns.
type SearchResult[T any] struct {
	SearchTerm string `json:"search_term"`
	Count      int    `json:"count"`
	Data       []T    `json:"data"`
}

func newVenueDetail(venue *models.Venue, now time.Time) *models.VenueDetail {
	detail := &models.VenueDetail{
		Venue:         *venue,
		PastShows:     []models.ArtistShow{},
		UpcomingShows: []models.ArtistShow{},
	}
	for _, show := range venue.Shows {
		entry := models.ArtistShow{ArtistID: show.ArtistID, StartTime: show.StartTime}
		if show.Artist != nil {
			entry.ArtistName = show.Artist.Name
			entry.ArtistImageLink = show.Artist.ImageLink
		}
		if show.IsPast(now) {
			detail.PastShows = append(detail.PastShows, entry)
		} else {
			detail.UpcomingShows = append(detail.UpcomingShows, entry)
		}
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail
}

func newArtistDetail(artist *models.Artist, now time.Time) *models.ArtistDetail {
	detail := &models.ArtistDetail{
		Artist:        *artist,
		PastShows:     []models.VenueShow{},
		UpcomingShows: []models.VenueShow{},
	}
	for _, show := range artist.Shows {
		entry := models.VenueShow{VenueID: show.VenueID, StartTime: show.StartTime}
		if show.Venue != nil {
			entry.VenueName = show.Venue.Name
			entry.VenueImageLink = show.Venue.ImageLink
		}
		if show.IsPast(now) {
			detail.PastShows = append(detail.PastShows, entry)
		} else {
			detail.UpcomingShows = append(detail.UpcomingShows, entry)
		}
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail
}

// groupVenueAreas expects venues ordered by state then city.
func groupVenueAreas(venues []models.Venue, now time.Time) []models.VenueArea {
	areas := []models.VenueArea{}
	for _, v := range venues {
		summary := models.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: models.CountUpcoming(v.Shows, now),
		}
		last := len(areas) - 1
		if last >= 0 && areas[last].City == v.City && areas[last].State == v.State {
			areas[last].Venues = append(areas[last].Venues, summary)
			continue
		}
		areas = append(areas, models.VenueArea{
			City:   v.City,
			State:  v.State,
			Venues: []models.VenueSummary{summary},
		})
	}
	return areas
}
