package routes

import (
	"booking-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Venue  *handlers.VenueHandler
	Artist *handlers.ArtistHandler
	Show   *handlers.ShowHandler
	Upload *handlers.UploadHandler
}

// Setup registers the API. limit guards every route that writes.
func Setup(app *fiber.App, h Handlers, limit fiber.Handler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	venues := v1.Group("/venues")
	{
		venues.Get("/", h.Venue.ListVenues)
		venues.Get("/areas", h.Venue.ListVenueAreas)
		venues.Post("/search", h.Venue.SearchVenues)
		venues.Get("/:id", h.Venue.GetVenue)
		venues.Get("/:id/edit", h.Venue.GetVenueForEdit)
		venues.Post("/", limit, h.Venue.CreateVenue)
		venues.Put("/:id/edit", limit, h.Venue.UpdateVenue)
		venues.Post("/:id/edit", limit, h.Venue.UpdateVenue)
		venues.Delete("/:id", limit, h.Venue.DeleteVenue)
	}

	artists := v1.Group("/artists")
	{
		artists.Get("/", h.Artist.ListArtists)
		artists.Post("/search", h.Artist.SearchArtists)
		artists.Get("/:id", h.Artist.GetArtist)
		artists.Get("/:id/edit", h.Artist.GetArtistForEdit)
		artists.Post("/", limit, h.Artist.CreateArtist)
		artists.Put("/:id/edit", limit, h.Artist.UpdateArtist)
		artists.Post("/:id/edit", limit, h.Artist.UpdateArtist)
		artists.Delete("/:id", limit, h.Artist.DeleteArtist)
	}

	shows := v1.Group("/shows")
	{
		shows.Get("/", h.Show.ListShows)
		shows.Post("/", limit, h.Show.CreateShow)
		shows.Delete("/:id", limit, h.Show.DeleteShow)
	}

	upload := v1.Group("/upload")
	{
		upload.Get("/presign", limit, h.Upload.GetPresignedURL)
	}
}
