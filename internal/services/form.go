package services

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"booking-backend/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// GenreChoices are the genres a venue or artist may list.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

// StartTimeLayouts are tried in order when parsing a show's start time.
// Values without a zone are read as UTC.
var StartTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

var (
	phonePattern = regexp.MustCompile(`^[0-9+\-(). ]{7,20}$`)

	errInvalidPhone     = validation.NewError("validation_phone", "must be a phone number of 7 to 20 digits, spaces or +-().")
	errInvalidStartTime = validation.NewError("validation_start_time", "must be a date and time such as 2006-01-02 15:04")
	errInvalidID        = validation.NewError("validation_id", "must be a positive integer")

	genreRule = validation.In(stringsToValues(GenreChoices)...).Error("must be one of the listed genres")
)

var venueFieldOrder = []string{
	"name", "city", "state", "address", "phone", "genres", "image_link",
	"website_link", "facebook_link", "seeking_talent", "seeking_description",
}

var artistFieldOrder = []string{
	"name", "city", "state", "phone", "genres", "image_link",
	"facebook_link", "website_link", "seeking_venue", "seeking_description",
}

var showFieldOrder = []string{"artist_id", "venue_id", "start_time"}

// VenueInput is a venue form after coercion, before validation.
type VenueInput struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	GenresProvided     bool
	ImageLink          string
	WebsiteLink        string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
}

func VenueInputFromForm(form url.Values) VenueInput {
	genres, provided := formGenres(form)
	return VenueInput{
		Name:               formText(form, "name"),
		City:               formText(form, "city"),
		State:              formText(form, "state"),
		Address:            formText(form, "address"),
		Phone:              formText(form, "phone"),
		Genres:             genres,
		GenresProvided:     provided,
		ImageLink:          formText(form, "image_link"),
		WebsiteLink:        formText(form, "website_link"),
		FacebookLink:       formText(form, "facebook_link"),
		SeekingTalent:      formFlag(form, "seeking_talent"),
		SeekingDescription: formText(form, "seeking_description"),
	}
}

func (in VenueInput) Validate() error {
	return newValidationError(validation.Errors{
		"name":                validation.Validate(in.Name, validation.Required, validation.Length(1, 255)),
		"city":                validation.Validate(in.City, validation.Required, validation.Length(1, 120)),
		"state":               validation.Validate(in.State, validation.Required, validation.Length(1, 120)),
		"address":             validation.Validate(in.Address, validation.Required, validation.Length(1, 120)),
		"phone":               validation.Validate(in.Phone, validation.Match(phonePattern).ErrorObject(errInvalidPhone)),
		"genres":              validateGenres(in.Genres, in.GenresProvided),
		"image_link":          validation.Validate(in.ImageLink, is.URL, validation.Length(0, 500)),
		"website_link":        validation.Validate(in.WebsiteLink, is.URL, validation.Length(0, 120)),
		"facebook_link":       validation.Validate(in.FacebookLink, is.URL, validation.Length(0, 120)),
		"seeking_description": validation.Validate(in.SeekingDescription, validation.Length(0, 500)),
	}, venueFieldOrder)
}

// Model returns the venue the input describes. Every mutable field is set so
// an update overwrites the whole record.
func (in VenueInput) Model() *models.Venue {
	return &models.Venue{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Address:            in.Address,
		Phone:              in.Phone,
		Genres:             nonNilGenres(in.Genres),
		ImageLink:          in.ImageLink,
		WebsiteLink:        in.WebsiteLink,
		FacebookLink:       in.FacebookLink,
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
	}
}

type ArtistInput struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	GenresProvided     bool
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	SeekingVenue       bool
	SeekingDescription string
}

func ArtistInputFromForm(form url.Values) ArtistInput {
	genres, provided := formGenres(form)
	return ArtistInput{
		Name:               formText(form, "name"),
		City:               formText(form, "city"),
		State:              formText(form, "state"),
		Phone:              formText(form, "phone"),
		Genres:             genres,
		GenresProvided:     provided,
		ImageLink:          formText(form, "image_link"),
		FacebookLink:       formText(form, "facebook_link"),
		WebsiteLink:        formText(form, "website_link"),
		SeekingVenue:       formFlag(form, "seeking_venue"),
		SeekingDescription: formText(form, "seeking_description"),
	}
}

func (in ArtistInput) Validate() error {
	return newValidationError(validation.Errors{
		"name":                validation.Validate(in.Name, validation.Required, validation.Length(1, 255)),
		"city":                validation.Validate(in.City, validation.Required, validation.Length(1, 120)),
		"state":               validation.Validate(in.State, validation.Required, validation.Length(1, 120)),
		"phone":               validation.Validate(in.Phone, validation.Match(phonePattern).ErrorObject(errInvalidPhone)),
		"genres":              validateGenres(in.Genres, in.GenresProvided),
		"image_link":          validation.Validate(in.ImageLink, is.URL, validation.Length(0, 500)),
		"facebook_link":       validation.Validate(in.FacebookLink, is.URL, validation.Length(0, 120)),
		"website_link":        validation.Validate(in.WebsiteLink, is.URL, validation.Length(0, 120)),
		"seeking_description": validation.Validate(in.SeekingDescription, validation.Length(0, 500)),
	}, artistFieldOrder)
}

func (in ArtistInput) Model() *models.Artist {
	return &models.Artist{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		Genres:             nonNilGenres(in.Genres),
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		WebsiteLink:        in.WebsiteLink,
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: in.SeekingDescription,
	}
}

// ShowInput holds the raw show form values; Parse turns them into a show.
type ShowInput struct {
	ArtistID  string
	VenueID   string
	StartTime string
}

func ShowInputFromForm(form url.Values) ShowInput {
	return ShowInput{
		ArtistID:  formText(form, "artist_id"),
		VenueID:   formText(form, "venue_id"),
		StartTime: formText(form, "start_time"),
	}
}

func (in ShowInput) Parse() (*models.Show, error) {
	errs := validation.Errors{}
	show := &models.Show{}

	var err error
	if show.ArtistID, err = parseID(in.ArtistID); err != nil {
		errs["artist_id"] = err
	}
	if show.VenueID, err = parseID(in.VenueID); err != nil {
		errs["venue_id"] = err
	}
	if show.StartTime, err = parseStartTime(in.StartTime); err != nil {
		errs["start_time"] = err
	}

	if err := newValidationError(errs, showFieldOrder); err != nil {
		return nil, err
	}
	return show, nil
}

func formText(form url.Values, key string) string {
	return strings.TrimSpace(form.Get(key))
}

// formFlag is true when the field is present with a non-empty first value,
// whatever that value says.
func formFlag(form url.Values, key string) bool {
	return form.Get(key) != ""
}

// formGenres collects every genres value, dropping blanks. The second result
// reports whether the field was submitted at all.
func formGenres(form url.Values) ([]string, bool) {
	values, ok := form["genres"]
	if !ok {
		return nil, false
	}
	genres := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			genres = append(genres, v)
		}
	}
	return genres, true
}

func validateGenres(genres []string, provided bool) error {
	if !provided {
		return validation.ErrRequired
	}
	return validation.Validate(genres, validation.Each(genreRule))
}

func parseStartTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, validation.ErrRequired
	}
	for _, layout := range StartTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errInvalidStartTime
}

// parseID accepts ids that fit the int4 serial columns.
func parseID(value string) (uint, error) {
	if value == "" {
		return 0, validation.ErrRequired
	}
	id, err := strconv.ParseUint(value, 10, 31)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

func nonNilGenres(genres []string) []string {
	if genres == nil {
		return []string{}
	}
	return genres
}

func stringsToValues(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
