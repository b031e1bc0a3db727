package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:9000/booking-images/",
		objectBaseURL("http://localhost:9000/booking-images", "booking-images"))
	assert.Equal(t, "https://cdn.example.com/booking-images/",
		objectBaseURL("https://cdn.example.com", "booking-images"))
}

func TestUniqueObjectName(t *testing.T) {
	name, contentType, err := uniqueObjectName("my poster.PNG")
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Regexp(t, regexp.MustCompile(`^my-poster_[0-9a-f-]{8}\.png$`), name)

	other, _, err := uniqueObjectName("my poster.PNG")
	require.NoError(t, err)
	assert.NotEqual(t, name, other)

	name, _, err = uniqueObjectName("../../etc/hop.jpg")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^hop_[0-9a-f-]{8}\.jpg$`), name)

	for _, filename := range []string{"", "notes.txt", "archive.tar.gz", "noext"} {
		_, _, err := uniqueObjectName(filename)
		assert.ErrorIs(t, err, ErrUnsupportedImage, filename)
	}
}

func TestMinIOService_Owns(t *testing.T) {
	store := &MinIOService{objectBase: "http://localhost:9000/booking-images/"}

	assert.True(t, store.Owns("http://localhost:9000/booking-images/hop_1a2b3c4d.jpg"))
	assert.False(t, store.Owns("http://localhost:9000/booking-images/"))
	assert.False(t, store.Owns("https://images.example.com/hop.jpg"))
	assert.False(t, store.Owns(""))
}
