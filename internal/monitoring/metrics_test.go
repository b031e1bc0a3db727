package monitoring

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTrackMutation(t *testing.T) {
	before := testutil.ToFloat64(recordMutations.WithLabelValues("venue", "create", "success"))
	failedBefore := testutil.ToFloat64(recordMutations.WithLabelValues("venue", "create", "error"))

	TrackMutation("venue", "create", nil)
	TrackMutation("venue", "create", errors.New("boom"))

	assert.Equal(t, before+1, testutil.ToFloat64(recordMutations.WithLabelValues("venue", "create", "success")))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(recordMutations.WithLabelValues("venue", "create", "error")))
}

func TestTrackSearchOutcomes(t *testing.T) {
	read := func(outcome string) float64 {
		return testutil.ToFloat64(searches.WithLabelValues("artist", outcome))
	}
	match, none, noTerm := read("match"), read("no_match"), read("no_term")

	TrackSearch("artist", 3, nil)
	TrackSearch("artist", 0, nil)
	TrackSearchWithoutTerm("artist")

	assert.Equal(t, match+1, read("match"))
	assert.Equal(t, none+1, read("no_match"))
	assert.Equal(t, noTerm+1, read("no_term"))
}
