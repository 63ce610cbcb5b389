package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"8h"`), &d))
	assert.Equal(t, 8*time.Hour, d.Duration)
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1500000000`), &d))
	assert.Equal(t, 1500*time.Millisecond, d.Duration)
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"later"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration{Duration: 90 * time.Minute}
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(data))

	var back Duration
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d.Duration, back.Duration)
}
