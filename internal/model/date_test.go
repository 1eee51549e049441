package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2024-08-05")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-08-05"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-08-05"`), &parsed))
	assert.Equal(t, d, parsed)

	assert.Error(t, json.Unmarshal([]byte(`"08/05/2024"`), &parsed),
		"wire format is canonical only")
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, 8, 5, 23, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2024-08-05", d.String())

	require.NoError(t, d.Scan("2024-08-05"))
	assert.Equal(t, "2024-08-05", d.String())

	require.NoError(t, d.Scan("2024-08-05 00:00:00+00:00"))
	assert.Equal(t, "2024-08-05", d.String())

	assert.Error(t, d.Scan(42))
}

func TestNewDateTruncates(t *testing.T) {
	d := NewDate(time.Date(2024, 8, 5, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "2024-08-05", d.String())
	assert.Equal(t, 0, d.Hour())
}
