package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogEntry struct {
	Code  string `json:"code"`
	Price int    `json:"price"`
}

func TestEncodeDecode(t *testing.T) {
	raw, err := encode("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", string(raw))

	raw, err = encode(catalogEntry{Code: "neuvaine", Price: 9000})
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"neuvaine","price":9000}`, string(raw))

	var entry catalogEntry
	require.NoError(t, decode(string(raw), &entry))
	assert.Equal(t, catalogEntry{Code: "neuvaine", Price: 9000}, entry)

	var text string
	require.NoError(t, decode(`{"not":"parsed"}`, &text))
	assert.Equal(t, `{"not":"parsed"}`, text)
}

func TestEncodeDecode_Errors(t *testing.T) {
	_, err := encode(make(chan int))
	assert.ErrorContains(t, err, "failed to marshal cache value")

	var count int
	assert.ErrorContains(t, decode("not-a-number", &count), "failed to unmarshal cache value")
}
