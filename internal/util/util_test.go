package util

import (
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	a, b := NewULID(), NewULID()
	assert.NotEqual(t, a, b)
	_, err := ulid.Parse(a)
	require.NoError(t, err)
	assert.Less(t, a, b, "ulids from one process are monotonic")
}

func TestNewPrefixedID(t *testing.T) {
	id := NewPrefixedID("matematicas", "basico")
	require.True(t, strings.HasPrefix(id, "MATEMATICAS_BASICO_"), id)
	_, err := ulid.Parse(strings.TrimPrefix(id, "MATEMATICAS_BASICO_"))
	assert.NoError(t, err)

	assert.Len(t, NewPrefixedID(), 26)
	assert.True(t, strings.HasPrefix(NewPrefixedID("", "ses"), "SES_"))
}

func TestNullHelpers(t *testing.T) {
	assert.False(t, NullString("").Valid)
	assert.Equal(t, "x", NullString("x").String)

	assert.False(t, NullTime(nil).Valid)
	assert.False(t, NullTime(&time.Time{}).Valid)
	assert.Nil(t, TimePtr(NullTime(nil)))

	now := time.Now()
	back := TimePtr(NullTime(&now))
	require.NotNil(t, back)
	assert.True(t, back.Equal(now))
}
