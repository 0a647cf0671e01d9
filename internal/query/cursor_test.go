package query

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/fadilmartias/feedback-service/internal/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTripCreatedAt(t *testing.T) {
	sort := Sort{Field: FieldCreatedAt, Order: OrderDesc}
	id := uuid.New()
	ts := time.Date(2025, 5, 1, 10, 30, 0, 123456789, time.UTC)

	token := EncodeCursor(Cursor{Sort: sort, Time: ts, ID: id})
	got, err := DecodeCursor(token, sort)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.True(t, got.Time.Equal(ts))
	assert.Equal(t, sort, got.Sort)
}

func TestCursorRoundTripRating(t *testing.T) {
	sort := Sort{Field: FieldRating, Order: OrderAsc}
	id := uuid.New()

	token := EncodeCursor(Cursor{Sort: sort, Rating: 4, ID: id})
	got, err := DecodeCursor(token, sort)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, sort, got.Sort)
}

func TestCursorRejectsMalformedTokens(t *testing.T) {
	sort := DefaultSort()

	cases := map[string]string{
		"not base64":    "%%%not-base64%%%",
		"not json":      base64.RawURLEncoding.EncodeToString([]byte("not json")),
		"truncated":     EncodeCursor(Cursor{Sort: sort, Time: time.Now(), ID: uuid.New()})[:10],
		"empty payload": base64.RawURLEncoding.EncodeToString([]byte("{}")),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeCursor(token, sort)
			var cursorErr *apperror.InvalidCursorError
			require.ErrorAs(t, err, &cursorErr)
		})
	}
}

func TestCursorRejectsSortMismatch(t *testing.T) {
	token := EncodeCursor(Cursor{
		Sort: Sort{Field: FieldCreatedAt, Order: OrderDesc},
		Time: time.Now().UTC(),
		ID:   uuid.New(),
	})

	var cursorErr *apperror.InvalidCursorError

	_, err := DecodeCursor(token, Sort{Field: FieldCreatedAt, Order: OrderAsc})
	require.ErrorAs(t, err, &cursorErr)

	_, err = DecodeCursor(token, Sort{Field: FieldRating, Order: OrderDesc})
	require.ErrorAs(t, err, &cursorErr)
}

func TestCursorRejectsBadRatingKey(t *testing.T) {
	raw, err := json.Marshal(cursorToken{Field: FieldRating, Order: OrderDesc, Key: "not-a-number", ID: uuid.New()})
	require.NoError(t, err)

	_, err = DecodeCursor(base64.RawURLEncoding.EncodeToString(raw), Sort{Field: FieldRating, Order: OrderDesc})
	var cursorErr *apperror.InvalidCursorError
	require.ErrorAs(t, err, &cursorErr)
}

func TestCursorRejectsBadTimestampKey(t *testing.T) {
	raw, err := json.Marshal(cursorToken{Field: FieldCreatedAt, Order: OrderDesc, Key: "yesterday", ID: uuid.New()})
	require.NoError(t, err)

	_, err = DecodeCursor(base64.RawURLEncoding.EncodeToString(raw), DefaultSort())
	var cursorErr *apperror.InvalidCursorError
	require.ErrorAs(t, err, &cursorErr)
}
