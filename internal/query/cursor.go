package query

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"github.com/fadilmartias/feedback-service/internal/apperror"
	"github.com/google/uuid"
)

// Cursor is a decoded keyset position: the sort key value and id of the
// last item of the previous page, plus the sort spec that produced it.
// Time is set when Sort.Field is created_at, Rating when it is rating.
type Cursor struct {
	Sort   Sort
	Time   time.Time
	Rating int
	ID     uuid.UUID
}

// cursorToken is the wire form, shipped to clients as base64url(JSON).
// The token is opaque to callers; no format compatibility is promised.
type cursorToken struct {
	Field Field     `json:"f"`
	Order Order     `json:"o"`
	Key   string    `json:"k"`
	ID    uuid.UUID `json:"id"`
}

// EncodeCursor builds the opaque continuation token for c.
func EncodeCursor(c Cursor) string {
	tok := cursorToken{Field: c.Sort.Field, Order: c.Sort.Order, ID: c.ID}
	switch c.Sort.Field {
	case FieldRating:
		tok.Key = strconv.Itoa(c.Rating)
	default:
		tok.Key = c.Time.UTC().Format(time.RFC3339Nano)
	}
	raw, _ := json.Marshal(tok)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor parses token and checks it against the sort spec of the
// current request. A cursor produced under a different sort would make the
// continuation ordering undefined, so mismatches are rejected rather than
// ignored.
func DecodeCursor(token string, sort Sort) (*Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, apperror.NewInvalidCursorError("token is not valid base64url")
	}

	var tok cursorToken
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, apperror.NewInvalidCursorError("token payload is malformed")
	}
	if tok.Field != sort.Field || tok.Order != sort.Order {
		return nil, apperror.NewInvalidCursorError("token sort does not match request sort")
	}
	if tok.ID == uuid.Nil {
		return nil, apperror.NewInvalidCursorError("token is missing a tie-break id")
	}

	c := &Cursor{Sort: sort, ID: tok.ID}
	switch sort.Field {
	case FieldRating:
		rating, err := strconv.Atoi(tok.Key)
		if err != nil {
			return nil, apperror.NewInvalidCursorError("token rating key is malformed")
		}
		c.Rating = rating
	default:
		t, err := time.Parse(time.RFC3339Nano, tok.Key)
		if err != nil {
			return nil, apperror.NewInvalidCursorError("token timestamp key is malformed")
		}
		c.Time = t
	}
	return c, nil
}
