package query

import (
	"github.com/fadilmartias/feedback-service/internal/apperror"
)

// Field is an allow-listed sort field. FieldRating maps to the primary
// rating column of whichever feedback kind is being queried.
type Field string

type Order string

const (
	FieldCreatedAt Field = "created_at"
	FieldRating    Field = "rating"

	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Sort is a stable sort specification. Records are always ordered by the
// sort field first and by id second, so the order is total even when sort
// key values collide.
type Sort struct {
	Field Field
	Order Order
}

func DefaultSort() Sort {
	return Sort{Field: FieldCreatedAt, Order: OrderDesc}
}

// NewSort validates raw sort/order request parameters. Empty values fall
// back to created_at desc.
func NewSort(field, order string) (Sort, error) {
	s := DefaultSort()

	switch field {
	case "", string(FieldCreatedAt):
	case string(FieldRating):
		s.Field = FieldRating
	default:
		return Sort{}, apperror.NewValidationError("sort", "must be one of: created_at, rating")
	}

	switch order {
	case "", string(OrderDesc):
	case string(OrderAsc):
		s.Order = OrderAsc
	default:
		return Sort{}, apperror.NewValidationError("order", "must be one of: asc, desc")
	}

	return s, nil
}

func (s Sort) Desc() bool {
	return s.Order == OrderDesc
}
