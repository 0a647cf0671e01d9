package usecase

import (
	"github.com/fadilmartias/feedback-service/internal/model"
	"github.com/fadilmartias/feedback-service/internal/query"
	"github.com/google/uuid"
)

// ProfileFeedbackStore is the persistence contract the profile feedback
// usecase runs against. The production implementation is the GORM
// repository; tests substitute an in-memory store. Implementations must
// enforce the (match_id, reviewer) uniqueness rule atomically at write
// time and surface apperror kinds for not-found and conflict outcomes.
type ProfileFeedbackStore interface {
	Insert(fb *model.ProfileFeedback) error
	FindByID(id uuid.UUID) (*model.ProfileFeedback, error)
	Update(id uuid.UUID, changes map[string]any) (*model.ProfileFeedback, error)
	Delete(id uuid.UUID) error
	Search(f query.ProfileFilter, sort query.Sort, after *query.Cursor, limit int) ([]model.ProfileFeedback, error)
	SearchAll(f query.ProfileFilter) ([]model.ProfileFeedback, error)
}

// AppFeedbackStore is the persistence contract for app feedback.
type AppFeedbackStore interface {
	Insert(fb *model.AppFeedback) error
	FindByID(id uuid.UUID) (*model.AppFeedback, error)
	Update(id uuid.UUID, changes map[string]any) (*model.AppFeedback, error)
	Delete(id uuid.UUID) error
	Search(f query.AppFilter, sort query.Sort, after *query.Cursor, limit int) ([]model.AppFeedback, error)
	SearchAll(f query.AppFilter) ([]model.AppFeedback, error)
}
