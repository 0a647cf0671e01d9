package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/feedback-service/internal/apperror"
	"github.com/fadilmartias/feedback-service/internal/model"
	"github.com/fadilmartias/feedback-service/internal/query"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ProfileFeedbackRepository struct {
	db *gorm.DB
}

func NewProfileFeedbackRepository(db *gorm.DB) *ProfileFeedbackRepository {
	return &ProfileFeedbackRepository{db}
}

func (r *ProfileFeedbackRepository) Insert(fb *model.ProfileFeedback) error {
	if err := r.db.Create(fb).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.NewConflictError("feedback already exists for this (match_id, reviewer)")
		}
		return err
	}
	return nil
}

func (r *ProfileFeedbackRepository) FindByID(id uuid.UUID) (*model.ProfileFeedback, error) {
	var fb model.ProfileFeedback
	if err := r.db.First(&fb, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("profile feedback", id)
		}
		return nil, err
	}
	return &fb, nil
}

// Update applies the supplied columns atomically; the row version the
// caller saw does not matter because only supplied fields are touched.
func (r *ProfileFeedbackRepository) Update(id uuid.UUID, changes map[string]any) (*model.ProfileFeedback, error) {
	if len(changes) == 0 {
		changes = map[string]any{"updated_at": time.Now().UTC()}
	}
	res := r.db.Model(&model.ProfileFeedback{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("feedback already exists for this (match_id, reviewer)")
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NewNotFoundError("profile feedback", id)
	}
	return r.FindByID(id)
}

func (r *ProfileFeedbackRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.ProfileFeedback{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("profile feedback", id)
	}
	return nil
}

// Search returns up to limit records matching f in sort order, resuming
// strictly past the keyset position when after is set. The (key, id) row
// comparison keeps pages stable under concurrent inserts and deletes.
func (r *ProfileFeedbackRepository) Search(f query.ProfileFilter, sort query.Sort, after *query.Cursor, limit int) ([]model.ProfileFeedback, error) {
	db := applyProfileFilter(r.db.Model(&model.ProfileFeedback{}), f)

	col := profileSortColumn(sort.Field)
	if after != nil {
		op := ">"
		if sort.Desc() {
			op = "<"
		}
		var key any = after.Time
		if sort.Field == query.FieldRating {
			key = after.Rating
		}
		db = db.Where(fmt.Sprintf("(%s, id) %s (?, ?)", col, op), key, after.ID)
	}

	dir := "ASC"
	if sort.Desc() {
		dir = "DESC"
	}
	var items []model.ProfileFeedback
	err := db.Order(fmt.Sprintf("%s %s, id %s", col, dir, dir)).Limit(limit).Find(&items).Error
	return items, err
}

// SearchAll returns every record matching f, for aggregation. It applies
// the exact same filter translation as Search so listing and stats always
// agree on which records qualify.
func (r *ProfileFeedbackRepository) SearchAll(f query.ProfileFilter) ([]model.ProfileFeedback, error) {
	var items []model.ProfileFeedback
	err := applyProfileFilter(r.db.Model(&model.ProfileFeedback{}), f).Find(&items).Error
	return items, err
}

func applyProfileFilter(db *gorm.DB, f query.ProfileFilter) *gorm.DB {
	if f.RevieweeProfileID != nil {
		db = db.Where("reviewee_profile_id = ?", *f.RevieweeProfileID)
	}
	if f.ReviewerProfileID != nil {
		db = db.Where("reviewer_profile_id = ?", *f.ReviewerProfileID)
	}
	if f.MatchID != nil {
		db = db.Where("match_id = ?", *f.MatchID)
	}
	if f.MinOverall != nil {
		db = db.Where("overall_experience >= ?", *f.MinOverall)
	}
	if f.MaxOverall != nil {
		db = db.Where("overall_experience <= ?", *f.MaxOverall)
	}
	if f.Since != nil {
		db = db.Where("created_at >= ?", *f.Since)
	}
	if len(f.Tags) > 0 {
		db = db.Where("tags && ?", pq.Array(f.Tags))
	}
	return db
}

func profileSortColumn(field query.Field) string {
	if field == query.FieldRating {
		return "overall_experience"
	}
	return "created_at"
}
