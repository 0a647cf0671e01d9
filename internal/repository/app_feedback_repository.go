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

type AppFeedbackRepository struct {
	db *gorm.DB
}

func NewAppFeedbackRepository(db *gorm.DB) *AppFeedbackRepository {
	return &AppFeedbackRepository{db}
}

func (r *AppFeedbackRepository) Insert(fb *model.AppFeedback) error {
	return r.db.Create(fb).Error
}

func (r *AppFeedbackRepository) FindByID(id uuid.UUID) (*model.AppFeedback, error) {
	var fb model.AppFeedback
	if err := r.db.First(&fb, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("app feedback", id)
		}
		return nil, err
	}
	return &fb, nil
}

func (r *AppFeedbackRepository) Update(id uuid.UUID, changes map[string]any) (*model.AppFeedback, error) {
	if len(changes) == 0 {
		changes = map[string]any{"updated_at": time.Now().UTC()}
	}
	res := r.db.Model(&model.AppFeedback{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NewNotFoundError("app feedback", id)
	}
	return r.FindByID(id)
}

func (r *AppFeedbackRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.AppFeedback{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("app feedback", id)
	}
	return nil
}

func (r *AppFeedbackRepository) Search(f query.AppFilter, sort query.Sort, after *query.Cursor, limit int) ([]model.AppFeedback, error) {
	db := applyAppFilter(r.db.Model(&model.AppFeedback{}), f)

	col := appSortColumn(sort.Field)
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
	var items []model.AppFeedback
	err := db.Order(fmt.Sprintf("%s %s, id %s", col, dir, dir)).Limit(limit).Find(&items).Error
	return items, err
}

func (r *AppFeedbackRepository) SearchAll(f query.AppFilter) ([]model.AppFeedback, error) {
	var items []model.AppFeedback
	err := applyAppFilter(r.db.Model(&model.AppFeedback{}), f).Find(&items).Error
	return items, err
}

func applyAppFilter(db *gorm.DB, f query.AppFilter) *gorm.DB {
	if f.AuthorProfileID != nil {
		db = db.Where("author_profile_id = ?", *f.AuthorProfileID)
	}
	if f.MinOverall != nil {
		db = db.Where("overall >= ?", *f.MinOverall)
	}
	if f.MaxOverall != nil {
		db = db.Where("overall <= ?", *f.MaxOverall)
	}
	if f.Since != nil {
		db = db.Where("created_at >= ?", *f.Since)
	}
	if len(f.Tags) > 0 {
		db = db.Where("tags && ?", pq.Array(f.Tags))
	}
	return db
}

func appSortColumn(field query.Field) string {
	if field == query.FieldRating {
		return "overall"
	}
	return "created_at"
}
