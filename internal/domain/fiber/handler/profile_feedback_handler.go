package handler

import (
	"github.com/fadilmartias/feedback-service/internal/apperror"
	"github.com/fadilmartias/feedback-service/internal/dto"
	"github.com/fadilmartias/feedback-service/internal/query"
	"github.com/fadilmartias/feedback-service/internal/usecase"
	"github.com/fadilmartias/feedback-service/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ProfileFeedbackHandler struct {
	uc *usecase.ProfileFeedbackUsecase
}

func NewProfileFeedbackHandler(uc *usecase.ProfileFeedbackUsecase) *ProfileFeedbackHandler {
	return &ProfileFeedbackHandler{uc: uc}
}

func (h *ProfileFeedbackHandler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/feedback/profile")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	// static route must be registered ahead of /:id
	g.Get("/stats", h.Stats)
	g.Get("/:id", h.Get)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func (h *ProfileFeedbackHandler) Create(c *fiber.Ctx) error {
	var payload dto.ProfileFeedbackCreate
	if err := c.BodyParser(&payload); err != nil {
		return util.DomainErrorResponse(c, apperror.NewValidationError("", "request body must be valid JSON"))
	}
	out, err := h.uc.Create(&payload)
	if err != nil {
		return util.DomainErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "profile feedback created",
		Data:    out,
	})
}

func (h *ProfileFeedbackHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return util.DomainErrorResponse(c, err)
	}
	out, err := h.uc.Get(id)
	if err != nil {
		return util.DomainErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "profile feedback found",
		Data:    out,
	})
}

func (h *ProfileFeedbackHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return util.DomainErrorResponse(c, err)
	}
	var payload dto.ProfileFeedbackUpdate
	if err := c.BodyParser(&payload); err != nil {
		return util.DomainErrorResponse(c, apperror.NewValidationError("", "request body must be valid JSON"))
	}
	out, err := h.uc.Update(id, &payload)
	if err != nil {
		return util.DomainErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "profile feedback updated",
		Data:    out,
	})
}

func (h *ProfileFeedbackHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return util.DomainErrorResponse(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return util.DomainErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProfileFeedbackHandler) List(c *fiber.Ctx) error {
	filter, err := h.parseFilter(c)
	if err != nil {
		return util.DomainErrorResponse(c, err)
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return util.DomainErrorResponse(c, err)
	}

	page, err := h.uc.List(usecase.ProfileListParams{
		Filter: filter,
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
		Limit:  limit,
		Cursor: c.Query("cursor"),
	})
	if err != nil {
		return util.DomainErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "profile feedback listed",
		Data:    page,
	})
}

func (h *ProfileFeedbackHandler) Stats(c *fiber.Ctx) error {
	filter, err := h.parseFilter(c)
	if err != nil {
		return util.DomainErrorResponse(c, err)
	}
	stats, err := h.uc.Stats(filter)
	if err != nil {
		return util.DomainErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "profile feedback stats computed",
		Data:    stats,
	})
}

func (h *ProfileFeedbackHandler) parseFilter(c *fiber.Ctx) (query.ProfileFilter, error) {
	var f query.ProfileFilter
	var err error
	if f.RevieweeProfileID, err = queryUUID(c, "reviewee_profile_id"); err != nil {
		return f, err
	}
	if f.ReviewerProfileID, err = queryUUID(c, "reviewer_profile_id"); err != nil {
		return f, err
	}
	if f.MatchID, err = queryUUID(c, "match_id"); err != nil {
		return f, err
	}
	if f.MinOverall, err = queryInt(c, "min_overall"); err != nil {
		return f, err
	}
	if f.MaxOverall, err = queryInt(c, "max_overall"); err != nil {
		return f, err
	}
	if f.Since, err = queryTime(c, "since"); err != nil {
		return f, err
	}
	f.Tags = queryTags(c)
	return f, nil
}
