package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "efectivio/internal/adapter/http/dto/request"
	"efectivio/internal/adapter/http/middleware"
	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase"
	"efectivio/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AdminHandler serves system settings, white-label profiles, users and the audit trail.
// Role checks live in the usecases; routes add RequireRole where a whole group is admin-only.
type AdminHandler struct {
	settings   usecase.ISettingsUseCase
	whiteLabel usecase.IWhiteLabelUseCase
	users      usecase.IUserUseCase
	audit      usecase.IAuditUseCase
}

func NewAdminHandler(settings usecase.ISettingsUseCase, whiteLabel usecase.IWhiteLabelUseCase, users usecase.IUserUseCase, audit usecase.IAuditUseCase) *AdminHandler {
	return &AdminHandler{settings: settings, whiteLabel: whiteLabel, users: users, audit: audit}
}

func (h *AdminHandler) ListSettings(c *gin.Context) {
	settings, err := h.settings.List(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *AdminHandler) GetSetting(c *gin.Context) {
	setting, err := h.settings.Get(c.Request.Context(), middleware.ActorFrom(c), c.Param("key"))
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (h *AdminHandler) CreateSetting(c *gin.Context) {
	var payload request.SettingCreateRequest
	if !bindJSON(c, &payload) {
		return
	}
	setting, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}

	created, err := h.settings.Create(c.Request.Context(), middleware.ActorFrom(c), setting)
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateSetting godoc
// @Summary Update a system setting
// @Description Partial update. Writes an audit row with the previous and new values.
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "setting key"
// @Param body body request.SettingUpdateRequest true "fields to change"
// @Success 200 {object} entities.SystemConfig
// @Failure 404 {object} pkg.HTTPError
// @Router /settings/{key} [put]
// @Security Bearer
func (h *AdminHandler) UpdateSetting(c *gin.Context) {
	var payload request.SettingUpdateRequest
	if !bindJSON(c, &payload) {
		return
	}
	patch, problems := payload.ToPatch()
	if validationFailed(c, problems) {
		return
	}

	updated, err := h.settings.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("key"), patch)
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteSetting(c *gin.Context) {
	if err := h.settings.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("key")); err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListWhiteLabels(c *gin.Context) {
	profiles, err := h.whiteLabel.List(c.Request.Context())
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *AdminHandler) GetWhiteLabel(c *gin.Context) {
	profile, err := h.whiteLabel.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *AdminHandler) ActiveWhiteLabel(c *gin.Context) {
	profile, err := h.whiteLabel.GetActive(c.Request.Context())
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *AdminHandler) CreateWhiteLabel(c *gin.Context) {
	var payload request.WhiteLabelRequest
	if !bindJSON(c, &payload) {
		return
	}
	profile, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}

	created, err := h.whiteLabel.Create(c.Request.Context(), middleware.ActorFrom(c), profile)
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateWhiteLabel(c *gin.Context) {
	var payload request.WhiteLabelRequest
	if !bindJSON(c, &payload) {
		return
	}
	profile, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}
	profile.ID = c.Param("id")

	updated, err := h.whiteLabel.Update(c.Request.Context(), middleware.ActorFrom(c), profile)
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteWhiteLabel(c *gin.Context) {
	if err := h.whiteLabel.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.Status(http.StatusNoContent)
}

// ActivateWhiteLabel makes one profile the only active one.
func (h *AdminHandler) ActivateWhiteLabel(c *gin.Context) {
	profile, err := h.whiteLabel.Activate(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	log.Printf("[white_label][handler] activated id=%s", profile.ID)
	c.JSON(http.StatusOK, profile)
}

func (h *AdminHandler) DeactivateAllWhiteLabels(c *gin.Context) {
	n, err := h.whiteLabel.DeactivateAll(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deactivated": n})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var payload request.UserRoleRequest
	if !bindJSON(c, &payload) {
		return
	}
	if validationFailed(c, request.Validate(&payload)) {
		return
	}

	user, err := h.users.UpdateRole(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), entities.Role(payload.Role))
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) SetUserActive(c *gin.Context) {
	var payload request.ActiveRequest
	if !bindJSON(c, &payload) {
		return
	}
	active, problems := payload.Resolve()
	if validationFailed(c, problems) {
		return
	}

	user, err := h.users.SetActive(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), active)
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListAuditLogs accepts entity_type, entity_id, user_id and limit.
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	filter := entities.AuditLogFilter{
		EntityType: strings.TrimSpace(c.Query("entity_type")),
		EntityID:   strings.TrimSpace(c.Query("entity_id")),
		UserID:     strings.TrimSpace(c.Query("user_id")),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			validationFailed(c, map[string]string{"limit": "must be a positive integer"})
			return
		}
		filter.Limit = limit
	}

	logs, err := h.audit.List(c.Request.Context(), middleware.ActorFrom(c), filter)
	if err != nil {
		respondError(c, err, mapAdminError)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSettingKey), errors.Is(err, usecase.ErrInvalidWhiteLabelID),
		errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("INVALID_ROLE", "Invalid role", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSettingNotFound):
		return pkg.NewDomainErrorSimple("SETTING_NOT_FOUND", "Setting not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWhiteLabelNotFound):
		return pkg.NewDomainErrorSimple("WHITE_LABEL_NOT_FOUND", "White label profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSettingAlreadyExists):
		return pkg.NewDomainErrorSimple("SETTING_EXISTS", "Setting already exists", http.StatusConflict)
	default:
		return internalError(err)
	}
}
