package api

import (
	"net/http"

	resdto "eventlink/internal/handler/dto/response"
	"eventlink/internal/handler/httperr"
	"eventlink/internal/pkg/errs"
	"eventlink/internal/usecase/commands"
	"eventlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler is the staff view of attendee profiles. Attendee
// self-service lives on the public routes.
type ProfileHandler struct {
	profileCommands commands.ProfileCommands
	profileQueries  queries.ProfileQueries
}

func NewProfileHandler(profileCommands commands.ProfileCommands, profileQueries queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{
		profileCommands: profileCommands,
		profileQueries:  profileQueries,
	}
}

// @Summary List event profiles
// @Description List all profiles registered for an event
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {array} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Router /events/{id}/profiles [get]
func (h *ProfileHandler) ListByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID format", nil)
		return
	}

	views, err := h.profileQueries.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileViews(views))
}

// @Summary Get profile
// @Description Get profile by ID
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /profiles/{id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid profile ID format", nil)
		return
	}

	view, err := h.profileQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// @Summary Delete profile
// @Description Delete a profile and its slot requests
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid profile ID format", nil)
		return
	}

	if err := h.profileCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, commands.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
