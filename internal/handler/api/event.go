package api

import (
	"net/http"

	reqdto "eventlink/internal/handler/dto/request"
	resdto "eventlink/internal/handler/dto/response"
	"eventlink/internal/handler/httperr"
	"eventlink/internal/pkg/errs"
	"eventlink/internal/usecase/commands"
	"eventlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventCommands commands.EventCommands
	eventQueries  queries.EventQueries
}

func NewEventHandler(eventCommands commands.EventCommands, eventQueries queries.EventQueries) *EventHandler {
	return &EventHandler{
		eventCommands: eventCommands,
		eventQueries:  eventQueries,
	}
}

// @Summary List events
// @Description List events with optional company and active filters
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param company_id query string false "Company filter"
// @Param is_active query bool false "Active filter"
// @Success 200 {array} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	filters := queries.EventFilters{}
	if companyIDStr := c.Query("company_id"); companyIDStr != "" {
		companyID, err := uuid.Parse(companyIDStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid company ID format", nil)
			return
		}
		filters.CompanyID = &companyID
	}
	if isActive, ok := parseBoolQuery(c, "is_active"); ok {
		filters.IsActive = &isActive
	}

	views, err := h.eventQueries.List(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}

// @Summary Get event
// @Description Get event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID format", nil)
		return
	}

	view, err := h.eventQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Create event
// @Description Create an event with a generated event code
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Event request"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	id, err := h.eventCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrCompanyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Company not found", nil)
		case errs.Is(err, commands.ErrEventValidation), errs.Is(err, reqdto.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.eventQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEventView(view))
}

// @Summary Update event
// @Description Update event fields; the event code never changes
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.UpdateEventRequest true "Event request"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /events/{id} [patch]
func (h *EventHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID format", nil)
		return
	}

	var req reqdto.UpdateEventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.eventCommands.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errs.Is(err, commands.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		case errs.Is(err, commands.ErrEventValidation), errs.Is(err, reqdto.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.eventQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Delete event
// @Description Delete an event and its profiles
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID format", nil)
		return
	}

	if err := h.eventCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, commands.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
