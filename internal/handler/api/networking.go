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

type NetworkingHandler struct {
	networkingCommands commands.NetworkingCommands
	networkingQueries  queries.NetworkingQueries
}

func NewNetworkingHandler(networkingCommands commands.NetworkingCommands, networkingQueries queries.NetworkingQueries) *NetworkingHandler {
	return &NetworkingHandler{
		networkingCommands: networkingCommands,
		networkingQueries:  networkingQueries,
	}
}

// @Summary Request networking slot
// @Description Claim one of the target attendee's declared time slots
// @Tags networking
// @Accept json
// @Produce json
// @Param event_code path string true "Event code"
// @Param request body reqdto.RequestSlotRequest true "Slot request"
// @Success 201 {object} resdto.SlotRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /public/events/{event_code}/networking/request [post]
func (h *NetworkingHandler) RequestSlot(c *gin.Context) {
	var req reqdto.RequestSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	id, err := h.networkingCommands.RequestSlot(c.Request.Context(), c.Param("event_code"), req)
	if err != nil {
		h.abortSlotErr(c, err)
		return
	}

	view, err := h.networkingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromNetworkingSlotView(view))
}

// @Summary Decide on slot request
// @Description Accept or reject a request aimed at the caller
// @Tags networking
// @Accept json
// @Produce json
// @Param event_code path string true "Event code"
// @Param slot_id path string true "Slot request ID"
// @Param request body reqdto.DecideSlotRequest true "Decision request"
// @Success 200 {object} resdto.SlotRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /public/events/{event_code}/networking/{slot_id} [patch]
func (h *NetworkingHandler) DecideSlot(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("slot_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot request ID format", nil)
		return
	}

	var req reqdto.DecideSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.networkingCommands.DecideSlot(c.Request.Context(), c.Param("event_code"), slotID, req); err != nil {
		h.abortSlotErr(c, err)
		return
	}

	view, err := h.networkingQueries.GetByID(c.Request.Context(), slotID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNetworkingSlotView(view))
}

// @Summary Cancel slot request
// @Description Cancel a request the caller is party to
// @Tags networking
// @Produce json
// @Param event_code path string true "Event code"
// @Param slot_id path string true "Slot request ID"
// @Param access_code query string true "Access code"
// @Success 200 {object} resdto.SlotRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /public/events/{event_code}/networking/{slot_id} [delete]
func (h *NetworkingHandler) CancelSlot(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("slot_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot request ID format", nil)
		return
	}

	accessCode := c.Query("access_code")
	if accessCode == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errAccessCodeRequired, "Access code is required", nil)
		return
	}

	if err := h.networkingCommands.CancelSlot(c.Request.Context(), c.Param("event_code"), accessCode, slotID); err != nil {
		h.abortSlotErr(c, err)
		return
	}

	view, err := h.networkingQueries.GetByID(c.Request.Context(), slotID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNetworkingSlotView(view))
}

func (h *NetworkingHandler) abortSlotErr(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrEventNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
	case errs.Is(err, commands.ErrInvalidAccessCode):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Invalid access code", nil)
	case errs.Is(err, commands.ErrTargetNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Target profile not found", nil)
	case errs.Is(err, commands.ErrSlotRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Slot request not found", nil)
	case errs.Is(err, commands.ErrSelfRequest):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot request a slot with yourself", nil)
	case errs.Is(err, commands.ErrSlotNotAvailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Slot not available", nil)
	case errs.Is(err, commands.ErrInvalidDecision):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Status must be accepted or rejected", nil)
	case errs.Is(err, commands.ErrSlotConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot already requested", nil)
	case errs.Is(err, commands.ErrNotSlotParty):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not a party to this slot request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
