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
)

var errAccessCodeRequired = errs.New("access code query parameter missing")

// PublicHandler serves the attendee-facing routes under an event code.
// There is no login on this side; the access code issued at
// registration is the only credential.
type PublicHandler struct {
	registrationCommands commands.RegistrationCommands
	profileCommands      commands.ProfileCommands
	eventQueries         queries.EventQueries
	profileQueries       queries.ProfileQueries
}

func NewPublicHandler(
	registrationCommands commands.RegistrationCommands,
	profileCommands commands.ProfileCommands,
	eventQueries queries.EventQueries,
	profileQueries queries.ProfileQueries,
) *PublicHandler {
	return &PublicHandler{
		registrationCommands: registrationCommands,
		profileCommands:      profileCommands,
		eventQueries:         eventQueries,
		profileQueries:       profileQueries,
	}
}

// @Summary Public event page
// @Description Get an active event by its code
// @Tags public
// @Produce json
// @Param event_code path string true "Event code"
// @Success 200 {object} resdto.EventResponse
// @Failure 404 {object} httperr.Response
// @Router /public/events/{event_code} [get]
func (h *PublicHandler) GetEvent(c *gin.Context) {
	view, err := h.eventQueries.GetActiveByCode(c.Request.Context(), c.Param("event_code"))
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

// @Summary Register for event
// @Description Register a new profile or carry over an existing one
// @Tags public
// @Accept json
// @Produce json
// @Param event_code path string true "Event code"
// @Param request body reqdto.RegisterProfileRequest true "Registration request"
// @Success 201 {object} resdto.RegistrationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /public/events/{event_code}/register [post]
func (h *PublicHandler) Register(c *gin.Context) {
	var req reqdto.RegisterProfileRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.registrationCommands.Register(c.Request.Context(), c.Param("event_code"), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		case errs.Is(err, commands.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		case errs.Is(err, commands.ErrAlreadyRegistered):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered for this event", nil)
		case errs.Is(err, commands.ErrRegistrationValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid registration data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRegistrationResult(result))
}

// @Summary Check existing profile
// @Description Look up a profile from a previous event for carry-over
// @Tags public
// @Accept json
// @Produce json
// @Param event_code path string true "Event code"
// @Param request body reqdto.CheckExistingRequest true "Lookup request"
// @Success 200 {object} resdto.ExistingProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /public/events/{event_code}/check-existing [post]
func (h *PublicHandler) CheckExisting(c *gin.Context) {
	var req reqdto.CheckExistingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	snap, err := h.registrationCommands.CheckExisting(c.Request.Context(), c.Param("event_code"), req.Email, req.AccessCode)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		case errs.Is(err, commands.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileSnapshot(snap))
}

// @Summary Verify access code
// @Description Mark the presented profile as code verified
// @Tags public
// @Accept json
// @Produce json
// @Param event_code path string true "Event code"
// @Param request body reqdto.VerifyRequest true "Verify request"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /public/events/{event_code}/verify [post]
func (h *PublicHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	profileID, err := h.registrationCommands.Verify(c.Request.Context(), c.Param("event_code"), req.AccessCode)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		case errs.Is(err, commands.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.profileQueries.GetByID(c.Request.Context(), profileID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// @Summary Own profile
// @Description Get the caller's profile with sent and received slot requests
// @Tags public
// @Produce json
// @Param event_code path string true "Event code"
// @Param access_code query string true "Access code"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /public/events/{event_code}/profile [get]
func (h *PublicHandler) GetOwnProfile(c *gin.Context) {
	accessCode := c.Query("access_code")
	if accessCode == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errAccessCodeRequired, "Access code is required", nil)
		return
	}

	view, err := h.profileQueries.GetOwn(c.Request.Context(), c.Param("event_code"), accessCode)
	if err != nil {
		h.abortCredentialErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// @Summary Update own profile
// @Description Update the profile matching the presented access code
// @Tags public
// @Accept json
// @Produce json
// @Param event_code path string true "Event code"
// @Param request body reqdto.UpdateProfileRequest true "Profile request"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /public/events/{event_code}/profile [patch]
func (h *PublicHandler) UpdateOwnProfile(c *gin.Context) {
	var req reqdto.UpdateProfileRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	profileID, err := h.profileCommands.UpdateOwn(c.Request.Context(), c.Param("event_code"), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		case errs.Is(err, commands.ErrInvalidAccessCode):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Invalid access code", nil)
		case errs.Is(err, commands.ErrProfileValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid profile data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.profileQueries.GetByID(c.Request.Context(), profileID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// @Summary Attendee directory
// @Description List verified attendees for networking
// @Tags public
// @Produce json
// @Param event_code path string true "Event code"
// @Param access_code query string true "Access code"
// @Success 200 {object} resdto.DirectoryResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /public/events/{event_code}/directory [get]
func (h *PublicHandler) Directory(c *gin.Context) {
	accessCode := c.Query("access_code")
	if accessCode == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errAccessCodeRequired, "Access code is required", nil)
		return
	}

	view, err := h.profileQueries.Directory(c.Request.Context(), c.Param("event_code"), accessCode)
	if err != nil {
		h.abortCredentialErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDirectoryView(view))
}

func (h *PublicHandler) abortCredentialErr(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrEventNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
	case errs.Is(err, queries.ErrInvalidAccessCode):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Invalid access code", nil)
	case errs.Is(err, queries.ErrProfileNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
