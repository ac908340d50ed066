package api

import (
	"net/http"

	reqdto "eventlink/internal/handler/dto/request"
	resdto "eventlink/internal/handler/dto/response"
	"eventlink/internal/handler/httperr"
	"eventlink/internal/handler/middleware"
	"eventlink/internal/pkg/errs"
	"eventlink/internal/usecase/commands"
	"eventlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUserIDMissing = errs.New("authenticated user id missing from context")

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
	}
}

// @Summary Login
// @Description Authenticate a staff user and issue a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Account is disabled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, &resdto.LoginResponse{
		UserID:       result.UserID,
		AccessToken:  result.TokenPair.AccessToken,
		RefreshToken: result.TokenPair.RefreshToken,
	})
}

// @Summary Refresh token
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest true "Refresh request"
// @Success 200 {object} resdto.TokenPairResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	pair, err := h.authCommands.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrTokenValidation):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid refresh token", nil)
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Account is disabled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, &resdto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary Register staff user
// @Description Create a staff account; admin only
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterUserRequest true "User request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterUserRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	id, err := h.authCommands.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEmailExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Current user
// @Description Get the authenticated user's account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUserIDMissing, "Internal server error", nil)
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Account is disabled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUserView(view))
}
