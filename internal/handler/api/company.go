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

type CompanyHandler struct {
	companyCommands commands.CompanyCommands
	companyQueries  queries.CompanyQueries
}

func NewCompanyHandler(companyCommands commands.CompanyCommands, companyQueries queries.CompanyQueries) *CompanyHandler {
	return &CompanyHandler{
		companyCommands: companyCommands,
		companyQueries:  companyQueries,
	}
}

// @Summary List companies
// @Description List companies with optional industry and active filters
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param industry query string false "Industry filter"
// @Param is_active query bool false "Active filter"
// @Success 200 {array} resdto.CompanyResponse
// @Failure 401 {object} httperr.Response
// @Router /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	filters := queries.CompanyFilters{}
	if industry := c.Query("industry"); industry != "" {
		filters.Industry = &industry
	}
	if isActive, ok := parseBoolQuery(c, "is_active"); ok {
		filters.IsActive = &isActive
	}

	views, err := h.companyQueries.List(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCompanyViews(views))
}

// @Summary Get company
// @Description Get company by ID
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid company ID format", nil)
		return
	}

	view, err := h.companyQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrCompanyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Company not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCompanyView(view))
}

// @Summary Create company
// @Description Create a new company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCompanyRequest true "Company request"
// @Success 201 {object} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Router /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req reqdto.CreateCompanyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	id, err := h.companyCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrCompanyValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid company data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.companyQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCompanyView(view))
}

// @Summary Update company
// @Description Update company fields
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param request body reqdto.UpdateCompanyRequest true "Company request"
// @Success 200 {object} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /companies/{id} [patch]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid company ID format", nil)
		return
	}

	var req reqdto.UpdateCompanyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.companyCommands.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errs.Is(err, commands.ErrCompanyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Company not found", nil)
		case errs.Is(err, commands.ErrCompanyValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid company data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.companyQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCompanyView(view))
}

// @Summary Delete company
// @Description Delete a company without events
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid company ID format", nil)
		return
	}

	if err := h.companyCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, commands.ErrCompanyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Company not found", nil)
		case errs.Is(err, commands.ErrCompanyHasEvents):
			httperr.AbortWithError(c, http.StatusConflict, err, "Company still has events", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseBoolQuery(c *gin.Context, name string) (bool, bool) {
	switch c.Query(name) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
