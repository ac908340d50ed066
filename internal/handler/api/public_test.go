//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"eventlink/internal/handler/api"
	reqdto "eventlink/internal/handler/dto/request"
	resdto "eventlink/internal/handler/dto/response"
	"eventlink/internal/pkg/errs"
	"eventlink/internal/usecase/commands"
	"eventlink/tests/common/httptest"
	commandsmock "eventlink/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PublicHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockRegistration *commandsmock.MockRegistrationCommands
	handler          *api.PublicHandler
}

func (s *PublicHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRegistration = commandsmock.NewMockRegistrationCommands(s.mockCtrl)
	// The registration routes never touch the other dependencies.
	s.handler = api.NewPublicHandler(s.mockRegistration, nil, nil, nil)

	s.router.POST("/public/events/:event_code/register", s.handler.Register)
	s.router.POST("/public/events/:event_code/check-existing", s.handler.CheckExisting)
}

func (s *PublicHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPublicHandlerSuite(t *testing.T) {
	suite.Run(t, new(PublicHandlerTestSuite))
}

func (s *PublicHandlerTestSuite) TestRegister() {
	url := "/public/events/EVNT2026/register"
	reqBody := reqdto.RegisterProfileRequest{
		FullName: "Jordan Reyes",
		Position: "Engineer",
		Email:    "jordan@example.com",
	}

	s.Run("success: 201 with the issued access code", func() {
		result := &commands.RegistrationResult{
			ProfileID:  uuid.New(),
			AccessCode: "FRESHCODE123",
		}
		s.mockRegistration.EXPECT().Register(gomock.Any(), "EVNT2026", reqBody).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RegistrationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.ProfileID, response.ProfileID)
		s.Equal("FRESHCODE123", response.AccessCode)
		s.False(response.CarriedOver)
	})

	s.Run("error: 400 when validation fails inside the command", func() {
		// The command layer attaches the sentinel as a mark, so this only
		// maps to 400 if the handler checks marks and not just the
		// unwrap chain.
		marked := errs.Mark(errs.New("email format invalid"), commands.ErrRegistrationValidation)
		s.mockRegistration.EXPECT().Register(gomock.Any(), "EVNT2026", reqBody).
			Return(nil, marked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid registration data")
	})

	s.Run("error: 404 for an unknown event", func() {
		s.mockRegistration.EXPECT().Register(gomock.Any(), "GONE0000", reqBody).
			Return(nil, commands.ErrEventNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/public/events/GONE0000/register", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockRegistration.EXPECT().Register(gomock.Any(), "EVNT2026", reqBody).
			Return(nil, commands.ErrAlreadyRegistered).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": 42}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *PublicHandlerTestSuite) TestCheckExisting() {
	url := "/public/events/EVNT2026/check-existing"
	reqBody := reqdto.CheckExistingRequest{
		Email:      "jordan@example.com",
		AccessCode: "OLDCODE12345",
	}

	s.Run("error: 404 when no profile matches", func() {
		s.mockRegistration.EXPECT().CheckExisting(gomock.Any(), "EVNT2026", reqBody.Email, reqBody.AccessCode).
			Return(nil, commands.ErrProfileNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Profile not found")
	})
}
