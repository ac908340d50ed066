//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"eventlink/internal/handler/api"
	reqdto "eventlink/internal/handler/dto/request"
	resdto "eventlink/internal/handler/dto/response"
	"eventlink/internal/usecase/commands"
	"eventlink/internal/usecase/queries"
	"eventlink/tests/common/httptest"
	commandsmock "eventlink/tests/mock/commands"
	queriesmock "eventlink/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NetworkingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNetworkingCommands
	mockQueries  *queriesmock.MockNetworkingQueries
	handler      *api.NetworkingHandler
}

func (s *NetworkingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNetworkingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNetworkingQueries(s.mockCtrl)
	s.handler = api.NewNetworkingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/public/events/:event_code/networking/request", s.handler.RequestSlot)
	s.router.PATCH("/public/events/:event_code/networking/:slot_id", s.handler.DecideSlot)
	s.router.DELETE("/public/events/:event_code/networking/:slot_id", s.handler.CancelSlot)
}

func (s *NetworkingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNetworkingHandlerSuite(t *testing.T) {
	suite.Run(t, new(NetworkingHandlerTestSuite))
}

func pendingSlotView(id uuid.UUID) *queries.NetworkingSlotView {
	return &queries.NetworkingSlotView{
		ID:            id,
		ProfileID:     uuid.New(),
		ProfileName:   "Riley Chen",
		RequesterID:   uuid.New(),
		RequesterName: "Jordan Reyes",
		TimeSlot:      "18:15",
		Status:        "pending",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func (s *NetworkingHandlerTestSuite) TestRequestSlot() {
	url := "/public/events/EVNT2026/networking/request"
	reqBody := reqdto.RequestSlotRequest{
		AccessCode: "REQUESTER123",
		ProfileID:  uuid.New(),
		TimeSlot:   "18:15",
		Message:    "coffee?",
	}

	s.Run("success: 201 with pending request and no contact info", func() {
		slotID := uuid.New()
		view := pendingSlotView(slotID)

		s.mockCommands.EXPECT().RequestSlot(gomock.Any(), "EVNT2026", reqBody).
			Return(slotID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), slotID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SlotRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(slotID, response.ID)
		s.Equal("pending", response.Status)
		s.Nil(response.ProfileEmail)
		s.Nil(response.RequesterEmail)
	})

	s.Run("error mapping", func() {
		cases := []struct {
			err        error
			expectCode int
		}{
			{commands.ErrEventNotFound, http.StatusNotFound},
			{commands.ErrInvalidAccessCode, http.StatusForbidden},
			{commands.ErrTargetNotFound, http.StatusNotFound},
			{commands.ErrSelfRequest, http.StatusBadRequest},
			{commands.ErrSlotNotAvailable, http.StatusBadRequest},
			{commands.ErrSlotConflict, http.StatusConflict},
		}

		for _, tc := range cases {
			s.Run(tc.err.Error(), func() {
				s.mockCommands.EXPECT().RequestSlot(gomock.Any(), "EVNT2026", reqBody).
					Return(uuid.Nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"profile_id": "not-a-uuid"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *NetworkingHandlerTestSuite) TestDecideSlot() {
	slotID := uuid.New()
	url := fmt.Sprintf("/public/events/EVNT2026/networking/%s", slotID)
	reqBody := reqdto.DecideSlotRequest{
		AccessCode: "TARGET123456",
		Status:     "accepted",
	}

	s.Run("success: 200 with accepted request and contact info", func() {
		view := pendingSlotView(slotID)
		view.Status = "accepted"
		profileEmail := "riley@example.com"
		view.ProfileEmail = &profileEmail

		s.mockCommands.EXPECT().DecideSlot(gomock.Any(), "EVNT2026", slotID, reqBody).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), slotID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")

		var response resdto.SlotRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("accepted", response.Status)
		s.NotNil(response.ProfileEmail)
	})

	s.Run("error: 404 when the request belongs to someone else", func() {
		s.mockCommands.EXPECT().DecideSlot(gomock.Any(), "EVNT2026", slotID, reqBody).
			Return(commands.ErrSlotRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot request not found")
	})

	s.Run("error: 400 on an invalid decision value", func() {
		badBody := reqdto.DecideSlotRequest{AccessCode: "TARGET123456", Status: "cancelled"}
		s.mockCommands.EXPECT().DecideSlot(gomock.Any(), "EVNT2026", slotID, badBody).
			Return(commands.ErrInvalidDecision).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, badBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "accepted or rejected")
	})

	s.Run("error: 400 on malformed slot id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/public/events/EVNT2026/networking/not-a-uuid", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid slot request ID")
	})
}

func (s *NetworkingHandlerTestSuite) TestCancelSlot() {
	slotID := uuid.New()
	url := fmt.Sprintf("/public/events/EVNT2026/networking/%s?access_code=REQUESTER123", slotID)

	s.Run("success: 200 with cancelled request", func() {
		view := pendingSlotView(slotID)
		view.Status = "cancelled"

		s.mockCommands.EXPECT().CancelSlot(gomock.Any(), "EVNT2026", "REQUESTER123", slotID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), slotID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var response resdto.SlotRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 403 for a third party", func() {
		s.mockCommands.EXPECT().CancelSlot(gomock.Any(), "EVNT2026", "REQUESTER123", slotID).
			Return(commands.ErrNotSlotParty).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not a party")
	})

	s.Run("error: 400 when the access code is missing", func() {
		bare := fmt.Sprintf("/public/events/EVNT2026/networking/%s", slotID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, bare, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Access code is required")
	})
}
