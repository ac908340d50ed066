//go:build e2e

package registration_test

import (
	"fmt"
	"net/http"
	"testing"

	"eventlink/internal/handler/dto/request"
	"eventlink/internal/handler/dto/response"
	"eventlink/tests/common/dbtest"
	"eventlink/tests/common/httptest"
	"eventlink/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	publicEventURL = "/api/public/events/%s"
	registerURL    = "/api/public/events/%s/register"
	verifyURL      = "/api/public/events/%s/verify"
	directoryURL   = "/api/public/events/%s/directory?access_code=%s"
)

type RegistrationSuite struct {
	e2e.SharedSuite
}

func (s *RegistrationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRegistrationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RegistrationSuite))
}

func (s *RegistrationSuite) seedEvent(t *testing.T, eventCode string) {
	t.Helper()
	companyID := dbtest.CreateTestCompany(t, s.DB, "Host "+eventCode)
	dbtest.CreateTestEvent(t, s.DB, companyID, eventCode)
}

func (s *RegistrationSuite) register(t *testing.T, eventCode string, body request.RegisterProfileRequest) response.RegistrationResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(registerURL, eventCode), body, "")
	require.Equal(t, http.StatusCreated, w.Code, "registration should succeed: %s", w.Body.String())

	var reg response.RegistrationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reg))
	require.NotEmpty(t, reg.AccessCode)
	return reg
}

func (s *RegistrationSuite) TestRegisterAndVerify() {
	s.Run("Normal case: register, verify, then browse the directory", func() {
		t := s.T()
		s.seedEvent(t, "EVNTC001")

		reg := s.register(t, "EVNTC001", request.RegisterProfileRequest{
			FullName: "Sam Okafor",
			Position: "Engineer",
			Email:    "sam@example.com",
		})
		require.False(t, reg.CarriedOver)

		// Any valid credential may view the directory, but an unverified
		// attendee does not appear in it yet.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(directoryURL, "EVNTC001", reg.AccessCode), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var directory response.DirectoryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &directory))
		require.Empty(t, directory.Profiles)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(verifyURL, "EVNTC001"),
			request.VerifyRequest{AccessCode: reg.AccessCode}, "")
		require.Equal(t, http.StatusOK, w.Code, "verification should succeed: %s", w.Body.String())

		var profile response.ProfileResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &profile))
		require.True(t, profile.CodeVerified)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(directoryURL, "EVNTC001", reg.AccessCode), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &directory))
		require.NotNil(t, directory.Event)
		require.Equal(t, "EVNTC001", directory.Event.EventCode)
		require.Len(t, directory.Profiles, 1)
		require.Equal(t, "Sam Okafor", directory.Profiles[0].FullName)
	})

	s.Run("Error case: the same email cannot register twice for one event", func() {
		t := s.T()
		s.seedEvent(t, "EVNTC002")

		body := request.RegisterProfileRequest{FullName: "Sam Okafor", Email: "sam@example.com"}
		s.register(t, "EVNTC002", body)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(registerURL, "EVNTC002"), body, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: verifying a made-up code reads as not found", func() {
		t := s.T()
		s.seedEvent(t, "EVNTC003")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(verifyURL, "EVNTC003"),
			request.VerifyRequest{AccessCode: "NOSUCHCODE12"}, "")
		require.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(directoryURL, "EVNTC003", "NOSUCHCODE12"), nil, "")
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: an inactive event is invisible on the public side", func() {
		t := s.T()
		s.seedEvent(t, "EVNTC004")
		_, err := s.DB.Exec(t.Context(), "UPDATE events SET is_active = false WHERE event_code = 'EVNTC004'")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(publicEventURL, "EVNTC004"), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *RegistrationSuite) TestCarryOverRegistration() {
	s.Run("Normal case: carry-over copies the profile but issues a fresh credential", func() {
		t := s.T()
		s.seedEvent(t, "EVNTD001")
		s.seedEvent(t, "EVNTD002")

		original := s.register(t, "EVNTD001", request.RegisterProfileRequest{
			FullName:    "Noor Haddad",
			Position:    "Designer",
			CompanyName: "Studio North",
			Email:       "noor@example.com",
		})

		carried := s.register(t, "EVNTD002", request.RegisterProfileRequest{
			UseExistingProfile: true,
			ExistingEmail:      "noor@example.com",
			ExistingAccessCode: original.AccessCode,
		})
		require.True(t, carried.CarriedOver)
		require.NotEqual(t, original.AccessCode, carried.AccessCode, "carry-over must mint a new access code")

		// The copy starts unverified regardless of the source profile.
		var verified bool
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT code_verified FROM profiles WHERE id = $1", carried.ProfileID).Scan(&verified))
		require.False(t, verified)

		var fullName string
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT full_name FROM profiles WHERE id = $1", carried.ProfileID).Scan(&fullName))
		require.Equal(t, "Noor Haddad", fullName)
	})

	s.Run("Error case: carry-over with someone else's access code fails", func() {
		t := s.T()
		s.seedEvent(t, "EVNTD003")
		s.seedEvent(t, "EVNTD004")

		s.register(t, "EVNTD003", request.RegisterProfileRequest{
			FullName: "Noor Haddad",
			Email:    "noor@example.com",
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(registerURL, "EVNTD004"),
			request.RegisterProfileRequest{
				UseExistingProfile: true,
				ExistingEmail:      "noor@example.com",
				ExistingAccessCode: "WRONGCODE123",
			}, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
