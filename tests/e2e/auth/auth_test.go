//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/handler/dto/response"
	"hotel-booking/tests/common/authtest"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL   = "/api/auth/register"
	loginURL      = "/api/auth/login"
	logoutURL     = "/api/auth/logout"
	meURL         = "/api/auth/me"
	adminRoomsURL = "/api/admin/rooms"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "guest@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "guest@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "guest@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))
			dbtest.CreateTestUser(t, s.DB, "inactive@example.com", string(user.RoleGuest))
			_, err := s.DB.Exec(t.Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
			require.NoError(t, err)

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.NotNil(t, res.User)
				require.Equal(t, tt.email, res.User.Email)

				cookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, cookie)
				require.NotEmpty(t, cookie.Value)
			}
		})
	}
}

func (s *authSuite) TestRegister() {
	s.Run("Normal case: New guest account and immediate login", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Email:    "new.guest@example.com",
			Password: "password123",
			FullName: "New Guest",
			Phone:    "+77011234567",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		token := authtest.LoginUser(t, s.Router, "new.guest@example.com", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("Error case: Duplicate email is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "taken@example.com", string(user.RoleGuest))

		reqBody := request.RegisterRequest{
			Email:    "taken@example.com",
			Password: "password123",
			FullName: "Taken Email",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: Weak password is rejected by binding", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Email:    "weak@example.com",
			Password: "short",
			FullName: "Weak Password",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

func (s *authSuite) TestMeAndLogout() {
	s.Run("Normal case: Me returns the logged in user", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "guest@example.com", me.Email)
		require.Equal(t, "guest", me.Role)
	})

	s.Run("Normal case: Logout clears the cookie", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))
		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, lw.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(lw))
	})

	s.Run("Auth test - Me without a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRoleGating() {
	s.Run("Normal case: Manager can create rooms", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))

		reqBody := request.CreateRoomRequest{
			Number:        "501",
			RoomType:      "suite",
			PricePerNight: 80000,
			MaxGuests:     4,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminRoomsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "501", created.Number)
		require.Equal(t, "suite", created.RoomType)
	})

	s.Run("Error case: Reception cannot create rooms", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "reception@example.com", string(user.RoleReception))

		reqBody := request.CreateRoomRequest{
			Number:        "502",
			RoomType:      "double",
			PricePerNight: 30000,
			MaxGuests:     2,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminRoomsURL, reqBody, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: Duplicate room number conflicts", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))
		dbtest.CreateTestRoom(t, s.DB, "101", "double", 20000, 2)

		reqBody := request.CreateRoomRequest{
			Number:        "101",
			RoomType:      "double",
			PricePerNight: 20000,
			MaxGuests:     2,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminRoomsURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
