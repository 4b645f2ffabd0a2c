//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"restaurant-reservations/internal/handler/middleware"
	"restaurant-reservations/internal/usecase"
	"restaurant-reservations/tests/common/httptest"
	usecasemock "restaurant-reservations/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
	mockOwners    *usecasemock.MockOwnerChecker
	identity      usecase.Identity
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.mockOwners = usecasemock.NewMockOwnerChecker(s.mockCtrl)
	s.identity = usecase.Identity{UserID: uuid.New(), Email: "owner@example.com"}

	auth := middleware.NewAuthMiddleware(s.mockValidator, s.mockOwners)
	whoami := func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		email, _ := middleware.GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID.String(), "email": email})
	}

	s.router.GET("/me", auth.RequireAuth(), whoami)
	s.router.GET("/restaurants/:id/tables", auth.RequireAuth(), auth.RequireRestaurantOwner("id"), whoami)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: identity is exposed to handlers", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").Return(s.identity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "good-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.identity.UserID.String(), body["userId"])
		s.Equal("owner@example.com", body["email"])
	})

	s.Run("error: 401 without bearer token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 on invalid token", func() {
		s.mockValidator.EXPECT().ValidateToken("expired").Return(usecase.Identity{}, errors.New("token is expired")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "expired")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRestaurantOwner() {
	restaurantID := uuid.New()
	url := "/restaurants/" + restaurantID.String() + "/tables"

	s.Run("success: owner passes through", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").Return(s.identity, nil).Times(1)
		s.mockOwners.EXPECT().IsOwner(gomock.Any(), "owner@example.com", restaurantID).Return(true).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "good-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 for other users", func() {
		guest := usecase.Identity{UserID: uuid.New(), Email: "guest@example.com"}
		s.mockValidator.EXPECT().ValidateToken("guest-token").Return(guest, nil).Times(1)
		s.mockOwners.EXPECT().IsOwner(gomock.Any(), "guest@example.com", restaurantID).Return(false).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "guest-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 400 on malformed restaurant id", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").Return(s.identity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/abc/tables", nil, "good-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid restaurant id")
	})

	s.Run("error: 401 before ownership is checked", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
