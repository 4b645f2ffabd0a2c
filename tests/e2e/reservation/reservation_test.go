//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"restaurant-reservations/internal/handler/dto/request"
	"restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/tests/common/authtest"
	"restaurant-reservations/tests/common/dbtest"
	"restaurant-reservations/tests/common/httptest"
	"restaurant-reservations/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	reservationURL  = "/api/reservations/%s"
	statusURL       = "/api/reservations/%s/status"
	itemsURL        = "/api/reservations/%s/items"
	ticketURL       = "/api/reservations/%s/ticket"
	menusURL        = "/api/reservations/%s/menus"
)

type ReservationSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper

	userID       uuid.UUID
	token        string
	restaurantID uuid.UUID
	tableID      uuid.UUID
	menuItemID   uuid.UUID
	start        time.Time
}

func (s *ReservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	openAt, closeAt := "17:00", "22:00"
	s.userID = uuid.New()
	s.token = s.jwt.GenerateToken(t, s.userID, "diner@example.com")
	s.restaurantID = dbtest.CreateTestRestaurant(t, s.DB, "Sakura", &openAt, &closeAt)
	s.tableID = dbtest.CreateTestTable(t, s.DB, s.restaurantID, "Window", 4, 60)
	s.menuItemID = dbtest.CreateTestMenuItem(t, s.DB, s.restaurantID, "Dinner", "Ramen", 12.5, nil, nil)

	d := time.Now().UTC().AddDate(0, 0, 7)
	s.start = time.Date(d.Year(), d.Month(), d.Day(), 18, 0, 0, 0, time.UTC)
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) createRequest(partySize int) request.CreateReservationRequest {
	return request.CreateReservationRequest{
		RestaurantID: s.restaurantID,
		TableID:      s.tableID,
		StartTime:    s.start,
		EndTime:      s.start.Add(time.Hour),
		PartySize:    partySize,
	}
}

func (s *ReservationSuite) createReservation(t *testing.T) uuid.UUID {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createRequest(2), s.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.ReservationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created.ID
}

func (s *ReservationSuite) changeStatus(t *testing.T, id uuid.UUID, status string) *response.ReservationResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, id),
		request.ChangeStatusRequest{Status: status}, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated response.ReservationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
	return &updated
}

// =============================================================================
// TestCreate - booking flow
// =============================================================================

func (s *ReservationSuite) TestCreate() {
	s.Run("Normal case: new booking is pending", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createRequest(2), s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		expected := response.ReservationResponse{
			RestaurantID:   s.restaurantID,
			RestaurantName: "Sakura",
			TableID:        s.tableID,
			TableName:      "Window",
			StartTime:      s.start,
			EndTime:        s.start.Add(time.Hour),
			NumberOfSeats:  2,
			Status:         "PENDING",
			Items:          []*response.OrderItemResponse{},
		}
		opts := cmpopts.IgnoreFields(response.ReservationResponse{}, "ID", "CreatedAt")
		if diff := cmp.Diff(expected, actual, opts); diff != "" {
			t.Errorf("reservation mismatch (-want +got):\n%s", diff)
		}

		var count int
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM reservations WHERE user_id = $1", s.userID).Scan(&count))
		require.Equal(t, 1, count)
	})

	s.Run("Error case: same table and start is 409", func() {
		t := s.T()

		s.createReservation(t)

		other := s.jwt.GenerateToken(t, uuid.New(), "late@example.com")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createRequest(2), other)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already reserved")
	})

	s.Run("Normal case: cancelled booking frees the slot", func() {
		t := s.T()

		id := s.createReservation(t)
		s.changeStatus(t, id, "CANCELLED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createRequest(2), s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: party larger than the table is 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createRequest(6), s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "cannot seat")
	})

	s.Run("Error case: unknown table is 404", func() {
		t := s.T()

		req := s.createRequest(2)
		req.TableID = uuid.New()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "table not found")
	})

	s.Run("Error case: missing token is 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createRequest(2), "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}

// =============================================================================
// TestLifecycle - status changes, ordering and tickets
// =============================================================================

func (s *ReservationSuite) TestLifecycle() {
	s.Run("Normal case: confirmed booking blocks the slot", func() {
		t := s.T()

		id := s.createReservation(t)
		updated := s.changeStatus(t, id, "CONFIRMED")
		require.Equal(t, "CONFIRMED", updated.Status)

		url := fmt.Sprintf("/api/restaurants/%s/available-times?date=%s&partySize=2",
			s.restaurantID, s.start.Format("2006-01-02"))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var times []response.AvailableTimeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &times))
		require.Contains(t, times, response.AvailableTimeResponse{Time: "18:00:00", MaxSeats: 4, Available: false})
	})

	s.Run("Normal case: adding the same dish twice sums the quantity", func() {
		t := s.T()

		id := s.createReservation(t)
		body := request.AddMenuItemRequest{MenuItemID: s.menuItemID, Quantity: 1}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(itemsURL, id), body, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body.Quantity = 2
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(itemsURL, id), body, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		expected := []*response.OrderItemResponse{
			{MenuItemID: s.menuItemID, Name: "Ramen", Price: 12.5, Quantity: 3},
		}
		if diff := cmp.Diff(expected, actual.Items); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: dish from another restaurant is 400", func() {
		t := s.T()

		id := s.createReservation(t)
		otherRestaurant := dbtest.CreateTestRestaurant(t, s.DB, "Elsewhere", nil, nil)
		foreign := dbtest.CreateTestMenuItem(t, s.DB, otherRestaurant, "Lunch", "Curry", 9, nil, nil)

		body := request.AddMenuItemRequest{MenuItemID: foreign, Quantity: 1}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(itemsURL, id), body, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "not served")
	})

	s.Run("Normal case: ticket is a PNG", func() {
		t := s.T()

		id := s.createReservation(t)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ticketURL, id), nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertPNG(t, w)
	})

	s.Run("Error case: cancelled reservation rejects changes", func() {
		t := s.T()

		id := s.createReservation(t)
		s.changeStatus(t, id, "CANCELLED")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ticketURL, id), nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")

		body := request.AddMenuItemRequest{MenuItemID: s.menuItemID, Quantity: 1}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(itemsURL, id), body, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, id),
			request.ChangeStatusRequest{Status: "CONFIRMED"}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Error case: unknown status is 400", func() {
		t := s.T()

		id := s.createReservation(t)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, id),
			request.ChangeStatusRequest{Status: "SEATED"}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Error case: another user's reservation is 404", func() {
		t := s.T()

		id := s.createReservation(t)
		stranger := s.jwt.GenerateToken(t, uuid.New(), "stranger@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, id), nil, stranger)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "reservation not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, id),
			request.ChangeStatusRequest{Status: "CANCELLED"}, stranger)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "reservation not found")
	})
}

// =============================================================================
// TestMenus - menus served for a reservation
// =============================================================================

func (s *ReservationSuite) TestMenus() {
	s.Run("Normal case: ordered quantities are attached to served items", func() {
		t := s.T()

		dbtest.CreateTestMenuItem(t, s.DB, s.restaurantID, "Dinner", "Gyoza", 6, nil, nil)
		midnightStart, midnightEnd := "00:00", "00:01"
		dbtest.CreateTestMenuItem(t, s.DB, s.restaurantID, "Midnight", "Onigiri", 3, &midnightStart, &midnightEnd)

		id := s.createReservation(t)
		body := request.AddMenuItemRequest{MenuItemID: s.menuItemID, Quantity: 2}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(itemsURL, id), body, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(menusURL, id)+"?at="+s.start.Format(time.RFC3339), nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var menus []response.ReservationMenuResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &menus))
		require.Len(t, menus, 1)
		require.Equal(t, "Dinner", menus[0].Name)

		quantities := make(map[string]int, len(menus[0].Items))
		for _, item := range menus[0].Items {
			quantities[item.Name] = item.Quantity
		}
		require.Equal(t, map[string]int{"Ramen": 2, "Gyoza": 0}, quantities)
	})

	s.Run("Error case: another user's reservation is 404", func() {
		t := s.T()

		id := s.createReservation(t)
		stranger := s.jwt.GenerateToken(t, uuid.New(), "stranger@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(menusURL, id), nil, stranger)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "reservation not found")
	})
}
