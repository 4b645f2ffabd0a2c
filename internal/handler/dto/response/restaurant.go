package response

import (
	"fmt"

	"restaurant-reservations/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RestaurantResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	OpenTime     *string   `json:"openTime"`
	CloseTime    *string   `json:"closeTime"`
	MaxTableSize *int      `json:"maxTableSize,omitempty"`
}

type TableResponse struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	MaxSeats             int       `json:"maxSeats"`
	MaxReservationLength int       `json:"maxReservationLength"`
}

type MenuResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	StartTime *string             `json:"startTime"`
	EndTime   *string             `json:"endTime"`
	Items     []*MenuItemResponse `json:"items"`
}

type MenuItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
}

type ReservationMenuItemResponse struct {
	MenuItemResponse
	Quantity int `json:"quantity"`
}

// ReservationMenuResponse reports 0 for items the reservation has not ordered.
type ReservationMenuResponse struct {
	ID        uuid.UUID                      `json:"id"`
	Name      string                         `json:"name"`
	StartTime *string                        `json:"startTime"`
	EndTime   *string                        `json:"endTime"`
	Items     []*ReservationMenuItemResponse `json:"items"`
}

type IngredientResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AvailableTimeResponse struct {
	Time      string `json:"time"`
	MaxSeats  int    `json:"maxSeats"`
	Available bool   `json:"available"`
}

func FromRestaurantView(v *queries.RestaurantView) *RestaurantResponse {
	return &RestaurantResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		OpenTime:    formatMinutes(v.OpenMinutes),
		CloseTime:   formatMinutes(v.CloseMinutes),
	}
}

func FromRestaurantDetail(d *queries.RestaurantDetail) *RestaurantResponse {
	resp := FromRestaurantView(&d.RestaurantView)
	size := d.MaxTableSize
	resp.MaxTableSize = &size
	return resp
}

func FromRestaurantList(views []*queries.RestaurantView) []*RestaurantResponse {
	res := make([]*RestaurantResponse, len(views))
	for i, v := range views {
		res[i] = FromRestaurantView(v)
	}
	return res
}

func FromTableViews(views []*queries.TableView) ([]*TableResponse, error) {
	res := make([]*TableResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromMenuViews(views []*queries.MenuView) ([]*MenuResponse, error) {
	res := make([]*MenuResponse, len(views))
	for i, v := range views {
		m, err := toMenuResponse(v)
		if err != nil {
			return nil, err
		}
		res[i] = m
	}
	return res, nil
}

func FromReservationMenuViews(views []*queries.ReservationMenuView) ([]*ReservationMenuResponse, error) {
	res := make([]*ReservationMenuResponse, len(views))
	for i, v := range views {
		m, err := toMenuResponse(&v.MenuView)
		if err != nil {
			return nil, err
		}
		items := make([]*ReservationMenuItemResponse, len(m.Items))
		for j, item := range m.Items {
			items[j] = &ReservationMenuItemResponse{MenuItemResponse: *item, Quantity: v.Ordered[item.ID]}
		}
		res[i] = &ReservationMenuResponse{
			ID:        m.ID,
			Name:      m.Name,
			StartTime: m.StartTime,
			EndTime:   m.EndTime,
			Items:     items,
		}
	}
	return res, nil
}

func toMenuResponse(v *queries.MenuView) (*MenuResponse, error) {
	items := make([]*MenuItemResponse, 0, len(v.Items))
	if err := copier.Copy(&items, &v.Items); err != nil {
		return nil, err
	}
	return &MenuResponse{
		ID:        v.ID,
		Name:      v.Name,
		StartTime: formatMinutes(v.StartMinutes),
		EndTime:   formatMinutes(v.EndMinutes),
		Items:     items,
	}, nil
}

func FromIngredientViews(views []*queries.IngredientView) ([]*IngredientResponse, error) {
	res := make([]*IngredientResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromAvailableTimes(times []queries.AvailableTime) ([]AvailableTimeResponse, error) {
	res := make([]AvailableTimeResponse, 0, len(times))
	if err := copier.Copy(&res, &times); err != nil {
		return nil, err
	}
	return res, nil
}

// formatMinutes renders minutes since midnight as HH:MM.
func formatMinutes(m *int) *string {
	if m == nil {
		return nil
	}
	s := fmt.Sprintf("%02d:%02d", *m/60, *m%60)
	return &s
}
