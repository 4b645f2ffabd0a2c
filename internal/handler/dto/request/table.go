package request

import (
	"restaurant-reservations/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type TableInput struct {
	Name                 string `json:"name" binding:"required,max=100"`
	MaxSeats             int    `json:"maxSeats" binding:"required,min=1"`
	MaxReservationLength int    `json:"maxReservationLength" binding:"required,min=1"`
}

// BulkUpdateTablesRequest replaces the whole table set; an empty list removes
// every table.
type BulkUpdateTablesRequest struct {
	Tables []TableInput `json:"tables" binding:"required,dive"`
}

func (r BulkUpdateTablesRequest) ToCommand() ([]commands.TableInput, error) {
	inputs := make([]commands.TableInput, 0, len(r.Tables))
	if err := copier.Copy(&inputs, &r.Tables); err != nil {
		return nil, err
	}
	return inputs, nil
}
