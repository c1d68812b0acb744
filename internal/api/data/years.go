package data

import (
	"context"
	"fmt"

	"github.com/omarshaarawi/matchview/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// FileName is the published name of a season's data file.
func FileName(year int) string {
	return fmt.Sprintf("data-%d.json", year)
}

func (a *API) GetYear(ctx context.Context, year int) (*models.YearDocument, error) {
	var doc models.YearDocument
	if err := a.client.Get(ctx, FileName(year), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
