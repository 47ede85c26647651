package clients

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/yashrajoria/car-rental-backend/gateway/models"
)

// RentalHTTPClient talks to the rental service over HTTP. Every read and
// write is scoped by username; the rental service owns the ownership check
// and answers 404 for a rental that belongs to someone else.
type RentalHTTPClient struct {
	httpClient
}

// NewRentalClient creates a RentalHTTPClient for the given base URL.
func NewRentalClient(cfg Config) *RentalHTTPClient {
	return &RentalHTTPClient{newHTTPClient(cfg)}
}

// CreateRental opens a new IN_PROGRESS rental record.
func (c *RentalHTTPClient) CreateRental(ctx context.Context, record models.CreateRentalRecord) (*models.Rental, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/v1/rental", nil, record)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, statusError(resp)
	}

	var out models.Rental
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRental fetches one rental owned by username.
func (c *RentalHTTPClient) GetRental(ctx context.Context, rentalUID uuid.UUID, username string) (*models.Rental, error) {
	query := url.Values{"username": {username}}

	resp, err := c.do(ctx, http.MethodGet, "/api/v1/rental/"+rentalUID.String(), query, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var out models.Rental
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRentals fetches all rentals owned by username.
func (c *RentalHTTPClient) ListRentals(ctx context.Context, username string) ([]models.Rental, error) {
	query := url.Values{"username": {username}}

	resp, err := c.do(ctx, http.MethodGet, "/api/v1/rental", query, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var out []models.Rental
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelRental transitions a rental to CANCELED. Only IN_PROGRESS rentals can
// be canceled; a terminal rental yields ErrConflict.
func (c *RentalHTTPClient) CancelRental(ctx context.Context, rentalUID uuid.UUID, username string) error {
	query := url.Values{"username": {username}}

	resp, err := c.do(ctx, http.MethodDelete, "/api/v1/rental/"+rentalUID.String(), query, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return statusError(resp)
	}
	resp.Body.Close()
	return nil
}

// FinishRental transitions a rental to FINISHED. Only IN_PROGRESS rentals can
// be finished; a terminal rental yields ErrConflict.
func (c *RentalHTTPClient) FinishRental(ctx context.Context, rentalUID uuid.UUID, username string) error {
	query := url.Values{"username": {username}}

	resp, err := c.do(ctx, http.MethodPost, "/api/v1/rental/"+rentalUID.String()+"/finish", query, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return statusError(resp)
	}
	resp.Body.Close()
	return nil
}
