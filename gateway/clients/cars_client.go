package clients

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/yashrajoria/car-rental-backend/gateway/models"
)

// CarsHTTPClient talks to the cars service over HTTP.
type CarsHTTPClient struct {
	httpClient
}

// NewCarsClient creates a CarsHTTPClient for the given base URL.
func NewCarsClient(cfg Config) *CarsHTTPClient {
	return &CarsHTTPClient{newHTTPClient(cfg)}
}

// ListCars fetches a page of cars. showAll=false returns only available cars.
func (c *CarsHTTPClient) ListCars(ctx context.Context, page, size int, showAll bool) (*models.PaginationResponse, error) {
	query := url.Values{
		"page":    {strconv.Itoa(page)},
		"size":    {strconv.Itoa(size)},
		"showAll": {strconv.FormatBool(showAll)},
	}

	resp, err := c.do(ctx, http.MethodGet, "/api/v1/cars", query, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var out models.PaginationResponse
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCar fetches a single car by UID.
func (c *CarsHTTPClient) GetCar(ctx context.Context, carUID uuid.UUID) (*models.Car, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/cars/"+carUID.String(), nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var out models.Car
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetAvailability toggles the availability flag. Reserving (available=false)
// is conditional on the car currently being available; the cars service
// answers 409 when another reservation won, which surfaces as ErrConflict.
// Releasing (available=true) is idempotent.
func (c *CarsHTTPClient) SetAvailability(ctx context.Context, carUID uuid.UUID, available bool) error {
	query := url.Values{"available": {strconv.FormatBool(available)}}

	resp, err := c.do(ctx, http.MethodPatch, "/api/v1/cars/"+carUID.String()+"/availability", query, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	resp.Body.Close()
	return nil
}
