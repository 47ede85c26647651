package clients_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/yashrajoria/car-rental-backend/gateway/clients"
)

func carsServer(t *testing.T, handler http.HandlerFunc) *clients.CarsHTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return clients.NewCarsClient(clients.Config{BaseURL: srv.URL, Timeout: time.Second})
}

func TestGetCar_Success(t *testing.T) {
	carUID := uuid.New()
	client := carsServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/cars/"+carUID.String(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"carUid":"` + carUID.String() + `","brand":"BMW","model":"M5","price":250,"type":"SEDAN","available":true}`))
	})

	car, err := client.GetCar(context.Background(), carUID)

	assert.NoError(t, err)
	assert.Equal(t, "BMW", car.Brand)
	assert.Equal(t, 250, car.Price)
	assert.True(t, car.Available)
}

func TestGetCar_NotFound(t *testing.T) {
	client := carsServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Car not found"}`, http.StatusNotFound)
	})

	_, err := client.GetCar(context.Background(), uuid.New())

	assert.ErrorIs(t, err, clients.ErrNotFound)
}

func TestSetAvailability_ConflictWhenAlreadyReserved(t *testing.T) {
	client := carsServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "false", r.URL.Query().Get("available"))
		http.Error(w, `{"message":"Car is not available"}`, http.StatusConflict)
	})

	err := client.SetAvailability(context.Background(), uuid.New(), false)

	assert.ErrorIs(t, err, clients.ErrConflict)
}

func TestSetAvailability_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	client := clients.NewCarsClient(clients.Config{BaseURL: srv.URL, Timeout: time.Second})

	err := client.SetAvailability(context.Background(), uuid.New(), true)

	assert.ErrorIs(t, err, clients.ErrUnavailable)
}

func TestListCars_PassesPagination(t *testing.T) {
	client := carsServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("size"))
		assert.Equal(t, "true", r.URL.Query().Get("showAll"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":2,"pageSize":5,"totalElements":0,"items":[]}`))
	})

	page, err := client.ListCars(context.Background(), 2, 5, true)

	assert.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Empty(t, page.Items)
}
