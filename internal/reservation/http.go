package reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nekogravitycat/dineflex-backend/internal/availability"
	availHttp "github.com/nekogravitycat/dineflex-backend/internal/availability/http"
	"github.com/nekogravitycat/dineflex-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/dineflex-backend/internal/booking/http"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/response"
	"github.com/nekogravitycat/dineflex-backend/internal/restaurant"
	restHttp "github.com/nekogravitycat/dineflex-backend/internal/restaurant/http"
)

// HTTPTransport talks to the REST API served by cmd/server.
type HTTPTransport struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPTransport returns a transport for baseURL, e.g. http://localhost:8080/v1.
// Every request is bounded by timeout.
func NewHTTPTransport(baseURL string, timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (t *HTTPTransport) ListRestaurants(ctx context.Context, filter restaurant.Filter) ([]*restaurant.Restaurant, error) {
	q := url.Values{}
	if filter.Deal != "" && filter.Deal != restaurant.DealAll {
		q.Set("deal", string(filter.Deal))
	}
	if filter.Query != "" {
		q.Set("q", filter.Query)
	}

	var body response.ListResponse[restHttp.RestaurantResponse]
	if err := t.do(ctx, http.MethodGet, "/restaurants", q, nil, &body); err != nil {
		return nil, err
	}
	out := make([]*restaurant.Restaurant, 0, len(body.Items))
	for _, r := range body.Items {
		out = append(out, r.ToRestaurant())
	}
	return out, nil
}

func (t *HTTPTransport) GetRestaurant(ctx context.Context, id string) (*restaurant.Detail, error) {
	var body restHttp.RestaurantDetailResponse
	if err := t.do(ctx, http.MethodGet, "/restaurants/"+url.PathEscape(id), nil, nil, &body); err != nil {
		return nil, err
	}
	return body.ToDetail(), nil
}

func (t *HTTPTransport) GetAvailability(ctx context.Context, restaurantID, date string) (*availability.Availability, error) {
	q := url.Values{"date": {date}}
	var body availHttp.AvailabilityResponse
	path := "/restaurants/" + url.PathEscape(restaurantID) + "/availability"
	if err := t.do(ctx, http.MethodGet, path, q, nil, &body); err != nil {
		return nil, err
	}
	return body.ToAvailability(), nil
}

func (t *HTTPTransport) CreateBooking(ctx context.Context, req booking.Request) (*booking.Result, error) {
	var body bookingHttp.BookingResponse
	if err := t.do(ctx, http.MethodPost, "/bookings", nil, req, &body); err != nil {
		return nil, err
	}
	return body.ToResult(), nil
}

func (t *HTTPTransport) GetBooking(ctx context.Context, id string) (*booking.Result, error) {
	var body bookingHttp.BookingResponse
	if err := t.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), nil, nil, &body); err != nil {
		return nil, err
	}
	return body.ToResult(), nil
}

func (t *HTTPTransport) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := t.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.hc.Do(req)
	if err != nil {
		// The caller giving up is not a transport failure.
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return ctxErr
		}
		return apperror.Network(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.Network(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return apperror.Wrap(err, resp.StatusCode, apperror.CodeServer, "unexpected response from server")
	}
	return nil
}

func decodeError(status int, data []byte) *apperror.AppError {
	var body apperror.Body
	// A body that is not an error object still classifies by status.
	_ = json.Unmarshal(data, &body)

	appErr := apperror.FromBody(status, body)
	if status >= http.StatusInternalServerError {
		appErr.Code = apperror.CodeServer
	}
	return appErr
}
