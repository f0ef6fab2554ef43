// Package address implements the address check used by order validation.
package address

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"placeorder/internal/core/domain/model/order"
	"placeorder/internal/core/domain/services"
)

const (
	checkPath       = "/api/v1/addresses/check"
	maxErrorBodyLen = 512
	DefaultTimeout  = 5 * time.Second
)

// addressDTO is the wire form exchanged with the address service.
type addressDTO struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	AddressLine4 string `json:"addressLine4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

// HTTPChecker asks a remote address service whether an address exists.
//
// The service answers 200 with the address as it knows it, 404 when the
// address does not exist and 422 when it cannot parse it. Any other outcome
// is reported as a RemoteServiceError naming the endpoint.
type HTTPChecker struct {
	client   *http.Client
	endpoint string
	service  order.ServiceInfo
}

func NewHTTPChecker(baseURL string, client *http.Client) *HTTPChecker {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	endpoint := strings.TrimRight(baseURL, "/") + checkPath
	service := services.AddressCheckService
	service.Endpoint = endpoint
	return &HTTPChecker{
		client:   client,
		endpoint: endpoint,
		service:  service,
	}
}

func (c *HTTPChecker) CheckAddress(ctx context.Context, address order.UnvalidatedAddress) (order.CheckedAddress, error) {
	body, err := json.Marshal(toDTO(address))
	if err != nil {
		return order.CheckedAddress{}, c.remoteError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return order.CheckedAddress{}, c.remoteError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return order.CheckedAddress{}, c.remoteError(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var checked addressDTO
		if err = json.NewDecoder(resp.Body).Decode(&checked); err != nil {
			return order.CheckedAddress{}, c.remoteError(fmt.Errorf("decode response: %w", err))
		}
		return fromDTO(checked), nil
	case http.StatusNotFound:
		return order.CheckedAddress{}, order.ErrAddressNotFound
	case http.StatusUnprocessableEntity:
		return order.CheckedAddress{}, order.ErrInvalidFormat
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return order.CheckedAddress{}, c.remoteError(
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))),
		)
	}
}

func (c *HTTPChecker) remoteError(cause error) error {
	return order.NewRemoteServiceError(c.service, cause)
}

func toDTO(a order.UnvalidatedAddress) addressDTO {
	return addressDTO{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		AddressLine3: a.AddressLine3,
		AddressLine4: a.AddressLine4,
		City:         a.City,
		ZipCode:      a.ZipCode,
		State:        a.State,
		Country:      a.Country,
	}
}

func fromDTO(d addressDTO) order.CheckedAddress {
	return order.CheckedAddress{
		AddressLine1: d.AddressLine1,
		AddressLine2: d.AddressLine2,
		AddressLine3: d.AddressLine3,
		AddressLine4: d.AddressLine4,
		City:         d.City,
		ZipCode:      d.ZipCode,
		State:        d.State,
		Country:      d.Country,
	}
}
