package hue

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/hapi/internal/constants"
)

// HueAPIService makes requests against the v1 api of a single bridge.
type HueAPIService struct {
	logger *log.Logger
	user   User
	client *http.Client
}

// NewHueAPIService creates a service for the given user. A zero timeout means
// requests never time out on their own; use the context to bound them.
func NewHueAPIService(logger *log.Logger, user User, timeout time.Duration) *HueAPIService {
	return &HueAPIService{
		logger: logger,
		user:   user,
		client: &http.Client{Timeout: timeout},
	}
}

// GET returns the response body, whatever the status code.
func (h *HueAPIService) GET(ctx context.Context, path string) ([]byte, error) {
	resp, err := h.makeRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (h *HueAPIService) PUT(ctx context.Context, path string, body []byte) (*Response, error) {
	return h.makeRequest(ctx, http.MethodPut, path, body)
}

func (h *HueAPIService) makeRequest(ctx context.Context, verb string, path string, body []byte) (*Response, error) {

	url := h.user.URL() + path

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, verb, url, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", constants.ContentTypeJSON)
	}

	h.logger.Debug("Making Hue API call", "verb", verb, "url", url)

	// make the request
	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Error(err)
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading hue bridge response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		h.logger.Warn("Hue API call returned non success status", "url", url, "status", resp.Status)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       responseBody,
	}, nil
}
