package hue_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/hapi/hue"
)

type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        string
}

func newTestBridge(t *testing.T, status int, body string) (*httptest.Server, func() []recordedRequest) {
	var (
		mu       sync.Mutex
		requests []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		defer mu.Unlock()
		requests = append(requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(b),
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), requests...)
	}
}

func newTestService(srv *httptest.Server) *hue.HueAPIService {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	user := hue.NewUser(strings.TrimPrefix(srv.URL, "http://"), "abc123")
	return hue.NewHueAPIService(logger, user, 0)
}

func Test_User(t *testing.T) {

	t.Run("should build the base url from ip and user id", func(t *testing.T) {
		user := hue.NewUser("10.0.0.5", "abc123")
		assert.Equal(t, "http://10.0.0.5/api/abc123", user.URL())
	})

	t.Run("should not validate its inputs", func(t *testing.T) {
		assert.Equal(t, "http:///api/", hue.User{}.URL())
	})
}

func Test_Paths(t *testing.T) {
	assert.Equal(t, "/lights/", hue.LightsPath())
	assert.Equal(t, "/lights/3/", hue.LightPath(3))
	assert.Equal(t, "/lights/3/state", hue.LightStatePath(3))
	assert.Equal(t, "/groups/", hue.GroupsPath())
	assert.Equal(t, "/groups/0/", hue.GroupPath(0))
}

func Test_GET(t *testing.T) {

	t.Run("should request the path relative to the user url", func(t *testing.T) {
		// arrange
		srv, requests := newTestBridge(t, http.StatusOK, `{"1":{}}`)
		h := newTestService(srv)

		// act
		body, err := h.GET(context.Background(), hue.LightPath(3))

		// assert
		require.NoError(t, err)
		assert.Equal(t, `{"1":{}}`, string(body))
		reqs := requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, http.MethodGet, reqs[0].Method)
		assert.Equal(t, "/api/abc123/lights/3/", reqs[0].Path)
		assert.Empty(t, reqs[0].ContentType)
	})

	t.Run("non success status: should still return the body", func(t *testing.T) {
		// arrange
		srv, _ := newTestBridge(t, http.StatusInternalServerError, `oops`)
		h := newTestService(srv)

		// act
		body, err := h.GET(context.Background(), hue.LightsPath())

		// assert
		require.NoError(t, err)
		assert.Equal(t, "oops", string(body))
	})

	t.Run("bridge down: should return the network error", func(t *testing.T) {
		// arrange
		srv, _ := newTestBridge(t, http.StatusOK, ``)
		h := newTestService(srv)
		srv.Close()

		// act
		_, err := h.GET(context.Background(), hue.LightsPath())

		// assert
		assert.Error(t, err)
	})

	t.Run("cancelled context: should not make the request", func(t *testing.T) {
		// arrange
		srv, requests := newTestBridge(t, http.StatusOK, `{}`)
		h := newTestService(srv)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// act
		_, err := h.GET(ctx, hue.LightsPath())

		// assert
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, requests())
	})
}

func Test_PUT(t *testing.T) {

	t.Run("should send the json body to the path", func(t *testing.T) {
		// arrange
		srv, requests := newTestBridge(t, http.StatusOK, `[{"success":{"/lights/5/state/on":true}}]`)
		h := newTestService(srv)

		// act
		resp, err := h.PUT(context.Background(), hue.LightStatePath(5), []byte(`{"on":true}`))

		// assert
		require.NoError(t, err)
		assert.True(t, resp.OK())
		reqs := requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, http.MethodPut, reqs[0].Method)
		assert.Equal(t, "/api/abc123/lights/5/state", reqs[0].Path)
		assert.Equal(t, "application/json", reqs[0].ContentType)
		assert.JSONEq(t, `{"on":true}`, reqs[0].Body)
	})

	t.Run("non success status: should return the raw response", func(t *testing.T) {
		// arrange
		srv, _ := newTestBridge(t, http.StatusNotFound, `not found`)
		h := newTestService(srv)

		// act
		resp, err := h.PUT(context.Background(), hue.LightStatePath(5), []byte(`{}`))

		// assert
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "404 Not Found", resp.Status)
		assert.Equal(t, "not found", string(resp.Body))
		assert.False(t, resp.OK())
	})

	t.Run("timeout: should return an error", func(t *testing.T) {
		// arrange
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
		h := hue.NewHueAPIService(logger, hue.NewUser(strings.TrimPrefix(srv.URL, "http://"), "abc123"), 20*time.Millisecond)

		// act
		_, err := h.PUT(context.Background(), hue.LightStatePath(1), []byte(`{}`))

		// assert
		assert.Error(t, err)
	})
}
