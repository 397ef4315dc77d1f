package jsonrpc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Err(t *testing.T) {
	t.Run("returns nil when Error field is nil", func(t *testing.T) {
		resp := response{
			JsonRPC: "2.0",
			Error:   nil,
			Result:  nil,
		}

		assert.NoError(t, resp.Err())
	})

	t.Run("returns formatted error when Error field is present", func(t *testing.T) {
		expectedCode := -32601
		expectedMsg := "method not found"

		resp := response{
			JsonRPC: "2.0",
			Error: &struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			}{
				Code:    expectedCode,
				Message: expectedMsg,
			},
		}

		err := resp.Err()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Contains(t, err.Error(), fmt.Sprintf("[%d]", expectedCode))
		assert.Contains(t, err.Error(), expectedMsg)
	})
}

func TestClient_Fetch(t *testing.T) {
	t.Run("successful response with result", func(t *testing.T) {
		expected := map[string]any{"hello": "world"}
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "2.0", req["jsonrpc"])
			assert.Equal(t, "dummy_method", req["method"])
			assert.NotEmpty(t, req["id"])

			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"result":  expected,
				"id":      req["id"],
			})
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL)

		result, err := c.Fetch(t.Context(), "dummy_method")
		require.NoError(t, err)

		var actual map[string]any
		require.NoError(t, json.Unmarshal(result, &actual))
		assert.Equal(t, expected, actual)
	})

	t.Run("passes parameters through as a positional array", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []any{"digest-1", true}, req["params"])

			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"result":  "ok",
				"id":      req["id"],
			})
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL)

		_, err := c.Fetch(t.Context(), "dummy_method", "digest-1", true)
		require.NoError(t, err)
	})

	t.Run("provider error response", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"error":   map[string]any{"code": -32000, "message": "server error"},
				"id":      "1",
			})
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL)

		_, err := c.Fetch(t.Context(), "dummy_method")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Contains(t, err.Error(), "server error")
	})

	t.Run("malformed response body", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "not json")
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL)

		_, err := c.Fetch(t.Context(), "dummy_method")
		assert.Error(t, err)
	})
}
