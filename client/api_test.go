package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplist/models"
)

func TestListItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/shopping-list", r.URL.Path)
		json.NewEncoder(w).Encode(models.Response{
			Success: true,
			Data: []models.Item{
				{ID: "1", Name: "Milk", Quantity: 1},
				{ID: "2", Name: "Eggs", Quantity: 2},
			},
		})
	}))
	defer server.Close()

	api := NewHTTPClient(server.URL + "/api")
	items, err := api.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Milk", items[0].Name)
}

func TestCreateItemSendsPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/shopping-list", r.URL.Path)

		var req models.CreateItemRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Eggs", req.Name)
		assert.Equal(t, 2, req.Quantity)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Response{
			Success: true,
			Data:    models.Item{ID: "abc", Name: req.Name, Quantity: req.Quantity},
		})
	}))
	defer server.Close()

	api := NewHTTPClient(server.URL + "/api")
	item, err := api.CreateItem(context.Background(), models.CreateItemRequest{Name: "Eggs", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "abc", item.ID)
}

func TestToggleAndDeletePaths(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		json.NewEncoder(w).Encode(models.Response{
			Success: true,
			Data:    models.Item{ID: "abc", Completed: true},
			Message: "Shopping item deleted successfully",
		})
	}))
	defer server.Close()

	api := NewHTTPClient(server.URL + "/api")

	item, err := api.ToggleItem(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, item.Completed)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/shopping-list/abc/toggle", gotPath)

	require.NoError(t, api.DeleteItem(context.Background(), "abc"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/shopping-list/abc", gotPath)
}

func TestErrorEnvelopeBecomesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.Response{
			Success: false,
			Error:   "Shopping item not found",
		})
	}))
	defer server.Close()

	api := NewHTTPClient(server.URL + "/api")
	_, err := api.ToggleItem(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "Shopping item not found", err.Error())
}

func TestUnreadableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	api := NewHTTPClient(server.URL + "/api")
	_, err := api.ListItems(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
