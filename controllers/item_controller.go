package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"shoplist/models"
	"shoplist/storage"
	"shoplist/validation"
)

// ItemController maps HTTP verbs onto repository calls and shapes the
// uniform response envelope. Storage failures are logged with detail
// and surfaced to clients as generic 500 messages.
type ItemController struct {
	repo   storage.Repository
	logger *log.Logger
}

func NewItemController(repo storage.Repository, logger *log.Logger) *ItemController {
	return &ItemController{repo: repo, logger: logger}
}

func (c *ItemController) GetAllItems(w http.ResponseWriter, r *http.Request) {
	items, err := c.repo.List(r.Context())
	if err != nil {
		c.logger.Printf("Error fetching shopping items: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch shopping items",
		})
		return
	}
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: items})
}

func (c *ItemController) GetItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	item, err := c.repo.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Shopping item not found",
		})
		return
	}
	if err != nil {
		c.logger.Printf("Error fetching shopping item %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch shopping item",
		})
		return
	}
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: item})
}

func (c *ItemController) CreateItem(w http.ResponseWriter, r *http.Request) {
	req, details := validation.ParseCreate(r.Body)
	if len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Validation failed",
			Details: details,
		})
		return
	}

	item, err := c.repo.Create(r.Context(), req)
	if err != nil {
		c.logger.Printf("Error creating shopping item: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to create shopping item",
		})
		return
	}
	writeJSON(w, http.StatusCreated, models.Response{Success: true, Data: item})
}

func (c *ItemController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	patch, details := validation.ParsePatch(r.Body)
	if len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Validation failed",
			Details: details,
		})
		return
	}

	item, err := c.repo.Update(r.Context(), id, patch)
	switch {
	case errors.Is(err, storage.ErrNoFields):
		writeJSON(w, http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "No fields to update",
		})
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Shopping item not found",
		})
	case err != nil:
		c.logger.Printf("Error updating shopping item %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to update shopping item",
		})
	default:
		writeJSON(w, http.StatusOK, models.Response{Success: true, Data: item})
	}
}

func (c *ItemController) ToggleItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	item, err := c.repo.Toggle(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Shopping item not found",
		})
		return
	}
	if err != nil {
		c.logger.Printf("Error toggling shopping item %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to toggle shopping item",
		})
		return
	}
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: item})
}

func (c *ItemController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := c.repo.Delete(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Shopping item not found",
		})
		return
	}
	if err != nil {
		c.logger.Printf("Error deleting shopping item %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to delete shopping item",
		})
		return
	}
	writeJSON(w, http.StatusOK, models.Response{
		Success: true,
		Message: "Shopping item deleted successfully",
	})
}

func writeJSON(w http.ResponseWriter, status int, resp models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
