package routes

import (
	"shoplist/controllers"

	"github.com/gorilla/mux"
)

// SetupRoutes registers the shopping-list resource under /api.
func SetupRoutes(c *controllers.ItemController) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/shopping-list").Subrouter()
	api.HandleFunc("", c.GetAllItems).Methods("GET")
	api.HandleFunc("", c.CreateItem).Methods("POST")
	api.HandleFunc("/{id}", c.GetItem).Methods("GET")
	api.HandleFunc("/{id}", c.UpdateItem).Methods("PUT")
	api.HandleFunc("/{id}/toggle", c.ToggleItem).Methods("PATCH")
	api.HandleFunc("/{id}", c.DeleteItem).Methods("DELETE")
	return r
}
