package menu

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asavelyev/campus-canteen/internal/api"
	"github.com/asavelyev/campus-canteen/internal/types/menu"
)

type Handler struct {
	items []menu.Item
}

func NewHandler(items []menu.Item) *Handler {
	return &Handler{items: items}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListItems)
	r.Get("/{id}", h.GetItem)
	return r
}

// ListItems returns the catalog, optionally filtered by mealType, category
// and veg=true/false.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mealType := q.Get("mealType")
	category := q.Get("category")
	veg := q.Get("veg")

	out := make([]menu.Item, 0, len(h.items))
	for _, item := range h.items {
		if mealType != "" && string(item.MealType) != mealType {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		if veg == "true" && !item.IsVeg {
			continue
		}
		if veg == "false" && item.IsVeg {
			continue
		}
		out = append(out, item)
	}
	api.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, item := range h.items {
		if item.ID == id {
			api.WriteJSON(w, http.StatusOK, item)
			return
		}
	}
	api.WriteError(w, http.StatusNotFound, "Menu item not found", "NOT_FOUND")
}
