package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"fashionai/go_backend/internal/app/http/middleware"
	"fashionai/go_backend/internal/domain/closet"
	"fashionai/go_backend/internal/infra/db/postgres"
)

type SaveProductRequest struct {
	Collection string              `json:"collection"`
	Product    closet.SavedProduct `json:"product"`
}

type SaveProductResponse struct {
	CollectionID string              `json:"collection_id"`
	Product      closet.SavedProduct `json:"product"`
}

// SaveProduct finds or creates the named collection under the current user
// and writes the product record into it. A record with an existing ID is
// merged, not duplicated; a record without an ID gets a generated one.
func (h *Handlers) SaveProduct(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	kind, ok := closet.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		http.Error(w, "unknown collection kind", http.StatusNotFound)
		return
	}

	var req SaveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Collection)
	if name == "" {
		http.Error(w, "collection name is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Product.ID) == "" {
		req.Product.ID = uuid.NewString()
	}

	col, err := h.DB.FindOrCreateCollection(r.Context(), userID, kind, name)
	if err != nil {
		log.Printf("closet save user=%s kind=%s collection failed: %v", userID, kind, err)
		http.Error(w, "save failed", http.StatusInternalServerError)
		return
	}
	if err := h.DB.UpsertSavedProduct(r.Context(), col.ID, req.Product); err != nil {
		log.Printf("closet save user=%s collection=%s product failed: %v", userID, col.ID, err)
		http.Error(w, "save failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SaveProductResponse{CollectionID: col.ID, Product: req.Product})
}

func (h *Handlers) ListCollections(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	kind, ok := closet.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		http.Error(w, "unknown collection kind", http.StatusNotFound)
		return
	}

	cols, err := h.DB.ListCollections(r.Context(), userID, kind)
	if err != nil {
		log.Printf("closet list user=%s kind=%s failed: %v", userID, kind, err)
		http.Error(w, "list failed", http.StatusInternalServerError)
		return
	}
	if cols == nil {
		cols = []closet.Collection{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cols)
}

func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if _, ok := closet.ParseKind(chi.URLParam(r, "kind")); !ok {
		http.Error(w, "unknown collection kind", http.StatusNotFound)
		return
	}
	collectionID := chi.URLParam(r, "collectionID")
	productID := chi.URLParam(r, "productID")

	err := h.DB.DeleteSavedProduct(r.Context(), userID, collectionID, productID)
	if errors.Is(err, postgres.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("closet delete user=%s collection=%s product=%s failed: %v", userID, collectionID, productID, err)
		http.Error(w, "delete failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
