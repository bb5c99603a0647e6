package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fashionai/go_backend/internal/app/http/middleware"
	"fashionai/go_backend/internal/domain/closet"
	pdfgen "fashionai/go_backend/internal/domain/closet/pdf/gofpdf"
	"fashionai/go_backend/internal/infra/db/postgres"
)

// OutfitPDF renders an outfit board as a downloadable PDF.
func (h *Handlers) OutfitPDF(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	collectionID := chi.URLParam(r, "collectionID")

	board, err := h.DB.GetCollection(r.Context(), userID, collectionID, closet.KindOutfit)
	if errors.Is(err, postgres.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("outfit pdf user=%s collection=%s load failed: %v", userID, collectionID, err)
		http.Error(w, "load failed", http.StatusInternalServerError)
		return
	}

	gen := pdfgen.New()
	pdfBytes, err := gen.Generate(board)
	if err != nil {
		log.Printf("outfit pdf user=%s collection=%s generate failed: %v", userID, collectionID, err)
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="outfit-%s.pdf"`, collectionID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
