package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/legalconnect/legalconnect-api/config"
	"github.com/legalconnect/legalconnect-api/statute"
)

// IPCSection exported for testing purposes
type IPCSection struct{}

// ListSectionsHandler returns the full IPC section table
func (s IPCSection) ListSectionsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(statute.Sections)
}

// SearchSectionsHandler matches a free-text query against the IPC table
func (s IPCSection) SearchSectionsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result := statute.Match(query)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// SectionByIDHandler returns a single IPC section by its number
func (s IPCSection) SectionByIDHandler(w http.ResponseWriter, r *http.Request) {
	sectionID := mux.Vars(r)["section_id"]

	record, ok := statute.BySectionID(sectionID)
	if !ok {
		config.ErrorStatus("failed to find section", http.StatusNotFound, w, fmt.Errorf("no IPC section %q", sectionID))
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(record)
}
