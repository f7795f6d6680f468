package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/legalconnect/legalconnect-api/api/handlers"
	"github.com/legalconnect/legalconnect-api/statute"
)

func TestIPCSection_ListSectionsHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/ipc-sections", nil)
	if err != nil {
		t.Fatal(err)
	}

	s := handlers.IPCSection{}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(s.ListSectionsHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var sections []statute.Record
	_ = json.Unmarshal(rr.Body.Bytes(), &sections)

	assert.Len(t, sections, len(statute.Sections))
	assert.Equal(t, "1", sections[0].SectionID)
}

func TestIPCSection_SearchSectionsHandlerFindsMurder(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/ipc-sections/search?q=someone+killed+my+brother", nil)
	if err != nil {
		t.Fatal(err)
	}

	s := handlers.IPCSection{}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(s.SearchSectionsHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var result statute.Result
	_ = json.Unmarshal(rr.Body.Bytes(), &result)

	assert.True(t, result.Found)
	assert.Equal(t, "302", result.SectionID)
}

func TestIPCSection_SearchSectionsHandlerEmptyQuery(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/ipc-sections/search", nil)
	if err != nil {
		t.Fatal(err)
	}

	s := handlers.IPCSection{}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(s.SearchSectionsHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var result statute.Result
	_ = json.Unmarshal(rr.Body.Bytes(), &result)

	assert.False(t, result.Found)
	assert.NotEmpty(t, result.Guidance)
}

func TestIPCSection_SectionByIDHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/ipc-sections/420", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"section_id": "420"})

	s := handlers.IPCSection{}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(s.SectionByIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var record statute.Record
	_ = json.Unmarshal(rr.Body.Bytes(), &record)

	assert.Equal(t, "420", record.SectionID)
	assert.Contains(t, record.Title, "Cheating")
}

func TestIPCSection_SectionByIDHandlerNotFound(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/ipc-sections/9999", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"section_id": "9999"})

	s := handlers.IPCSection{}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(s.SectionByIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusNotFound)
	}
}
