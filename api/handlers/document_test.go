package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/legalconnect/legalconnect-api/api/handlers"
	"github.com/legalconnect/legalconnect-api/config"
	"github.com/legalconnect/legalconnect-api/databases"
	mocksdb "github.com/legalconnect/legalconnect-api/databases/mocks"
	"github.com/legalconnect/legalconnect-api/inference"
	"github.com/legalconnect/legalconnect-api/models"
	"github.com/legalconnect/legalconnect-api/statute"
)

// documentAnalysisResult mirrors the analyze-document response body.
type documentAnalysisResult struct {
	DocumentID string          `json:"documentId"`
	Name       string          `json:"name"`
	Source     string          `json:"source"`
	Analysis   string          `json:"analysis"`
	Match      *statute.Result `json:"match"`
}

func documentFindOneMock(documentID primitive.ObjectID, name string) databases.DatabaseHelper {
	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	singleResultHelper := &mocksdb.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Document)
		(*arg).ID = documentID
		(*arg).Details.Name = name
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "documents").Return(conn)
	return db
}

func TestDocument_DocumentByIDHandlerInvalidID(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/document/not-a-hex", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")
	req = mux.SetURLVars(req, map[string]string{"document_id": "not-a-hex"})

	d := handlers.Document{}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.DocumentByIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := `{"response": "invalid document ID, the provided hex string is not a valid ObjectID"}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestDocument_DocumentByIDHandlerSuccess(t *testing.T) {
	documentID := primitive.NewObjectID()

	req, err := http.NewRequest("GET", "/api/v1/document/"+documentID.Hex(), nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")
	req = mux.SetURLVars(req, map[string]string{"document_id": documentID.Hex()})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	singleResultHelper = &mocksdb.SingleResultHelper{}

	singleResultHelper.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Document)
		(*arg).ID = documentID
		(*arg).Details.Name = "fir-copy.pdf"
		(*arg).Details.OwnerID = "u1"
	})
	conn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*mocksdb.DatabaseHelper).On("Collection", "documents").Return(conn)

	documentDatabase := databases.NewDocumentDatabase(db)
	d := handlers.Document{
		DB: documentDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.DocumentByIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var got models.Document
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, documentID, got.ID)
	assert.Equal(t, "fir-copy.pdf", got.Details.Name)
}

func TestDocument_DocumentsByUserIDHandlerEmptyResponse(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/documents/user/u1", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")
	req = mux.SetURLVars(req, map[string]string{"user_id": "u1"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	cursorHelper = &mocksdb.CursorHelper{}

	cursorHelper.(*mocksdb.CursorHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Document)
		*arg = nil
	})
	conn.(*mocksdb.CollectionHelper).On("Find", mock.Anything, mock.Anything).Return(cursorHelper)
	db.(*mocksdb.DatabaseHelper).On("Collection", "documents").Return(conn)

	documentDatabase := databases.NewDocumentDatabase(db)
	d := handlers.Document{
		DB: documentDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.DocumentsByUserIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := `[]`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestDocument_ShareDocumentHandlerNothingToShare(t *testing.T) {
	body := bytes.NewBufferString(`{"userIds": []}`)
	req, err := http.NewRequest("POST", "/api/v1/document/abc/share", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")
	req = mux.SetURLVars(req, map[string]string{"document_id": "abc"})

	d := handlers.Document{}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.ShareDocumentHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := `{"response": "nothing to share, userIds or conversationIds required"}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestDocument_ShareDocumentHandlerSuccess(t *testing.T) {
	documentID := primitive.NewObjectID()

	body := bytes.NewBufferString(`{"userIds": ["u2"]}`)
	req, err := http.NewRequest("POST", "/api/v1/document/"+documentID.Hex()+"/share", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")
	req = mux.SetURLVars(req, map[string]string{"document_id": documentID.Hex()})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}

	conn.(*mocksdb.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)
	db.(*mocksdb.DatabaseHelper).On("Collection", "documents").Return(conn)

	documentDatabase := databases.NewDocumentDatabase(db)
	d := handlers.Document{
		DB: documentDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.ShareDocumentHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := `{"message": "document shared successfully"}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestDocument_AnalyzeDocumentHandlerMissingText(t *testing.T) {
	documentID := primitive.NewObjectID()

	body := bytes.NewBufferString(`{"text": "   "}`)
	req, err := http.NewRequest("POST", "/api/v1/document/"+documentID.Hex()+"/analyze", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")
	req = mux.SetURLVars(req, map[string]string{"document_id": documentID.Hex()})

	d := handlers.Document{}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.AnalyzeDocumentHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := `{"response": "missing document text, text is required"}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestDocument_AnalyzeDocumentHandlerUsesModelWhenAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"generated_text": "1. Rental agreement with a 11-month term."}]`))
	}))
	defer srv.Close()

	documentID := primitive.NewObjectID()

	body := bytes.NewBufferString(`{"text": "rental agreement between lessor and lessee"}`)
	req, err := http.NewRequest("POST", "/api/v1/document/"+documentID.Hex()+"/analyze", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")
	req = mux.SetURLVars(req, map[string]string{"document_id": documentID.Hex()})

	d := handlers.Document{
		DB:    databases.NewDocumentDatabase(documentFindOneMock(documentID, "rental-agreement.pdf")),
		Model: inference.New(&config.Config{InferenceURL: srv.URL, InferenceTimeout: time.Second}),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.AnalyzeDocumentHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var result documentAnalysisResult
	_ = json.Unmarshal(rr.Body.Bytes(), &result)

	assert.Equal(t, documentID.Hex(), result.DocumentID)
	assert.Equal(t, "rental-agreement.pdf", result.Name)
	assert.Equal(t, "model", result.Source)
	assert.Contains(t, result.Analysis, "Rental agreement")
	assert.Nil(t, result.Match)
}

func TestDocument_AnalyzeDocumentHandlerFallsBackToStatuteMatch(t *testing.T) {
	documentID := primitive.NewObjectID()

	body := bytes.NewBufferString(`{"text": "he cheated me in a fraud scheme"}`)
	req, err := http.NewRequest("POST", "/api/v1/document/"+documentID.Hex()+"/analyze", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")
	req = mux.SetURLVars(req, map[string]string{"document_id": documentID.Hex()})

	// no inference endpoint configured, so the local table must answer
	d := handlers.Document{
		DB:    databases.NewDocumentDatabase(documentFindOneMock(documentID, "complaint.pdf")),
		Model: inference.New(&config.Config{InferenceTimeout: time.Second}),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.AnalyzeDocumentHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var result documentAnalysisResult
	_ = json.Unmarshal(rr.Body.Bytes(), &result)

	assert.Equal(t, "statute", result.Source)
	assert.Equal(t, "complaint.pdf", result.Name)
	if assert.NotNil(t, result.Match) {
		assert.True(t, result.Match.Found)
		assert.Equal(t, "420", result.Match.SectionID)
	}
}
