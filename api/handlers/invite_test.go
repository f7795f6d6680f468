package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"

	"github.com/legalconnect/legalconnect-api/api/handlers"
	"github.com/legalconnect/legalconnect-api/databases"
	mocksdb "github.com/legalconnect/legalconnect-api/databases/mocks"
	"github.com/legalconnect/legalconnect-api/models"
)

func TestInvite_CreateInviteHandlerMissingFields(t *testing.T) {
	body := bytes.NewBufferString(`{"fromUserId": "u1"}`)
	req, err := http.NewRequest("POST", "/api/v1/invite", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	i := handlers.Invite{}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(i.CreateInviteHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := `{"response": "missing fields, fromUserId and toEmail are required"}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestInvite_InviteByCodeHandlerNotFound(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/invite/nope", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")
	req = mux.SetURLVars(req, map[string]string{"code": "nope"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	singleResultHelper = &mocksdb.SingleResultHelper{}

	singleResultHelper.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(errors.New("mongo: no documents in result"))
	conn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*mocksdb.DatabaseHelper).On("Collection", "invites").Return(conn)

	inviteDatabase := databases.NewInviteDatabase(db)
	i := handlers.Invite{
		DB: inviteDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(i.InviteByCodeHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusNotFound)
	}

	expected := `{"response": "failed to find invite, mongo: no documents in result"}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestInvite_AcceptInviteHandlerAlreadyAccepted(t *testing.T) {
	body := bytes.NewBufferString(`{"userId": "u2"}`)
	req, err := http.NewRequest("POST", "/api/v1/invite/used-code/accept", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")
	req = mux.SetURLVars(req, map[string]string{"code": "used-code"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	singleResultHelper = &mocksdb.SingleResultHelper{}

	singleResultHelper.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Invite)
		(*arg).Details.Code = "used-code"
		(*arg).Details.Accepted = true
	})
	conn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*mocksdb.DatabaseHelper).On("Collection", "invites").Return(conn)

	inviteDatabase := databases.NewInviteDatabase(db)
	i := handlers.Invite{
		DB: inviteDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(i.AcceptInviteHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusConflict {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusConflict)
	}

	expected := `{"response": "invite already accepted, invite used-code was already used"}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestInvite_AcceptInviteHandlerSuccess(t *testing.T) {
	body := bytes.NewBufferString(`{"userId": "u2"}`)
	req, err := http.NewRequest("POST", "/api/v1/invite/fresh-code/accept", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")
	req = mux.SetURLVars(req, map[string]string{"code": "fresh-code"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	singleResultHelper = &mocksdb.SingleResultHelper{}

	singleResultHelper.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Invite)
		(*arg).Details.Code = "fresh-code"
		(*arg).Details.Accepted = false
	})
	conn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	conn.(*mocksdb.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)
	db.(*mocksdb.DatabaseHelper).On("Collection", "invites").Return(conn)

	inviteDatabase := databases.NewInviteDatabase(db)
	i := handlers.Invite{
		DB: inviteDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(i.AcceptInviteHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := `{"message": "invite accepted successfully"}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}
