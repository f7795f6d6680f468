package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/legalconnect/legalconnect-api/databases"
	mocksdb "github.com/legalconnect/legalconnect-api/databases/mocks"
	"github.com/legalconnect/legalconnect-api/models"
	"github.com/legalconnect/legalconnect-api/relay"
)

// recordingSender collects relay deliveries for assertions.
type recordingSender struct {
	mu     sync.Mutex
	events []relay.Event
}

func (r *recordingSender) Send(ev relay.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingSender) Close() {}

func (r *recordingSender) ofType(eventType string) []relay.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []relay.Event
	for _, ev := range r.events {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

func TestExpireStaleAppointmentsMarksExpiredAndNotifiesBothParties(t *testing.T) {
	stale := models.Appointment{
		ID: primitive.NewObjectID(),
		Details: models.AppointmentDetails{
			ClientID: "client-1",
			LawyerID: "lawyer-1",
			Date:     "2020-01-01",
			Status:   models.AppointmentPending,
		},
	}

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	cursorHelper := &mocksdb.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Appointment)
		*arg = []models.Appointment{stale}
	})
	conn.On("Find", mock.Anything, mock.MatchedBy(func(filter interface{}) bool {
		f, ok := filter.(bson.M)
		if !ok || f["appointment.status"] != models.AppointmentPending {
			return false
		}
		date, ok := f["appointment.date"].(bson.M)
		if !ok {
			return false
		}
		_, hasLT := date["$lt"]
		return hasLT
	})).Return(databases.CursorHelper(cursorHelper))
	conn.On("UpdateOne", mock.Anything, bson.M{"_id": stale.ID}, mock.MatchedBy(func(update interface{}) bool {
		u, ok := update.(bson.M)
		if !ok {
			return false
		}
		set, ok := u["$set"].(bson.M)
		return ok && set["appointment.status"] == models.AppointmentExpired
	})).Return(int64(1), nil)
	db.On("Collection", "appointments").Return(conn)

	hub := relay.NewHub()
	defer hub.Stop()

	client := &recordingSender{}
	hub.Authenticate(hub.Register(client), "client-1", "Asha")
	lawyer := &recordingSender{}
	hub.Authenticate(hub.Register(lawyer), "lawyer-1", "Ravi")

	s := NewScheduler(databases.NewAppointmentDatabase(db), databases.NewUserDatabase(&mocksdb.DatabaseHelper{}), hub)
	s.expireStaleAppointments()

	conn.AssertCalled(t, "UpdateOne", mock.Anything, bson.M{"_id": stale.ID}, mock.Anything)

	clientUpdates := client.ofType(relay.EventAppointmentUpdate)
	if assert.Len(t, clientUpdates, 1) {
		appt := clientUpdates[0].Data.(models.Appointment)
		assert.Equal(t, stale.ID, appt.ID)
		assert.Equal(t, models.AppointmentExpired, appt.Details.Status)
	}
	assert.Len(t, lawyer.ofType(relay.EventAppointmentUpdate), 1)
}

func TestExpireStaleAppointmentsNothingToDo(t *testing.T) {
	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	cursorHelper := &mocksdb.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Appointment)
		*arg = nil
	})
	conn.On("Find", mock.Anything, mock.Anything).Return(databases.CursorHelper(cursorHelper))
	db.On("Collection", "appointments").Return(conn)

	s := NewScheduler(databases.NewAppointmentDatabase(db), databases.NewUserDatabase(&mocksdb.DatabaseHelper{}), nil)
	s.expireStaleAppointments()

	conn.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendAppointmentRemindersQueriesTomorrowsApproved(t *testing.T) {
	tomorrow := time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02")

	upcoming := models.Appointment{
		ID: primitive.NewObjectID(),
		Details: models.AppointmentDetails{
			ClientID: "client-1",
			LawyerID: "lawyer-1",
			Date:     tomorrow,
			Time:     "10:00",
			Status:   models.AppointmentApproved,
		},
	}

	apptDB := &mocksdb.DatabaseHelper{}
	apptConn := &mocksdb.CollectionHelper{}
	cursorHelper := &mocksdb.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Appointment)
		*arg = []models.Appointment{upcoming}
	})
	apptConn.On("Find", mock.Anything, bson.M{
		"appointment.status": models.AppointmentApproved,
		"appointment.date":   tomorrow,
	}).Return(databases.CursorHelper(cursorHelper))
	apptDB.On("Collection", "appointments").Return(apptConn)

	// lawyer lookup fails, so no reminder mail leaves the process
	userDB := &mocksdb.DatabaseHelper{}
	userConn := &mocksdb.CollectionHelper{}
	singleResultHelper := &mocksdb.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(assert.AnError)
	userConn.On("FindOne", mock.Anything, bson.M{"_id": "lawyer-1"}).Return(databases.SingleResultHelper(singleResultHelper))
	userDB.On("Collection", "users").Return(userConn)

	s := NewScheduler(databases.NewAppointmentDatabase(apptDB), databases.NewUserDatabase(userDB), nil)
	s.sendAppointmentReminders()

	userConn.AssertCalled(t, "FindOne", mock.Anything, bson.M{"_id": "lawyer-1"})
}
