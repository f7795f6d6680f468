package databases

// go generate: mockery --name AppointmentDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/legalconnect/legalconnect-api/models"
)

const appointmentName = "appointments"

// AppointmentDatabase contains the methods to use with the appointment database
type AppointmentDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Appointment, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Appointment, error)
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
	InsertOne(ctx context.Context, appointment models.Appointment, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
}

type appointmentDatabase struct {
	db DatabaseHelper
}

// NewAppointmentDatabase initializes a new instance of appointment database with the provided db connection
func NewAppointmentDatabase(db DatabaseHelper) AppointmentDatabase {
	return &appointmentDatabase{
		db: db,
	}
}

func (c *appointmentDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Appointment, error) {
	appointment := &models.Appointment{}
	err := c.db.Collection(appointmentName).FindOne(ctx, filter, opts...).Decode(&appointment)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (c *appointmentDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := c.db.Collection(appointmentName).Find(ctx, filter, opts...).Decode(&appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *appointmentDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(appointmentName).CountDocuments(ctx, filter, opts...)
}

func (c *appointmentDatabase) InsertOne(ctx context.Context, appointment models.Appointment, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(appointmentName).InsertOne(ctx, appointment, opts...)
	return res, nil
}

func (c *appointmentDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := c.db.Collection(appointmentName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (c *appointmentDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(appointmentName).DeleteOne(ctx, filter, opts...)
}
