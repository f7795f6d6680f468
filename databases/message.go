package databases

// go generate: mockery --name MessageDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/legalconnect/legalconnect-api/models"
)

const messageName = "messages"

// MessageDatabase contains the methods to use with the message database
type MessageDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Message, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Message, error)
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
	InsertOne(ctx context.Context, message models.Message, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error)
}

type messageDatabase struct {
	db DatabaseHelper
}

// NewMessageDatabase initializes a new instance of message database with the provided db connection
func NewMessageDatabase(db DatabaseHelper) MessageDatabase {
	return &messageDatabase{
		db: db,
	}
}

func (c *messageDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Message, error) {
	message := &models.Message{}
	err := c.db.Collection(messageName).FindOne(ctx, filter, opts...).Decode(&message)
	if err != nil {
		return nil, err
	}
	return message, nil
}

func (c *messageDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Message, error) {
	var messages []models.Message
	err := c.db.Collection(messageName).Find(ctx, filter, opts...).Decode(&messages)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *messageDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(messageName).CountDocuments(ctx, filter, opts...)
}

func (c *messageDatabase) InsertOne(ctx context.Context, message models.Message, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(messageName).InsertOne(ctx, message, opts...)
	return res, nil
}

func (c *messageDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(messageName).DeleteOne(ctx, filter, opts...)
}

func (c *messageDatabase) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error) {
	return c.db.Collection(messageName).DeleteMany(ctx, filter, opts...)
}
