package databases

// go generate: mockery --name ConversationDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/legalconnect/legalconnect-api/models"
)

const conversationName = "conversations"

// ConversationDatabase contains the methods to use with the conversation database
type ConversationDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Conversation, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Conversation, error)
	InsertOne(ctx context.Context, conversation models.Conversation, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
}

type conversationDatabase struct {
	db DatabaseHelper
}

// NewConversationDatabase initializes a new instance of conversation database with the provided db connection
func NewConversationDatabase(db DatabaseHelper) ConversationDatabase {
	return &conversationDatabase{
		db: db,
	}
}

func (c *conversationDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Conversation, error) {
	conversation := &models.Conversation{}
	err := c.db.Collection(conversationName).FindOne(ctx, filter, opts...).Decode(&conversation)
	if err != nil {
		return nil, err
	}
	return conversation, nil
}

func (c *conversationDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := c.db.Collection(conversationName).Find(ctx, filter, opts...).Decode(&conversations)
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

func (c *conversationDatabase) InsertOne(ctx context.Context, conversation models.Conversation, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(conversationName).InsertOne(ctx, conversation, opts...)
	return res, nil
}

func (c *conversationDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := c.db.Collection(conversationName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (c *conversationDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(conversationName).DeleteOne(ctx, filter, opts...)
}
