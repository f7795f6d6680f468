package databases

// go generate: mockery --name DocumentDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/legalconnect/legalconnect-api/models"
)

const documentName = "documents"

// DocumentDatabase contains the methods to use with the document database
type DocumentDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Document, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Document, error)
	InsertOne(ctx context.Context, document models.Document, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
}

type documentDatabase struct {
	db DatabaseHelper
}

// NewDocumentDatabase initializes a new instance of document database with the provided db connection
func NewDocumentDatabase(db DatabaseHelper) DocumentDatabase {
	return &documentDatabase{
		db: db,
	}
}

func (c *documentDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Document, error) {
	document := &models.Document{}
	err := c.db.Collection(documentName).FindOne(ctx, filter, opts...).Decode(&document)
	if err != nil {
		return nil, err
	}
	return document, nil
}

func (c *documentDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Document, error) {
	var documents []models.Document
	err := c.db.Collection(documentName).Find(ctx, filter, opts...).Decode(&documents)
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (c *documentDatabase) InsertOne(ctx context.Context, document models.Document, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(documentName).InsertOne(ctx, document, opts...)
	return res, nil
}

func (c *documentDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := c.db.Collection(documentName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (c *documentDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(documentName).DeleteOne(ctx, filter, opts...)
}
