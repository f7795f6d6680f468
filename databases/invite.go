package databases

// go generate: mockery --name InviteDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/legalconnect/legalconnect-api/models"
)

const inviteName = "invites"

// InviteDatabase contains the methods to use with the invite database
type InviteDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Invite, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Invite, error)
	InsertOne(ctx context.Context, invite models.Invite, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
}

type inviteDatabase struct {
	db DatabaseHelper
}

// NewInviteDatabase initializes a new instance of invite database with the provided db connection
func NewInviteDatabase(db DatabaseHelper) InviteDatabase {
	return &inviteDatabase{
		db: db,
	}
}

func (c *inviteDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Invite, error) {
	invite := &models.Invite{}
	err := c.db.Collection(inviteName).FindOne(ctx, filter, opts...).Decode(&invite)
	if err != nil {
		return nil, err
	}
	return invite, nil
}

func (c *inviteDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Invite, error) {
	var invites []models.Invite
	err := c.db.Collection(inviteName).Find(ctx, filter, opts...).Decode(&invites)
	if err != nil {
		return nil, err
	}
	return invites, nil
}

func (c *inviteDatabase) InsertOne(ctx context.Context, invite models.Invite, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(inviteName).InsertOne(ctx, invite, opts...)
	return res, nil
}

func (c *inviteDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := c.db.Collection(inviteName).UpdateOne(ctx, filter, update, opts...)
	return err
}
