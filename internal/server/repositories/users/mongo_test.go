package users

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/whattowear/internal/common"
	"github.com/dmitrijs2005/whattowear/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func userDoc(id primitive.ObjectID, name, email string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "avatar", Value: "https://x/a.png"},
		{Key: "email", Value: email},
		{Key: "password", Value: "hash"},
		{Key: "createdAt", Value: time.Now().UTC()},
	}
}

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		r := NewMongoRepository(mt.Coll)

		u, err := r.Create(context.Background(), &models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"})
		require.NoError(mt, err)
		assert.True(mt, models.IsValidID(u.ID))
		assert.Equal(mt, "hash", u.PasswordHash)
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: wtwr_db.users index: email_1",
		}))
		r := NewMongoRepository(mt.Coll)

		_, err := r.Create(context.Background(), &models.User{Email: "alice@example.com"})
		assert.ErrorIs(mt, err, common.ErrAlreadyExists)
	})

	mt.Run("get by email", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "wtwr_db.users", mtest.FirstBatch, userDoc(id, "Alice", "alice@example.com")))
		r := NewMongoRepository(mt.Coll)

		u, err := r.GetByEmail(context.Background(), "alice@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), u.ID)
		assert.Equal(mt, "Alice", u.Name)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "wtwr_db.users", mtest.FirstBatch))
		r := NewMongoRepository(mt.Coll)

		_, err := r.GetByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, common.ErrNotFound)
	})

	mt.Run("get by malformed id", func(mt *mtest.T) {
		r := NewMongoRepository(mt.Coll)

		_, err := r.GetByID(context.Background(), "not-an-id")
		assert.ErrorIs(mt, err, common.ErrInvalidID)
	})

	mt.Run("list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "wtwr_db.users", mtest.FirstBatch,
			userDoc(primitive.NewObjectID(), "A", "a@x.io"),
			userDoc(primitive.NewObjectID(), "B", "b@x.io"),
		))
		r := NewMongoRepository(mt.Coll)

		list, err := r.List(context.Background())
		require.NoError(mt, err)
		assert.Len(mt, list, 2)
	})

	mt.Run("update", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: userDoc(id, "Alicia", "alice@example.com")}))
		r := NewMongoRepository(mt.Coll)

		name := "Alicia"
		u, err := r.Update(context.Background(), id.Hex(), models.UserUpdate{Name: &name})
		require.NoError(mt, err)
		assert.Equal(mt, "Alicia", u.Name)
	})
}
