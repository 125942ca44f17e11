package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/whattowear/internal/server/repositories/items"
	"github.com/dmitrijs2005/whattowear/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoRepositoryManager serves repositories over one mongo database.
type MongoRepositoryManager struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoRepositoryManager(client *mongo.Client, database string) *MongoRepositoryManager {
	return &MongoRepositoryManager{client: client, db: client.Database(database)}
}

// OpenMongo connects to uri and checks the primary answers.
func OpenMongo(ctx context.Context, uri, database string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return NewMongoRepositoryManager(client, database), nil
}

func (m *MongoRepositoryManager) users() *users.MongoRepository {
	return users.NewMongoRepository(m.db.Collection(users.CollectionName))
}

func (m *MongoRepositoryManager) items() *items.MongoRepository {
	return items.NewMongoRepository(m.db.Collection(items.CollectionName))
}

func (m *MongoRepositoryManager) Users() users.Repository { return m.users() }
func (m *MongoRepositoryManager) Items() items.Repository { return m.items() }

// RunMigrations creates the indexes the repositories rely on, most
// importantly the unique email index.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	if err := m.users().EnsureIndexes(ctx); err != nil {
		return err
	}
	return m.items().EnsureIndexes(ctx)
}

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
