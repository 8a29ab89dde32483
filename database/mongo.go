// mongo.go - MongoDB backend for the document store

package database // Declares the package name

import ( // Import required packages
	"context" // Deadlines on every query
	"errors"  // Matching driver sentinels
	"fmt"     // Error wrapping
	"time"    // Connect timeout

	"go.mongodb.org/mongo-driver/bson"           // Filters and pipelines
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID
	"go.mongodb.org/mongo-driver/mongo"          // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options"  // Client options

	"dress-suggestion-backend/models" // Stored documents
)

const connectTimeout = 10 * time.Second

var _ Store = (*MongoStore)(nil)

// MongoStore is the document store backend. One client is shared by all requests;
// the driver pools connections internally.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo dials uri and pings the server before returning.
func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}) // Nested documents decode as maps, not key/value pairs

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &MongoStore{client: client, db: client.Database(database)}, nil
}

// FindOne decodes the first document matching filter into out.
func (s *MongoStore) FindOne(ctx context.Context, collection string, filter interface{}, out interface{}) error {
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find one in %s: %w", collection, err)
	}
	return nil
}

// FindAll decodes every document matching filter into out, which must be a pointer to a slice.
func (s *MongoStore) FindAll(ctx context.Context, collection string, filter interface{}, out interface{}) error {
	if filter == nil {
		filter = bson.D{}
	}
	cur, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil { // All closes the cursor
		return fmt.Errorf("read %s: %w", collection, err)
	}
	return nil
}

// SampleOne decodes at most one uniformly random document into out (a pointer to a slice).
func (s *MongoStore) SampleOne(ctx context.Context, collection string, out interface{}) error {
	pipeline := mongo.Pipeline{{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}}}
	cur, err := s.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("sample %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("read sample of %s: %w", collection, err)
	}
	return nil
}

// InsertOne stores doc and returns the generated id as a string.
func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (s *MongoStore) HomePages(ctx context.Context) ([]models.HomePage, error) {
	pages := []models.HomePage{}
	if err := s.FindAll(ctx, models.HomePagesCollection, bson.D{}, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (s *MongoStore) RandomDressTheme(ctx context.Context) ([]models.DressTheme, error) {
	themes := []models.DressTheme{}
	if err := s.SampleOne(ctx, models.DressThemeCollection, &themes); err != nil {
		return nil, err
	}
	return themes, nil
}

func (s *MongoStore) CreateDressTheme(ctx context.Context, theme *models.DressTheme) (string, error) {
	id, err := s.InsertOne(ctx, models.DressThemeCollection, theme)
	if err != nil {
		return "", err
	}
	theme.ID = id
	return id, nil
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.FindOne(ctx, models.UsersCollection, bson.M{"email": email}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) FindAdminByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.FindOne(ctx, models.UsersCollection, bson.M{"email": email, "isAdmin": true}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) (string, error) {
	id, err := s.InsertOne(ctx, models.UsersCollection, user)
	if err != nil {
		return "", err
	}
	user.ID = id
	return id, nil
}

func (s *MongoStore) CountAdmins(ctx context.Context) (int64, error) {
	n, err := s.db.Collection(models.UsersCollection).CountDocuments(ctx, bson.M{"isAdmin": true})
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client, waiting for in-flight operations up to ctx's deadline.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
