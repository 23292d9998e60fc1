package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"outreach-tracker/internal/config"
	"outreach-tracker/internal/models"
)

// MongoStore is the primary backend: one document per company, identity
// assigned by the collection.
type MongoStore struct {
	client    *mongo.Client
	companies *mongo.Collection
	snapshots *mongo.Collection
}

// companyDoc is the persisted shape. The legacy acknowledged field is kept
// readable so old documents survive; it is never written back.
type companyDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	ClientID string             `bson:"id"`
	SerialNo int                `bson:"serialNo"`

	CompanyName     string `bson:"companyName"`
	CompanyDetail   string `bson:"companyDetail"`
	CompanyContact  string `bson:"companyContact"`
	CompanyMail     string `bson:"companyMail"`
	CompanyLocation string `bson:"companyLocation"`
	CompanyWebsite  string `bson:"companyWebsite,omitempty"`

	MailSent     string `bson:"mailSent"`
	Interview    string `bson:"interview,omitempty"`
	Acknowledged string `bson:"acknowledged,omitempty"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty"`
}

func (d *companyDoc) toModel() models.Company {
	return models.Company{
		StoreID:         d.ID.Hex(),
		ClientID:        d.ClientID,
		SerialNo:        d.SerialNo,
		CompanyName:     d.CompanyName,
		CompanyDetail:   d.CompanyDetail,
		CompanyContact:  d.CompanyContact,
		CompanyMail:     d.CompanyMail,
		CompanyLocation: d.CompanyLocation,
		CompanyWebsite:  d.CompanyWebsite,
		MailSent:        models.MailStatus(d.MailSent),
		Interview:       models.InterviewStatus(d.Interview),
		Acknowledged:    d.Acknowledged,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func docFromModel(c *models.Company) companyDoc {
	return companyDoc{
		ClientID:        c.ClientID,
		SerialNo:        c.SerialNo,
		CompanyName:     c.CompanyName,
		CompanyDetail:   c.CompanyDetail,
		CompanyContact:  c.CompanyContact,
		CompanyMail:     c.CompanyMail,
		CompanyLocation: c.CompanyLocation,
		CompanyWebsite:  c.CompanyWebsite,
		MailSent:        string(c.MailSent),
		Interview:       string(c.Interview),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg config.MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	db := client.Database(cfg.Database)
	return &MongoStore{
		client:    client,
		companies: db.Collection(cfg.Collection),
		snapshots: db.Collection("outreach_snapshots"),
	}, nil
}

// ListAll returns every company sorted by serialNo ascending.
func (s *MongoStore) ListAll(ctx context.Context) ([]models.Company, error) {
	cursor, err := s.companies.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "serialNo", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	for cursor.Next(ctx) {
		var doc companyDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		companies = append(companies, doc.toModel())
	}
	return companies, cursor.Err()
}

// Insert stores a new company and returns the assigned object id as hex.
func (s *MongoStore) Insert(ctx context.Context, company models.Company) (string, error) {
	result, err := s.companies.InsertOne(ctx, docFromModel(&company))
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// Update applies a $set of the given fields to one document.
func (s *MongoStore) Update(ctx context.Context, storeID string, fields map[string]any) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, storeID)
	}

	set := bson.M{}
	for key, value := range fields {
		set[key] = value
	}

	result, err := s.companies.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// Delete removes one document by id; a missing id yields count 0.
func (s *MongoStore) Delete(ctx context.Context, storeID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, storeID)
	}

	result, err := s.companies.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// SaveSnapshot upserts the day's aggregate stats row.
func (s *MongoStore) SaveSnapshot(ctx context.Context, snap models.OutreachSnapshot) error {
	day := snap.SnapshotAt.Truncate(24 * time.Hour)
	_, err := s.snapshots.ReplaceOne(ctx,
		bson.M{"snapshotAt": day},
		bson.M{
			"snapshotAt":  day,
			"total":       snap.Total,
			"mailSent":    snap.MailSent,
			"interviewed": snap.Interviewed,
			"pending":     snap.Pending,
		},
		options.Replace().SetUpsert(true))
	return err
}

// Ping verifies the connection.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}
