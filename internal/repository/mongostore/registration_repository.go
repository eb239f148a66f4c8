package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/somu559/sineorcitizenregMod/internal/models"
)

const registrationsCollection = "registrations"

// registrationDocument is the persisted layout of a registration.
// created_at is stored as an ISO-8601 string.
type registrationDocument struct {
	RegistrationID string           `bson:"registration_id"`
	FullName       string           `bson:"full_name"`
	DateOfBirth    string           `bson:"date_of_birth"`
	Age            int              `bson:"age"`
	Address        string           `bson:"address"`
	IDNumber       string           `bson:"id_number"`
	IDType         string           `bson:"id_type"`
	ExtractedData  *models.FieldSet `bson:"extracted_data,omitempty"`
	CreatedAt      string           `bson:"created_at"`
}

// RegistrationRepository implements service.RegistrationStore on a Mongo
// collection.
type RegistrationRepository struct {
	collection *mongo.Collection
}

// NewRegistrationRepository prepares the registrations collection. The unique
// index on registration_id backstops the probabilistic ID generator: a
// colliding insert fails instead of silently producing two records with the
// same identifier.
func NewRegistrationRepository(ctx context.Context, client *Client) (*RegistrationRepository, error) {
	coll := client.Database().Collection(registrationsCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "registration_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create registration_id index: %w", err)
	}

	return &RegistrationRepository{collection: coll}, nil
}

// Insert durably appends one registration. There is no update or delete path.
func (r *RegistrationRepository) Insert(ctx context.Context, reg *models.Registration) error {
	if _, err := r.collection.InsertOne(ctx, toDocument(reg)); err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

// FindAll returns up to limit registrations in whatever order the collection
// yields them.
func (r *RegistrationRepository) FindAll(ctx context.Context, limit int64) ([]*models.Registration, error) {
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find registrations: %w", err)
	}

	var docs []registrationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode registrations: %w", err)
	}

	regs := make([]*models.Registration, 0, len(docs))
	for i := range docs {
		regs = append(regs, fromDocument(&docs[i]))
	}
	return regs, nil
}

func toDocument(reg *models.Registration) *registrationDocument {
	return &registrationDocument{
		RegistrationID: reg.RegistrationID,
		FullName:       reg.FullName,
		DateOfBirth:    reg.DateOfBirth,
		Age:            reg.Age,
		Address:        reg.Address,
		IDNumber:       reg.IDNumber,
		IDType:         reg.IDType,
		ExtractedData:  reg.ExtractedData,
		CreatedAt:      reg.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func fromDocument(doc *registrationDocument) *models.Registration {
	createdAt, err := time.Parse(time.RFC3339, doc.CreatedAt)
	if err != nil {
		// Legacy or hand-edited documents keep a zero timestamp rather
		// than failing the whole listing.
		createdAt = time.Time{}
	}
	return &models.Registration{
		RegistrationID: doc.RegistrationID,
		FullName:       doc.FullName,
		DateOfBirth:    doc.DateOfBirth,
		Age:            doc.Age,
		Address:        doc.Address,
		IDNumber:       doc.IDNumber,
		IDType:         doc.IDType,
		ExtractedData:  doc.ExtractedData,
		CreatedAt:      createdAt,
	}
}
