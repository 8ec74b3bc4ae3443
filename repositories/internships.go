package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"internship-alert/models"
)

// InternshipRepository archives internship records. The in-memory collection
// stays authoritative; this is a write-behind mirror replayed at startup.
type InternshipRepository struct {
	col *mongo.Collection
}

func NewInternshipRepository(db *mongo.Database) *InternshipRepository {
	return &InternshipRepository{col: db.Collection("internships")}
}

// Insert stores a newly created record.
func (r *InternshipRepository) Insert(ctx context.Context, rec models.Internship) (*mongo.InsertOneResult, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	return r.col.InsertOne(ctx, rec)
}

// SetSaved mirrors a save toggle.
func (r *InternshipRepository) SetSaved(ctx context.Context, id string, saved bool) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"is_saved": saved},
	})
	return err
}

// FindAll returns every archived record, most recent first, matching the
// collection's insertion order.
func (r *InternshipRepository) FindAll(ctx context.Context) ([]models.Internship, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Internship
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID returns one archived record.
func (r *InternshipRepository) FindByID(ctx context.Context, id string) (*models.Internship, error) {
	var rec models.Internship
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
