package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
)

const collectionAnnouncements = "announcements"

type AnnouncementRepository struct {
	col *mongo.Collection
}

func NewAnnouncementRepository(db *mongo.Database) *AnnouncementRepository {
	return &AnnouncementRepository{col: db.Collection(collectionAnnouncements)}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	a.ID = uuid.NewString()
	a.CreatedAt = nowUTC()
	a.Author = nil // embeds are read-path only
	if _, err := r.col.InsertOne(ctx, a); err != nil {
		return nil, fmt.Errorf("insert announcement: %w", err)
	}
	return a, nil
}

// List returns all announcements newest first with the author embedded.
func (r *AnnouncementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	return r.aggregate(ctx, bson.M{})
}

// ListForLevel returns announcements targeting the level plus broadcasts
// (empty level), newest first.
func (r *AnnouncementRepository) ListForLevel(ctx context.Context, level string) ([]domain.Announcement, error) {
	match := bson.M{"$or": []bson.M{
		{"level": level},
		{"level": bson.M{"$exists": false}},
		{"level": ""},
	}}
	return r.aggregate(ctx, match)
}

func (r *AnnouncementRepository) aggregate(ctx context.Context, match bson.M) ([]domain.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionUsers,
			"localField":   "posted_by",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$author",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("query announcements: %w", err)
	}
	defer cursor.Close(ctx)

	var announcements []domain.Announcement
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, fmt.Errorf("decode announcements: %w", err)
	}
	return announcements, nil
}

func (r *AnnouncementRepository) Update(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	patch := bson.M{"$set": bson.M{
		"message": a.Message,
		"level":   a.Level,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": a.ID}, patch)
	if err != nil {
		return nil, fmt.Errorf("update announcement: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAnnouncementNotFound
	}
	return a, nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAnnouncementNotFound
	}
	return nil
}

// EnsureIndexes creates the level and recency indexes.
func (r *AnnouncementRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "level", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
