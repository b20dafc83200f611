package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
)

const collectionTimetable = "timetable"

type TimetableRepository struct {
	col *mongo.Collection
}

func NewTimetableRepository(db *mongo.Database) *TimetableRepository {
	return &TimetableRepository{col: db.Collection(collectionTimetable)}
}

func (r *TimetableRepository) Create(ctx context.Context, entry *domain.TimetableEntry) (*domain.TimetableEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	entry.ID = uuid.NewString()
	entry.CreatedAt = nowUTC()
	entry.Course = nil // embeds are read-path only
	if _, err := r.col.InsertOne(ctx, entry); err != nil {
		return nil, fmt.Errorf("insert timetable entry: %w", err)
	}
	return entry, nil
}

func (r *TimetableRepository) FindByID(ctx context.Context, id string) (*domain.TimetableEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.TimetableEntry
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find timetable entry: %w", err)
	}
	return &e, nil
}

// FindByLevel is the student agenda query: entries for one cohort with the
// course and its lecturer embedded.
func (r *TimetableRepository) FindByLevel(ctx context.Context, level string) ([]domain.TimetableEntry, error) {
	return r.aggregate(ctx, bson.M{"level": level})
}

// List returns every entry with its course embedded (admin view).
func (r *TimetableRepository) List(ctx context.Context) ([]domain.TimetableEntry, error) {
	return r.aggregate(ctx, bson.M{})
}

func (r *TimetableRepository) aggregate(ctx context.Context, match bson.M) ([]domain.TimetableEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionCourses,
			"localField":   "course_id",
			"foreignField": "_id",
			"as":           "course",
			"pipeline": []bson.M{
				{"$lookup": bson.M{
					"from":         collectionUsers,
					"localField":   "lecturer_id",
					"foreignField": "_id",
					"as":           "lecturer",
				}},
				{"$unwind": bson.M{
					"path":                       "$lecturer",
					"preserveNullAndEmptyArrays": true,
				}},
			},
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$course",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("query timetable: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []domain.TimetableEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode timetable entries: %w", err)
	}
	return entries, nil
}

func (r *TimetableRepository) Update(ctx context.Context, entry *domain.TimetableEntry) (*domain.TimetableEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	patch := bson.M{"$set": bson.M{
		"course_id":   entry.CourseID,
		"day_of_week": entry.DayOfWeek,
		"start_time":  entry.StartTime,
		"end_time":    entry.EndTime,
		"room":        entry.Room,
		"level":       entry.Level,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": entry.ID}, patch)
	if err != nil {
		return nil, fmt.Errorf("update timetable entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrEntryNotFound
	}
	return entry, nil
}

func (r *TimetableRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete timetable entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// EnsureIndexes creates the level filter index on the timetable collection.
func (r *TimetableRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "level", Value: 1}}},
		{Keys: bson.D{{Key: "course_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
