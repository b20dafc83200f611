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

const collectionCourses = "courses"

type CourseRepository struct {
	col *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{col: db.Collection(collectionCourses)}
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	course.ID = uuid.NewString()
	course.CreatedAt = nowUTC()
	if _, err := r.col.InsertOne(ctx, course); err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}
	return course, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Course
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &c, nil
}

// List returns all courses with the lecturer embedded where one is assigned.
func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Aggregate(ctx, lecturerLookup())
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []domain.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	patch := bson.M{"$set": bson.M{
		"course_code":  course.CourseCode,
		"course_title": course.CourseTitle,
		"level":        course.Level,
		"lecturer_id":  course.LecturerID,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": course.ID}, patch)
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCourseNotFound
	}
	return course, nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes on the courses collection.
func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "level", Value: 1}}},
		{Keys: bson.D{{Key: "lecturer_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// lecturerLookup joins the lecturer account onto each course document. The
// join is optional: courses without a lecturer keep the field absent.
func lecturerLookup() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionUsers,
			"localField":   "lecturer_id",
			"foreignField": "_id",
			"as":           "lecturer",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$lecturer",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}
