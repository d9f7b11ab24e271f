package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

const collectionJobs = "jobs"

type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

var _ ports.JobRepository = (*JobRepository)(nil)

type mongoJob struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Location    string             `bson:"location"`
	Description string             `bson:"description"`
	Budget      float64            `bson:"budget"`
	Status      string             `bson:"status"`
	PostedBy    string             `bson:"posted_by,omitempty"`
	ReservedBy  string             `bson:"reserved_by,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func toMongoJob(j *domain.Job) mongoJob {
	return mongoJob{
		Title:       j.Title,
		Location:    j.Location,
		Description: j.Description,
		Budget:      j.Budget,
		Status:      string(j.Status),
		PostedBy:    j.PostedBy,
		ReservedBy:  j.ReservedBy,
		CreatedAt:   j.CreatedAt.UTC(),
	}
}

func (m *mongoJob) toDomain() *domain.Job {
	return &domain.Job{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Location:    m.Location,
		Description: m.Description,
		Budget:      m.Budget,
		Status:      domain.JobStatus(m.Status),
		PostedBy:    m.PostedBy,
		ReservedBy:  m.ReservedBy,
		CreatedAt:   m.CreatedAt,
	}
}

// Insert stores a new job posting.
func (r *JobRepository) Insert(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoJob(j)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *JobRepository) InsertMany(ctx context.Context, jobs []*domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(jobs))
	for _, j := range jobs {
		docs = append(docs, toMongoJob(j))
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert jobs: %w", err)
	}
	return nil
}

// Find returns the matching jobs, oldest first.
func (r *JobRepository) Find(ctx context.Context, f ports.JobFilter) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	if f.PostedBy != "" {
		filter["posted_by"] = f.PostedBy
	}
	if f.ReservedBy != "" {
		filter["reserved_by"] = f.ReservedBy
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoJob
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	out := make([]*domain.Job, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// Reserve only matches while the job is still available, so two tradesmen racing for
// the same job cannot both win.
func (r *JobRepository) Reserve(ctx context.Context, jobID, tradesmanID string) error {
	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return domain.ErrJobNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "status": string(domain.JobAvailable)}
	update := bson.M{"$set": bson.M{"status": string(domain.JobReserved), "reserved_by": tradesmanID}}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("reserve job: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobUnavailable
	}
	return nil
}

func (r *JobRepository) ReleaseReservedBy(ctx context.Context, tradesmanID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"status": string(domain.JobReserved), "reserved_by": tradesmanID}
	update := bson.M{
		"$set":   bson.M{"status": string(domain.JobAvailable)},
		"$unset": bson.M{"reserved_by": ""},
	}
	res, err := r.col.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("release jobs: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *JobRepository) DeleteAvailablePostedBy(ctx context.Context, clientID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"status": string(domain.JobAvailable), "posted_by": clientID})
	if err != nil {
		return 0, fmt.Errorf("withdraw jobs: %w", err)
	}
	return res.DeletedCount, nil
}
