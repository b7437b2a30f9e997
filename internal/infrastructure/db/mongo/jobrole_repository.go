package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

const jobRolesCollection = "job_roles"

type JobRoleRepository struct {
	coll *mongo.Collection
}

func NewJobRoleRepository(db *mongo.Database) *JobRoleRepository {
	return &JobRoleRepository{coll: db.Collection(jobRolesCollection)}
}

type jobRoleDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (d jobRoleDoc) toDomain() domain.JobRole {
	return domain.JobRole{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *JobRoleRepository) List(ctx context.Context) ([]domain.JobRole, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list job roles: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []jobRoleDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode job roles: %w", err)
	}

	roles := make([]domain.JobRole, len(docs))
	for i, d := range docs {
		roles[i] = d.toDomain()
	}
	return roles, nil
}

func (r *JobRoleRepository) FindByID(ctx context.Context, id string) (*domain.JobRole, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobRoleNotFound
	}

	var doc jobRoleDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrJobRoleNotFound
		}
		return nil, fmt.Errorf("find job role: %w", err)
	}

	role := doc.toDomain()
	return &role, nil
}

func (r *JobRoleRepository) Create(ctx context.Context, role *domain.JobRole) (*domain.JobRole, error) {
	doc := jobRoleDoc{
		Title:       role.Title,
		Description: role.Description,
		CreatedAt:   role.CreatedAt.Unix(),
		UpdatedAt:   role.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateJobRole
		}
		return nil, fmt.Errorf("insert job role: %w", err)
	}

	created := *role
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *JobRoleRepository) Update(ctx context.Context, role *domain.JobRole) error {
	oid, err := primitive.ObjectIDFromHex(role.ID)
	if err != nil {
		return domain.ErrJobRoleNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":       role.Title,
		"description": role.Description,
		"updated_at":  role.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateJobRole
		}
		return fmt.Errorf("update job role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobRoleNotFound
	}
	return nil
}

func (r *JobRoleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJobRoleNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job role: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobRoleNotFound
	}
	return nil
}
