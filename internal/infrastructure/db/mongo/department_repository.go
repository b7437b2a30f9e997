package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

const departmentsCollection = "departments"

type DepartmentRepository struct {
	coll *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *DepartmentRepository {
	return &DepartmentRepository{coll: db.Collection(departmentsCollection)}
}

type departmentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (d departmentDoc) toDomain() domain.Department {
	return domain.Department{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []departmentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode departments: %w", err)
	}

	depts := make([]domain.Department, len(docs))
	for i, d := range docs {
		depts[i] = d.toDomain()
	}
	return depts, nil
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id string) (*domain.Department, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}

	var doc departmentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}

	dept := doc.toDomain()
	return &dept, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, dept *domain.Department) (*domain.Department, error) {
	doc := departmentDoc{
		Name:        dept.Name,
		Description: dept.Description,
		CreatedAt:   dept.CreatedAt.Unix(),
		UpdatedAt:   dept.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateDepartment
		}
		return nil, fmt.Errorf("insert department: %w", err)
	}

	created := *dept
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	oid, err := primitive.ObjectIDFromHex(dept.ID)
	if err != nil {
		return domain.ErrDepartmentNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        dept.Name,
		"description": dept.Description,
		"updated_at":  dept.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateDepartment
		}
		return fmt.Errorf("update department: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDepartmentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}
