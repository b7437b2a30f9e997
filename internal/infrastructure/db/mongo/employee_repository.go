package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

const employeesCollection = "employees"

type EmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{coll: db.Collection(employeesCollection)}
}

type employeeDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone,omitempty"`
	HireDate     time.Time          `bson:"hire_date"`
	Salary       float64            `bson:"salary"`
	DepartmentID string             `bson:"department_id"`
	RoleID       string             `bson:"role_id"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (d employeeDoc) toDomain() domain.Employee {
	return domain.Employee{
		ID:           d.ID.Hex(),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		Phone:        d.Phone,
		HireDate:     d.HireDate.UTC(),
		Salary:       d.Salary,
		DepartmentID: d.DepartmentID,
		RoleID:       d.RoleID,
		CreatedAt:    unixToTime(d.CreatedAt),
		UpdatedAt:    unixToTime(d.UpdatedAt),
	}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []employeeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	emps := make([]domain.Employee, len(docs))
	for i, d := range docs {
		emps[i] = d.toDomain()
	}
	return emps, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}

	var doc employeeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}

	emp := doc.toDomain()
	return &emp, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	doc := employeeDoc{
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Email:        emp.Email,
		Phone:        emp.Phone,
		HireDate:     emp.HireDate,
		Salary:       emp.Salary,
		DepartmentID: emp.DepartmentID,
		RoleID:       emp.RoleID,
		CreatedAt:    emp.CreatedAt.Unix(),
		UpdatedAt:    emp.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmployee
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	created := *emp
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	oid, err := primitive.ObjectIDFromHex(emp.ID)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	update := bson.M{"$set": bson.M{
		"first_name":    emp.FirstName,
		"last_name":     emp.LastName,
		"email":         emp.Email,
		"phone":         emp.Phone,
		"hire_date":     emp.HireDate,
		"salary":        emp.Salary,
		"department_id": emp.DepartmentID,
		"role_id":       emp.RoleID,
		"updated_at":    emp.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEmployee
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
