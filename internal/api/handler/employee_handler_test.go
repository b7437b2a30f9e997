package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hrm-api/internal/core/domain"
	"github.com/peoplehub/hrm-api/internal/core/ports"
)

type stubEmployeeService struct {
	listFn   func(ctx context.Context) ([]ports.EmployeeDetail, error)
	getFn    func(ctx context.Context, id string) (*ports.EmployeeDetail, error)
	createFn func(ctx context.Context, input ports.CreateEmployeeInput) (*ports.EmployeeDetail, error)
	updateFn func(ctx context.Context, id string, input ports.CreateEmployeeInput) (*ports.EmployeeDetail, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubEmployeeService) List(ctx context.Context) ([]ports.EmployeeDetail, error) {
	return s.listFn(ctx)
}

func (s *stubEmployeeService) Get(ctx context.Context, id string) (*ports.EmployeeDetail, error) {
	return s.getFn(ctx, id)
}

func (s *stubEmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*ports.EmployeeDetail, error) {
	return s.createFn(ctx, input)
}

func (s *stubEmployeeService) Update(ctx context.Context, id string, input ports.CreateEmployeeInput) (*ports.EmployeeDetail, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubEmployeeService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

const validEmployeeJSON = `{
	"first_name": "Ada",
	"last_name": "Lovelace",
	"email": "ada@example.com",
	"phone": "555-0100",
	"hire_date": "2024-03-01",
	"salary": 90000,
	"department_id": "d1",
	"role_id": "r1"
}`

func TestEmployeeHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.CreateEmployeeInput) (*ports.EmployeeDetail, error) {
			if input.Email != "ada@example.com" || input.DepartmentID != "d1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.HireDate.Format("2006-01-02") != "2024-03-01" {
				t.Fatalf("hire date not parsed: %v", input.HireDate)
			}
			detail := &ports.EmployeeDetail{DepartmentName: "Engineering", RoleName: "Software Engineer"}
			detail.ID = "1"
			detail.Email = input.Email
			return detail, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(validEmployeeJSON))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Engineering") {
		t.Fatalf("expected resolved department name: %s", rec.Body.String())
	}
}

func TestEmployeeHandler_Create_BadHireDate(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.CreateEmployeeInput) (*ports.EmployeeDetail, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	body := strings.Replace(validEmployeeJSON, "2024-03-01", "March 1st", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Create_NegativeSalary(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.CreateEmployeeInput) (*ports.EmployeeDetail, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	body := strings.Replace(validEmployeeJSON, "90000", "-1", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Create_UnknownDepartment(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.CreateEmployeeInput) (*ports.EmployeeDetail, error) {
			return nil, domain.ErrDepartmentNotFound
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(validEmployeeJSON))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Create(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "department not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestEmployeeHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		getFn: func(ctx context.Context, id string) (*ports.EmployeeDetail, error) {
			return nil, domain.ErrEmployeeNotFound
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/employees/none", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("none")

	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
