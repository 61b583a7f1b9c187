package erp

import (
	"context"
	"net/http"
)

// ListEmployees fetches every employee.
func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := c.do(ctx, "list employees", http.MethodGet, "/employee/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEmployee fetches a single employee by id. A missing id satisfies
// IsNotFound.
func (c *Client) GetEmployee(ctx context.Context, id string) (Employee, error) {
	var out Employee
	if err := c.do(ctx, "get employee", http.MethodGet, "/employee/"+id, nil, &out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

// CreateEmployee registers a new employee and returns the stored record.
func (c *Client) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	var out Employee
	if err := c.do(ctx, "create employee", http.MethodPost, "/employee/", req, &out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

// UpdateEmployee applies the non-empty fields of req to the employee.
func (c *Client) UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error) {
	var out Employee
	if err := c.do(ctx, "update employee", http.MethodPut, "/employee/"+id, req, &out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

// DeleteEmployee removes the employee.
func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, "delete employee", http.MethodDelete, "/employee/"+id, nil, nil)
}
