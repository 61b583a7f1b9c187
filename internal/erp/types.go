package erp

import "time"

// User is the account identity nested inside auth responses and employee
// records.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Employee is one team member as the ERP stores it. Incentives and sales
// totals live behind separate endpoints and are not part of this record.
type Employee struct {
	ID          string `json:"_id"`
	User        User   `json:"user"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
}

// Sale is a single recorded sale.
type Sale struct {
	ID          string    `json:"_id"`
	ProductName string    `json:"productName"`
	Amount      float64   `json:"amount"`
	DateOfSale  time.Time `json:"dateOfSale"`
}

// AuthResponse is what login and register return.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateEmployeeRequest is the payload for a new employee.
type CreateEmployeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
}

// UpdateEmployeeRequest carries only the fields to change. An empty
// password marshals away, leaving the stored one untouched.
type UpdateEmployeeRequest struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password,omitempty"`
	Designation string `json:"designation,omitempty"`
	Department  string `json:"department,omitempty"`
}

// apiMessage is the ERP's error (and ack) body shape.
type apiMessage struct {
	Message string `json:"message"`
}

type totalSalesResponse struct {
	TotalSales float64 `json:"totalSales"`
}
