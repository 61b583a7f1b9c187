package erp

import (
	"context"
	"net/http"
)

// ListSales fetches every recorded sale.
func (c *Client) ListSales(ctx context.Context) ([]Sale, error) {
	var out []Sale
	if err := c.do(ctx, "list sales", http.MethodGet, "/sales/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSalesFor fetches the sales recorded against one employee.
func (c *Client) ListSalesFor(ctx context.Context, employeeID string) ([]Sale, error) {
	var out []Sale
	if err := c.do(ctx, "list employee sales", http.MethodGet, "/sales/"+employeeID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IncentiveSlab fetches the incentive labels assigned to an employee.
func (c *Client) IncentiveSlab(ctx context.Context, employeeID string) ([]string, error) {
	var out []string
	if err := c.do(ctx, "incentive slab", http.MethodGet, "/incentiveSlab/"+employeeID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TotalSales fetches the company-wide sales total.
func (c *Client) TotalSales(ctx context.Context) (float64, error) {
	var out totalSalesResponse
	if err := c.do(ctx, "total sales", http.MethodGet, "/totalSales/", nil, &out); err != nil {
		return 0, err
	}
	return out.TotalSales, nil
}

// TotalSalesFor fetches one employee's sales total.
func (c *Client) TotalSalesFor(ctx context.Context, employeeID string) (float64, error) {
	var out totalSalesResponse
	if err := c.do(ctx, "employee total sales", http.MethodGet, "/totalSales/"+employeeID, nil, &out); err != nil {
		return 0, err
	}
	return out.TotalSales, nil
}
