package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"salesdash/cmd/salesdash/ui"
	"salesdash/internal/erp"
	"salesdash/internal/viewmodel"
)

var (
	flagEmpName        string
	flagEmpEmail       string
	flagEmpPassword    string
	flagEmpDesignation string
	flagEmpDepartment  string
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List and manage employees",
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees with their sales totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := newSession(cfg)
		ctx := context.Background()

		employees, err := client.ListEmployees(ctx)
		if err != nil {
			return err
		}
		totals, defaulted := viewmodel.Join(ctx, employees,
			func(ctx context.Context, e erp.Employee) (float64, error) {
				return client.TotalSalesFor(ctx, e.ID)
			}, viewmodel.DefaultJoinLimit)
		if defaulted > 0 {
			logger.Warn("some totals unavailable", zap.Int("defaulted", defaulted))
		}

		tbl := ui.NewDataTable("", "ID", "Name", "Email", "Designation", "Department", "Total Sales")
		tbl.AlignRight(5)
		for i, e := range employees {
			tbl.AddRow(e.ID, e.User.Name, e.User.Email, e.Designation, e.Department,
				fmt.Sprintf("%.2f", totals[i]))
		}
		fmt.Print(tbl.View(ui.DefaultStyles()))
		return nil
	},
}

var employeesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one employee with incentives",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := newSession(cfg)
		ctx := context.Background()

		emp, err := client.GetEmployee(ctx, args[0])
		if err != nil {
			if erp.IsNotFound(err) {
				return fmt.Errorf("no employee with id %s", args[0])
			}
			return err
		}
		incentives, err := client.IncentiveSlab(ctx, emp.ID)
		if err != nil {
			logger.Warn("incentive lookup failed", zap.String("id", emp.ID), zap.Error(err))
		}

		fmt.Printf("%s <%s>\n", emp.User.Name, emp.User.Email)
		fmt.Printf("  designation: %s\n", emp.Designation)
		fmt.Printf("  department:  %s\n", emp.Department)
		fmt.Printf("  incentives:  %s\n", strings.Join(incentives, ", "))
		return nil
	},
}

var employeesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagEmpName == "" || flagEmpEmail == "" || flagEmpPassword == "" {
			return fmt.Errorf("--name, --email and --password are required")
		}
		_, client := newSession(cfg)
		emp, err := client.CreateEmployee(context.Background(), erp.CreateEmployeeRequest{
			Name:        flagEmpName,
			Email:       flagEmpEmail,
			Password:    flagEmpPassword,
			Role:        "employee",
			Designation: flagEmpDesignation,
			Department:  flagEmpDepartment,
		})
		if err != nil {
			return err
		}
		fmt.Printf("created %s (%s)\n", emp.User.Name, emp.ID)
		return nil
	},
}

var employeesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an employee (unset flags leave fields unchanged)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := newSession(cfg)
		emp, err := client.UpdateEmployee(context.Background(), args[0], erp.UpdateEmployeeRequest{
			Name:        flagEmpName,
			Email:       flagEmpEmail,
			Password:    flagEmpPassword,
			Designation: flagEmpDesignation,
			Department:  flagEmpDepartment,
		})
		if err != nil {
			return err
		}
		fmt.Printf("updated %s (%s)\n", emp.User.Name, emp.ID)
		return nil
	},
}

var employeesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := newSession(cfg)
		if err := client.DeleteEmployee(context.Background(), args[0]); err != nil {
			if erp.IsNotFound(err) {
				return fmt.Errorf("no employee with id %s", args[0])
			}
			return err
		}
		fmt.Println("removed", args[0])
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{employeesAddCmd, employeesUpdateCmd} {
		c.Flags().StringVar(&flagEmpName, "name", "", "full name")
		c.Flags().StringVar(&flagEmpEmail, "email", "", "email address")
		c.Flags().StringVar(&flagEmpPassword, "password", "", "password")
		c.Flags().StringVar(&flagEmpDesignation, "designation", "", "designation")
		c.Flags().StringVar(&flagEmpDepartment, "department", "", "department")
	}
	employeesCmd.AddCommand(employeesListCmd, employeesGetCmd,
		employeesAddCmd, employeesUpdateCmd, employeesRemoveCmd)
}
