package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"salesdash/cmd/salesdash/ui"
	"salesdash/internal/erp"
	"salesdash/internal/viewmodel"
)

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "List sales and totals",
}

var salesListCmd = &cobra.Command{
	Use:   "list [employee-id]",
	Short: "List sales, optionally for one employee",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := newSession(cfg)
		ctx := context.Background()

		var (
			sales []erp.Sale
			err   error
		)
		if len(args) == 1 {
			sales, err = client.ListSalesFor(ctx, args[0])
		} else {
			sales, err = client.ListSales(ctx)
		}
		if err != nil {
			return err
		}

		counts := viewmodel.CountByKey(sales, func(s erp.Sale) string { return s.ProductName })
		tbl := ui.NewDataTable("", "Product", "Amount", "Qty", "Date of Sale")
		tbl.AlignRight(1)
		tbl.AlignRight(2)
		for i, s := range sales {
			tbl.AddRow(s.ProductName, fmt.Sprintf("%.2f", s.Amount),
				fmt.Sprintf("%d", counts[i]), s.DateOfSale.Format("02/01/2006"))
		}
		fmt.Print(tbl.View(ui.DefaultStyles()))
		return nil
	},
}

var salesTotalCmd = &cobra.Command{
	Use:   "total [employee-id]",
	Short: "Show the sales total, company-wide or for one employee",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := newSession(cfg)
		ctx := context.Background()

		var (
			total float64
			err   error
		)
		if len(args) == 1 {
			total, err = client.TotalSalesFor(ctx, args[0])
		} else {
			total, err = client.TotalSales(ctx)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%.2f\n", total)
		return nil
	},
}

func init() {
	salesCmd.AddCommand(salesListCmd, salesTotalCmd)
}
