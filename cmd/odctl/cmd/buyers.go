package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func buyersCmd() *cobra.Command {
	buyersRoot := &cobra.Command{
		Use:   "buyers",
		Short: "Browse and import buyers",
	}

	buyersRoot.AddCommand(
		buyersListCmd(),
		buyersGetCmd(),
		buyersImportCmd(),
		buyersStatsCmd(),
	)

	return buyersRoot
}

func buyersListCmd() *cobra.Command {
	var (
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List buyers",
		Example: `  odctl buyers list --page 2 --limit 50`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListBuyers(context.Background(), page, limit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Buyers) == 0 {
				fmt.Println("No buyers found.")
				return nil
			}

			fmt.Printf("Showing %d of %d buyers (page %d/%d)\n\n",
				len(resp.Buyers),
				resp.Pagination.Total,
				resp.Pagination.Page,
				resp.Pagination.Pages,
			)
			return printBuyersTable(resp.Buyers)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "page size")

	return cmd
}

func buyersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a buyer and their offers",
		Example: `  odctl buyers get 7a1d2b3c-...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			b, err := c.GetBuyer(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(b)
			}

			return printBuyerDetail(b)
		},
	}
}

func buyersImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import buyers from a CSV file",
		Long: "Upload a CSV file with a header row. Buyers are matched by\n" +
			"email or phone; known buyers are updated, unknown ones created.\n" +
			"Row errors are reported without aborting the import.",
		Example: `  odctl buyers import ./buyers.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			result, err := c.ImportBuyers(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			fmt.Printf("Created: %d\nUpdated: %d\n", result.Created, result.Updated)
			if len(result.Errors) > 0 {
				fmt.Printf("Errors (%d):\n", len(result.Errors))
				for _, e := range result.Errors {
					fmt.Println("  " + e)
				}
			}
			return nil
		},
	}
}

func buyersStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show aggregate buyer statistics",
		Example: `  odctl buyers stats`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stats, err := c.BuyerStats(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(stats)
			}

			return printBuyerStats(stats)
		},
	}
}
