package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/offerdesk/offerdesk/internal/api/client"
	domain "github.com/offerdesk/offerdesk/pkg/types"
)

func offersCmd() *cobra.Command {
	offersRoot := &cobra.Command{
		Use:   "offers",
		Short: "Review and decide offers",
		Long: "Browse submitted offers, inspect aggregate statistics, and\n" +
			"apply accept/reject/counter decisions.",
	}

	offersRoot.AddCommand(
		offersListCmd(),
		offersExportCmd(),
		offersStatsCmd(),
		offersAcceptCmd(),
		offersRejectCmd(),
		offersCounterCmd(),
	)

	return offersRoot
}

func offersListCmd() *cobra.Command {
	var (
		status     string
		propertyID string
		startDate  string
		endDate    string
		search     string
		page       int
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List offers with optional filters",
		Example: `  # List pending offers
  odctl offers list --status PENDING

  # All offers on one property
  odctl offers list --property prop-123

  # Search by buyer and page through results
  odctl offers list --search jane --page 2 --limit 50`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListOffers(context.Background(), apiclient.OfferFilters{
				Status:     status,
				PropertyID: propertyID,
				StartDate:  startDate,
				EndDate:    endDate,
				Search:     search,
				Page:       page,
				Limit:      limit,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Offers) == 0 {
				fmt.Println("No offers found.")
				return nil
			}

			fmt.Printf("Showing %d of %d offers (page %d/%d)\n\n",
				len(resp.Offers),
				resp.Pagination.Total,
				resp.Pagination.Page,
				resp.Pagination.Pages,
			)
			return printOffersTable(resp.Offers)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "status filter (PENDING, ACCEPTED, REJECTED, COUNTERED, EXPIRED)")
	cmd.Flags().StringVar(&propertyID, "property", "", "property ID filter")
	cmd.Flags().StringVar(&startDate, "start-date", "", "earliest offer date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "latest offer date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&search, "search", "", "buyer name, email, or phone substring")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "page size")

	return cmd
}

func offersExportCmd() *cobra.Command {
	var (
		status     string
		propertyID string
		startDate  string
		endDate    string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export offers as CSV",
		Example: `  # Export every offer to stdout
  odctl offers export

  # Export accepted offers to a file
  odctl offers export --status ACCEPTED --out accepted.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			c := newClient()
			err := c.ExportOffers(context.Background(), apiclient.OfferFilters{
				Status:     status,
				PropertyID: propertyID,
				StartDate:  startDate,
				EndDate:    endDate,
			}, w)
			if err != nil {
				return err
			}

			if out != "" {
				fmt.Printf("Wrote %s\n", out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "status filter (PENDING, ACCEPTED, REJECTED, COUNTERED, EXPIRED)")
	cmd.Flags().StringVar(&propertyID, "property", "", "property ID filter")
	cmd.Flags().StringVar(&startDate, "start-date", "", "earliest offer date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "latest offer date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&out, "out", "", "write to file instead of stdout")

	return cmd
}

func offersStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show aggregate offer statistics",
		Example: `  odctl offers stats`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stats, err := c.OfferStats(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(stats)
			}

			return printOfferStats(stats)
		},
	}
}

func offersAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "accept <offer-id>",
		Short:   "Accept an offer",
		Example: `  odctl offers accept 5f2c9f4e-...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return decide(args[0], domain.OfferAccepted, nil)
		},
	}
}

func offersRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "reject <offer-id>",
		Short:   "Reject an offer",
		Example: `  odctl offers reject 5f2c9f4e-...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return decide(args[0], domain.OfferRejected, nil)
		},
	}
}

func offersCounterCmd() *cobra.Command {
	var price float64

	cmd := &cobra.Command{
		Use:     "counter <offer-id>",
		Short:   "Counter an offer at a new price",
		Example: `  odctl offers counter 5f2c9f4e-... --price 295000`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if price <= 0 {
				return fmt.Errorf("--price must be positive")
			}
			return decide(args[0], domain.OfferCountered, &price)
		},
	}
	cmd.Flags().Float64Var(&price, "price", 0, "counter price (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("price"))

	return cmd
}

func decide(id string, status domain.OfferStatus, counterPrice *float64) error {
	c := newClient()
	result, err := c.TransitionOffer(context.Background(), id, status, counterPrice)
	if err != nil {
		return err
	}

	if jsonOutput() {
		return outputJSON(result)
	}

	fmt.Printf("Offer %s is now %s\n", result.Offer.ID, result.Offer.Status)
	if result.Offer.CounterPrice != nil {
		fmt.Printf("Counter price: $%.2f\n", *result.Offer.CounterPrice)
	}
	return nil
}
