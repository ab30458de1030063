package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/stampdesk/stampdesk/internal/api/client"
)

// listingFlags collects the flags shared by submit and verify.
type listingFlags struct {
	title       string
	description string
	price       float64
	currency    string
	condition   string
	quantity    int
	country     string
	categoryID  int
	family      string
	listingType string
	duration    string
	buyItNow    float64
	reserve     float64
	schedule    string
	imagePaths  []string
	aspects     []string
}

func (f *listingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "listing title (required)")
	cmd.Flags().StringVar(&f.description, "description", "", "listing description")
	cmd.Flags().Float64Var(&f.price, "price", 0, "price, or start price for auctions (required)")
	cmd.Flags().StringVar(&f.currency, "currency", "", "ISO currency code (default USD)")
	cmd.Flags().StringVar(&f.condition, "condition", "", "grade, e.g. MNH or 'postally used'")
	cmd.Flags().IntVar(&f.quantity, "quantity", 0, "quantity (default 1)")
	cmd.Flags().StringVar(&f.country, "country", "", "country of origin, resolved to a category")
	cmd.Flags().IntVar(&f.categoryID, "category-id", 0, "explicit leaf category id")
	cmd.Flags().StringVar(&f.family, "family", "postcard", "item family: postcard or stamp")
	cmd.Flags().StringVar(&f.listingType, "type", "", "fixed_price or auction")
	cmd.Flags().StringVar(&f.duration, "duration", "", "GTC, Days_3, Days_5, Days_7, or Days_10")
	cmd.Flags().Float64Var(&f.buyItNow, "bin", 0, "buy it now price (auctions only)")
	cmd.Flags().Float64Var(&f.reserve, "reserve", 0, "reserve price (auctions only)")
	cmd.Flags().StringVar(&f.schedule, "schedule", "", "go-live time, RFC 3339")
	cmd.Flags().StringArrayVar(&f.imagePaths, "image", nil, "image file, repeatable")
	cmd.Flags().StringArrayVar(&f.aspects, "aspect", nil, "item specific as name=value, repeatable")

	cobra.CheckErr(cmd.MarkFlagRequired("title"))
	cobra.CheckErr(cmd.MarkFlagRequired("price"))
}

func (f *listingFlags) toParams() (*apiclient.SubmitParams, error) {
	params := &apiclient.SubmitParams{
		Title:           f.title,
		Description:     f.description,
		Price:           f.price,
		Currency:        f.currency,
		Condition:       f.condition,
		Quantity:        f.quantity,
		Country:         f.country,
		CategoryID:      f.categoryID,
		ItemFamily:      f.family,
		ListingType:     f.listingType,
		ListingDuration: f.duration,
		BuyItNowPrice:   f.buyItNow,
		ReservePrice:    f.reserve,
	}

	if f.schedule != "" {
		at, err := time.Parse(time.RFC3339, f.schedule)
		if err != nil {
			return nil, fmt.Errorf("parsing --schedule: %w", err)
		}
		params.ScheduleTime = &at
	}

	for _, path := range f.imagePaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading image %s: %w", path, err)
		}
		params.Images = append(params.Images, apiclient.ImagePayload{
			Name: filepath.Base(path),
			Data: data,
		})
	}

	for _, raw := range f.aspects {
		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --aspect %q, expected name=value", raw)
		}
		if params.Aspects == nil {
			params.Aspects = make(map[string][]string)
		}
		params.Aspects[name] = append(params.Aspects[name], value)
	}

	return params, nil
}

func submitCmd() *cobra.Command {
	var flags listingFlags

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Create a listing on eBay",
		Long: "Submit a listing through the pipeline: category resolution,\n" +
			"image upload, request assembly, and the Trading API call.\n" +
			"The attempt is recorded whether or not it succeeds.",
		Example: `  # Fixed-price postcard
  stampdesk submit --title "Romania 1936 Bucharest RPPC" --price 7.50 \
    --condition "postally used" --country Romania --image front.jpg --image back.jpg

  # Scheduled 7-day auction for a stamp
  stampdesk submit --family stamp --type auction --duration Days_7 \
    --title "GB 1840 1d black, 4 margins" --price 99.00 --bin 250.00 \
    --country "Great Britain" --schedule 2026-09-01T18:00:00Z --image stamp.jpg`,
		RunE: func(_ *cobra.Command, _ []string) error {
			params, err := flags.toParams()
			if err != nil {
				return err
			}

			result, err := newClient().SubmitListing(context.Background(), params)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}
			return printResult(result)
		},
	}

	flags.register(cmd)
	return cmd
}
