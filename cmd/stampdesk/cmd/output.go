package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	apiclient "github.com/stampdesk/stampdesk/internal/api/client"
	domain "github.com/stampdesk/stampdesk/pkg/types"
	"github.com/stampdesk/stampdesk/pkg/vision"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printResult(r *domain.ListingResult) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SKU:\t%s\n", r.SKU)
	if r.Success {
		tw.writef("Status:\tsucceeded\n")
	} else {
		tw.writef("Status:\tfailed\n")
	}
	if r.ItemID != "" {
		tw.writef("Item ID:\t%s\n", r.ItemID)
	}
	if r.ListingURL != "" {
		tw.writef("URL:\t%s\n", r.ListingURL)
	}
	if r.Error != "" {
		tw.writef("Error:\t%s\n", r.Error)
	}
	if r.UploadDegraded {
		tw.writef("Images:\tdegraded (placeholder in use)\n")
	}
	for _, w := range r.Warnings {
		tw.writef("Warning:\t%s\n", w)
	}
	return tw.finish()
}

func printAttemptsTable(attempts []domain.Attempt) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SKU\tSTATUS\tTITLE\tPRICE\tTYPE\tENV\tCREATED\n")
	for i := range attempts {
		a := &attempts[i]
		tw.writef("%s\t%s\t%s\t%.2f %s\t%s\t%s\t%s\n",
			a.SKU,
			a.Status,
			truncate(a.Title, 40),
			a.Price,
			a.Currency,
			a.ListingType,
			a.Environment,
			a.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printAttemptDetail(a *domain.Attempt) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SKU:\t%s\n", a.SKU)
	tw.writef("Status:\t%s\n", a.Status)
	tw.writef("Title:\t%s\n", a.Title)
	tw.writef("Price:\t%.2f %s\n", a.Price, a.Currency)
	tw.writef("Condition:\t%s\n", a.Condition)
	tw.writef("Type:\t%s (%s)\n", a.ListingType, a.ListingDuration)
	tw.writef("Environment:\t%s\n", a.Environment)
	if a.ItemID != "" {
		tw.writef("Item ID:\t%s\n", a.ItemID)
	}
	if a.ListingURL != "" {
		tw.writef("URL:\t%s\n", a.ListingURL)
	}
	if a.ScheduleTime != nil {
		tw.writef("Scheduled:\t%s\n", a.ScheduleTime.Format("2006-01-02 15:04:05 MST"))
	}
	if a.ErrorText != "" {
		tw.writef("Error:\t%s\n", a.ErrorText)
	}
	tw.writef("Created:\t%s\n", a.CreatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printCategory(resp *apiclient.CategoryResponse) error {
	tw := newTabWriter(os.Stdout)
	if resp.CountryLabel != "" {
		tw.writef("Country:\t%s\n", resp.CountryLabel)
	}
	if resp.RegionCode != "" {
		tw.writef("Region:\t%s\n", resp.RegionCode)
	}
	if resp.Resolved {
		tw.writef("Category:\t%d\n", resp.CategoryID)
	} else if resp.NeedsInput {
		tw.writef("Category:\t(manual choice required)\n")
	} else {
		tw.writef("Category:\t(unrecognized country)\n")
	}
	return tw.finish()
}

func printPolicies(resp *apiclient.PoliciesResponse) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Shipping:\t%s\n", orDash(resp.Policies.ShippingPolicyID))
	tw.writef("Payment:\t%s\n", orDash(resp.Policies.PaymentPolicyID))
	tw.writef("Return:\t%s\n", orDash(resp.Policies.ReturnPolicyID))
	tw.writef("Complete:\t%v\n", resp.Complete)
	return tw.finish()
}

func printCardDetails(d *vision.CardDetails) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Title:\t%s\n", d.Title)
	tw.writef("Country:\t%s\n", orDash(d.Country))
	tw.writef("Year:\t%s\n", orDash(d.Year))
	tw.writef("Condition:\t%s\n", orDash(d.Condition))
	if len(d.Subjects) > 0 {
		tw.writef("Subjects:\t%s\n", strings.Join(d.Subjects, ", "))
	}
	tw.writef("Confidence:\t%.2f\n", d.Confidence)
	if d.Description != "" {
		tw.writef("\n%s\n", d.Description)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
