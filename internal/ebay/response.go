package ebay

import (
	"encoding/xml"
	"fmt"
	"strings"

	domain "github.com/stampdesk/stampdesk/pkg/types"
)

// ackFailure is the only Ack value treated as a failed call. Success,
// Warning, and PartialFailure all carry a usable ItemID, so the item is
// live and aborting would strand it.
const ackFailure = "Failure"

const unknownErrorMessage = "Unknown error occurred"

// apiError is one entry in a Trading API Errors list.
type apiError struct {
	ShortMessage string `xml:"ShortMessage"`
	LongMessage  string `xml:"LongMessage"`
	ErrorCode    string `xml:"ErrorCode"`
	SeverityCode string `xml:"SeverityCode"`
}

// tradingResponse holds the fields common to AddItem, AddFixedPriceItem,
// and their Verify variants. Field tags carry no namespace so parsing
// tolerates both namespaced and bare responses.
type tradingResponse struct {
	Ack       string     `xml:"Ack"`
	ItemID    string     `xml:"ItemID"`
	StartTime string     `xml:"StartTime"`
	EndTime   string     `xml:"EndTime"`
	Errors    []apiError `xml:"Errors"`
}

// pictureResponse is the UploadSiteHostedPictures response body.
type pictureResponse struct {
	Ack     string     `xml:"Ack"`
	Errors  []apiError `xml:"Errors"`
	Details struct {
		FullURL string `xml:"FullURL"`
	} `xml:"SiteHostedPictureDetails"`
}

// parseCallResult decodes a listing call response. Only Ack values of
// Failure produce an error; warnings are collected and returned with the
// result so callers can surface them without failing the listing.
func parseCallResult(raw []byte) (*CallResult, error) {
	var resp tradingResponse
	if err := xml.Unmarshal(raw, &resp); err != nil {
		return nil, domain.NewMarketplaceError(
			"parse",
			fmt.Sprintf("unparseable response: %v", err),
			raw,
		)
	}

	result := &CallResult{
		Ack:    resp.Ack,
		ItemID: resp.ItemID,
		Raw:    raw,
	}
	for _, e := range resp.Errors {
		if e.SeverityCode == "Warning" {
			result.Warnings = append(result.Warnings, errorText(e))
		}
	}

	if resp.Ack == ackFailure {
		return result, domain.NewMarketplaceError(
			firstErrorCode(resp.Errors),
			extractErrors(resp.Errors),
			raw,
		)
	}
	return result, nil
}

// parsePictureURL decodes an UploadSiteHostedPictures response and
// returns the EPS-hosted URL.
func parsePictureURL(raw []byte) (string, error) {
	var resp pictureResponse
	if err := xml.Unmarshal(raw, &resp); err != nil {
		return "", domain.NewMarketplaceError(
			"parse",
			fmt.Sprintf("unparseable picture response: %v", err),
			raw,
		)
	}
	if resp.Ack == ackFailure {
		return "", domain.NewMarketplaceError(
			firstErrorCode(resp.Errors),
			extractErrors(resp.Errors),
			raw,
		)
	}
	if resp.Details.FullURL == "" {
		return "", domain.NewMarketplaceError(
			"upload",
			"picture response contained no hosted URL",
			raw,
		)
	}
	return resp.Details.FullURL, nil
}

// extractErrors flattens an Errors list into one human-readable string.
// Each entry prefers the long message over the short one. An empty list
// still yields a message so failures are never silent.
func extractErrors(errs []apiError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		if text := errorText(e); text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return unknownErrorMessage
	}
	return strings.Join(parts, "; ")
}

func errorText(e apiError) string {
	msg := e.LongMessage
	if msg == "" {
		msg = e.ShortMessage
	}
	if msg == "" {
		return ""
	}
	if e.ErrorCode != "" {
		return e.ErrorCode + ": " + msg
	}
	return msg
}

func firstErrorCode(errs []apiError) string {
	for _, e := range errs {
		if e.ErrorCode != "" {
			return e.ErrorCode
		}
	}
	return "unknown"
}
