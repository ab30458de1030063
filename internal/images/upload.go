// Package images hosts listing photos. Uploads try imgbb first, fall
// back to eBay Picture Services, and finally substitute a placeholder
// image. Hosting problems degrade the listing's photos but never abort
// the listing itself.
package images

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stampdesk/stampdesk/internal/ebay"
	"github.com/stampdesk/stampdesk/internal/metrics"
)

// Image is one photo to host: raw bytes plus a filename hint.
type Image struct {
	Name string
	Data []byte
}

// Result is the outcome of hosting a batch of images. Degraded is set
// when any image missed its preferred host, including the placeholder
// case.
type Result struct {
	URLs     []string
	Degraded bool
	Warnings []string
}

// Uploader hosts images with a fallback chain.
type Uploader struct {
	imgbbURL       string
	imgbbKey       string
	placeholderURL string
	eps            ebay.TradingAPI
	client         *http.Client
	logger         *slog.Logger
}

// Option configures the Uploader.
type Option func(*Uploader)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(u *Uploader) {
		u.client = c
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(u *Uploader) {
		u.logger = l
	}
}

// WithEPS attaches the eBay Picture Services fallback. Without it the
// chain goes straight from imgbb to the placeholder.
func WithEPS(eps ebay.TradingAPI) Option {
	return func(u *Uploader) {
		u.eps = eps
	}
}

// New creates an Uploader. imgbbKey may be empty, in which case the
// imgbb step is skipped entirely.
func New(imgbbURL, imgbbKey, placeholderURL string, opts ...Option) *Uploader {
	u := &Uploader{
		imgbbURL:       imgbbURL,
		imgbbKey:       imgbbKey,
		placeholderURL: placeholderURL,
		client:         &http.Client{Timeout: 30 * time.Second},
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// UploadAll hosts every image and never fails: images that cannot be
// hosted anywhere are dropped with a warning, and a batch that ends up
// with no URLs at all gets the placeholder so the listing still carries
// a photo.
func (u *Uploader) UploadAll(ctx context.Context, images []Image) Result {
	var result Result

	for _, img := range images {
		hosted, degraded, err := u.uploadOne(ctx, img)
		if err != nil {
			result.Degraded = true
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("image %s could not be hosted: %v", img.Name, err))
			continue
		}
		if degraded {
			result.Degraded = true
		}
		result.URLs = append(result.URLs, hosted)
	}

	if len(result.URLs) == 0 {
		metrics.ImagePlaceholdersTotal.Inc()
		result.Degraded = true
		result.URLs = []string{u.placeholderURL}
		result.Warnings = append(result.Warnings, "no images could be hosted; using placeholder")
	}

	return result
}

// uploadOne walks the chain for a single image. The degraded flag
// reports that the preferred host failed even though a fallback worked.
func (u *Uploader) uploadOne(ctx context.Context, img Image) (string, bool, error) {
	var imgbbErr error
	if u.imgbbKey != "" {
		hosted, err := u.uploadImgbb(ctx, img)
		if err == nil {
			metrics.ImageUploadsTotal.WithLabelValues("imgbb", "success").Inc()
			return hosted, false, nil
		}
		imgbbErr = err
		metrics.ImageUploadsTotal.WithLabelValues("imgbb", "failure").Inc()
		u.logger.Warn("imgbb upload failed, trying eBay Picture Services",
			"image", img.Name,
			"error", err,
		)
	}

	if u.eps != nil {
		hosted, err := u.eps.UploadPicture(ctx, img.Name, img.Data)
		if err == nil {
			metrics.ImageUploadsTotal.WithLabelValues("eps", "success").Inc()
			return hosted, imgbbErr != nil, nil
		}
		metrics.ImageUploadsTotal.WithLabelValues("eps", "failure").Inc()
		u.logger.Warn("eBay Picture Services upload failed",
			"image", img.Name,
			"error", err,
		)
		if imgbbErr != nil {
			return "", true, fmt.Errorf("imgbb: %v; eps: %v", imgbbErr, err)
		}
		return "", true, err
	}

	if imgbbErr != nil {
		return "", true, imgbbErr
	}
	return "", true, fmt.Errorf("no image host configured")
}

type imgbbResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// uploadImgbb posts the image to imgbb as base64 form data.
func (u *Uploader) uploadImgbb(ctx context.Context, img Image) (string, error) {
	form := url.Values{
		"key":   {u.imgbbKey},
		"name":  {img.Name},
		"image": {base64.StdEncoding.EncodeToString(img.Data)},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		u.imgbbURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("creating imgbb request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing imgbb request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading imgbb response: %w", err)
	}

	var parsed imgbbResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parsing imgbb response (status %d): %w", resp.StatusCode, err)
	}
	if !parsed.Success || parsed.Data.URL == "" {
		msg := parsed.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return "", fmt.Errorf("imgbb rejected upload: %s", msg)
	}
	return parsed.Data.URL, nil
}
