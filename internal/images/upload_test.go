package images_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stampdesk/stampdesk/internal/ebay"
	"github.com/stampdesk/stampdesk/internal/images"
	domain "github.com/stampdesk/stampdesk/pkg/types"
)

const placeholderURL = "https://cdn.example.com/placeholder.jpg"

type mockTradingAPI struct {
	mock.Mock
}

func (m *mockTradingAPI) AddListing(
	ctx context.Context,
	item *ebay.Item,
	lt domain.ListingType,
) (*ebay.CallResult, error) {
	args := m.Called(ctx, item, lt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ebay.CallResult), args.Error(1)
}

func (m *mockTradingAPI) VerifyListing(
	ctx context.Context,
	item *ebay.Item,
) (*ebay.CallResult, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ebay.CallResult), args.Error(1)
}

func (m *mockTradingAPI) UploadPicture(
	ctx context.Context,
	name string,
	data []byte,
) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}

func imgbbServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "test-key", r.FormValue("key"))
			assert.NotEmpty(t, r.FormValue("image"))
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}),
	)
	t.Cleanup(srv.Close)
	return srv
}

func TestUploader_ImgbbSuccess(t *testing.T) {
	t.Parallel()

	srv := imgbbServer(t, http.StatusOK,
		`{"success":true,"status":200,"data":{"url":"https://i.ibb.co/abc/front.jpg"}}`)

	uploader := images.New(srv.URL, "test-key", placeholderURL)

	result := uploader.UploadAll(context.Background(), []images.Image{
		{Name: "front.jpg", Data: []byte{0xFF, 0xD8}},
	})

	assert.Equal(t, []string{"https://i.ibb.co/abc/front.jpg"}, result.URLs)
	assert.False(t, result.Degraded)
	assert.Empty(t, result.Warnings)
}

func TestUploader_FallsBackToEPS(t *testing.T) {
	t.Parallel()

	srv := imgbbServer(t, http.StatusBadRequest,
		`{"success":false,"status":400,"error":{"message":"invalid key"}}`)

	eps := &mockTradingAPI{}
	eps.On("UploadPicture", mock.Anything, "front.jpg", mock.Anything).
		Return("https://i.ebayimg.com/00/s/front.JPG", nil)

	uploader := images.New(srv.URL, "test-key", placeholderURL, images.WithEPS(eps))

	result := uploader.UploadAll(context.Background(), []images.Image{
		{Name: "front.jpg", Data: []byte{0xFF, 0xD8}},
	})

	assert.Equal(t, []string{"https://i.ebayimg.com/00/s/front.JPG"}, result.URLs)
	assert.True(t, result.Degraded)
	eps.AssertExpectations(t)
}

func TestUploader_PlaceholderWhenAllHostsFail(t *testing.T) {
	t.Parallel()

	srv := imgbbServer(t, http.StatusInternalServerError, `{"success":false,"status":500}`)

	eps := &mockTradingAPI{}
	eps.On("UploadPicture", mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError)

	uploader := images.New(srv.URL, "test-key", placeholderURL, images.WithEPS(eps))

	result := uploader.UploadAll(context.Background(), []images.Image{
		{Name: "front.jpg", Data: []byte{0xFF, 0xD8}},
	})

	assert.Equal(t, []string{placeholderURL}, result.URLs)
	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.Warnings)
}

func TestUploader_PlaceholderWhenNoImages(t *testing.T) {
	t.Parallel()

	uploader := images.New("http://unused.invalid", "", placeholderURL)

	result := uploader.UploadAll(context.Background(), nil)

	assert.Equal(t, []string{placeholderURL}, result.URLs)
	assert.True(t, result.Degraded)
}

func TestUploader_PartialBatch(t *testing.T) {
	t.Parallel()

	// Second upload fails at both hosts; the first URL survives.
	var calls int
	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			if calls == 1 {
				_, _ = w.Write([]byte(
					`{"success":true,"status":200,"data":{"url":"https://i.ibb.co/abc/1.jpg"}}`))
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false,"status":500}`))
		}),
	)
	defer srv.Close()

	eps := &mockTradingAPI{}
	eps.On("UploadPicture", mock.Anything, "2.jpg", mock.Anything).
		Return("", assert.AnError)

	uploader := images.New(srv.URL, "test-key", placeholderURL, images.WithEPS(eps))

	result := uploader.UploadAll(context.Background(), []images.Image{
		{Name: "1.jpg", Data: []byte{0x01}},
		{Name: "2.jpg", Data: []byte{0x02}},
	})

	assert.Equal(t, []string{"https://i.ibb.co/abc/1.jpg"}, result.URLs)
	assert.True(t, result.Degraded)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "2.jpg")
}
