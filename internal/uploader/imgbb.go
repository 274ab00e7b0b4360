package uploader

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ifrashafqat/job-portal/internal/models"
	"github.com/ifrashafqat/job-portal/internal/observability"
)

const defaultEndpoint = "https://api.imgbb.com/1/upload"

// Client uploads identity-document images to the ImgBB hosting API and
// returns the durable URL the host assigned.
type Client struct {
	APIKey     string
	Endpoint   string
	HTTPClient *http.Client
}

// New creates a client with the default endpoint and a bounded timeout.
func New(apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		APIKey:   apiKey,
		Endpoint: defaultEndpoint,
		HTTPClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// hostResponse is the subset of the ImgBB reply we care about.
type hostResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Status int `json:"status"`
}

// Upload sends an image to the host and returns its URL. Non-image input
// and a missing API key both fail before any network call. A non-success
// reply surfaces the host's own error message; no URL is ever fabricated.
func (c *Client) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return "", &models.AppError{
			Kind:    models.KindUpload,
			Message: "Please select an image file",
		}
	}
	if c.APIKey == "" {
		return "", &models.AppError{
			Kind:    models.KindConfig,
			Message: "image host API key is not configured",
		}
	}

	form := url.Values{}
	form.Set("key", c.APIKey)
	form.Set("image", base64.StdEncoding.EncodeToString(data))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		observability.EvidenceUploads.WithLabelValues("error").Inc()
		return "", &models.AppError{
			Kind:    models.KindUpload,
			Message: "Upload failed, please try again",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	var body hostResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		observability.EvidenceUploads.WithLabelValues("error").Inc()
		return "", &models.AppError{
			Kind:    models.KindUpload,
			Message: fmt.Sprintf("Upload failed with status %d", resp.StatusCode),
			Err:     err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !body.Success {
		observability.EvidenceUploads.WithLabelValues("rejected").Inc()
		msg := body.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("Upload failed with status %d", resp.StatusCode)
		}
		return "", &models.AppError{Kind: models.KindUpload, Message: msg}
	}

	observability.EvidenceUploads.WithLabelValues("success").Inc()
	return body.Data.URL, nil
}
