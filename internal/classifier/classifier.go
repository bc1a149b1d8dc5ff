package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
)

// DocumentClassifier submits stored document URLs to the external
// classification service and returns its verdict.
type DocumentClassifier interface {
	Classify(ctx context.Context, fileURL string) (*model.ValidationVerdict, error)
}

// WebhookClassifier calls an n8n-style webhook that replies with either a
// single verdict object or an array of them.
type WebhookClassifier struct {
	httpClient *http.Client
	webhookURL string
}

// NewWebhookClassifier creates a classifier client for the given webhook URL.
func NewWebhookClassifier(webhookURL string, timeout time.Duration) *WebhookClassifier {
	return &WebhookClassifier{
		httpClient: &http.Client{Timeout: timeout},
		webhookURL: webhookURL,
	}
}

// Classify POSTs the document URL and decodes the verdict.
func (c *WebhookClassifier) Classify(ctx context.Context, fileURL string) (*model.ValidationVerdict, error) {
	payload, err := json.Marshal(map[string]string{"fileUrl": fileURL})
	if err != nil {
		return nil, fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: classify %s: %v", apperrors.ErrUpstream, fileURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: classifier returned status %d", apperrors.ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read classifier reply: %v", apperrors.ErrUpstream, err)
	}

	return decodeVerdict(body)
}

// decodeVerdict accepts the two shapes the webhook is known to produce, a
// single object or a non-empty array. Anything else is a protocol error.
func decodeVerdict(body []byte) (*model.ValidationVerdict, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty reply", apperrors.ErrProtocol)
	}

	switch trimmed[0] {
	case '{':
		var verdict model.ValidationVerdict
		if err := json.Unmarshal(trimmed, &verdict); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrProtocol, err)
		}
		return &verdict, nil
	case '[':
		var verdicts []model.ValidationVerdict
		if err := json.Unmarshal(trimmed, &verdicts); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrProtocol, err)
		}
		if len(verdicts) == 0 {
			return nil, fmt.Errorf("%w: empty verdict array", apperrors.ErrProtocol)
		}
		return &verdicts[0], nil
	default:
		return nil, fmt.Errorf("%w: unexpected reply shape", apperrors.ErrProtocol)
	}
}
