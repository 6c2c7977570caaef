package polymarket

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/alanyoungcy/polytui/internal/domain"
)

// doGet sends an unauthenticated GET request and returns the raw response
// body. Non-2xx statuses and transport failures come back as
// *domain.TransportError so callers can always treat them as values.
func doGet(ctx context.Context, client *http.Client, op, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	if err := checkHTTPStatus(op, resp.StatusCode, body); err != nil {
		return nil, err
	}

	return body, nil
}

// checkHTTPStatus maps non-2xx status codes to domain errors wrapped in a
// TransportError carrying the status.
func checkHTTPStatus(op string, statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	var cause error
	switch statusCode {
	case http.StatusNotFound:
		cause = fmt.Errorf("%w: %s", domain.ErrNotFound, body)
	case http.StatusUnauthorized, http.StatusForbidden:
		cause = fmt.Errorf("%w: %s", domain.ErrUnauthorized, body)
	case http.StatusTooManyRequests:
		cause = fmt.Errorf("%w: %s", domain.ErrRateLimited, body)
	default:
		cause = fmt.Errorf("unexpected status: %s", body)
	}
	return &domain.TransportError{Op: op, StatusCode: statusCode, Err: cause}
}
