package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"webstore-portal/models"
)

// ErrItemUnavailable is returned when the item service has no usable record
// for the requested id: non-2xx response, non-200 envelope status or no data.
var ErrItemUnavailable = errors.New("item unavailable")

// ItemClient looks up catalog items by id.
type ItemClient interface {
	GetItem(ctx context.Context, itemID int64) (*models.Item, error)
}

// HTTPItemClient calls the REST item service at baseURL + itemID.
type HTTPItemClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPItemClient(baseURL string, timeout time.Duration) *HTTPItemClient {
	return &HTTPItemClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (h *HTTPItemClient) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	url := h.baseURL + strconv.FormatInt(itemID, 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build item request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch item %d: %w", itemID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: item %d: http status %d", ErrItemUnavailable, itemID, resp.StatusCode)
	}

	var result models.ItemResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode item %d: %w", itemID, err)
	}
	if result.Status != http.StatusOK {
		return nil, fmt.Errorf("%w: item %d: status %d %s", ErrItemUnavailable, itemID, result.Status, strings.TrimSpace(result.Msg))
	}
	if result.Data == nil {
		return nil, fmt.Errorf("%w: item %d: empty data", ErrItemUnavailable, itemID)
	}

	return result.Data, nil
}
