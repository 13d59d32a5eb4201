package storefront_test

import (
	"bufio"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestEventStreamReportsCartChanges verifies a cart mutation is pushed to
// connected event stream clients.
func TestEventStreamReportsCartChanges(t *testing.T) {
	baseURL, _ := setupGateway(t)

	resp, err := http.Get(baseURL + "/v1/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, "event: ") {
				events <- strings.TrimPrefix(line, "event: ")
				return
			}
		}
	}()

	doJSON(t, http.MethodPost, baseURL+"/v1/cart/items", map[string]any{
		"productId": "train-01", "quantity": 1,
	}, nil)

	select {
	case event := <-events:
		require.Equal(t, "cart", event)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}
