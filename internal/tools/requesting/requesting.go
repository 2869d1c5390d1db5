package requesting

import (
	"fmt"
	"net/http"
	"os"

	"bitbucket.org/jkcars/booking-hub/internal/schema"
)

func isValidResponse(code int) bool {
	return code >= 200 && code <= 299
}

// ClassifyResponse folds a transport result into the store error taxonomy.
// Timeouts and connection failures keep their own codes so callers can log
// them apart; anything non-2xx from the store is an upstream error.
func ClassifyResponse(response *http.Response, err error) (*http.Response, *schema.StoreError) {
	if err != nil {
		if os.IsTimeout(err) {
			return nil, schema.NewTimeoutError(err.Error())
		}

		return nil, schema.NewConnectionError(err.Error())
	}

	if !isValidResponse(response.StatusCode) {
		return nil, schema.NewUpstreamError(fmt.Sprintf("reservation store returned status code %d", response.StatusCode))
	}

	return response, nil
}
