package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

// errorBody covers both error shapes of the API.
type errorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp)

	if target, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", target, detail)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}

func errorDetail(resp *resty.Response) string {
	raw := strings.TrimSpace(string(resp.Body()))

	var body errorBody
	if err := json.Unmarshal([]byte(raw), &body); err == nil {
		switch {
		case len(body.Errors) > 0:
			return strings.Join(body.Errors, "; ")
		case body.Message != "":
			return body.Message
		}
	}

	if raw == "" {
		return http.StatusText(resp.StatusCode())
	}
	return raw
}
