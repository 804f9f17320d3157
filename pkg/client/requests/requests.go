package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"terraform-provider-dbm/pkg/client/auth"
)

const DefaultTimeout = 60 * time.Second

// Params are query filters. Values are rendered with fmt.Sprint, slices are
// joined with commas the way the DBM API expects list filters.
type Params map[string]any

// ResponseError is returned for any status outside 200/201/204.
type ResponseError struct {
	StatusCode int
	Status     string
	RequestID  string
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf(
		"request (with X-Request-Id: %s) was failed with status %s.\nError message: %s",
		e.RequestID, e.Status, e.Body,
	)
}

// APIError is a DBM envelope with result=false or a non-zero code.
type APIError struct {
	Code      int
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dbm api error (code %d, X-Request-Id: %s): %s", e.Code, e.RequestID, e.Message)
}

type envelope struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
	Result  *bool           `json:"result"`
	Data    json.RawMessage `json:"data"`
}

type Requester struct {
	BaseURL    string
	Creds      *auth.Credentials
	HTTPClient *http.Client
}

func New(baseURL string, creds *auth.Credentials, timeout time.Duration) *Requester {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Requester{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Creds:      creds,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (r *Requester) SendRequest(
	ctx context.Context,
	method,
	uri string,
	payload []byte,
	params Params,
) (*http.Response, error) {

	target := r.BaseURL + "/" + strings.TrimLeft(uri, "/")
	if len(params) > 0 {
		target = target + "?" + EncodeParams(params)
	}

	request, err := http.NewRequestWithContext(ctx, method, target, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	request.Header.Add("Content-Type", "application/json")
	request.Header.Add("X-Request-Id", requestID)
	if !r.Creds.Empty() {
		header, err := r.Creds.Header()
		if err != nil {
			return nil, fmt.Errorf("build authorization header: %w", err)
		}
		request.Header.Add("X-Bkapi-Authorization", header)
	}

	resp, err := r.HTTPClient.Do(request)
	if err != nil {
		return nil, err
	}

	if !isStatusCodeAcceptable(resp.StatusCode) {
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if id := resp.Header.Get("X-Request-Id"); id != "" {
			requestID = id
		}
		return nil, &ResponseError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			RequestID:  requestID,
			Body:       string(body),
		}
	}
	return resp, nil
}

// Get issues a GET and decodes the JSON body into out, unwrapping the DBM
// {code, message, result, data} envelope when present.
func (r *Requester) Get(ctx context.Context, uri string, params Params, out any) error {
	resp, err := r.SendRequest(ctx, http.MethodGet, uri, nil, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return decodeBody(body, resp.Header.Get("X-Request-Id"), out)
}

func decodeBody(body []byte, requestID string, out any) error {
	data := bytes.TrimSpace(body)
	if len(data) == 0 {
		return nil
	}
	if data[0] == '{' {
		var env envelope
		if err := json.Unmarshal(data, &env); err == nil && env.Result != nil {
			code := envelopeCode(env.Code)
			if !*env.Result || code != 0 {
				return &APIError{Code: code, Message: env.Message, RequestID: requestID}
			}
			data = env.Data
		}
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// The gateway sends code either as a number or as a numeric string.
func envelopeCode(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var code int
	if err := json.Unmarshal(raw, &code); err == nil {
		return code
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		fmt.Sscan(s, &code)
	}
	return code
}

func EncodeParams(params Params) string {
	data := url.Values{}
	for key, value := range params {
		if value == nil {
			continue
		}
		data.Set(key, renderParam(value))
	}
	return data.Encode()
}

func renderParam(value any) string {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts = append(parts, fmt.Sprint(rv.Index(i).Interface()))
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(value)
}

func isStatusCodeAcceptable(statusCode int) bool {
	acceptableCodes := []int{200, 201, 204}
	for _, code := range acceptableCodes {
		if code == statusCode {
			return true
		}
	}
	return false
}
