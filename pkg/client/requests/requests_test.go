package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"terraform-provider-dbm/pkg/client/auth"
)

func TestGetUnwrapsEnvelope(t *testing.T) {
	var gotQuery url.Values
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("X-Bkapi-Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"code": 0, "message": "", "result": true, "data": {"count": 1}}`))
	}))
	defer server.Close()

	creds := &auth.Credentials{AppCode: "bk_dbm", AppSecret: "secret", Username: "admin"}
	r := New(server.URL, creds, time.Second)

	var out struct {
		Count int `json:"count"`
	}
	err := r.Get(context.Background(), "/apis/mysql/bizs/3/spider_resources/", Params{
		"limit":       10,
		"cluster_ids": []int{1, 2},
		"skipped":     nil,
	}, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.Count != 1 {
		t.Errorf("Count = %d, want 1", out.Count)
	}

	wantQuery := url.Values{"limit": {"10"}, "cluster_ids": {"1,2"}}
	if diff := cmp.Diff(wantQuery, gotQuery); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	if gotRequestID == "" {
		t.Error("X-Request-Id header was not sent")
	}
	var authHeader map[string]string
	if err := json.Unmarshal([]byte(gotAuth), &authHeader); err != nil {
		t.Fatalf("authorization header is not json: %q", gotAuth)
	}
	if authHeader["bk_app_code"] != "bk_dbm" {
		t.Errorf("unexpected authorization header: %q", gotAuth)
	}
}

func TestGetPlainBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1}, {"id": 2}]`))
	}))
	defer server.Close()

	var out []struct {
		ID int `json:"id"`
	}
	if err := New(server.URL, nil, 0).Get(context.Background(), "items/", nil, &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(out) != 2 || out[1].ID != 2 {
		t.Errorf("unexpected result: %+v", out)
	}
}

func TestGetEnvelopeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", "req-1")
		w.Write([]byte(`{"code": "1902000", "message": "cluster not found", "result": false, "data": null}`))
	}))
	defer server.Close()

	var out map[string]any
	err := New(server.URL, nil, 0).Get(context.Background(), "x/", nil, &out)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Code != 1902000 || apiErr.Message != "cluster not found" || apiErr.RequestID != "req-1" {
		t.Errorf("unexpected api error: %+v", apiErr)
	}
}

func TestGetStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", "req-2")
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	err := New(server.URL, nil, 0).Get(context.Background(), "x/", nil, nil)

	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected *ResponseError, got %v", err)
	}
	if respErr.StatusCode != http.StatusBadGateway || respErr.RequestID != "req-2" {
		t.Errorf("unexpected response error: %+v", respErr)
	}
}

func TestGetMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [`))
	}))
	defer server.Close()

	var out map[string]any
	if err := New(server.URL, nil, 0).Get(context.Background(), "x/", nil, &out); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestGetNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	var out map[string]any
	if err := New(server.URL, nil, 0).Get(context.Background(), "x/", nil, &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out != nil {
		t.Errorf("out must stay nil, got %v", out)
	}
}

func TestEncodeParams(t *testing.T) {
	got := EncodeParams(Params{"a": "x y", "b": true, "c": []string{"m", "n"}})
	if got != "a=x+y&b=true&c=m%2Cn" {
		t.Errorf("EncodeParams = %q", got)
	}
}
