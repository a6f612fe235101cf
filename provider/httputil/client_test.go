package httputil

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHTTPClient_UserAgent(t *testing.T) {
	t.Parallel()

	client := NewHTTPClient(http.DefaultClient)

	if client.UserAgent() != "kantor/1.0" {
		t.Errorf("user agent wrong")
	}
}

func TestHTTPClient_Get(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		handler  http.HandlerFunc
		expected string
		err      error
	}{
		{
			name: "get_plain_body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"ok":true}`))
			},
			expected: `{"ok":true}`,
		},
		{
			name: "get_gzip_body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Encoding", "gzip")
				var buf bytes.Buffer
				gz := gzip.NewWriter(&buf)
				_, _ = gz.Write([]byte(`{"ok":true}`))
				_ = gz.Close()
				_, _ = w.Write(buf.Bytes())
			},
			expected: `{"ok":true}`,
		},
		{
			name: "get_status_not_found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			err: ErrStatusCode,
		},
		{
			name: "get_status_server_error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			err: ErrStatusCode,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			u, err := url.Parse(srv.URL)
			if err != nil {
				t.Fatalf("parse url: %v", err)
			}

			client := NewHTTPClient(srv.Client())

			b, err := client.Get(context.Background(), *u)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected error %v, got %v", tc.err, err)
				}

				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if diff := cmp.Diff(tc.expected, string(b)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestHTTPClient_Get_SendsHeaders(t *testing.T) {
	t.Parallel()

	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)

	client := NewHTTPClient(srv.Client())
	if _, err := client.Get(context.Background(), *u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotUA != defaultUserAgent {
		t.Errorf("user agent: expected %q, got %q", defaultUserAgent, gotUA)
	}

	if gotAccept != "application/json" {
		t.Errorf("accept: expected application/json, got %q", gotAccept)
	}
}
