package leakradar

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestNew_RequiresToken(t *testing.T) {
	_, err := New("")
	if !errors.Is(err, ErrMissingToken) {
		t.Errorf("New() error = %v, want ErrMissingToken", err)
	}
}

func TestNew_NoNetworkAtConstruction(t *testing.T) {
	// The base URL does not resolve; construction must still succeed
	// because the transport opens lazily on first use.
	client, err := New("token", WithBaseURL("http://unreachable.invalid"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()
}

func TestClient_DefaultHeaders(t *testing.T) {
	client := newTestClient(t, "abc123", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer abc123" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer abc123")
		}
		if got := r.Header.Get("User-Agent"); got != defaultUserAgent {
			t.Errorf("User-Agent = %q, want %q", got, defaultUserAgent)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{})
	})

	if _, err := client.GetProfile(context.Background()); err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
}

func TestClient_CustomUserAgent(t *testing.T) {
	client := newTestClient(t, "abc123", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "my-scanner/2.3" {
			t.Errorf("User-Agent = %q, want %q", got, "my-scanner/2.3")
		}
		writeJSON(t, w, http.StatusOK, map[string]any{})
	}, WithUserAgent("my-scanner/2.3"))

	if _, err := client.GetProfile(context.Background()); err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
}

func TestClient_Close_Idempotent(t *testing.T) {
	client, err := New("token")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := client.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := client.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestClient_ClosedRejectsCalls(t *testing.T) {
	client, err := New("token")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	ctx := context.Background()

	calls := map[string]func() error{
		"GetProfile": func() error {
			_, err := client.GetProfile(ctx)
			return err
		},
		"SearchAdvanced": func() error {
			_, err := client.SearchAdvanced(ctx, nil)
			return err
		},
		"UnlockAllAdvanced": func() error {
			_, err := client.UnlockAllAdvanced(ctx, nil)
			return err
		},
		"ExportAdvanced": func() error {
			_, err := client.ExportAdvanced(ctx, nil)
			return err
		},
		"UnlockLeaks": func() error {
			_, err := client.UnlockLeaks(ctx, []int64{1})
			return err
		},
		"GetDomainReport": func() error {
			_, err := client.GetDomainReport(ctx, "example.com")
			return err
		},
		"SearchEmail": func() error {
			_, err := client.SearchEmail(ctx, "a@b.com")
			return err
		},
		"ExportEmailLeaks": func() error {
			_, err := client.ExportEmailLeaks(ctx, "a@b.com")
			return err
		},
	}

	for name, call := range calls {
		if err := call(); !errors.Is(err, ErrClientClosed) {
			t.Errorf("%s after Close: error = %v, want ErrClientClosed", name, err)
		}
	}
}
