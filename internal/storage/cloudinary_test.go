package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestObjectName(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	got := ObjectName("my photo  final.png", now)
	want := "1700000000000_my_photo_final.png"
	if got != want {
		t.Fatalf("ObjectName = %q, want %q", got, want)
	}
}

func TestSignature(t *testing.T) {
	// Known-answer: sha1("public_id=sample&timestamp=1315060510" + "abcd")
	got := Signature(map[string]string{
		"timestamp": "1315060510",
		"public_id": "sample",
	}, "abcd")
	want := "c3470533147774275dd37996cc4d0e68fd03cd4f"
	if got != want {
		t.Fatalf("Signature = %q, want %q", got, want)
	}
}

func TestPublicIDFromURL(t *testing.T) {
	cases := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v1700000000/projects/1700_shot.jpg": "projects/1700_shot",
		"https://res.cloudinary.com/demo/image/upload/projects/shot.png":                  "projects/shot",
		"https://res.cloudinary.com/demo/image/upload/v1/profile/me.webp?_a=1":            "profile/me",
		"https://example.com/no-upload-segment.jpg":                                       "",
	}
	for in, want := range cases {
		if got := PublicIDFromURL(in); got != want {
			t.Fatalf("PublicIDFromURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func newTestClient(endpoint string) *Client {
	c := NewCloudinary("demo", "key", "secret", "preset")
	c.baseEndpoint = endpoint
	return c
}

func TestUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/demo/image/upload" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("upload_preset"); got != "preset" {
			t.Errorf("upload_preset = %q", got)
		}
		publicID := r.FormValue("public_id")
		if !strings.HasPrefix(publicID, "projects/") {
			t.Errorf("public_id = %q, want projects/ prefix", publicID)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://res.cloudinary.com/demo/image/upload/" + publicID + ".png",
			"public_id":  publicID,
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	result, err := c.Upload(context.Background(), "projects", "shot.png", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if result.URL == "" || result.PublicID == "" {
		t.Fatalf("empty result: %+v", result)
	}
	if !strings.HasPrefix(result.PublicID, "projects/") {
		t.Fatalf("PublicID = %q, want projects/ prefix", result.PublicID)
	}
}

func TestUploadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad preset"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Upload(context.Background(), "projects", "shot.png", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error on 400 response")
	}
}

func TestDestroy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/demo/image/destroy" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.FormValue("public_id"); got != "projects/shot" {
			t.Errorf("public_id = %q", got)
		}
		params := map[string]string{
			"public_id": r.FormValue("public_id"),
			"timestamp": r.FormValue("timestamp"),
		}
		if got := r.FormValue("signature"); got != Signature(params, "secret") {
			t.Errorf("bad signature %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"result": "ok"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if err := c.Destroy(context.Background(), "projects/shot"); err != nil {
		t.Fatalf("Destroy error: %v", err)
	}
}

func TestDestroyNotFoundTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"result": "not found"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if err := c.Destroy(context.Background(), "projects/ghost"); err != nil {
		t.Fatalf("Destroy should tolerate not found, got %v", err)
	}
}

func TestNilClient(t *testing.T) {
	var c *Client
	if _, err := c.Upload(context.Background(), "projects", "x.png", strings.NewReader("x")); err != ErrNotConfigured {
		t.Fatalf("Upload on nil client: %v", err)
	}
	if err := c.Destroy(context.Background(), "projects/x"); err != ErrNotConfigured {
		t.Fatalf("Destroy on nil client: %v", err)
	}
}

func TestNewCloudinaryUnconfigured(t *testing.T) {
	if c := NewCloudinary("", "key", "secret", "preset"); c != nil {
		t.Fatal("expected nil client without cloud name")
	}
}
