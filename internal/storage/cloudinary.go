package storage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"
)

const defaultBaseEndpoint = "https://api.cloudinary.com/v1_1"

var ErrNotConfigured = errors.New("storage not configured")

// Client uploads and destroys images on Cloudinary. Uploads go through an
// unsigned upload preset; destroys are signed with the API secret.
type Client struct {
	cloudName    string
	apiKey       string
	apiSecret    string
	uploadPreset string
	baseEndpoint string
	httpClient   *http.Client
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

func NewCloudinary(cloudName, apiKey, apiSecret, uploadPreset string) *Client {
	if strings.TrimSpace(cloudName) == "" {
		return nil
	}
	return &Client{
		cloudName:    cloudName,
		apiKey:       apiKey,
		apiSecret:    apiSecret,
		uploadPreset: uploadPreset,
		baseEndpoint: defaultBaseEndpoint,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload stores file under "<folder>/<unix-millis>_<sanitized-filename>" and
// returns the public URL plus the public id needed for later deletion.
func (c *Client) Upload(ctx context.Context, folder, filename string, file io.Reader) (UploadResult, error) {
	if c == nil {
		return UploadResult{}, ErrNotConfigured
	}

	publicID := folder + "/" + ObjectName(filename, time.Now())

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return UploadResult{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return UploadResult{}, err
	}
	if err := writer.WriteField("upload_preset", c.uploadPreset); err != nil {
		return UploadResult{}, err
	}
	if err := writer.WriteField("public_id", publicID); err != nil {
		return UploadResult{}, err
	}
	if err := writer.Close(); err != nil {
		return UploadResult{}, err
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.baseEndpoint, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UploadResult{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return UploadResult{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return UploadResult{}, fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return UploadResult{}, err
	}
	if parsed.SecureURL == "" {
		return UploadResult{}, errors.New("upload response missing secure_url")
	}
	if parsed.PublicID == "" {
		parsed.PublicID = publicID
	}
	return UploadResult{URL: parsed.SecureURL, PublicID: parsed.PublicID}, nil
}

// Destroy removes an uploaded image. A "not found" result is not an error:
// callers use this for best-effort cleanup of replaced images.
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	if c == nil {
		return ErrNotConfigured
	}
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return errors.New("empty public id")
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.apiKey)
	form.Set("signature", Signature(params, c.apiSecret))

	endpoint := fmt.Sprintf("%s/%s/image/destroy", c.baseEndpoint, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("destroy failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return err
	}
	if parsed.Result != "ok" && parsed.Result != "not found" {
		return fmt.Errorf("destroy result %q", parsed.Result)
	}
	return nil
}

// Signature computes the Cloudinary API signature: the sorted query string of
// the signed params with the secret appended, SHA1-hexed.
func Signature(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ObjectName prefixes the sanitized filename with a millisecond timestamp to
// avoid collisions between uploads of the same file.
func ObjectName(filename string, now time.Time) string {
	name := whitespaceRun.ReplaceAllString(strings.TrimSpace(filename), "_")
	return fmt.Sprintf("%d_%s", now.UnixMilli(), name)
}

var versionSegment = regexp.MustCompile(`^v[0-9]+$`)

// PublicIDFromURL reverse-parses a Cloudinary delivery URL into its public id.
// Lossy fallback for documents that predate stored public ids.
func PublicIDFromURL(rawURL string) string {
	idx := strings.Index(rawURL, "/upload/")
	if idx < 0 {
		return ""
	}
	rest := strings.TrimPrefix(rawURL[idx+len("/upload/"):], "/")
	if q := strings.IndexAny(rest, "?#"); q >= 0 {
		rest = rest[:q]
	}
	segments := strings.Split(rest, "/")
	if len(segments) > 1 && versionSegment.MatchString(segments[0]) {
		segments = segments[1:]
	}
	if len(segments) == 0 {
		return ""
	}
	last := segments[len(segments)-1]
	if dot := strings.LastIndex(last, "."); dot > 0 {
		segments[len(segments)-1] = last[:dot]
	}
	return strings.Join(segments, "/")
}
