package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"path"
	"strings"
	"time"
)

// ObjectStorage abstracts the logo object store for business flows
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) (BucketStatus, error)
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) error
	PublicURL(objectPath string) string
}

// BucketStatus distinguishes the outcomes of an idempotent bucket creation.
// AlreadyExists is a normal outcome, not an error.
type BucketStatus int

const (
	BucketCreated BucketStatus = iota
	BucketAlreadyExists
)

// StorageClient talks to a Supabase-compatible storage HTTP API using the
// service-role credential. Uploaded objects are publicly readable.
type StorageClient struct {
	BaseURL    string
	ServiceKey string
	Bucket     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// NewStorageClient creates a storage client for the given project URL,
// service credential, and bucket name.
func NewStorageClient(baseURL, serviceKey, bucket string, timeout time.Duration) *StorageClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &StorageClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		ServiceKey: serviceKey,
		Bucket:     bucket,
		HTTPClient: &http.Client{Timeout: timeout},
		Timeout:    timeout,
	}
}

type createBucketReq struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Public bool   `json:"public"`
}

type storageErrorResp struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// EnsureBucket creates the bucket if it is missing. A conflict response
// means the bucket is already there and is reported as a status, not an
// error; anything else fails the call.
func (c *StorageClient) EnsureBucket(ctx context.Context) (BucketStatus, error) {
	body, err := json.Marshal(createBucketReq{ID: c.Bucket, Name: c.Bucket, Public: true})
	if err != nil {
		return 0, err
	}

	url := c.BaseURL + "/storage/v1/bucket"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return BucketCreated, nil
	case resp.StatusCode == http.StatusConflict:
		return BucketAlreadyExists, nil
	default:
		return 0, fmt.Errorf("bucket creation failed: %s", readStorageError(resp))
	}
}

// Upload stores an object with upsert semantics
func (c *StorageClient) Upload(ctx context.Context, objectPath string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "image/png"
	}

	url := c.BaseURL + "/storage/v1/object/" + c.Bucket + "/" + objectPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("object upload failed: %s", readStorageError(resp))
	}
	return nil
}

// PublicURL returns the public-read URL for an uploaded object
func (c *StorageClient) PublicURL(objectPath string) string {
	return c.BaseURL + "/storage/v1/object/public/" + c.Bucket + "/" + objectPath
}

func (c *StorageClient) setAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.ServiceKey)
	req.Header.Set("apikey", c.ServiceKey)
}

func readStorageError(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(raw) == 0 {
		return resp.Status
	}
	var out storageErrorResp
	if err := json.Unmarshal(raw, &out); err == nil {
		if out.Message != "" {
			return out.Message
		}
		if out.Error != "" {
			return out.Error
		}
	}
	return string(raw)
}

// LogoObjectPath generates the storage path for a brand logo: a time-based
// name with a random suffix, keeping the original file extension (png when
// the filename has none).
func LogoObjectPath(originalFilename string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(originalFilename)), ".")
	if ext == "" {
		ext = "png"
	}
	return fmt.Sprintf("logos/brand-%d-%s.%s", time.Now().UnixMilli(), randomSuffix(), ext)
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix() string {
	b := make([]byte, 11)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
