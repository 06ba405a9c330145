// Package uploader is the client SDK for the photo pipeline: it
// validates and compresses files locally, uploads them one at a time and
// keeps the admin console's entity snapshot in sync with the server.
package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/gabriel-vasile/mimetype"

	"kennel_backend/internal/imageprocessor"
	"kennel_backend/internal/logger"
	"kennel_backend/internal/photo"
)

// Client talks to the photo endpoints of one backend instance.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	processor  *imageprocessor.Processor
}

// NewClient builds a client. The bearer token comes from the external
// auth service.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{},
		processor:  imageprocessor.NewProcessor(85),
	}
}

// Result is the parsed response of one upload or delete call.
type Result struct {
	URL string
	// Entity is the full refreshed record, keyed under the entity kind
	// in the response body. The caller replaces its local state with it.
	Entity json.RawMessage
}

type envelope struct {
	Success bool                       `json:"success"`
	Data    map[string]json.RawMessage `json:"data"`
	Error   string                     `json:"error"`
	Code    string                     `json:"code"`
}

// pathSegment maps an entity kind to its URL collection segment.
func pathSegment(kind photo.Kind) string {
	switch kind {
	case photo.KindMember:
		return "members"
	case photo.KindPuppy:
		return "puppies"
	case photo.KindEnvironment:
		return "environments"
	default:
		return string(kind) + "s"
	}
}

// UploadPhoto compresses and uploads one already-validated file, then
// returns the blob URL and the refreshed entity record.
func (c *Client) UploadPhoto(ctx context.Context, kind photo.Kind, entityID string, role photo.Role, file File) (*Result, error) {
	data := c.compress(role, file)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	// The file part declares the sniffed content type. CreateFormFile would
	// stamp application/octet-stream, which the server rejects against the
	// image allow-list before it sniffs the bytes itself.
	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	partHeader.Set("Content-Type", mimetype.Detect(data).String())
	part, err := writer.CreatePart(partHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write file part: %w", err)
	}
	if err := writer.WriteField("type", string(role)); err != nil {
		return nil, fmt.Errorf("failed to write role field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v1/%s/%s/photos", c.baseURL, pathSegment(kind), entityID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.token)

	return c.do(req, kind)
}

// DeletePhoto removes one photo reference and its blob.
func (c *Client) DeletePhoto(ctx context.Context, kind photo.Kind, entityID string, role photo.Role, photoURL string) (*Result, error) {
	endpoint := fmt.Sprintf("%s/api/v1/%s/%s/photos?type=%s&url=%s",
		c.baseURL, pathSegment(kind), entityID, url.QueryEscape(string(role)), url.QueryEscape(photoURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	return c.do(req, kind)
}

func (c *Client) do(req *http.Request, kind photo.Kind) (*Result, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("server rejected request (%s): %s", env.Code, env.Error)
	}

	result := &Result{Entity: env.Data[string(kind)]}
	if u, ok := env.Data["url"]; ok {
		_ = json.Unmarshal(u, &result.URL)
	}
	return result, nil
}

// compress shrinks the file with the role's profile. Compression failure
// is non-fatal: the original bytes are uploaded instead and the failure
// is logged. The original filename is kept either way so downstream
// systems see a consistent name.
func (c *Client) compress(role photo.Role, file File) []byte {
	profile := imageprocessor.ProfileForRole(role)
	out, err := c.processor.Process(bytes.NewReader(file.Data), profile)
	if err != nil {
		logger.Warn("compression failed, uploading original",
			"file", file.Name, "role", role, "error", err)
		return file.Data
	}
	compressed, err := io.ReadAll(out)
	if err != nil || len(compressed) == 0 {
		return file.Data
	}
	return compressed
}
