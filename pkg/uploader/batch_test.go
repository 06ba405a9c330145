package uploader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kennel_backend/internal/photo"
)

// newPhotoServer fakes the backend photo endpoints. Uploads whose
// filename starts with "reject" get an error envelope.
func newPhotoServer(t *testing.T) *httptest.Server {
	t.Helper()
	uploads := 0

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"success":false,"error":"missing token","code":"UNAUTHORIZED"}`)
			return
		}

		switch r.Method {
		case http.MethodPost:
			if err := r.ParseMultipartForm(32 << 20); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"success":false,"error":"bad multipart body","code":"VALIDATION_FAILED"}`)
				return
			}
			files := r.MultipartForm.File["file"]
			if len(files) != 1 || r.FormValue("type") != "album" {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"success":false,"error":"file and type are required","code":"VALIDATION_FAILED"}`)
				return
			}

			if files[0].Filename == "reject.jpg" {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"success":false,"error":"failed to store uploaded file","code":"UPLOAD_ERROR"}`)
				return
			}

			uploads++
			fmt.Fprintf(w, `{"success":true,"data":{"url":"https://cdn.test/files/puppy-1/album/%d.jpg","type":"album","puppy":{"id":"puppy-1","album":["https://cdn.test/files/puppy-1/album/%d.jpg"]}}}`, uploads, uploads)

		case http.MethodDelete:
			if r.URL.Query().Get("url") == "" {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"success":false,"error":"url is required","code":"VALIDATION_FAILED"}`)
				return
			}
			fmt.Fprint(w, `{"success":true,"data":{"puppy":{"id":"puppy-1","album":[]}}}`)

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
}

func TestBatchUploadAll(t *testing.T) {
	server := newPhotoServer(t)
	defer server.Close()

	var progress [][2]int
	client := NewClient(server.URL, "test-token")
	batch := NewBatchUploader(client, func(completed, total int) {
		progress = append(progress, [2]int{completed, total})
	})

	files := []File{
		{Name: "good.jpg", Data: smallJPEG(t)},
		{Name: "notes.txt", Data: []byte("not a photo at all")},
		{Name: "reject.jpg", Data: smallJPEG(t)},
		{Name: "also-good.jpg", Data: smallJPEG(t)},
	}

	results := batch.UploadAll(context.Background(), photo.KindPuppy, "puppy-1", photo.RoleAlbum, files)
	require.Len(t, results, 4)

	// One failure never stops the rest.
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err, "invalid file must fail client-side")
	assert.Error(t, results[2].Err, "server rejection must surface")
	assert.NoError(t, results[3].Err)

	assert.NotEmpty(t, results[0].URL)
	assert.NotEmpty(t, results[3].URL)

	// Progress ticks once per file, monotonic, total fixed.
	assert.Equal(t, [][2]int{{1, 4}, {2, 4}, {3, 4}, {4, 4}}, progress)

	succeeded, failed := Summary(results)
	assert.Equal(t, 2, succeeded)
	assert.Equal(t, 2, failed)

	// The snapshot is the entity from the LAST success.
	snap := LastSnapshot(results)
	require.NotNil(t, snap)
	assert.JSONEq(t, string(results[3].Entity), string(snap))
}

func TestBatchAllFailures(t *testing.T) {
	server := newPhotoServer(t)
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	batch := NewBatchUploader(client, nil)

	results := batch.UploadAll(context.Background(), photo.KindPuppy, "puppy-1", photo.RoleAlbum,
		[]File{{Name: "notes.txt", Data: []byte("not a photo")}})

	succeeded, failed := Summary(results)
	assert.Equal(t, 0, succeeded)
	assert.Equal(t, 1, failed)
	assert.Nil(t, LastSnapshot(results))
}

func TestClientUploadParsesEnvelope(t *testing.T) {
	server := newPhotoServer(t)
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	result, err := client.UploadPhoto(context.Background(), photo.KindPuppy, "puppy-1", photo.RoleAlbum,
		File{Name: "good.jpg", Data: smallJPEG(t)})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.test/files/puppy-1/album/1.jpg", result.URL)

	var entity struct {
		ID    string   `json:"id"`
		Album []string `json:"album"`
	}
	require.NoError(t, json.Unmarshal(result.Entity, &entity))
	assert.Equal(t, "puppy-1", entity.ID)
	assert.Len(t, entity.Album, 1)
}

func TestClientDeleteParsesEnvelope(t *testing.T) {
	server := newPhotoServer(t)
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	result, err := client.DeletePhoto(context.Background(), photo.KindPuppy, "puppy-1", photo.RoleAlbum,
		"https://cdn.test/files/puppy-1/album/1.jpg")
	require.NoError(t, err)
	assert.NotNil(t, result.Entity)
}

func TestClientSurfacesErrorEnvelope(t *testing.T) {
	server := newPhotoServer(t)
	defer server.Close()

	client := NewClient(server.URL, "wrong-token")
	_, err := client.UploadPhoto(context.Background(), photo.KindPuppy, "puppy-1", photo.RoleAlbum,
		File{Name: "good.jpg", Data: smallJPEG(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNAUTHORIZED")
}
