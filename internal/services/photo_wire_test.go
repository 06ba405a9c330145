package services

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kennel_backend/internal/models"
	"kennel_backend/internal/photo"
	"kennel_backend/pkg/apperrors"
	"kennel_backend/pkg/uploader"
)

// photoTestServer mounts the real upload/delete routes over the fake
// storage and record store, so the SDK exercises the same multipart wire
// format the handlers parse.
func photoTestServer(t *testing.T, svc PhotoService, puppy *models.Puppy) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/api/v1/puppies/:id/photos", func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("no file provided"))
			return
		}
		role, err := photo.ParseRole(photo.KindPuppy, c.PostForm("type"))
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError(err.Error()))
			return
		}
		result, err := svc.UploadPhoto(c.Request.Context(), nil, puppy, role, fileHeader)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{
			"url": result.URL, "type": result.Role, "puppy": puppy,
		}})
	})
	r.DELETE("/api/v1/puppies/:id/photos", func(c *gin.Context) {
		role, err := photo.ParseRole(photo.KindPuppy, c.Query("type"))
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError(err.Error()))
			return
		}
		if err := svc.DeletePhoto(c.Request.Context(), nil, puppy, role, c.Query("url")); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"puppy": puppy}})
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func encodeTestJPEG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 32, 32)), nil))
	return buf.Bytes()
}

func TestClientUploadsThroughRealHandler(t *testing.T) {
	store := newFakeStorage()
	records := &fakeRecordStore{}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()
	server := photoTestServer(t, svc, puppy)

	client := uploader.NewClient(server.URL, "test-token")
	result, err := client.UploadPhoto(context.Background(), photo.KindPuppy, "puppy-1", photo.RoleAlbum,
		uploader.File{Name: "one.jpg", Data: encodeTestJPEG(t)})
	require.NoError(t, err)

	// The declared part type passes the server's allow-list check and the
	// blob lands under the role path with the sniffed extension.
	require.Len(t, store.saves, 1)
	assert.True(t, strings.HasPrefix(store.saves[0], "puppy-1/album/"), store.saves[0])
	assert.True(t, strings.HasSuffix(store.saves[0], ".jpg"), store.saves[0])

	require.Len(t, puppy.Album, 1)
	assert.Equal(t, result.URL, puppy.Album[0])
	assert.Equal(t, 1, records.saves)
	assert.NotNil(t, result.Entity)
}

func TestClientRoundTripThroughRealHandler(t *testing.T) {
	store := newFakeStorage()
	svc := NewPhotoService(store, &fakeRecordStore{})
	puppy := newTestPuppy()
	server := photoTestServer(t, svc, puppy)

	client := uploader.NewClient(server.URL, "test-token")
	result, err := client.UploadPhoto(context.Background(), photo.KindPuppy, "puppy-1", photo.RoleAlbum,
		uploader.File{Name: "one.jpg", Data: encodeTestJPEG(t)})
	require.NoError(t, err)
	require.Len(t, puppy.Album, 1)

	_, err = client.DeletePhoto(context.Background(), photo.KindPuppy, "puppy-1", photo.RoleAlbum, result.URL)
	require.NoError(t, err)

	assert.Empty(t, puppy.Album)
	assert.Empty(t, store.blobs)
}

func TestBatchUploadsThroughRealHandler(t *testing.T) {
	store := newFakeStorage()
	svc := NewPhotoService(store, &fakeRecordStore{})
	puppy := newTestPuppy()
	server := photoTestServer(t, svc, puppy)

	client := uploader.NewClient(server.URL, "test-token")
	batch := uploader.NewBatchUploader(client, nil)

	results := batch.UploadAll(context.Background(), photo.KindPuppy, "puppy-1", photo.RoleAlbum,
		[]uploader.File{
			{Name: "one.jpg", Data: encodeTestJPEG(t)},
			{Name: "two.jpg", Data: encodeTestJPEG(t)},
		})
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[1].Err)

	// Both uploads went end to end: list order matches upload order.
	require.Len(t, puppy.Album, 2)
	assert.Equal(t, results[0].URL, puppy.Album[0])
	assert.Equal(t, results[1].URL, puppy.Album[1])
}
