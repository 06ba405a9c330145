package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kennel_backend/internal/models"
	"kennel_backend/internal/photo"
	"kennel_backend/pkg/apperrors"
)

// fakeStorage is an in-memory Storage that records every operation.
type fakeStorage struct {
	blobs    map[string][]byte
	saves    []string
	deletes  []string
	saveErr  error
	urlErr   error
	delErr   error
	baseRoot string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		blobs:    make(map[string][]byte),
		baseRoot: "https://cdn.test/files",
	}
}

func (f *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.blobs[path] = data
	f.saves = append(f.saves, path)
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.blobs[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	f.deletes = append(f.deletes, path)
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.blobs, path)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.blobs[path]
	return ok, nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return f.baseRoot + "/" + path, nil
}

func (f *fakeStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return f.GetURL(ctx, path)
}

func (f *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) {
	return int64(len(f.blobs[path])), nil
}

func (f *fakeStorage) PathFromURL(url string) (string, error) {
	prefix := f.baseRoot + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", fmt.Errorf("url %q outside storage", url)
	}
	return strings.TrimPrefix(url, prefix), nil
}

// fakeRecordStore records Save calls and can be made to fail.
type fakeRecordStore struct {
	saves   int
	saveErr error
}

func (f *fakeRecordStore) Save(ctx context.Context, db *gorm.DB, owner photo.Owner) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	return nil
}

// makeFileHeader builds a real multipart.FileHeader from raw bytes.
func makeFileHeader(t *testing.T, name, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.NotEmpty(t, form.File["file"])
	return form.File["file"][0]
}

func jpegBytes() []byte {
	return append([]byte{0xff, 0xd8, 0xff, 0xe0}, bytes.Repeat([]byte{0}, 128)...)
}

func pngBytes() []byte {
	return append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, bytes.Repeat([]byte{0}, 64)...)
}

func newTestPuppy() *models.Puppy {
	p := &models.Puppy{Name: "Rex", Breed: "Samoyed", Gender: "male"}
	p.ID = "puppy-1"
	return p
}

func requireCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestUploadPhotoAppendsToList(t *testing.T) {
	store := newFakeStorage()
	records := &fakeRecordStore{}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()

	first, err := svc.UploadPhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		makeFileHeader(t, "one.jpg", "image/jpeg", jpegBytes()))
	require.NoError(t, err)

	second, err := svc.UploadPhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		makeFileHeader(t, "two.png", "image/png", pngBytes()))
	require.NoError(t, err)

	// List order is upload order.
	require.Len(t, puppy.Album, 2)
	assert.Equal(t, first.URL, puppy.Album[0])
	assert.Equal(t, second.URL, puppy.Album[1])
	assert.Equal(t, photo.RoleAlbum, first.Role)
	assert.Equal(t, 2, records.saves)

	// Extension follows the sniffed type.
	assert.True(t, strings.HasSuffix(first.URL, ".jpg"), first.URL)
	assert.True(t, strings.HasSuffix(second.URL, ".png"), second.URL)

	// Blob paths are {entityId}/{role}/...
	require.Len(t, store.saves, 2)
	assert.True(t, strings.HasPrefix(store.saves[0], "puppy-1/album/"), store.saves[0])
}

func TestUploadPhotoOverwritesSingle(t *testing.T) {
	store := newFakeStorage()
	records := &fakeRecordStore{}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()
	puppy.CoverImage = "https://cdn.test/files/puppy-1/cover/old.jpg"

	result, err := svc.UploadPhoto(context.Background(), nil, puppy, photo.RoleCover,
		makeFileHeader(t, "new.jpg", "image/jpeg", jpegBytes()))
	require.NoError(t, err)

	assert.Equal(t, result.URL, puppy.CoverImage)
	// The previous blob is orphaned, not deleted.
	assert.Empty(t, store.deletes)
}

func TestUploadPhotoStoresSniffedBytes(t *testing.T) {
	store := newFakeStorage()
	svc := NewPhotoService(store, &fakeRecordStore{})
	puppy := newTestPuppy()
	data := jpegBytes()

	_, err := svc.UploadPhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		makeFileHeader(t, "one.jpg", "image/jpeg", data))
	require.NoError(t, err)

	// Sniffing must rewind before the blob write.
	require.Len(t, store.saves, 1)
	assert.Equal(t, data, store.blobs[store.saves[0]])
}

func TestUploadPhotoRejectsUnmappedRole(t *testing.T) {
	store := newFakeStorage()
	svc := NewPhotoService(store, &fakeRecordStore{})
	puppy := newTestPuppy()

	_, err := svc.UploadPhoto(context.Background(), nil, puppy, photo.RoleAvatar,
		makeFileHeader(t, "one.jpg", "image/jpeg", jpegBytes()))
	requireCode(t, err, apperrors.CodeValidationFailed)
	assert.Empty(t, store.saves)
}

func TestUploadPhotoRejectsDeclaredType(t *testing.T) {
	store := newFakeStorage()
	records := &fakeRecordStore{}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()

	_, err := svc.UploadPhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		makeFileHeader(t, "doc.pdf", "application/pdf", jpegBytes()))
	requireCode(t, err, apperrors.CodeInvalidFile)

	// Rejection happens before any storage or record write.
	assert.Empty(t, store.saves)
	assert.Zero(t, records.saves)
	assert.Empty(t, puppy.Album)
}

func TestUploadPhotoRejectsSpoofedContent(t *testing.T) {
	store := newFakeStorage()
	svc := NewPhotoService(store, &fakeRecordStore{})
	puppy := newTestPuppy()

	// Declared image/jpeg, actual bytes plain text. The sniff wins.
	_, err := svc.UploadPhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		makeFileHeader(t, "fake.jpg", "image/jpeg", []byte("just some text pretending to be a photo")))
	requireCode(t, err, apperrors.CodeInvalidFile)
	assert.Empty(t, store.saves)
}

func TestUploadPhotoRejectsOversize(t *testing.T) {
	store := newFakeStorage()
	records := &fakeRecordStore{}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()

	big := make([]byte, photo.PuppySizeLimit+1)
	copy(big, []byte{0xff, 0xd8, 0xff, 0xe0})

	_, err := svc.UploadPhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		makeFileHeader(t, "big.jpg", "image/jpeg", big))
	requireCode(t, err, apperrors.CodeTooLarge)
	assert.Empty(t, store.saves)
	assert.Zero(t, records.saves)
}

func TestUploadPhotoStorageFailureAborts(t *testing.T) {
	store := newFakeStorage()
	store.saveErr = errors.New("disk full")
	records := &fakeRecordStore{}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()

	_, err := svc.UploadPhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		makeFileHeader(t, "one.jpg", "image/jpeg", jpegBytes()))
	requireCode(t, err, apperrors.CodeUploadError)

	// No record mutation, no attached URL.
	assert.Zero(t, records.saves)
	assert.Empty(t, puppy.Album)
}

func TestUploadPhotoDBFailureCompensates(t *testing.T) {
	store := newFakeStorage()
	records := &fakeRecordStore{saveErr: errors.New("connection reset")}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()

	_, err := svc.UploadPhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		makeFileHeader(t, "one.jpg", "image/jpeg", jpegBytes()))
	requireCode(t, err, apperrors.CodeDatabaseError)

	// The blob written earlier must be rolled back.
	require.Len(t, store.saves, 1)
	require.Len(t, store.deletes, 1)
	assert.Equal(t, store.saves[0], store.deletes[0])
	assert.Empty(t, store.blobs)
}

func TestDeletePhotoFiltersList(t *testing.T) {
	store := newFakeStorage()
	records := &fakeRecordStore{}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()

	store.blobs["puppy-1/album/a.jpg"] = []byte{1}
	puppy.Album = pq.StringArray{
		"https://cdn.test/files/puppy-1/album/a.jpg",
		"https://cdn.test/files/puppy-1/album/b.jpg",
	}

	err := svc.DeletePhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		"https://cdn.test/files/puppy-1/album/a.jpg")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://cdn.test/files/puppy-1/album/b.jpg"}, []string(puppy.Album))
	assert.Equal(t, []string{"puppy-1/album/a.jpg"}, store.deletes)
	assert.Equal(t, 1, records.saves)
}

func TestDeletePhotoClearsSingle(t *testing.T) {
	store := newFakeStorage()
	svc := NewPhotoService(store, &fakeRecordStore{})
	puppy := newTestPuppy()
	puppy.CoverImage = "https://cdn.test/files/puppy-1/cover/c.jpg"

	err := svc.DeletePhoto(context.Background(), nil, puppy, photo.RoleCover,
		"https://cdn.test/files/puppy-1/cover/c.jpg")
	require.NoError(t, err)
	assert.Empty(t, puppy.CoverImage)
}

func TestDeletePhotoStaleSingleURLKeepsCurrent(t *testing.T) {
	store := newFakeStorage()
	records := &fakeRecordStore{}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()
	puppy.CoverImage = "https://cdn.test/files/puppy-1/cover/new.jpg"

	// Deleting the URL of an already-overwritten cover must not null the
	// live reference.
	err := svc.DeletePhoto(context.Background(), nil, puppy, photo.RoleCover,
		"https://cdn.test/files/puppy-1/cover/old.jpg")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.test/files/puppy-1/cover/new.jpg", puppy.CoverImage)
	// The orphaned blob is still cleaned up.
	assert.Equal(t, []string{"puppy-1/cover/old.jpg"}, store.deletes)
	assert.Equal(t, 1, records.saves)
}

func TestDeletePhotoStorageFailureStillUpdatesRecord(t *testing.T) {
	store := newFakeStorage()
	store.delErr = errors.New("bucket unavailable")
	records := &fakeRecordStore{}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()
	puppy.Album = pq.StringArray{"https://cdn.test/files/puppy-1/album/a.jpg"}

	err := svc.DeletePhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		"https://cdn.test/files/puppy-1/album/a.jpg")
	require.NoError(t, err)

	// The reference is gone even though the blob delete failed.
	assert.Empty(t, puppy.Album)
	assert.Equal(t, 1, records.saves)
}

func TestDeletePhotoRejectsForeignURL(t *testing.T) {
	store := newFakeStorage()
	records := &fakeRecordStore{}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()
	puppy.Album = pq.StringArray{"https://cdn.test/files/puppy-1/album/a.jpg"}

	err := svc.DeletePhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		"https://elsewhere.example/a.jpg")
	requireCode(t, err, apperrors.CodeInvalidURL)

	assert.Len(t, puppy.Album, 1)
	assert.Zero(t, records.saves)
	assert.Empty(t, store.deletes)
}

func TestDeletePhotoAbsentURLIsIdempotent(t *testing.T) {
	store := newFakeStorage()
	records := &fakeRecordStore{}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()
	puppy.Album = pq.StringArray{"https://cdn.test/files/puppy-1/album/a.jpg"}

	err := svc.DeletePhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		"https://cdn.test/files/puppy-1/album/gone.jpg")
	require.NoError(t, err)

	// The list is untouched and the record save still ran.
	assert.Len(t, puppy.Album, 1)
	assert.Equal(t, 1, records.saves)
}

func TestDeletePhotoDBFailure(t *testing.T) {
	store := newFakeStorage()
	records := &fakeRecordStore{saveErr: errors.New("connection reset")}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()
	puppy.Album = pq.StringArray{"https://cdn.test/files/puppy-1/album/a.jpg"}

	err := svc.DeletePhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		"https://cdn.test/files/puppy-1/album/a.jpg")
	requireCode(t, err, apperrors.CodeDatabaseError)
}

func TestUploadThenDeleteRoundTrip(t *testing.T) {
	store := newFakeStorage()
	records := &fakeRecordStore{}
	svc := NewPhotoService(store, records)
	puppy := newTestPuppy()

	result, err := svc.UploadPhoto(context.Background(), nil, puppy, photo.RoleAlbum,
		makeFileHeader(t, "one.jpg", "image/jpeg", jpegBytes()))
	require.NoError(t, err)
	require.Len(t, puppy.Album, 1)

	err = svc.DeletePhoto(context.Background(), nil, puppy, photo.RoleAlbum, result.URL)
	require.NoError(t, err)

	assert.Empty(t, puppy.Album)
	assert.Empty(t, store.blobs)
}
