package uploader

import (
	"context"
	"encoding/json"

	"kennel_backend/internal/photo"
)

// ProgressFunc receives (completedCount, totalCount) after each file.
type ProgressFunc func(completed, total int)

// FileResult is the outcome for one file in a batch.
type FileResult struct {
	Name   string
	URL    string
	Entity json.RawMessage
	Err    error
}

// BatchUploader sequences multiple files through validation, compression
// and upload. Files are processed strictly one at a time so progress is
// monotonic and remote writes land in selection order.
type BatchUploader struct {
	client   *Client
	progress ProgressFunc
}

func NewBatchUploader(client *Client, progress ProgressFunc) *BatchUploader {
	return &BatchUploader{
		client:   client,
		progress: progress,
	}
}

// UploadAll processes every file and returns one result per input, in
// order. A file's failure never stops the rest of the batch. For a
// singular role the caller restricts the slice to one file beforehand;
// arity is not enforced here.
func (b *BatchUploader) UploadAll(ctx context.Context, kind photo.Kind, entityID string, role photo.Role, files []File) []FileResult {
	total := len(files)
	results := make([]FileResult, 0, total)

	for i, file := range files {
		result := FileResult{Name: file.Name}

		if err := Validate(file, kind); err != nil {
			// Rejected files never reach compression or the network.
			result.Err = err
		} else if res, err := b.client.UploadPhoto(ctx, kind, entityID, role, file); err != nil {
			result.Err = err
		} else {
			result.URL = res.URL
			result.Entity = res.Entity
		}

		results = append(results, result)
		if b.progress != nil {
			b.progress(i+1, total)
		}
	}

	return results
}

// Summary counts successes and failures for the caller's user-facing
// message.
func Summary(results []FileResult) (succeeded, failed int) {
	for _, r := range results {
		if r.Err != nil {
			failed++
		} else {
			succeeded++
		}
	}
	return succeeded, failed
}

// LastSnapshot returns the entity record of the last successful upload,
// which becomes the new authoritative client-side state. Nil when every
// file failed.
func LastSnapshot(results []FileResult) json.RawMessage {
	for i := len(results) - 1; i >= 0; i-- {
		if results[i].Err == nil && results[i].Entity != nil {
			return results[i].Entity
		}
	}
	return nil
}
