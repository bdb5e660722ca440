package images

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"realty-admin-backend/internal/models"
	"realty-admin-backend/internal/storage"
)

// Reconcile merges already-persisted image references with freshly-submitted
// ones into a single ordered list: existing entries first in index order,
// then new entries in index order. New entries carrying file bytes are
// uploaded through the storage backend, one call per entry; uploads run
// concurrently and the call returns only once all of them have finished.
// If any upload fails the whole reconciliation fails — callers never see a
// partial list.
func Reconcile(ctx context.Context, uploader storage.Uploader, existing []ExistingImage, fresh []NewImage) ([]models.ImageRecord, error) {
	records := make([]models.ImageRecord, len(existing)+len(fresh))

	for i, img := range existing {
		records[i] = models.ImageRecord{
			URL:         img.URL,
			Description: img.Description,
			IsPrimary:   img.IsPrimary,
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, img := range fresh {
		slot := &records[len(existing)+i]
		slot.Description = img.Description
		slot.IsPrimary = img.IsPrimary

		if len(img.Data) == 0 {
			slot.URL = img.PreviewURL
			continue
		}

		g.Go(func() error {
			url, err := uploader.Upload(ctx, storage.Payload{
				Data:          img.Data,
				ContentType:   img.ContentType,
				SuggestedName: img.Filename,
			})
			if err != nil {
				return fmt.Errorf("failed to upload image %q: %w", img.Filename, err)
			}
			slot.URL = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}
