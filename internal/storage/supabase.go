package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	supastorage "github.com/supabase-community/storage-go"
)

// SupabaseUploader stores files in a Supabase storage bucket under the
// uploads/ prefix and returns the fully-qualified public object URL.
type SupabaseUploader struct {
	client  *supastorage.Client
	bucket  string
	baseURL string
}

func NewSupabaseUploader(supabaseURL, apiKey, bucket string) (*SupabaseUploader, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := supastorage.NewClient(baseURL+"/storage/v1", apiKey, nil)

	return &SupabaseUploader{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func (s *SupabaseUploader) Upload(ctx context.Context, p Payload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := ObjectName(p.ContentType)
	objectPath := Namespace + "/" + name

	contentType := p.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}
	upsert := false
	_, err := s.client.UploadFile(s.bucket, objectPath, bytes.NewReader(p.Data), supastorage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.PublicURL(objectPath), nil
}

// PublicURL builds the public URL for an object path inside the bucket.
func (s *SupabaseUploader) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, objectPath)
}
