package images

import (
	"fmt"
	"io"
	"mime/multipart"
	"regexp"
	"sort"
	"strconv"
)

// Submission field naming convention: image collections arrive as flat
// multipart fields keyed by a positional index, e.g.
//
//	existingImages[0][url]        existingImages[0][description]
//	existingImages[0][isPrimary]  newImages[1][description]
//	newImages[1][isPrimary]       newImages[1][file]         (file part)
//
// Keys whose index is missing or non-numeric are skipped silently; one
// malformed key never rejects the whole submission.
var fieldKeyRe = regexp.MustCompile(`^(existingImages|newImages)\[(\d+)\]\[(\w+)\]$`)

// ExistingImage is an already-persisted image reference within a submission.
// Its URL is passed through reconciliation unchanged.
type ExistingImage struct {
	URL         string
	Description string
	IsPrimary   bool
}

// NewImage is a freshly-submitted image. Entries carrying file bytes are
// uploaded during reconciliation; entries without bytes fall back to their
// preview URL.
type NewImage struct {
	Data        []byte
	ContentType string
	Filename    string
	PreviewURL  string
	Description string
	IsPrimary   bool
}

// ParseSubmission reconstructs the ordered existing and new image collections
// from a multipart form's flat field keys.
func ParseSubmission(form *multipart.Form) ([]ExistingImage, []NewImage, error) {
	existingByIdx := make(map[int]*ExistingImage)
	newByIdx := make(map[int]*NewImage)

	for key, values := range form.Value {
		m := fieldKeyRe.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		value := ""
		if len(values) > 0 {
			value = values[0]
		}

		switch m[1] {
		case "existingImages":
			img := existingByIdx[idx]
			if img == nil {
				img = &ExistingImage{}
				existingByIdx[idx] = img
			}
			switch m[3] {
			case "url":
				img.URL = value
			case "description":
				img.Description = value
			case "isPrimary":
				img.IsPrimary = value == "true"
			}
		case "newImages":
			img := newByIdx[idx]
			if img == nil {
				img = &NewImage{}
				newByIdx[idx] = img
			}
			switch m[3] {
			case "previewUrl":
				img.PreviewURL = value
			case "description":
				img.Description = value
			case "isPrimary":
				img.IsPrimary = value == "true"
			}
		}
	}

	for key, headers := range form.File {
		m := fieldKeyRe.FindStringSubmatch(key)
		if m == nil || m[1] != "newImages" || m[3] != "file" || len(headers) == 0 {
			continue
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		header := headers[0]
		src, err := header.Open()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file %q: %w", header.Filename, err)
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read file %q: %w", header.Filename, err)
		}

		img := newByIdx[idx]
		if img == nil {
			img = &NewImage{}
			newByIdx[idx] = img
		}
		img.Data = data
		img.Filename = header.Filename
		img.ContentType = header.Header.Get("Content-Type")
	}

	return sortByIndex(existingByIdx), sortByIndex(newByIdx), nil
}

func sortByIndex[T any](byIdx map[int]*T) []T {
	indices := make([]int, 0, len(byIdx))
	for idx := range byIdx {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	out := make([]T, 0, len(indices))
	for _, idx := range indices {
		out = append(out, *byIdx[idx])
	}
	return out
}
