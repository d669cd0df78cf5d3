package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"apnaghar/internal/usecase/interfaces"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrMissingCloudinaryCredentials = errors.New("missing CLOUDINARY_CLOUD_NAME / CLOUDINARY_API_KEY / CLOUDINARY_API_SECRET")

// CloudinaryStore implements interfaces.IObjectStorage on Cloudinary.
//
// Public ids are "{folder}/{sha256}", so identical bytes always map to one
// asset; uploads set Overwrite=false because a present key already holds the
// same content.
//
// Mock mode (OBJECT_STORAGE_MOCK) keeps assets in memory for local
// development and tests of the wiring.
type CloudinaryStore struct {
	cld       *cloudinary.Cloudinary
	cloudName string

	mockMode bool
	mockMu   sync.Mutex
	mockKeys map[string]bool
}

var _ interfaces.IObjectStorage = (*CloudinaryStore)(nil)

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	if isObjectStorageMockEnabled() {
		log.Printf("[evidence][storage] mock mode enabled")
		return &CloudinaryStore{cloudName: "mock", mockMode: true, mockKeys: make(map[string]bool)}, nil
	}

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Printf("[evidence][storage] missing cloudinary credentials")
		return nil, ErrMissingCloudinaryCredentials
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Printf("[evidence][storage] failed creating cloudinary client err=%v", err)
		return nil, err
	}
	log.Printf("[evidence][storage] cloudinary client initialized cloud=%s", cloudName)
	return &CloudinaryStore{cld: cld, cloudName: cloudName}, nil
}

func (s *CloudinaryStore) Exists(ctx context.Context, publicID, resourceType string) (bool, error) {
	if s.mockMode {
		s.mockMu.Lock()
		defer s.mockMu.Unlock()
		return s.mockKeys[resourceType+":"+publicID], nil
	}

	res, err := s.cld.Admin.Asset(ctx, admin.AssetParams{
		PublicID:  publicID,
		AssetType: api.AssetType(resourceType),
	})
	if err != nil {
		return false, err
	}
	if res.Error.Message != "" {
		// Cloudinary reports missing assets in the result body, not as a
		// transport error.
		return false, nil
	}
	return res.PublicID != "", nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, data []byte, publicID, resourceType string) (string, error) {
	if s.mockMode {
		s.mockMu.Lock()
		s.mockKeys[resourceType+":"+publicID] = true
		s.mockMu.Unlock()
		url := s.URLFor(publicID, resourceType)
		log.Printf("[evidence][storage] mock upload public_id=%s bytes=%d", publicID, len(data))
		return url, nil
	}

	log.Printf("[evidence][storage] upload start public_id=%s type=%s bytes=%d", publicID, resourceType, len(data))
	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     publicID,
		ResourceType: resourceType,
		Overwrite:    api.Bool(false),
	})
	if err != nil {
		log.Printf("[evidence][storage] upload failed public_id=%s err=%v", publicID, err)
		return "", err
	}
	if res.Error.Message != "" {
		log.Printf("[evidence][storage] upload rejected public_id=%s err=%s", publicID, res.Error.Message)
		return "", errors.New(res.Error.Message)
	}
	log.Printf("[evidence][storage] upload success public_id=%s url=%s", publicID, res.SecureURL)
	return res.SecureURL, nil
}

// URLFor builds the delivery URL deterministically from the public id so a
// deduplicated entry can reuse an existing asset without a round trip.
func (s *CloudinaryStore) URLFor(publicID, resourceType string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/%s/upload/%s", s.cloudName, resourceType, publicID)
}

func isObjectStorageMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("OBJECT_STORAGE_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
