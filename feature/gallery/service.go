package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"icoltex-hub/core/storage"
	"icoltex-hub/feature/catalog/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// imageContentTypes are the upload types accepted for gallery images.
var imageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ErrUnsupportedImage is returned for uploads that are not a known image type.
var ErrUnsupportedImage = errors.New("unsupported image type: expected jpeg, png, or webp")

// Service manages product-line galleries and their image objects.
type Service struct {
	store   *Store
	objects storage.Client
	cfg     storage.Config
	logger  *zap.Logger
}

// NewService creates a gallery service.
func NewService(db *gorm.DB, objects storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{store: NewStore(db), objects: objects, cfg: cfg, logger: logger}
}

// EnsureBucket creates the gallery bucket if it does not exist. Called once
// at startup.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.objects.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %q: %w", s.cfg.Bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.objects.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
		return fmt.Errorf("creating bucket %q: %w", s.cfg.Bucket, err)
	}
	s.logger.Info("Gallery bucket created", zap.String("bucket", s.cfg.Bucket))
	return nil
}

// UploadImage stores an image object and returns its public URL. The URL is
// not attached to any gallery; callers pass it to Upsert afterwards.
func (s *Service) UploadImage(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	ext, ok := imageContentTypes[strings.ToLower(contentType)]
	if !ok {
		return "", ErrUnsupportedImage
	}

	objectName := fmt.Sprintf("%s/%s%s", time.Now().Format("2006/01"), uuid.NewString(), ext)
	_, err := s.objects.PutObject(ctx, s.cfg.Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}

	s.logger.Info("Gallery image uploaded",
		zap.String("object", objectName),
		zap.Int64("size", size))
	return s.publicURL(objectName), nil
}

// Upsert replaces the image list for a product line, creating the gallery
// row on first write.
func (s *Service) Upsert(ctx context.Context, category, productClass string, imageURLs []string) (*models.ProductLineGallery, error) {
	existing, err := s.store.FindByLine(ctx, category, productClass)
	if err != nil {
		return nil, err
	}

	gallery := existing
	if gallery == nil {
		gallery = &models.ProductLineGallery{Category: category, ProductClass: productClass}
	}
	gallery.ImageURLs = imageURLs

	if err := s.store.Save(ctx, gallery); err != nil {
		return nil, err
	}
	return gallery, nil
}

// Get returns a product line's gallery, or (nil, nil) when none exists.
func (s *Service) Get(ctx context.Context, category, productClass string) (*models.ProductLineGallery, error) {
	return s.store.FindByLine(ctx, category, productClass)
}

// List returns all galleries.
func (s *Service) List(ctx context.Context) ([]models.ProductLineGallery, error) {
	return s.store.List(ctx)
}

// Delete removes a product line's gallery row. Image objects are left in the
// bucket; URLs may be shared between lines.
func (s *Service) Delete(ctx context.Context, category, productClass string) error {
	return s.store.Delete(ctx, category, productClass)
}

func (s *Service) publicURL(objectName string) string {
	base := s.cfg.PublicBaseURL
	if base == "" {
		scheme := "http"
		if s.cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + s.cfg.Endpoint
	}
	return strings.TrimSuffix(base, "/") + path.Join("/", s.cfg.Bucket, objectName)
}
