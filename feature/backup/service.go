package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"hero-catalog/core/storage"
	"hero-catalog/feature/heroes/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrBackupNotFound is returned when the named backup does not exist.
var ErrBackupNotFound = errors.New("backup not found")

const documentVersion = 1

// Favorites is the part of the heroes service a backup reads from and restores into.
type Favorites interface {
	Favorites(ctx context.Context) ([]models.Hero, error)
	Restore(ctx context.Context, list []models.Hero) (*models.RestoreResult, error)
}

// Service exports and restores favorites backups in object storage.
type Service struct {
	client    storage.Client
	bucket    string
	region    string
	retention int
	favorites Favorites
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a backup service.
func NewService(client storage.Client, cfg storage.Config, favorites Favorites, logger *zap.Logger) *Service {
	return &Service{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		retention: cfg.BackupRetention,
		favorites: favorites,
		logger:    logger,
		now:       time.Now,
	}
}

// ObjectName builds the object key of a backup created at t.
func ObjectName(t time.Time) string {
	return fmt.Sprintf("%sfavorites-%s-%s.json", Prefix, t.UTC().Format("20060102T150405Z"), uuid.NewString())
}

// Export writes the current favorites to a new backup object and prunes old backups.
func (s *Service) Export(ctx context.Context) (*ExportReport, error) {
	if _, err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return nil, err
	}

	favs, err := s.favorites.Favorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	created := s.now()
	doc := Document{Version: documentVersion, CreatedAt: created.UTC(), Heroes: favs}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}

	name := ObjectName(created)
	_, err = s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload backup %s: %w", name, err)
	}

	s.logger.Info("Favorites backup exported", zap.String("name", name), zap.Int("count", len(favs)))

	report := &ExportReport{
		Name:      name,
		Count:     len(favs),
		Bucket:    s.bucket,
		CreatedAt: doc.CreatedAt.Format(time.RFC3339),
	}

	pruned, err := s.Prune(ctx)
	if err != nil {
		// The backup itself succeeded.
		s.logger.Warn("Failed to prune old backups", zap.Error(err))
	}
	report.Pruned = pruned
	return report, nil
}

// List returns the stored backups, newest first.
func (s *Service) List(ctx context.Context) ([]Info, error) {
	var out []Info
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: Prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list backups: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		out = append(out, Info{Name: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastModified.Equal(out[j].LastModified) {
			return out[i].Name > out[j].Name
		}
		return out[i].LastModified.After(out[j].LastModified)
	})
	return out, nil
}

// Prune removes the backups beyond the retention count, oldest first.
func (s *Service) Prune(ctx context.Context) ([]string, error) {
	if s.retention <= 0 {
		return nil, nil
	}

	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) <= s.retention {
		return nil, nil
	}

	var removed []string
	for _, info := range list[s.retention:] {
		if err := s.client.RemoveObject(ctx, s.bucket, info.Name, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("failed to remove backup %s: %w", info.Name, err)
		}
		removed = append(removed, info.Name)
	}
	return removed, nil
}

// Restore reads a backup and marks every hero in it favorite.
func (s *Service) Restore(ctx context.Context, name string) (*RestoreReport, error) {
	if !strings.HasPrefix(name, Prefix) {
		name = Prefix + name
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.objectError(name, err)
	}
	defer obj.Close()

	var doc Document
	if err := json.NewDecoder(obj).Decode(&doc); err != nil {
		return nil, s.objectError(name, err)
	}

	list := make([]models.Hero, 0, len(doc.Heroes))
	for _, h := range doc.Heroes {
		if h.IsFavorite {
			list = append(list, h)
		}
	}

	res, err := s.favorites.Restore(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("failed to restore backup %s: %w", name, err)
	}

	s.logger.Info("Favorites backup restored",
		zap.String("name", name),
		zap.Int("restored", res.Restored),
		zap.Int("pending", res.Pending),
	)
	return &RestoreReport{Name: name, Restored: res.Restored, Pending: res.Pending}, nil
}

// objectError maps a missing object to ErrBackupNotFound. minio reports it either
// from GetObject or from the first read.
func (s *Service) objectError(name string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrBackupNotFound, name)
	}
	return fmt.Errorf("failed to read backup %s: %w", name, err)
}
