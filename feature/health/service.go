package health

import (
	"context"

	"hero-catalog/core/storage"
	"hero-catalog/core/superhero"
	"hero-catalog/feature/health/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs the health checks.
type Service struct {
	db        *gorm.DB
	client    storage.Client
	storage   storage.Config
	source    superhero.Client
	publisher string
	logger    *zap.Logger
}

// NewService creates a new health service. db and client may be nil when the
// corresponding backend is not configured.
func NewService(db *gorm.DB, client storage.Client, storageCfg storage.Config, source superhero.Client, publisher string, logger *zap.Logger) *Service {
	return &Service{
		db:        db,
		client:    client,
		storage:   storageCfg,
		source:    source,
		publisher: publisher,
		logger:    logger,
	}
}

// Report is the combined result of all checks. A failing check carries its error
// in the matching *Error field.
type Report struct {
	Healthy      bool                  `json:"healthy"`
	Schema       *checks.SchemaReport  `json:"schema,omitempty"`
	SchemaError  string                `json:"schema_error,omitempty"`
	Storage      *checks.StorageReport `json:"storage,omitempty"`
	StorageError string                `json:"storage_error,omitempty"`
	Source       *checks.SourceReport  `json:"source"`
}

// CheckSchema inspects the heroes table.
func (s *Service) CheckSchema(fix bool) (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, fix)
}

// CheckStorage inspects the backup bucket.
func (s *Service) CheckStorage(ctx context.Context, fix bool) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, errStorageDisabled
	}
	return checks.CheckStorage(ctx, s.client, s.storage.Bucket, s.storage.Region, fix)
}

// CheckSource probes the remote catalog.
func (s *Service) CheckSource(ctx context.Context) *checks.SourceReport {
	return checks.CheckSource(ctx, s.source, s.publisher)
}

// CheckAll runs every check without fixing anything.
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{Healthy: true}

	if schema, err := s.CheckSchema(false); err != nil {
		report.SchemaError = err.Error()
		report.Healthy = false
	} else {
		report.Schema = schema
		report.Healthy = report.Healthy && schema.Status == "ok"
	}

	if st, err := s.CheckStorage(ctx, false); err != nil {
		report.StorageError = err.Error()
		report.Healthy = false
	} else {
		report.Storage = st
		report.Healthy = report.Healthy && st.Exists
	}

	report.Source = s.CheckSource(ctx)
	report.Healthy = report.Healthy && report.Source.Reachable

	if !report.Healthy {
		s.logger.Warn("Health check reported problems",
			zap.String("schema_error", report.SchemaError),
			zap.String("storage_error", report.StorageError),
			zap.Bool("source_reachable", report.Source.Reachable),
		)
	}
	return report
}
