package checks

import (
	"context"

	"hero-catalog/core/storage"
)

// StorageReport is the result of the backup bucket check.
type StorageReport struct {
	Bucket string `json:"bucket"`
	Exists bool   `json:"exists"`
	Status string `json:"status"` // "ok", "missing", "fixed"
}

// CheckStorage verifies that the backup bucket exists, creating it when fix is set.
func CheckStorage(ctx context.Context, client storage.Client, bucket, region string, fix bool) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket}

	if fix {
		created, err := storage.EnsureBucket(ctx, client, bucket, region)
		if err != nil {
			return nil, err
		}
		report.Exists = true
		report.Status = "ok"
		if created {
			report.Status = "fixed"
		}
		return report, nil
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	report.Exists = exists
	report.Status = "ok"
	if !exists {
		report.Status = "missing"
	}
	return report, nil
}
