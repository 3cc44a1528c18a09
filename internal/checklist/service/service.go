package service

import (
	"github.com/bouvin87/System-by-Sections/internal/checklist/repository"
	"github.com/bouvin87/System-by-Sections/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Services aggregates all checklist services.
type Services struct {
	Definition *DefinitionService
	Submission *SubmissionService
	Export     *ExportService
	Attachment *AttachmentService
	Auth       *AuthService
}

// NewServices wires the service layer.
func NewServices(repos *repository.Repositories, rdb *redis.Client, minioClient *minio.Client, cfg *config.Config, logger *zap.Logger) *Services {
	definition := NewDefinitionService(repos, rdb, logger)
	return &Services{
		Definition: definition,
		Submission: NewSubmissionService(definition, repos.Response, logger),
		Export:     NewExportService(definition, repos.Response),
		Attachment: NewAttachmentService(repos.Attachment, minioClient, cfg.MinIO.Bucket),
		Auth:       NewAuthService(cfg),
	}
}
