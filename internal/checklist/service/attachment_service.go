package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
	"github.com/bouvin87/System-by-Sections/internal/checklist/repository"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// AttachmentService stores file-question uploads in object storage and keeps
// their metadata in the database. The answer value a client submits for a
// file question is the attachment id returned here.
type AttachmentService struct {
	attachments *repository.AttachmentRepository
	client      *minio.Client
	bucket      string
}

func NewAttachmentService(attachments *repository.AttachmentRepository, client *minio.Client, bucket string) *AttachmentService {
	return &AttachmentService{attachments: attachments, client: client, bucket: bucket}
}

// Upload streams one file into the bucket and records its metadata.
func (s *AttachmentService) Upload(ctx context.Context, reader io.Reader, fileName string, size int64, contentType, uploadedBy string) (*entity.Attachment, error) {
	if s.client == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}

	id := uuid.New().String()[:32]
	objectPath := fmt.Sprintf("attachments/%s/%s%s",
		time.Now().Format("2006/01/02"), id, filepath.Ext(fileName))

	_, err := s.client.PutObject(ctx, s.bucket, objectPath, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("store object: %w", err)
	}

	attachment := &entity.Attachment{
		ID:          id,
		FileName:    fileName,
		ObjectPath:  objectPath,
		Size:        size,
		ContentType: contentType,
		UploadedBy:  uploadedBy,
	}
	if err := s.attachments.Create(ctx, attachment); err != nil {
		return nil, fmt.Errorf("persist attachment: %w", err)
	}
	return attachment, nil
}

// Download opens the stored object for one attachment. The caller owns
// closing the returned reader.
func (s *AttachmentService) Download(ctx context.Context, id string) (io.ReadCloser, *entity.Attachment, error) {
	attachment, err := s.attachments.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if s.client == nil {
		return nil, nil, fmt.Errorf("object storage is not configured")
	}
	object, err := s.client.GetObject(ctx, s.bucket, attachment.ObjectPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("open object: %w", err)
	}
	return object, attachment, nil
}
