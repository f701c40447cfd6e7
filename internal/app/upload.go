// Copyright 2025 ShittyApps, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/shittyapps/configpush/internal/config"
	"github.com/shittyapps/configpush/internal/models"
	"github.com/shittyapps/configpush/internal/storage"
	"github.com/shittyapps/configpush/internal/storage/local"
	s3Storage "github.com/shittyapps/configpush/internal/storage/s3"
)

// The Config Service reads the uploaded file and caches its content.
// The tool does not invalidate that cache, it only warns the operator.
const (
	noticeCacheTTL      = "NOTE: the Config Service caches app settings, the previous config may be served until its cache TTL expires."
	noticeCacheRedeploy = "Redeploy the Config Service to pick up the new config immediately."
)

// objectUploader is the part of the s3 uploader the service needs.
type objectUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	PublicURL(key string) string
}

// UploadService encapsulates the components of a single settings upload.
type UploadService struct {
	uploader objectUploader
	reader   *local.Reader
	upload   *models.Upload

	bucketName string

	out    io.Writer
	logger *slog.Logger
}

// NewUploadService initializes and returns a new UploadService instance,
// configuring all necessary components for an upload. The local file is
// checked before any network call is made.
func NewUploadService(
	ctx context.Context,
	params *config.Params,
	logger *slog.Logger,
) (*UploadService, error) {
	reader, err := local.NewReader(params.Upload.LocalFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file reader: %w", err)
	}

	if err := reader.Check(); err != nil {
		return nil, err
	}

	client, err := storage.NewS3Client(ctx, params.AwsS3)
	if err != nil {
		return nil, err
	}

	uploader, err := s3Storage.NewUploader(ctx, client, params.AwsS3.BucketName, params.AwsS3.Region, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize uploader: %w", err)
	}

	return newUploadService(uploader, reader, params.Upload, params.AwsS3.BucketName, os.Stdout, logger), nil
}

func newUploadService(
	uploader objectUploader,
	reader *local.Reader,
	upload *models.Upload,
	bucketName string,
	out io.Writer,
	logger *slog.Logger,
) *UploadService {
	return &UploadService{
		uploader:   uploader,
		reader:     reader,
		upload:     upload,
		bucketName: bucketName,
		out:        out,
		logger:     logger,
	}
}

// Run executes the upload, printing the success banner and the cache
// staleness advisory on success. Any failure aborts immediately, no retry.
func (s *UploadService) Run(ctx context.Context) error {
	runID := uuid.NewString()

	logger := s.logger.With(slog.String("id", runID))
	logger.Info("starting settings upload",
		slog.String("file", s.upload.LocalFilePath),
		slog.String("bucket", s.bucketName),
		slog.String("key", s.upload.RemoteKey),
		slog.String("contentType", s.upload.ContentType),
	)

	body, size, err := s.reader.Open()
	if err != nil {
		return err
	}
	defer body.Close()

	etag, err := s.uploader.Upload(ctx, s.upload.RemoteKey, s.upload.ContentType, body, size)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", s.upload.LocalFilePath, err)
	}

	logger.Info("settings upload complete",
		slog.Int64("size", size),
		slog.String("etag", etag),
		slog.String("url", s.uploader.PublicURL(s.upload.RemoteKey)),
	)

	fmt.Fprintf(s.out, "Successfully uploaded %s to s3://%s/%s\n",
		s.upload.LocalFilePath, s.bucketName, s.upload.RemoteKey)
	fmt.Fprintln(s.out, noticeCacheTTL)
	fmt.Fprintln(s.out, noticeCacheRedeploy)

	return nil
}
