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
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/shittyapps/configpush/internal/config"
	"github.com/shittyapps/configpush/internal/models"
	"github.com/shittyapps/configpush/internal/storage"
	s3Storage "github.com/shittyapps/configpush/internal/storage/s3"
)

// urlPresigner is the part of the s3 presigner the service needs.
type urlPresigner interface {
	PresignPutURL(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
}

// PresignService generates a presigned PUT url for the settings object.
type PresignService struct {
	presigner urlPresigner
	upload    *models.Upload
	expires   time.Duration

	out    io.Writer
	logger *slog.Logger
}

// NewPresignService initializes and returns a new PresignService instance.
func NewPresignService(
	ctx context.Context,
	params *config.Params,
	expires time.Duration,
	logger *slog.Logger,
) (*PresignService, error) {
	client, err := storage.NewS3Client(ctx, params.AwsS3)
	if err != nil {
		return nil, err
	}

	presigner, err := s3Storage.NewPresigner(s3.NewPresignClient(client), params.AwsS3.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize presigner: %w", err)
	}

	return newPresignService(presigner, params.Upload, expires, os.Stdout, logger), nil
}

func newPresignService(
	presigner urlPresigner,
	upload *models.Upload,
	expires time.Duration,
	out io.Writer,
	logger *slog.Logger,
) *PresignService {
	return &PresignService{
		presigner: presigner,
		upload:    upload,
		expires:   expires,
		out:       out,
		logger:    logger,
	}
}

// Run generates the url and prints it to the output as a single line.
func (s *PresignService) Run(ctx context.Context) error {
	url, err := s.presigner.PresignPutURL(ctx, s.upload.RemoteKey, s.upload.ContentType, s.expires)
	if err != nil {
		return fmt.Errorf("failed to presign upload url: %w", err)
	}

	s.logger.Info("generated presigned upload url",
		slog.String("key", s.upload.RemoteKey),
		slog.Duration("expires", s.expires),
	)

	fmt.Fprintln(s.out, url)

	return nil
}
