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

package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsHttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// Uploader represents an s3 storage uploader. It performs a single PutObject
// per call, no multipart machinery. Settings files are small.
type Uploader struct {
	client Client
	// bucketName contains name of the bucket to write to.
	bucketName string
	// region is used to derive the public object URL.
	region string

	logger *slog.Logger
}

// NewUploader creates a new uploader for S3 storage writes.
// The bucket must exist and be accessible with the ambient credentials.
func NewUploader(
	ctx context.Context,
	client Client,
	bucketName string,
	region string,
	logger *slog.Logger,
) (*Uploader, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	// Check if the bucket exists and we have permissions.
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		switch httpStatus(err) {
		case http.StatusNotFound:
			return nil, fmt.Errorf("bucket %s does not exist: %w", bucketName, err)
		case http.StatusForbidden:
			return nil, fmt.Errorf("access to bucket %s is denied: %w", bucketName, err)
		default:
			return nil, fmt.Errorf("failed to check bucket %s: %w", bucketName, err)
		}
	}

	return &Uploader{
		client:     client,
		bucketName: bucketName,
		region:     region,
		logger:     logger,
	}, nil
}

// Upload stores the body under key with the given content type, overwriting
// any previous object. Returns the ETag of the stored object.
func (u *Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64,
) (string, error) {
	out, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucketName),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}

	etag := aws.ToString(out.ETag)

	if u.logger != nil {
		u.logger.Debug("put object",
			slog.String("bucket", u.bucketName),
			slog.String("key", key),
			slog.String("contentType", contentType),
			slog.Int64("size", size),
			slog.String("etag", etag),
		)
	}

	return etag, nil
}

// PublicURL returns the virtual-hosted url of an object inside the bucket.
func (u *Uploader) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucketName, u.region, key)
}

// httpStatus unwraps the HTTP status code from an SDK operation error, or 0.
func httpStatus(err error) int {
	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		var httpErr *awsHttp.ResponseError
		if errors.As(opErr.Err, &httpErr) {
			return httpErr.HTTPStatusCode()
		}
	}

	return 0
}
