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
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presigner generates presigned PUT urls, so an upload capability can be
// handed to another process without sharing credentials.
type Presigner struct {
	client     PresignClient
	bucketName string
}

// NewPresigner creates a new presigner for the given bucket.
func NewPresigner(client PresignClient, bucketName string) (*Presigner, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	return &Presigner{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// PresignPutURL returns a presigned url for an HTTP PUT of key with the given
// content type, valid for the expires duration.
func (p *Presigner) PresignPutURL(ctx context.Context, key, contentType string, expires time.Duration,
) (string, error) {
	if expires <= 0 {
		return "", fmt.Errorf("expires must be positive")
	}

	req, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(o *s3.PresignOptions) {
		o.Expires = expires
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign put object %s: %w", key, err)
	}

	return req.URL, nil
}
