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
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePresignClient implements PresignClient with pluggable behavior.
type fakePresignClient struct {
	presignPutObject func(*s3.PutObjectInput, *s3.PresignOptions) (*v4.PresignedHTTPRequest, error)
}

func (f *fakePresignClient) PresignPutObject(
	_ context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions),
) (*v4.PresignedHTTPRequest, error) {
	opts := &s3.PresignOptions{}
	for _, fn := range optFns {
		fn(opts)
	}

	return f.presignPutObject(params, opts)
}

func TestNewPresigner_EmptyBucketName(t *testing.T) {
	t.Parallel()

	_, err := NewPresigner(&fakePresignClient{}, "")
	require.ErrorContains(t, err, "bucket name is required")
}

func TestPresigner_PresignPutURL(t *testing.T) {
	t.Parallel()

	var (
		captured     *s3.PutObjectInput
		capturedOpts *s3.PresignOptions
	)

	client := &fakePresignClient{
		presignPutObject: func(params *s3.PutObjectInput, opts *s3.PresignOptions) (*v4.PresignedHTTPRequest, error) {
			captured = params
			capturedOpts = opts

			return &v4.PresignedHTTPRequest{
				URL:    "https://shittyapps-config.s3.us-east-1.amazonaws.com/app-settings/dating_coach.json?X-Amz-Signature=sig",
				Method: "PUT",
			}, nil
		},
	}

	presigner, err := NewPresigner(client, testBucket)
	require.NoError(t, err)

	url, err := presigner.PresignPutURL(context.Background(), testKey, testContentType, 5*time.Minute)
	require.NoError(t, err)

	assert.Contains(t, url, "app-settings/dating_coach.json")

	require.NotNil(t, captured)
	assert.Equal(t, testBucket, aws.ToString(captured.Bucket))
	assert.Equal(t, testKey, aws.ToString(captured.Key))
	assert.Equal(t, testContentType, aws.ToString(captured.ContentType))

	require.NotNil(t, capturedOpts)
	assert.Equal(t, 5*time.Minute, capturedOpts.Expires)
}

func TestPresigner_PresignPutURL_Error(t *testing.T) {
	t.Parallel()

	client := &fakePresignClient{
		presignPutObject: func(*s3.PutObjectInput, *s3.PresignOptions) (*v4.PresignedHTTPRequest, error) {
			return nil, errors.New("signing failed")
		},
	}

	presigner, err := NewPresigner(client, testBucket)
	require.NoError(t, err)

	_, err = presigner.PresignPutURL(context.Background(), testKey, testContentType, time.Minute)
	require.ErrorContains(t, err, "failed to presign put object")
}

func TestPresigner_PresignPutURL_InvalidExpires(t *testing.T) {
	t.Parallel()

	presigner, err := NewPresigner(&fakePresignClient{}, testBucket)
	require.NoError(t, err)

	_, err = presigner.PresignPutURL(context.Background(), testKey, testContentType, 0)
	require.ErrorContains(t, err, "expires must be positive")
}
