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

package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAwsS3_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		awsS3   AwsS3
		errText string
	}{
		{
			name:  "valid",
			awsS3: AwsS3{BucketName: "shittyapps-config", Region: "us-east-1"},
		},
		{
			name: "valid with static keys",
			awsS3: AwsS3{
				BucketName:      "shittyapps-config",
				Region:          "us-east-1",
				AccessKeyID:     "id",
				SecretAccessKey: "secret",
			},
		},
		{
			name:    "missing bucket",
			awsS3:   AwsS3{Region: "us-east-1"},
			errText: "bucket name is required",
		},
		{
			name:    "missing region",
			awsS3:   AwsS3{BucketName: "shittyapps-config"},
			errText: "region is required",
		},
		{
			name:    "access key without secret",
			awsS3:   AwsS3{BucketName: "b", Region: "r", AccessKeyID: "id"},
			errText: "secret access key is required when access key id is set",
		},
		{
			name:    "secret without access key",
			awsS3:   AwsS3{BucketName: "b", Region: "r", SecretAccessKey: "secret"},
			errText: "access key id is required when secret access key is set",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.awsS3.Validate()
			if tc.errText == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorContains(t, err, tc.errText)
		})
	}
}
