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

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmd(t *testing.T) {
	t.Parallel()

	rootCmd := NewCmd("1.0.0", "abcdef")

	assert.Equal(t, "configpush", rootCmd.Use)

	for _, name := range []string{
		"version", "verbose", "log-level", "log-json", "config",
		"app-id", "file", "key", "content-type",
		"s3-bucket-name", "s3-region", "s3-profile", "s3-endpoint-override",
		"s3-access-key-id", "s3-secret-access-key",
	} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "flag %s should be registered", name)
	}
}

func TestNewCmd_PresignSubcommand(t *testing.T) {
	t.Parallel()

	rootCmd := NewCmd("1.0.0", "abcdef")

	presignCmd, _, err := rootCmd.Find([]string{"presign"})
	require.NoError(t, err)
	require.NotNil(t, presignCmd)

	assert.Equal(t, "presign", presignCmd.Use)
	assert.NotNil(t, presignCmd.Flags().Lookup("expires"))
}
