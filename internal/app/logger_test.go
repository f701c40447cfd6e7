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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		level     string
		isVerbose bool
		isJSON    bool
		wantErr   bool
	}{
		{name: "text logger", level: "debug", isVerbose: true},
		{name: "json logger", level: "info", isVerbose: true, isJSON: true},
		{name: "level ignored without verbose", level: "nonsense"},
		{name: "invalid level", level: "nonsense", isVerbose: true, wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			logger, err := NewLogger(tc.level, tc.isVerbose, tc.isJSON)
			if tc.wantErr {
				require.ErrorContains(t, err, "invalid log level")
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}
