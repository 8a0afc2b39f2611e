package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "defaults when no config file exists",
			want: &Config{
				Database: DatabaseConfig{
					Path: "track.db",
				},
				LeetCode: LeetCodeConfig{
					Endpoint: "https://leetcode.com/graphql",
				},
				Bank: BankConfig{
					Directory: "static",
				},
			},
		},
		{
			name: "valid config file with custom values",
			configContent: `database:
  path: custom/track.db
  max_open_conns: 5
  max_idle_conns: 2
leetcode:
  endpoint: https://example.com/graphql
bank:
  directory: custom/banks
`,
			want: &Config{
				Database: DatabaseConfig{
					Path:         "custom/track.db",
					MaxOpenConns: 5,
					MaxIdleConns: 2,
				},
				LeetCode: LeetCodeConfig{
					Endpoint: "https://example.com/graphql",
				},
				Bank: BankConfig{
					Directory: "custom/banks",
				},
			},
		},
		{
			name: "environment variables override defaults",
			env: map[string]string{
				"TRACK_DB_PATH":             "/tmp/env-track.db",
				"LEETCODE_GRAPHQL_ENDPOINT": "https://mirror.example.com/graphql",
			},
			want: &Config{
				Database: DatabaseConfig{
					Path: "/tmp/env-track.db",
				},
				LeetCode: LeetCodeConfig{
					Endpoint: "https://mirror.example.com/graphql",
				},
				Bank: BankConfig{
					Directory: "static",
				},
			},
		},
		{
			name: "invalid endpoint fails validation",
			configContent: `leetcode:
  endpoint: not-a-url
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration", "endpoint"},
		},
		{
			name: "empty database path fails validation",
			configContent: `database:
  path: ""
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration", "path"},
		},
		{
			name:              "invalid YAML format",
			configContent:     "database: [unclosed",
			wantErr:           true,
			wantErrorContains: []string{"could not be read"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			configFile := ""
			if tt.configContent != "" {
				configFile = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(configFile, []byte(tt.configContent), 0644))
			}

			loader, err := NewConfigLoader(configFile)
			require.NoError(t, err)

			got, err := loader.Load()
			if tt.wantErr {
				require.Error(t, err)
				for _, substr := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), substr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
