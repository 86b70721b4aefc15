package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Struct(t *testing.T) {
	type tlsFiles struct {
		CertFile string `yaml:"cert_file" validate:"omitempty,file"`
	}
	type document struct {
		Title    string   `yaml:"title" validate:"required"`
		Priority int      `yaml:"priority,omitempty" validate:"omitempty,min=1,max=100"`
		TLS      tlsFiles `yaml:"tls"`
	}

	existing := filepath.Join(t.TempDir(), "cert.pem")
	require.NoError(t, os.WriteFile(existing, []byte("cert"), 0o600))

	tests := []struct {
		name    string
		input   document
		wantErr string
	}{
		{
			name:  "valid",
			input: document{Title: "A", Priority: 10, TLS: tlsFiles{CertFile: existing}},
		},
		{
			name:    "errors are named by the tag and joined",
			input:   document{Priority: 101},
			wantErr: "title is a required field, priority must be 100 or less",
		},
		{
			name:    "missing file is reported with its path",
			input:   document{Title: "A", TLS: tlsFiles{CertFile: filepath.Join(t.TempDir(), "missing.pem")}},
			wantErr: "tls.cert_file must be an existing and readable file",
		},
		{
			name:    "directory is not a file",
			input:   document{Title: "A", TLS: tlsFiles{CertFile: t.TempDir()}},
			wantErr: "tls.cert_file must be an existing and readable file",
		},
	}

	validate, err := NewValidator("yaml")
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
