package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		key  string
		want string
	}{
		{name: "base without path", base: "https://cdn.example.com", key: "standings/a.xlsx", want: "https://cdn.example.com/standings/a.xlsx"},
		{name: "base with trailing slash", base: "https://cdn.example.com/files/", key: "/standings/a.xlsx", want: "https://cdn.example.com/files/standings/a.xlsx"},
		{name: "base path without slash", base: "https://cdn.example.com/files", key: "a.xlsx", want: "https://cdn.example.com/files/a.xlsx"},
		{name: "empty key", base: "https://cdn.example.com", key: "", want: ""},
		{name: "empty base", base: "", key: "a.xlsx", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicURL(tt.base, tt.key))
		})
	}
}

func TestNewCloudflareR2Uploader_IncompleteConfig(t *testing.T) {
	_, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{AccountID: "acc"})
	require.ErrorIs(t, err, ErrR2ConfigIncomplete)
}
