package config

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3Config_Disabled(t *testing.T) {
	s3Config, err := NewS3Config(context.Background(), &Config{})
	assert.NoError(t, err)
	assert.Nil(t, s3Config)
}

func TestGeneratePresignedURL(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY")
	t.Setenv("AWS_SESSION_TOKEN", "")
	t.Setenv("AWS_PROFILE", "")

	s3Config, err := NewS3Config(context.Background(), &Config{
		S3BucketName: "tarif-gorselleri",
		AWSRegion:    "eu-central-1",
	})
	require.NoError(t, err)
	require.NotNil(t, s3Config)

	raw, err := s3Config.GeneratePresignedURL(context.Background(), "recipes/baklava.jpg", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Contains(t, u.Host, "tarif-gorselleri")
	assert.Contains(t, u.Path, "recipes/baklava.jpg")
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
