package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"skillswap_server/config"
	"skillswap_server/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMediaService(p Presigner) *MediaService {
	ms := NewMediaService(p, config.MediaConfig{Bucket: "avatars-bucket", PresignMinutes: 5}, logger.Discard())
	ms.now = func() time.Time { return time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC) }
	return ms
}

func TestUploadURL(t *testing.T) {
	p := &fakePresigner{}
	ms := newMediaService(p)

	url, key, err := ms.UploadURL(context.Background(), "a@x.com", "../me.png", "image/png")
	require.NoError(t, err)

	assert.Equal(t, "avatars/a@x.com/20240701120000-me.png", key)
	assert.True(t, strings.Contains(url, key))
	assert.Equal(t, "avatars-bucket", aws.ToString(p.putInput.Bucket))
	assert.Equal(t, "image/png", aws.ToString(p.putInput.ContentType))
}

func TestReadURL(t *testing.T) {
	p := &fakePresigner{}
	ms := newMediaService(p)

	url, err := ms.ReadURL(context.Background(), "avatars/a@x.com/x.png")
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example/avatars/a@x.com/x.png", url)
	assert.Equal(t, "avatars-bucket", aws.ToString(p.getInput.Bucket))
}

func TestPresignFailure(t *testing.T) {
	ms := newMediaService(&fakePresigner{err: errors.New("no credentials")})

	_, _, err := ms.UploadURL(context.Background(), "a@x.com", "me.png", "image/png")
	assert.Error(t, err)
	_, err = ms.ReadURL(context.Background(), "k")
	assert.Error(t, err)
}
