package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	now := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)
	key := ObjectKey("/reports/", ".JPG", now)

	assert.True(t, strings.HasPrefix(key, "reports/2024/05/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotEqual(t, key, ObjectKey("reports", "jpg", now))
}

func TestLocalUploaderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	uploader, err := NewLocalUploader(dir, "http://localhost:8080/media/")
	require.NoError(t, err)

	url, err := uploader.Upload(context.Background(), Object{
		Key:         "reports/2024/05/a.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/reports/2024/05/a.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "reports", "2024", "05", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, uploader.Delete(context.Background(), url))
	_, err = os.Stat(filepath.Join(dir, "reports", "2024", "05", "a.png"))
	assert.True(t, os.IsNotExist(err))

	// foreign and already-deleted URLs are ignored
	assert.NoError(t, uploader.Delete(context.Background(), url))
	assert.NoError(t, uploader.Delete(context.Background(), "https://elsewhere.test/x.png"))
}

func TestLocalUploaderRejectsTraversal(t *testing.T) {
	uploader, err := NewLocalUploader(t.TempDir(), "http://media.test")
	require.NoError(t, err)
	assert.NoError(t, uploader.Delete(context.Background(), "http://media.test/../secret"))
}

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	deletes []*s3.DeleteObjectInput
	body    string
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	raw, _ := io.ReadAll(in.Body)
	f.body = string(raw)
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, in)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3UploaderUploadAndDelete(t *testing.T) {
	client := &fakeS3{}
	uploader := newS3Uploader(client, "lostfound", "https://cdn.example.com/")

	url, err := uploader.Upload(context.Background(), Object{Key: "reports/k.webp", ContentType: "image/webp", Body: strings.NewReader("webp")})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/reports/k.webp", url)
	require.Len(t, client.puts, 1)
	assert.Equal(t, "lostfound", aws.ToString(client.puts[0].Bucket))
	assert.Equal(t, "image/webp", aws.ToString(client.puts[0].ContentType))
	assert.Equal(t, "webp", client.body)

	require.NoError(t, uploader.Delete(context.Background(), url))
	require.Len(t, client.deletes, 1)
	assert.Equal(t, "reports/k.webp", aws.ToString(client.deletes[0].Key))
}

func TestS3UploaderPropagatesFailure(t *testing.T) {
	uploader := newS3Uploader(&fakeS3{err: errors.New("503")}, "b", "https://cdn.example.com")
	_, err := uploader.Upload(context.Background(), Object{Key: "k", Body: strings.NewReader("x")})
	assert.Error(t, err)
}
