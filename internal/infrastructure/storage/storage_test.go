package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

type LocalStorageTestSuite struct {
	suite.Suite
	ctx     context.Context
	dir     string
	storage *LocalStorage
}

func (s *LocalStorageTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()

	storage, err := NewLocalStorage(s.dir, logger.NewNoop())
	s.Require().NoError(err)
	s.storage = storage
}

func (s *LocalStorageTestSuite) TestStoreAndRetrieve() {
	// Arrange
	content := []byte{0x89, 'P', 'N', 'G'}

	// Act
	err := s.storage.Store(s.ctx, "pictures/1", bytes.NewReader(content))
	s.Require().NoError(err)
	reader, err := s.storage.Retrieve(s.ctx, "pictures/1")

	// Assert
	s.Require().NoError(err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	s.Require().NoError(err)
	s.Equal(content, data)
	s.FileExists(filepath.Join(s.dir, "pictures", "1"))
}

func (s *LocalStorageTestSuite) TestStoreOverwrites() {
	s.Require().NoError(s.storage.Store(s.ctx, "a", strings.NewReader("first")))
	s.Require().NoError(s.storage.Store(s.ctx, "a", strings.NewReader("second")))

	reader, err := s.storage.Retrieve(s.ctx, "a")
	s.Require().NoError(err)
	defer reader.Close()
	data, _ := io.ReadAll(reader)
	s.Equal("second", string(data))

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Len(entries, 1, "no temporary files are left behind")
}

func (s *LocalStorageTestSuite) TestMissingKey() {
	_, err := s.storage.Retrieve(s.ctx, "missing")
	s.True(pkgerrors.IsNotFound(err))

	err = s.storage.Delete(s.ctx, "missing")
	s.True(pkgerrors.IsNotFound(err))

	exists, err := s.storage.Exists(s.ctx, "missing")
	s.NoError(err)
	s.False(exists)
}

func (s *LocalStorageTestSuite) TestDelete() {
	s.Require().NoError(s.storage.Store(s.ctx, "a", strings.NewReader("content")))

	exists, err := s.storage.Exists(s.ctx, "a")
	s.Require().NoError(err)
	s.True(exists)

	s.Require().NoError(s.storage.Delete(s.ctx, "a"))

	exists, err = s.storage.Exists(s.ctx, "a")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *LocalStorageTestSuite) TestKeyEscapingBasePath() {
	for _, key := range []string{"../outside", "a/../../outside", ""} {
		err := s.storage.Store(s.ctx, key, strings.NewReader("content"))
		s.True(pkgerrors.IsBadRequest(err), "key %q", key)
	}
}

func TestLocalStorageTestSuite(t *testing.T) {
	suite.Run(t, new(LocalStorageTestSuite))
}

// fakeS3 keeps objects in memory, keyed by bucket and key.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func TestS3Storage_RoundTrip(t *testing.T) {
	// Arrange
	ctx := context.Background()
	client := newFakeS3()
	storage := NewS3StorageWithClient(client, "catalog", "pictures", logger.NewNoop())

	// Act
	require.NoError(t, storage.Store(ctx, "42", strings.NewReader("content")))
	reader, err := storage.Retrieve(ctx, "42")

	// Assert
	require.NoError(t, err)
	defer reader.Close()
	data, _ := io.ReadAll(reader)
	assert.Equal(t, "content", string(data))
	assert.Contains(t, client.objects, "catalog/pictures/42")

	exists, err := storage.Exists(ctx, "42")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, storage.Delete(ctx, "42"))
	exists, err = storage.Exists(ctx, "42")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestS3Storage_NoPrefix(t *testing.T) {
	client := newFakeS3()
	storage := NewS3StorageWithClient(client, "catalog", "", logger.NewNoop())

	require.NoError(t, storage.Store(context.Background(), "42", strings.NewReader("content")))

	assert.Contains(t, client.objects, "catalog/42")
}

func TestS3Storage_MissingKey(t *testing.T) {
	storage := NewS3StorageWithClient(newFakeS3(), "catalog", "pictures", logger.NewNoop())

	_, err := storage.Retrieve(context.Background(), "missing")

	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestS3Storage_ClientError(t *testing.T) {
	// Arrange
	client := newFakeS3()
	client.err = errors.New("connection reset")
	storage := NewS3StorageWithClient(client, "catalog", "pictures", logger.NewNoop())

	// Act
	storeErr := storage.Store(context.Background(), "42", strings.NewReader("content"))
	_, existsErr := storage.Exists(context.Background(), "42")

	// Assert
	assert.ErrorIs(t, storeErr, client.err)
	assert.ErrorIs(t, existsErr, client.err)
}
