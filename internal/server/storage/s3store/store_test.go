package s3store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardconnect/internal/server/storage"
)

const testBucket = "cards"

// newMemoryBucket возвращает мок S3, который хранит объекты в памяти.
// ListObjectsV2 отдает страницы по pageSize ключей.
func newMemoryBucket(t *testing.T, pageSize int) (*APIMock, map[string][]byte) {
	t.Helper()

	var mu sync.Mutex
	objects := make(map[string][]byte)
	notFound := &smithy.GenericAPIError{Code: "NotFound", Message: "not found"}

	mock := &APIMock{
		PutObjectFunc: func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			assert.Equal(t, testBucket, aws.ToString(params.Bucket))
			body, err := io.ReadAll(params.Body)
			if err != nil {
				return nil, err
			}
			mu.Lock()
			defer mu.Unlock()
			objects[aws.ToString(params.Key)] = body
			return &s3.PutObjectOutput{}, nil
		},
		GetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			mu.Lock()
			defer mu.Unlock()
			body, ok := objects[aws.ToString(params.Key)]
			if !ok {
				return nil, &smithy.GenericAPIError{Code: "NoSuchKey", Message: "no such key"}
			}
			return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
		},
		HeadObjectFunc: func(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := objects[aws.ToString(params.Key)]; !ok {
				return nil, notFound
			}
			return &s3.HeadObjectOutput{}, nil
		},
		DeleteObjectFunc: func(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
			mu.Lock()
			defer mu.Unlock()
			delete(objects, aws.ToString(params.Key))
			return &s3.DeleteObjectOutput{}, nil
		},
		DeleteObjectsFunc: func(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
			mu.Lock()
			defer mu.Unlock()
			for _, id := range params.Delete.Objects {
				delete(objects, aws.ToString(id.Key))
			}
			return &s3.DeleteObjectsOutput{}, nil
		},
		ListObjectsV2Func: func(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
			mu.Lock()
			defer mu.Unlock()

			var keys []string
			for key := range objects {
				if strings.HasPrefix(key, aws.ToString(params.Prefix)) {
					keys = append(keys, key)
				}
			}
			sort.Strings(keys)

			start := 0
			if params.ContinuationToken != nil {
				start, _ = strconv.Atoi(*params.ContinuationToken)
			}
			end := min(start+pageSize, len(keys))

			out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(end < len(keys))}
			for _, key := range keys[start:end] {
				out.Contents = append(out.Contents, types.Object{Key: aws.String(key)})
			}
			if end < len(keys) {
				out.NextContinuationToken = aws.String(strconv.Itoa(end))
			}
			return out, nil
		},
	}
	return mock, objects
}

func newTestStore(t *testing.T, pageSize int) (*Store, *APIMock, map[string][]byte) {
	t.Helper()
	mock, objects := newMemoryBucket(t, pageSize)
	return NewWithClient(mock, testBucket, slog.New(slog.NewTextHandler(io.Discard, nil))), mock, objects
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "users/user-1/cards/card-1.json", ObjectKey("user-1", "card-1"))
}

func TestStore_PutAndList(t *testing.T) {
	ctx := context.Background()
	s, _, objects := newTestStore(t, 2)

	for i := range 5 {
		id := "card-" + strconv.Itoa(i)
		require.NoError(t, s.PutDocument(ctx, "user-1", id, []byte(`{"id":"`+id+`"}`)))
	}
	require.NoError(t, s.PutDocument(ctx, "user-2", "other", []byte(`{"id":"other"}`)))

	assert.Contains(t, objects, "users/user-1/cards/card-0.json")

	docs, err := s.ListDocuments(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, docs, 5)
	assert.JSONEq(t, `{"id":"card-0"}`, string(docs[0]))

	docs, err = s.ListDocuments(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestStore_DeleteDocument(t *testing.T) {
	ctx := context.Background()
	s, mock, _ := newTestStore(t, 10)

	require.NoError(t, s.PutDocument(ctx, "user-1", "card-a", []byte(`{"id":"card-a"}`)))
	require.NoError(t, s.PutDocument(ctx, "user-1", "card-b", []byte(`{"id":"card-b"}`)))

	require.NoError(t, s.DeleteDocument(ctx, "user-1", "card-a"))
	assert.ErrorIs(t, s.DeleteDocument(ctx, "user-1", "card-a"), storage.ErrDocumentNotFound)
	assert.Len(t, mock.DeleteObjectCalls(), 1)

	docs, err := s.ListDocuments(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.JSONEq(t, `{"id":"card-b"}`, string(docs[0]))
}

func TestStore_DeleteCollection(t *testing.T) {
	ctx := context.Background()
	s, mock, objects := newTestStore(t, 3)

	for i := range 7 {
		require.NoError(t, s.PutDocument(ctx, "user-1", "card-"+strconv.Itoa(i), []byte(`{}`)))
	}
	require.NoError(t, s.PutDocument(ctx, "user-2", "keep", []byte(`{}`)))

	deleted, err := s.DeleteCollection(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 7, deleted)
	assert.Len(t, mock.DeleteObjectsCalls(), 1)
	assert.Len(t, objects, 1)

	deleted, err = s.DeleteCollection(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestStore_Errors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")
	mock := &APIMock{
		PutObjectFunc: func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			return nil, boom
		},
		HeadObjectFunc: func(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "AccessDenied"}
		},
		ListObjectsV2Func: func(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
			return nil, boom
		},
	}
	s := NewWithClient(mock, testBucket, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.ErrorIs(t, s.PutDocument(ctx, "u", "c", []byte(`{}`)), boom)

	err := s.DeleteDocument(ctx, "u", "c")
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrDocumentNotFound)

	_, err = s.ListDocuments(ctx, "u")
	assert.ErrorIs(t, err, boom)
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{Region: "us-east-1"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
