// Package s3store хранит документы карточек в S3-совместимом хранилище.
// Ключ объекта: users/{uid}/cards/{cardID}.json
package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/iudanet/cardconnect/internal/server/storage"
)

// deleteBatchSize - максимум ключей в одном DeleteObjects
const deleteBatchSize = 1000

//go:generate moq -out store_mock.go . API

// API - используемая часть клиента S3
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Config - параметры подключения
type Config struct {
	Endpoint     string // пусто для AWS
	Region       string
	Bucket       string
	AccessKey    string // пусто - стандартная цепочка credentials
	SecretKey    string
	UsePathStyle bool // MinIO и подобные
}

// Store реализует storage.DocumentStorage поверх S3
type Store struct {
	client API
	logger *slog.Logger
	bucket string
}

var _ storage.DocumentStorage = (*Store)(nil)

// New создает клиента S3 по конфигурации
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return NewWithClient(client, cfg.Bucket, logger), nil
}

// NewWithClient создает Store с готовым клиентом
func NewWithClient(client API, bucket string, logger *slog.Logger) *Store {
	return &Store{client: client, bucket: bucket, logger: logger}
}

func collectionPrefix(userID string) string {
	return path.Join("users", userID, "cards") + "/"
}

// ObjectKey возвращает ключ объекта карточки
func ObjectKey(userID, cardID string) string {
	return collectionPrefix(userID) + cardID + ".json"
}

// isNotFound распознает отсутствие объекта
func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}

// PutDocument создает или перезаписывает объект карточки
func (s *Store) PutDocument(ctx context.Context, userID, cardID string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(ObjectKey(userID, cardID)),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}

// ListDocuments читает все объекты коллекции пользователя
func (s *Store) ListDocuments(ctx context.Context, userID string) ([][]byte, error) {
	keys, err := s.listKeys(ctx, userID)
	if err != nil {
		return nil, err
	}

	docs := make([][]byte, 0, len(keys))
	for _, key := range keys {
		out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			// объект мог быть удален между List и Get
			if isNotFound(err) {
				s.logger.DebugContext(ctx, "object disappeared during listing", slog.String("key", key))
				continue
			}
			return nil, fmt.Errorf("failed to get object %s: %w", key, err)
		}

		body, err := io.ReadAll(out.Body)
		_ = out.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read object %s: %w", key, err)
		}
		docs = append(docs, body)
	}

	return docs, nil
}

// DeleteDocument удаляет объект карточки
func (s *Store) DeleteDocument(ctx context.Context, userID, cardID string) error {
	key := ObjectKey(userID, cardID)

	// DeleteObject не сообщает об отсутствии объекта, поэтому сначала HEAD
	if _, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		if isNotFound(err) {
			return storage.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to head object: %w", err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// DeleteCollection удаляет все объекты пользователя пачками
func (s *Store) DeleteCollection(ctx context.Context, userID string) (int, error) {
	keys, err := s.listKeys(ctx, userID)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for start := 0; start < len(keys); start += deleteBatchSize {
		end := min(start+deleteBatchSize, len(keys))

		ids := make([]types.ObjectIdentifier, 0, end-start)
		for _, key := range keys[start:end] {
			ids = append(ids, types.ObjectIdentifier{Key: aws.String(key)})
		}

		out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: ids, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return deleted, fmt.Errorf("failed to delete objects: %w", err)
		}
		if len(out.Errors) > 0 {
			first := out.Errors[0]
			return deleted + len(ids) - len(out.Errors), fmt.Errorf("failed to delete %d objects, first %s: %s",
				len(out.Errors), aws.ToString(first.Key), aws.ToString(first.Message))
		}
		deleted += len(ids)
	}

	return deleted, nil
}

func (s *Store) listKeys(ctx context.Context, userID string) ([]string, error) {
	prefix := collectionPrefix(userID)
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	var keys []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if strings.HasSuffix(key, ".json") {
				keys = append(keys, key)
			}
		}
	}
	return keys, nil
}
