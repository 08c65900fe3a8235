package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

var DEFAULT_CONFIG = Config{
	Endpoint: "localhost:9000",
	Bucket:   "testcase",
}

type Client struct {
	client *minio.Client
	bucket string
}

func GetConfigFromEnv() Config {
	config := DEFAULT_CONFIG
	if endpoint := os.Getenv("STORAGE_ENDPOINT"); endpoint != "" {
		config.Endpoint = endpoint
	}
	config.AccessKey = os.Getenv("STORAGE_ACCESS_KEY")
	config.SecretKey = os.Getenv("STORAGE_SECRET_KEY")
	if bucket := os.Getenv("STORAGE_BUCKET"); bucket != "" {
		config.Bucket = bucket
	}
	if useSSL, err := strconv.ParseBool(os.Getenv("STORAGE_USE_SSL")); err == nil {
		config.UseSSL = useSSL
	}
	return config
}

func Connect(ctx context.Context, config Config) (Client, error) {
	if config.AccessKey == "" || config.SecretKey == "" {
		return Client{}, errors.New("storage access key and secret key are required")
	}
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return Client{}, fmt.Errorf("init storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return Client{}, err
	}
	if !exists {
		slog.Info("Create bucket", "bucket", config.Bucket)
		if err := client.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{}); err != nil {
			return Client{}, fmt.Errorf("create bucket %s: %w", config.Bucket, err)
		}
	}

	return Client{
		client: client,
		bucket: config.Bucket,
	}, nil
}

// UploadTestCases stores the tar.gz at tarGzPath as the archive of the problem.
func (c Client) UploadTestCases(ctx context.Context, problemID int64, tarGzPath string) error {
	remoteURL := TestCasesKey(problemID)
	slog.Info("Upload test cases", "remote", remoteURL)
	if _, err := c.client.FPutObject(ctx, c.bucket, remoteURL, tarGzPath, minio.PutObjectOptions{
		ContentType: "application/gzip",
	}); err != nil {
		return err
	}
	return nil
}

func TestCasesKey(problemID int64) string {
	return fmt.Sprintf("testcases/%d.tar.gz", problemID)
}
