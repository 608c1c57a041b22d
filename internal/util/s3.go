package util

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

func GetRunArchiveDirectoryPath(runId string) string {
	return fmt.Sprintf("runs/%s", runId)
}

func ToRunArchiveDirectoryPath(runId string, filename string) string {
	return filepath.Join(GetRunArchiveDirectoryPath(runId), filepath.Base(filename))
}

func createBucketIfNotExists(ctx context.Context, s3 *minio.Client, bucketName string) error {
	exists, err := s3.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}

	if !exists {
		err = s3.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}

	return nil
}

type FileUploadOptions struct {
	// DirectoryPath prefixes the object name. For example, file name
	// "ana@kaiser-x.com.html" with DirectoryPath "runs/123" becomes
	// "runs/123/ana@kaiser-x.com.html".
	DirectoryPath string
	ContentType   string
	Bucket        string
	S3            *minio.Client
}

// UploadBytesToS3 stores an in-memory document in the archive bucket,
// creating the bucket on first use.
func UploadBytesToS3(ctx context.Context, fileName string, content []byte, fuo *FileUploadOptions) (minio.UploadInfo, error) {
	if err := createBucketIfNotExists(ctx, fuo.S3, fuo.Bucket); err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to create bucket: %w", err)
	}

	objectName := filepath.Join(fuo.DirectoryPath, filepath.Base(fileName))

	info, err := fuo.S3.PutObject(ctx, fuo.Bucket, objectName, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: fuo.ContentType,
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	return info, nil
}
