package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// S3Backend stores each collection as one object in a bucket, under an
// optional key prefix. It satisfies the same read-all/write-all contract
// as the file backend: a missing object reads as an empty collection.
type S3Backend struct {
	client s3iface.S3API
	bucket string
	prefix string
}

// NewS3Backend builds an AWS session from static credentials, the way
// deployments configure it through the environment.
func NewS3Backend(region, accessKey, secretKey, bucket, prefix string) (*S3Backend, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &S3Backend{client: s3.New(sess), bucket: bucket, prefix: prefix}, nil
}

func (b *S3Backend) key(collection string) string {
	return path.Join(b.prefix, collection+".json")
}

// Read fetches the collection object; a key that was never written
// reads as an absent collection.
func (b *S3Backend) Read(ctx context.Context, collection string) ([]byte, error) {
	out, err := b.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key(collection)),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) {
			switch aerr.Code() {
			case s3.ErrCodeNoSuchKey, "NotFound":
				return nil, nil
			}
		}
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

// Write replaces the collection object.
func (b *S3Backend) Write(ctx context.Context, collection string, data []byte) error {
	_, err := b.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(b.key(collection)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	return err
}
