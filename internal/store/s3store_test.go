package store

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelease/travelease-backend/internal/models"
)

// fakeS3 keeps objects in memory and answers NoSuchKey for unknown keys.
type fakeS3 struct {
	s3iface.S3API
	objects map[string][]byte
}

func (f *fakeS3) GetObjectWithContext(ctx aws.Context, in *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Key]
	if !ok {
		return nil, awserr.New(s3.ErrCodeNoSuchKey, "no such key", nil)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, in *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func newS3Store() (*Store, *fakeS3) {
	fake := &fakeS3{objects: map[string][]byte{}}
	backend := &S3Backend{client: fake, bucket: "collections", prefix: "data"}
	return New(backend), fake
}

func TestS3ReadMissingObject(t *testing.T) {
	s, _ := newS3Store()

	var users []models.User
	require.NoError(t, s.ReadCollection(context.Background(), Users, &users))
	assert.Empty(t, users)
}

func TestS3RoundTrip(t *testing.T) {
	s, fake := newS3Store()
	ctx := context.Background()

	in := []models.Booking{
		{ID: "1", UserID: "u1", TransportID: "t1", Passengers: 2, Status: models.BookingStatusConfirmed},
	}
	require.NoError(t, s.WriteCollection(ctx, Bookings, in))

	// Objects land under the configured prefix.
	_, ok := fake.objects["data/bookings.json"]
	assert.True(t, ok)

	var out []models.Booking
	require.NoError(t, s.ReadCollection(ctx, Bookings, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "u1", out[0].UserID)
}
