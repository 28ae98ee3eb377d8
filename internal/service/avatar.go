package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

var (
	ErrAvatarTooLarge = errors.New("avatar file exceeds the 5MB limit")
	ErrNotAnImage     = errors.New("avatar file must be an image")
)

// MaxAvatarSize is the upload limit for avatar files
const MaxAvatarSize = 5 * 1024 * 1024

const avatarKeyPrefix = "avatars/"

// AvatarService stores avatar files in an S3 bucket, one file per user
type AvatarService struct {
	store  ObjectStore
	bucket string
}

// Ensure AvatarService implements IAvatarService
var _ IAvatarService = (*AvatarService)(nil)

func NewAvatarService(store ObjectStore, bucket string) *AvatarService {
	return &AvatarService{
		store:  store,
		bucket: bucket,
	}
}

// Upload validates the file, removes whatever the user had stored before,
// uploads the new file and returns its public URL. Validation failures issue
// no store request. The delete-then-upload sequence has no rollback: an
// upload failure after the delete leaves the user without an avatar.
func (s *AvatarService) Upload(ctx context.Context, userID uuid.UUID, fileName, contentType string, size int64, body io.Reader) (string, error) {
	if size > MaxAvatarSize {
		return "", ErrAvatarTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}

	key := fmt.Sprintf("%s%s-%d%s", avatarKeyPrefix, userID, time.Now().UnixMilli(), path.Ext(fileName))

	if err := s.removeExisting(ctx, userID); err != nil {
		// Stale files only block the one-file-per-user invariant, not the
		// upload itself.
		log.Printf("[AvatarService] Failed to remove existing avatar for %s: %v", userID, err)
	}

	_, err := s.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	log.Printf("[AvatarService] Uploaded avatar for %s: %s", userID, publicURL)

	return publicURL, nil
}

// Delete removes every stored file belonging to the user
func (s *AvatarService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.removeExisting(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete avatar: %w", err)
	}
	return nil
}

// removeExisting lists the user's key prefix and batch-removes any matches
func (s *AvatarService) removeExisting(ctx context.Context, userID uuid.UUID) error {
	prefix := avatarKeyPrefix + userID.String() + "-"

	listed, err := s.store.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return err
	}
	if len(listed.Contents) == 0 {
		return nil
	}

	objects := make([]s3types.ObjectIdentifier, 0, len(listed.Contents))
	for _, obj := range listed.Contents {
		objects = append(objects, s3types.ObjectIdentifier{Key: obj.Key})
	}

	_, err = s.store.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &s3types.Delete{Objects: objects},
	})
	return err
}
