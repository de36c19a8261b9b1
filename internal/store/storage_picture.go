package store

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const profilePicturesPrefix = "profile_images"

// pictureExtensions lists accepted picture content types.
var pictureExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// PictureExtension returns the file extension of an accepted picture
// content type.
func PictureExtension(contentType string) (string, bool) {
	ext, ok := pictureExtensions[strings.ToLower(contentType)]
	return ext, ok
}

type s3PictureStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logger.Logger
}

// NewS3PictureStorage connects to the S3-compatible endpoint and checks that
// the bucket exists.
func NewS3PictureStorage(ctx context.Context, cfg config.S3, log *logger.Logger) (PictureStorage, error) {
	endpoint := cfg.Endpoint
	secure := cfg.UseSSL
	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: "us-east-1",
	})
	if err != nil {
		return nil, fmt.Errorf("error creating s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		log.Err(err).Str("func", "NewS3PictureStorage").Msg("error checking bucket")
		return nil, fmt.Errorf("error checking bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", cfg.Bucket)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if secure {
			scheme = "https"
		}
		publicURL = scheme + "://" + endpoint + "/" + cfg.Bucket
	}

	return &s3PictureStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    log,
	}, nil
}

// UploadProfilePicture stores the picture under
// "profile_images/<user id>/<uuid><ext>" and returns its public URL.
func (s *s3PictureStorage) UploadProfilePicture(ctx context.Context, userID int64, picture models.ProfilePicture) (string, error) {
	ext, ok := PictureExtension(picture.ContentType)
	if !ok {
		return "", fmt.Errorf("%w: content type %q", ErrUploadingObject, picture.ContentType)
	}

	key := path.Join(profilePicturesPrefix, strconv.FormatInt(userID, 10), uuid.NewString()+ext)

	_, err := s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(picture.Data), int64(len(picture.Data)),
		minio.PutObjectOptions{ContentType: picture.ContentType},
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "s3PictureStorage.UploadProfilePicture").
			Int64("user_id", userID).
			Msg("failed to upload picture")
		return "", fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}

	return s.publicURL + "/" + key, nil
}

// disabledPictureStorage is used when no object storage is configured.
type disabledPictureStorage struct{}

func (disabledPictureStorage) UploadProfilePicture(context.Context, int64, models.ProfilePicture) (string, error) {
	return "", ErrPictureStorageDisabled
}
