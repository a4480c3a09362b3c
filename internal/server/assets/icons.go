// Package assets serves the static images of the front end out of S3
// compatible object storage, through short-lived presigned URLs.
package assets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/sporttogether/internal/common"
	sc "github.com/dmitrijs2005/sporttogether/internal/server/config"
)

// PresignExpiry is the lifetime of a presigned icon URL.
const PresignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// IconStore resolves a sport to a URL the browser can fetch its icon from.
type IconStore interface {
	IconURL(ctx context.Context, sport string) (string, error)
}

// S3IconStore keeps the icons under img/<sport>_icon.svg in one bucket.
type S3IconStore struct {
	bucket  string
	presign *s3.PresignClient
}

// NewS3IconStore builds the presign client from the S3 settings in cfg.
// Nothing is sent to the storage until a URL is fetched.
func NewS3IconStore(ctx context.Context, cfg *sc.Config) (*S3IconStore, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return &S3IconStore{bucket: cfg.S3Bucket, presign: newS3PresignClient(client)}, nil
}

// IconKey is the object key of the icon for sport.
func IconKey(sport string) string {
	return "img/" + sport + "_icon.svg"
}

// IconURL returns a presigned GET URL for the icon of sport. Unsupported
// sports yield common.ErrorNotFound.
func (s *S3IconStore) IconURL(ctx context.Context, sport string) (string, error) {
	sport = strings.ToLower(sport)
	if !common.IsSupportedSport(sport) {
		return "", common.ErrorNotFound
	}

	key := IconKey(sport)
	req, err := presignGetObject(s.presign, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}

	return req.URL, nil
}
