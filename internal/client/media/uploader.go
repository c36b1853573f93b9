// Package media uploads exercise demonstration videos to S3-compatible
// object storage and hands back the URL stored in Exercise.VideoURL.
package media

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/trainerhub/internal/common"
	"github.com/dmitrijs2005/trainerhub/internal/logging"
)

const (
	keyPrefix         = "exercises/"
	presignExpiration = 15 * time.Minute
)

// ErrNotConfigured is returned when no bucket is set.
var ErrNotConfigured = errors.New("media storage is not configured")

var videoExtensions = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".webm": "video/webm",
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

// Options describes the target bucket. Endpoint is only needed for
// non-AWS stores such as MinIO; PublicBaseURL overrides how object URLs
// are built.
type Options struct {
	Bucket        string
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
	UsePathStyle  bool
}

// Uploader puts video files into the configured bucket.
type Uploader struct {
	client  *s3.Client
	presign *s3.PresignClient
	opts    Options
	logger  logging.Logger
	newKey  func(ext string) string
}

// NewUploader builds an S3 client from opts. Static credentials are used
// when AccessKey is set; otherwise the default AWS credential chain applies.
func NewUploader(ctx context.Context, opts Options, logger logging.Logger) (*Uploader, error) {
	if opts.Bucket == "" {
		return nil, ErrNotConfigured
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	return &Uploader{
		client:  client,
		presign: s3.NewPresignClient(client),
		opts:    opts,
		logger:  logger.With("component", "media"),
		newKey:  objectKey,
	}, nil
}

func objectKey(ext string) string {
	return keyPrefix + uuid.NewString() + ext
}

func contentType(filename string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct, ok := videoExtensions[ext]
	if !ok {
		return "", "", fmt.Errorf("%w: unsupported video type %q", common.ErrorValidation, ext)
	}
	if byExt := mime.TypeByExtension(ext); strings.HasPrefix(byExt, "video/") {
		ct = byExt
	}
	return ext, ct, nil
}

// UploadVideo uploads the file at localPath and returns its public URL.
func (u *Uploader) UploadVideo(ctx context.Context, localPath string) (string, error) {
	ext, ct, err := contentType(localPath)
	if err != nil {
		return "", err
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open video: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat video: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", common.ErrorValidation, localPath)
	}

	key := u.newKey(ext)
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.opts.Bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(ct),
	})
	if err != nil {
		return "", fmt.Errorf("upload video: %w", err)
	}

	u.logger.Info(ctx, "video uploaded", "key", key, "size", info.Size())
	return u.ObjectURL(key), nil
}

// PresignUpload returns an object key and a presigned PUT URL for a video
// with the given file name, for uploads performed by another process.
func (u *Uploader) PresignUpload(ctx context.Context, filename string) (string, *v4.PresignedHTTPRequest, error) {
	ext, ct, err := contentType(filename)
	if err != nil {
		return "", nil, err
	}

	key := u.newKey(ext)
	req, err := u.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.opts.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(ct),
	}, s3.WithPresignExpires(presignExpiration))
	if err != nil {
		return "", nil, fmt.Errorf("presign upload: %w", err)
	}
	return key, req, nil
}

// ObjectURL is the URL under which key is served.
func (u *Uploader) ObjectURL(key string) string {
	if u.opts.PublicBaseURL != "" {
		return strings.TrimRight(u.opts.PublicBaseURL, "/") + "/" + key
	}

	if u.opts.Endpoint != "" {
		base, err := url.Parse(u.opts.Endpoint)
		if err == nil {
			if u.opts.UsePathStyle {
				base.Path = path.Join("/", base.Path, u.opts.Bucket, key)
			} else {
				base.Host = u.opts.Bucket + "." + base.Host
				base.Path = path.Join("/", base.Path, key)
			}
			return base.String()
		}
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.opts.Bucket, u.opts.Region, key)
}
