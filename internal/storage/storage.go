package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

const icsContentType = "text/calendar; charset=utf-8"

// Storage is the output destination of the batch generator. SaveFeed
// persists one city's serialized calendar under its slug and returns
// the path or URL it is served from.
type Storage interface {
	SaveFeed(slug string, ics []byte) (string, error)
}

// LocalStorage writes calendar files into a directory meant to be
// served as static content.
type LocalStorage struct {
	outputDir string
}

// SpacesStorage uploads calendar files to an S3-compatible bucket
// (DigitalOcean Spaces) fronted by a CDN.
type SpacesStorage struct {
	client *s3.S3
	bucket string
	cdnURL string
}

func NewLocalStorage(outputDir string) *LocalStorage {
	return &LocalStorage{outputDir: outputDir}
}

func NewSpacesStorage(endpoint, region, bucket, cdnURL, accessKey, secretKey string) (*SpacesStorage, error) {
	config := &aws.Config{
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:    aws.String(endpoint),
		Region:      aws.String(region),
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SpacesStorage{
		client: s3.New(sess),
		bucket: bucket,
		cdnURL: cdnURL,
	}, nil
}

func (ls *LocalStorage) SaveFeed(slug string, ics []byte) (string, error) {
	if err := os.MkdirAll(ls.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(ls.outputDir, slug+".ics")
	if err := os.WriteFile(path, ics, 0644); err != nil {
		return "", fmt.Errorf("failed to write calendar file: %w", err)
	}

	return path, nil
}

func (ss *SpacesStorage) SaveFeed(slug string, ics []byte) (string, error) {
	key := fmt.Sprintf("calendars/%s.ics", slug)

	_, err := ss.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(ss.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(ics),
		ContentType: aws.String(icsContentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to upload calendar to Spaces")
		return "", fmt.Errorf("failed to upload to Spaces: %w", err)
	}

	cdnURL := fmt.Sprintf("%s/%s", strings.TrimSuffix(ss.cdnURL, "/"), key)
	return cdnURL, nil
}
