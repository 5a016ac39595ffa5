// Package store uploads finished analysis documents to S3.
package store

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Uploader pushes documents into one bucket under a shared key prefix,
// typically a per-run id.
type Uploader struct {
	client *s3.S3
	bucket string
	prefix string
}

func NewUploader(bucket, prefix string) *Uploader {
	sess, err := session.NewSession()
	if err != nil {
		panic("Could not create an AWS session because " + err.Error())
	}
	return &Uploader{
		client: s3.New(sess),
		bucket: bucket,
		prefix: prefix,
	}
}

// PutDocument writes one JSON document under <prefix>/<name>.json.
func (u *Uploader) PutDocument(name string, data []byte) error {
	key := fmt.Sprintf("%v/%v.json", u.prefix, name)
	_, err := u.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("uploading %v: %w", key, err)
	}
	return nil
}
