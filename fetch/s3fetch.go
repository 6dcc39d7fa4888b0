/*
 Chunkgen, an orchestrator for automated Minecraft world chunk generation.
 Copyright (C) 2026 Chunkgen Authors

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spacechunks/chunkgen/cgerrors"
)

// S3Fetcher implements Fetcher for "s3://bucket/key" URLs, for operators
// who mirror version manifests, server jars and bot binaries into a
// private bucket instead of hitting the public upstream hosts directly.
// Grounded on controlplane/blob/s3.go's S3ObjectStore.
type S3Fetcher struct {
	client *s3.Client
}

func NewS3Fetcher(client *s3.Client) *S3Fetcher {
	return &S3Fetcher{client: client}
}

func (f *S3Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	bucket, key, err := parseS3URL(rawURL)
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindNetworkFetch, "parse s3 url", err, map[string]any{"url": rawURL})
	}

	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindNetworkFetch, "get object", err, map[string]any{"url": rawURL})
	}
	defer out.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, out.Body); err != nil {
		return nil, cgerrors.New(cgerrors.KindNetworkFetch, "read object body", err, map[string]any{"url": rawURL})
	}
	return buf.Bytes(), nil
}

// Upload is a convenience used by tests and by operators seeding a private
// mirror; it is not on the Fetcher interface.
func (f *S3Fetcher) Upload(ctx context.Context, bucket, key string, data []byte) error {
	uploader := manager.NewUploader(f.client)
	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	return nil
}

func parseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("not an s3 url: %s", raw)
	}
	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}

var _ Fetcher = (*S3Fetcher)(nil)
