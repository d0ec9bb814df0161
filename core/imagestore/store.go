package imagestore

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
)

// Store archives built runtime images into object storage and restores
// them for launching on another host.
type Store struct {
	client Client
	bucket string
}

// NewStore creates a store over the given client and bucket.
func NewStore(client Client, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

// Push archives the image directory as <name>.tar.gz and uploads it,
// creating the bucket on first use.
func (s *Store) Push(ctx context.Context, fs afero.Fs, root, name string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	archive, err := archiveImage(fs, root)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, s.bucket, name+".tar.gz",
		bytes.NewReader(archive), int64(len(archive)),
		minio.PutObjectOptions{ContentType: "application/gzip"})
	if err != nil {
		return fmt.Errorf("failed to upload image archive: %w", err)
	}
	return nil
}

// Pull downloads <name>.tar.gz and unpacks it into the destination
// directory.
func (s *Store) Pull(ctx context.Context, fs afero.Fs, name, dest string) error {
	obj, err := s.client.GetObject(ctx, s.bucket, name+".tar.gz", minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to download image archive: %w", err)
	}
	defer obj.Close()

	return unpackImage(fs, obj, dest)
}

func archiveImage(fs afero.Fs, root string) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	err := afero.Walk(fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		hdr := &tar.Header{
			Name: rel,
			Mode: 0o644,
			Size: info.Size(),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		data, err := afero.ReadFile(fs, p)
		if err != nil {
			return err
		}
		_, err = tw.Write(data)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to archive image: %w", err)
	}

	if err := tw.Close(); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unpackImage(fs afero.Fs, r io.Reader, dest string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("failed to unpack image archive: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to unpack image archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		// Reject entries that would escape the destination
		name := path.Clean(hdr.Name)
		if strings.HasPrefix(name, "..") || path.IsAbs(name) {
			return fmt.Errorf("archive entry %q escapes destination", hdr.Name)
		}

		target := path.Join(dest, name)
		if err := fs.MkdirAll(path.Dir(target), 0o755); err != nil {
			return err
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return err
		}
		if err := afero.WriteFile(fs, target, data, 0o644); err != nil {
			return err
		}
	}
}
