// Package imagestore archives built runtime images in S3-compatible object
// storage.
//
// A built image is a plain directory; Push flattens it into a tar.gz
// archive and uploads it, Pull restores it for launching elsewhere. The
// Client interface wraps the minio SDK so the store can be tested against
// the mocks package without a live endpoint.
package imagestore
