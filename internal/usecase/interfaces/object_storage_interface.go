package interfaces

import "context"

// IObjectStorage abstracts the content-addressed external object store.
//
// Keys are public ids of the form "{folder}/{sha256}"; resourceType is
// "image" or "video". Upload never overwrites: with dedupe keyed on the
// content hash, a present key already holds identical bytes.
type IObjectStorage interface {
	Exists(ctx context.Context, publicID, resourceType string) (bool, error)
	Upload(ctx context.Context, data []byte, publicID, resourceType string) (string, error)
	URLFor(publicID, resourceType string) string
}
