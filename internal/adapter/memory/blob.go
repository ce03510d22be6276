package memory

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

// Blob is an object held by BlobStore.
type Blob struct {
	ContentType string
	Data        []byte
}

// BlobStore keeps export artifacts in memory.
type BlobStore struct {
	mu      sync.RWMutex
	objects map[string]Blob
	baseURL string
}

// NewBlobStore creates a BlobStore whose URLs are built on baseURL
// (for example "memory://exports").
func NewBlobStore(baseURL string) *BlobStore {
	return &BlobStore{
		objects: make(map[string]Blob),
		baseURL: baseURL,
	}
}

// Put stores data under key and returns the object's URL.
func (b *BlobStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if key == "" {
		return "", fmt.Errorf("put blob: %w", domain.NewValidationError("key", "required"))
	}

	b.mu.Lock()
	b.objects[key] = Blob{ContentType: contentType, Data: clone(data)}
	b.mu.Unlock()

	return b.baseURL + "/" + (&url.URL{Path: key}).EscapedPath(), nil
}

// Get returns the object stored under key.
func (b *BlobStore) Get(_ context.Context, key string) (Blob, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	obj, ok := b.objects[key]
	if !ok {
		return Blob{}, fmt.Errorf("blob %s: %w", key, domain.ErrNotFound)
	}
	return Blob{ContentType: obj.ContentType, Data: clone(obj.Data)}, nil
}

// Len returns the number of stored objects.
func (b *BlobStore) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.objects)
}
