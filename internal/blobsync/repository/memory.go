package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/blobsync"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
)

type memoryBlob struct {
	data     []byte
	modified time.Time
}

// MemoryClient keeps containers in memory. Used for local runs and tests.
type MemoryClient struct {
	mu         sync.RWMutex
	containers map[string]map[string]memoryBlob
	err        error
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{containers: make(map[string]map[string]memoryBlob)}
}

// Put stores a blob, creating the container if needed.
func (c *MemoryClient) Put(container, name string, data []byte, modified time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	blobs, ok := c.containers[container]
	if !ok {
		blobs = make(map[string]memoryBlob)
		c.containers[container] = blobs
	}
	blobs[name] = memoryBlob{data: append([]byte(nil), data...), modified: modified}
}

// FailWith makes every call return err until reset with nil.
func (c *MemoryClient) FailWith(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

func (c *MemoryClient) container(target blobsync.Target) (map[string]memoryBlob, error) {
	if c.err != nil {
		return nil, c.err
	}
	blobs, ok := c.containers[target.ContainerName]
	if !ok {
		return nil, fmt.Errorf("container %q not found", target.ContainerName)
	}
	return blobs, nil
}

func (c *MemoryClient) TestConnection(_ context.Context, target blobsync.Target) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, err := c.container(target)
	return err
}

func (c *MemoryClient) ListBlobs(_ context.Context, target blobsync.Target) ([]model.BlobInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	blobs, err := c.container(target)
	if err != nil {
		return nil, err
	}
	infos := make([]model.BlobInfo, 0, len(blobs))
	for name, b := range blobs {
		infos = append(infos, model.BlobInfo{
			Name:         name,
			LastModified: b.modified,
			Size:         int64(len(b.data)),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (c *MemoryClient) Download(_ context.Context, target blobsync.Target, name string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	blobs, err := c.container(target)
	if err != nil {
		return nil, err
	}
	b, ok := blobs[name]
	if !ok {
		return nil, fmt.Errorf("blob %q not found", name)
	}
	return append([]byte(nil), b.data...), nil
}
