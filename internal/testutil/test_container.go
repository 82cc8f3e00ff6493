//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
	sharedMu   sync.RWMutex
)

// GetSharedMongoDB starts one container per test binary and returns it on every call.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()
		shared, sharedErr = SetupMongoDB(ctx)
	})

	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if sharedErr != nil {
		return nil, sharedErr
	}
	return shared, nil
}

// CleanupSharedMongoDB terminates the shared container, if one was started.
func CleanupSharedMongoDB(ctx context.Context) error {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		return nil
	}
	return shared.Cleanup(ctx)
}

// SetupTestMainWithMongoDB runs the package tests against a shared container:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if err := CleanupSharedMongoDB(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: shared mongodb cleanup: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the shared container URI. It panics before GetSharedMongoDB ran.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if shared == nil {
		panic("testutil: shared mongodb container not started")
	}
	return shared.URI
}

// SanitizeDBName derives a unique database name from a test name.
func SanitizeDBName(testName string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ".", "_").Replace(testName)
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
