// Package idgen provides the block id generators pages are built with. The
// engine never mints ids on its own; callers pick a generator and inject it.
package idgen

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nextpress/blocktree.go/internal/rand"
	"github.com/nextpress/blocktree.go/pkg/models"
)

// UUID returns a generator minting random UUIDs, the production default.
func UUID() models.IDGenerator {
	return func() models.BlockID {
		return models.BlockID(uuid.NewString())
	}
}

// Random returns a generator minting prefixed base62 ids such as
// "blk-hK3nW9Qx". Shorter than UUIDs and friendlier in page diffs.
func Random(prefix string, length int) models.IDGenerator {
	return func() models.BlockID {
		return models.BlockID(prefix + "-" + rand.String(length))
	}
}

// Sequential returns a deterministic generator ("blk-1", "blk-2", ...) for
// tests and fixtures. Not safe for concurrent use.
func Sequential(prefix string) models.IDGenerator {
	n := 0
	return func() models.BlockID {
		n++
		return models.BlockID(fmt.Sprintf("%s-%d", prefix, n))
	}
}
