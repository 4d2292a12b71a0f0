package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/claims/model"
)

// Cluster backs idempotency bookkeeping for claim submissions.
var Cluster = cache.NewCluster("claims-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Cache stores one entry per (endpoint path, idempotency key) pair. Entries
// expire after a day; a resubmission past that window adjudicates fresh,
// which is safe because adjudication is deterministic for identical input.
var Cache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
