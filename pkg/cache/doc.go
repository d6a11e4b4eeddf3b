// Package cache stores computed analysis artifacts.
//
// # Backends
//
// Every backend implements [Cache]:
//
//   - [FileCache]: one JSON entry file per key under a directory, used by the CLI
//   - [RedisCache]: a shared Redis instance, used by the HTTP server
//   - [NullCache]: never stores anything, used when caching is disabled
//
// Entries carry an optional TTL. A zero TTL means the entry never expires.
//
// # Keys
//
// Keys are built by a [Keyer] from the content hash of the graph document
// ([Hash]) and the window parameters, so equal inputs always share an
// entry no matter which process computed it:
//
//	k := cache.NewDefaultKeyer()
//	key := k.DifferentialKey(cache.Hash(doc), cache.WindowKeyOpts{T: 0, Delta: 2})
//
// [ScopedKeyer] adds a prefix to every key, which lets several
// deployments share one Redis database.
//
// # Errors
//
// Backends treat corrupt or expired entries as misses. Transport failures
// are returned as errors; callers are expected to log them and carry on
// without the cache.
package cache
