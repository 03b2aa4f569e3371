// Package syncmap offers a lightweight, generic, concurrency-safe map guarded
// by a sync.RWMutex. It backs the handle registry and the concurrent map
// backend.
package syncmap
