// Package store implements the collection store: a namespaced key-value
// port with pluggable backends, and typed collections serialized as JSON
// blobs under fixed keys.
package store

// Storage keys, one per collection.
const (
	KeyMessages   = "messagecraft_messages"
	KeyTemplates  = "messagecraft_templates"
	KeyCategories = "messagecraft_categories"
)

// KV is the storage port every backend implements. Values are opaque
// strings; Get reports presence separately from errors so an absent key
// is not a failure.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
