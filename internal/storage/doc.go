// Package storage is the narrow file-access collaborator used by the config
// loader. Production code reads from disk through OSReader; tests seed a
// MemoryReader instead of touching the real filesystem.
package storage
