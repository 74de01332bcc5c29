// Package store holds what the storage backends share.
package store

// CodeGenerator turns a numeric id, unique within a backend, into a short key.
type CodeGenerator interface {
	Generate(id uint) (string, error)
}
