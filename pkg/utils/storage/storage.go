// Package storage owns the lifecycle of uploaded image files. Controllers
// save a file before persisting the record that references it and remove it
// again if persistence fails, so no orphan file outlives a failed request.
package storage

import "mime/multipart"

type Storage interface {
	// Save validates and stores the upload, returning the reference path
	// recorded on the owning entity.
	Save(file *multipart.FileHeader) (string, error)
	// Remove deletes a previously stored file. A missing file is not an
	// error; callers log failures and move on.
	Remove(ref string) error
}
