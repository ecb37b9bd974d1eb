package model

import "time"

// StoredFile describes an object held by the external store. The gateway
// never keeps file metadata itself; entries are always re-read from the
// store by key prefix.
type StoredFile struct {
	FileID     string    `json:"fileId"`
	FileName   string    `json:"fileName"`
	Size       int64     `json:"size,omitempty"`
	UploadedAt time.Time `json:"uploadedAt,omitzero"`
}
