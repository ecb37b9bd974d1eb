package model

// Folder is a named grouping inside one user's file namespace. Folders are
// process-lifetime records: nothing is persisted and every restart starts
// from an empty registry.
type Folder struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	UID  string `json:"uid"`
}
