package storage

import "strings"

// Every object this gateway writes lives under the per-user namespace
// "archivos/{uid}/". The same prefix is the authorization boundary for
// reads and deletes: a caller may only touch keys under its own uid.
const rootPrefix = "archivos/"

// ObjectKey composes the storage key for a file owned by uid, optionally
// nested one level under a folder name.
func ObjectKey(uid, folder, filename string) string {
	var b strings.Builder
	b.WriteString(rootPrefix)
	b.WriteString(uid)
	b.WriteByte('/')
	if folder != "" {
		b.WriteString(folder)
		b.WriteByte('/')
	}
	b.WriteString(filename)
	return b.String()
}

// OwnerPrefix returns the key prefix for the given uid, or the root prefix
// when uid is empty (which spans every user's namespace).
func OwnerPrefix(uid string) string {
	if uid == "" {
		return rootPrefix
	}
	return rootPrefix + uid + "/"
}

// Owns reports whether key falls inside uid's namespace. This string-prefix
// test is the entire access-control model for file reads and deletes.
func Owns(uid, key string) bool {
	if uid == "" {
		return false
	}
	return strings.HasPrefix(key, rootPrefix+uid+"/")
}
