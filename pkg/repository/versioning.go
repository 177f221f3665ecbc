package repository

// Versioned is implemented by entities that support optimistic locking. The
// version is stored in the document's "version" field; Replace filters on
// the current version and increments it on success.
type Versioned interface {
	GetVersion() int64
	SetVersion(version int64)
}

// versionField is the document field holding the optimistic lock version.
const versionField = "version"
