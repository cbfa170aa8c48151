// File: utils/constants.go
package utils

// SessionCachePrefix is the prefix used for Redis conversation session keys.
const SessionCachePrefix = "chat:session:"

// PolicyDocumentFolder is the storage folder for issued policy certificates.
const PolicyDocumentFolder = "travelsure/policies"
