package cache

// Key namespaces. A completed result is reachable by search id and by
// fingerprint; the mapping key lets intake find an in-flight search for a
// duplicate request.
const (
	resultByIDPrefix  = "search:result:id:"
	resultByKeyPrefix = "search:result:key:"
	mappingPrefix     = "search:map:"
)

// ResultByIDKey keys a completed result by search id.
func ResultByIDKey(searchID string) string {
	return resultByIDPrefix + searchID
}

// ResultByFingerprintKey keys a completed result by request fingerprint.
func ResultByFingerprintKey(fp string) string {
	return resultByKeyPrefix + fp
}

// MappingKey keys the fingerprint → search id mapping.
func MappingKey(fp string) string {
	return mappingPrefix + fp
}
