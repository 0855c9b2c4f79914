package cache

import "strings"

// splitKey breaks a "<type>:<owner>:<params>" key into its first two
// segments. The params tail may itself contain ":" or any other character;
// only the leading segments are structural.
func splitKey(key string) (entryType, owner string, ok bool) {
	entryType, rest, ok := strings.Cut(key, ":")
	if !ok {
		return "", "", false
	}
	owner, _, ok = strings.Cut(rest, ":")
	if !ok {
		return "", "", false
	}
	return entryType, owner, true
}

// keyMatches reports whether a key belongs to the given type and owner.
// Empty entryType or owner matches any value for that segment.
func keyMatches(key, entryType, owner string) bool {
	kt, ko, ok := splitKey(key)
	if !ok {
		return false
	}
	if entryType != "" && kt != entryType {
		return false
	}
	if owner != "" && ko != owner {
		return false
	}
	return true
}
