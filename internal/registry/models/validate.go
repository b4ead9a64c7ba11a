package models

// Field bounds for document records. The upper bounds are exclusive where the
// validator takes an exclusive limit, matching the stored constraints:
// display name 1..64, description 1..128, labels 1..10 entries of 1..32.
const (
	MaxDisplayNameLen = 64
	MaxDescriptionLen = 128
	MaxLabelLen       = 32
	MaxLabelCount     = 10
	MaxByteSize       = 1_000_000_000 // exclusive
)

// ValidText reports whether minLen <= len(s) < maxLenExclusive. Pure and
// state-free so it can be called from any layer.
func ValidText(s string, minLen, maxLenExclusive int) bool {
	return len(s) >= minLen && len(s) < maxLenExclusive
}

// ValidLabel reports whether a single label tag is within bounds.
func ValidLabel(tag string) bool {
	return ValidText(tag, 1, MaxLabelLen+1)
}

// ValidLabelSet reports whether the label list is non-empty, at most
// MaxLabelCount entries, and every entry satisfies ValidLabel.
func ValidLabelSet(tags []string) bool {
	if len(tags) == 0 || len(tags) > MaxLabelCount {
		return false
	}
	for _, tag := range tags {
		if !ValidLabel(tag) {
			return false
		}
	}
	return true
}

// ValidByteSize reports whether 0 < n < MaxByteSize.
func ValidByteSize(n uint64) bool {
	return n > 0 && n < MaxByteSize
}
