package usecase

import "github.com/ecoshelf/backend/internal/domain"

// DedupeByName collapses records whose display names normalize to the same
// key, keeping the first record seen for each key. Survivor order follows
// input order.
//
// This is name-identity dedup: names that differ only by tokens the
// normalizer strips collapse, while names that are merely similar do not
// merge. The edit-distance facility in this package exists for callers
// that want threshold-based merging, but the default path avoids it so
// genuinely distinct products are never folded together.
//
// Records with a missing or empty name all normalize to the empty key and
// therefore collapse to one survivor.
func DedupeByName(records []domain.ProductRecord) []domain.ProductRecord {
	seen := make(map[string]bool, len(records))
	result := make([]domain.ProductRecord, 0, len(records))

	for _, record := range records {
		key := NormalizeName(record.ProductName)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, record)
	}

	return result
}
