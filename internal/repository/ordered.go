package repository

import (
	"coursecraft_backend/internal/util"

	"gorm.io/gorm"
)

// Shared position bookkeeping for the three sibling-ordered collections
// (sections in a course, pages in a section, blocks in a page). Positions
// are zero-based and contiguous within a parent; only reorder and
// delete-compaction ever rewrite them.

// nextPosition returns the tail position for a new child of parentID.
func nextPosition(db *gorm.DB, mdl interface{}, parentCol, parentID string) (int, error) {
	var count int64
	err := db.Model(mdl).Where(parentCol+" = ?", parentID).Count(&count).Error
	return int(count), err
}

// reorderSiblings applies a full new ordering to the children of parentID:
// the id at index i gets position i. The submitted ids must be a permutation
// of the current sibling set; anything else returns ErrReorderConflict
// before a single row is touched. All writes happen in one transaction, so
// readers never observe a partially applied ordering.
func reorderSiblings(db *gorm.DB, mdl interface{}, parentCol, parentID string, orderedIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var current []string
		if err := tx.Model(mdl).Where(parentCol+" = ?", parentID).Pluck("id", &current).Error; err != nil {
			return err
		}

		if !isPermutation(current, orderedIDs) {
			return util.ErrReorderConflict
		}

		for i, id := range orderedIDs {
			err := tx.Model(mdl).
				Where("id = ? AND "+parentCol+" = ?", id, parentID).
				Update("position", i).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// compactSiblings closes the gap left by a deletion, reassigning 0..n-1 to
// the survivors in their current relative order. Runs inside the caller's
// transaction.
func compactSiblings(tx *gorm.DB, mdl interface{}, parentCol, parentID string) error {
	var ids []string
	if err := tx.Model(mdl).Where(parentCol+" = ?", parentID).Order("position asc").Pluck("id", &ids).Error; err != nil {
		return err
	}

	for i, id := range ids {
		err := tx.Model(mdl).
			Where("id = ?", id).
			Update("position", i).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// isPermutation reports whether want contains each element of have exactly
// once, in any order.
func isPermutation(have, want []string) bool {
	if len(have) != len(want) {
		return false
	}

	seen := make(map[string]bool, len(have))
	for _, id := range have {
		seen[id] = true
	}

	for _, id := range want {
		if !seen[id] {
			return false
		}
		delete(seen, id)
	}
	return len(seen) == 0
}
