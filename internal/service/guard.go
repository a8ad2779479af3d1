// Package service implements the business rules on top of the repositories:
// sign-in-or-register, ownership-guarded post and comment flows.
package service

import (
	"fmt"

	"github.com/bphaengsrisara/web-board-backend/internal/models"
)

// AssertOwner rejects mutation of a resource by anyone but its author.
//
// Callers must check existence first: a lookup miss is NOT_FOUND, an ownership
// mismatch on an existing resource is FORBIDDEN. Keeping that order means a
// probe against a nonexistent id never reveals ownership through a different
// error.
func AssertOwner(userID uint, resource models.Owned) error {
	if resource.OwnerID() == userID {
		return nil
	}
	return models.NewForbiddenError(fmt.Sprintf("You do not own this %s", resource.ResourceName()))
}
