package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrNotOwner             = errors.New("organization does not belong to this user")
	ErrOwnerHasOrganization = errors.New("owner already has an organization")
)
