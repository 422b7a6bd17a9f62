package localstore

import "errors"

// ErrIdentityRequired is returned when saving an identity without a subject
var ErrIdentityRequired = errors.New("identity with an ID is required")
