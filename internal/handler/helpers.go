package handler

import (
	internal_errors "forumapi/internal/errors"
)

// Auth middleware populates the user before these handlers run; a missing
// user means the route was wired without it.
var errUnauthorized = internal_errors.NewAuthentication("Missing authentication")
