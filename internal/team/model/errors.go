package model

import "errors"

var (
	// ErrTeamExists indicates that a team with the given name already exists.
	ErrTeamExists = errors.New("team name already exists")
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrNotAMember indicates that the target user is not in the team's member set.
	ErrNotAMember = errors.New("user does not belong to this team")
	// ErrForbidden indicates that the acting user is not authorized for the operation.
	ErrForbidden = errors.New("unauthorized access")
)
