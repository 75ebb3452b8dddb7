// Package model provides domain models and DTOs for the team module.
package model

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	TeamName string `json:"team_name" binding:"required"`
}

// CreateTeamResponse represents the response after creating a team.
// The invite link is a public URL derived from the team name, not a secret.
type CreateTeamResponse struct {
	Message    string `json:"message"`
	InviteLink string `json:"invite_link"`
}

// AddMemberRequest represents the self-service join request made through
// an invite link.
type AddMemberRequest struct {
	Name     string `json:"name"     binding:"required"`
	Surname  string `json:"surname"  binding:"required"`
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the request to update a member profile.
type UpdateProfileRequest struct {
	Name    string `json:"name"    binding:"required"`
	Surname string `json:"surname" binding:"required"`
}

// MemberInfo represents a single member in a team listing.
type MemberInfo struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Role    string  `json:"role"`
}

// MembersResponse represents the response for a team listing.
type MembersResponse struct {
	TeamName string       `json:"team_name"`
	Members  []MemberInfo `json:"members"`
}
