// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/fablite/fablite/internal/team/model"
	userModel "github.com/fablite/fablite/internal/user/model"
)

// Repository defines the interface for team and membership data access.
type Repository interface {
	// Create creates a new team led by the given user.
	Create(ctx context.Context, name string, leaderID uint) (*teamModel.Team, error)

	// GetByName finds a team by name with its leader preloaded.
	GetByName(ctx context.Context, name string) (*teamModel.Team, error)

	// AddMember adds a user to the team's member set.
	AddMember(ctx context.Context, team *teamModel.Team, user *userModel.User) error

	// RemoveMember removes a user from the team's member set.
	RemoveMember(ctx context.Context, team *teamModel.Team, user *userModel.User) error

	// IsMember reports whether the user is in the team's member set.
	IsMember(ctx context.Context, teamID, userID uint) (bool, error)

	// GetMembers returns all users in the team's member set.
	GetMembers(ctx context.Context, team *teamModel.Team) ([]userModel.User, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create creates a new team led by the given user.
func (r *repository) Create(ctx context.Context, name string, leaderID uint) (*teamModel.Team, error) {
	team := &teamModel.Team{
		Name:     name,
		LeaderID: leaderID,
	}

	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			r.logger.Debugw("Create duplicate team name", "team_name", name)
			return nil, teamModel.ErrTeamExists
		}
		r.logger.Errorw("Create database error", "team_name", name, "error", err)
		return nil, err
	}

	return team, nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// GetByName finds a team by name with its leader preloaded.
func (r *repository) GetByName(ctx context.Context, name string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Preload("Leader").
		Where("name = ?", name).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		r.logger.Errorw("GetByName database error", "team_name", name, "error", err)
		return nil, err
	}

	return &team, nil
}

// AddMember adds a user to the team's member set.
func (r *repository) AddMember(ctx context.Context, team *teamModel.Team, user *userModel.User) error {
	err := r.db.WithContext(ctx).
		Model(team).
		Association("Members").
		Append(user)

	if err != nil {
		r.logger.Errorw("AddMember database error",
			"team_name", team.Name, "user_id", user.ID, "error", err)
		return err
	}

	return nil
}

// RemoveMember removes a user from the team's member set.
// Membership is checked by the caller; removing an absent edge is a no-op.
func (r *repository) RemoveMember(ctx context.Context, team *teamModel.Team, user *userModel.User) error {
	err := r.db.WithContext(ctx).
		Model(team).
		Association("Members").
		Delete(user)

	if err != nil {
		r.logger.Errorw("RemoveMember database error",
			"team_name", team.Name, "user_id", user.ID, "error", err)
		return err
	}

	return nil
}

// IsMember reports whether the user is in the team's member set.
func (r *repository) IsMember(ctx context.Context, teamID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("user_team").
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("IsMember database error",
			"team_id", teamID, "user_id", userID, "error", err)
		return false, err
	}

	return count > 0, nil
}

// GetMembers returns all users in the team's member set.
func (r *repository) GetMembers(ctx context.Context, team *teamModel.Team) ([]userModel.User, error) {
	var members []userModel.User
	err := r.db.WithContext(ctx).
		Model(team).
		Association("Members").
		Find(&members)

	if err != nil {
		r.logger.Errorw("GetMembers database error", "team_name", team.Name, "error", err)
		return nil, err
	}

	if members == nil {
		members = []userModel.User{}
	}

	return members, nil
}
