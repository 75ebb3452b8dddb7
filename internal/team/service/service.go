// Package service provides business logic for the team membership lifecycle.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	teamModel "github.com/fablite/fablite/internal/team/model"
	"github.com/fablite/fablite/internal/team/repository"
	userModel "github.com/fablite/fablite/internal/user/model"
	userRepository "github.com/fablite/fablite/internal/user/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam creates a team led by the given user and returns the invite link.
	CreateTeam(ctx context.Context, leaderID uint, teamName string) (*teamModel.CreateTeamResponse, error)

	// AddMember registers a new user through an invite link and adds them to the team.
	AddMember(ctx context.Context, teamName string, req *teamModel.AddMemberRequest) (*userModel.User, error)

	// RemoveMember removes a user from a team. Only the team leader may do this.
	// A user left with zero memberships is deleted entirely.
	RemoveMember(ctx context.Context, teamName, email string, actingUserID uint) error

	// UpdateProfile updates a member's name and surname. Self-service only.
	UpdateProfile(ctx context.Context, teamName, email string, actingUserID uint, req *teamModel.UpdateProfileRequest) error

	// GetMembers returns a team listing with the leader synthesized if absent.
	GetMembers(ctx context.Context, teamName string) (*teamModel.MembersResponse, error)
}

type service struct {
	repo       repository.Repository
	users      userRepository.Repository
	db         *gorm.DB
	logger     *zap.SugaredLogger
	inviteBase string
}

// New creates a new team service instance. inviteBase is the public base URL
// used to derive invite links from team names.
func New(
	repo repository.Repository,
	users userRepository.Repository,
	db *gorm.DB,
	logger *zap.SugaredLogger,
	inviteBase string,
) Service {
	return &service{
		repo:       repo,
		users:      users,
		db:         db,
		logger:     logger,
		inviteBase: inviteBase,
	}
}

// CreateTeam creates a team and records its leader as a member, so leader
// and member status start out coincident but stay independent.
func (s *service) CreateTeam(ctx context.Context, leaderID uint, teamName string) (*teamModel.CreateTeamResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txUsers := userRepository.New(tx, s.logger)

		leader, err := txUsers.GetByID(ctx, leaderID)
		if err != nil {
			return err
		}

		team, err := txRepo.Create(ctx, teamName, leader.ID)
		if err != nil {
			return err
		}

		return txRepo.AddMember(ctx, team, leader)
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_name", teamName, "leader_id", leaderID)
	return &teamModel.CreateTeamResponse{
		Message:    "Team created successfully",
		InviteLink: fmt.Sprintf("%s/%s/add_member", s.inviteBase, teamName),
	}, nil
}

// AddMember registers a new user with the member role and adds them to the team.
func (s *service) AddMember(ctx context.Context, teamName string, req *teamModel.AddMemberRequest) (*userModel.User, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &userModel.User{
		Email:    req.Email,
		Password: string(digest),
		Role:     userModel.RoleMember,
		Name:     &req.Name,
		Surname:  &req.Surname,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txUsers := userRepository.New(tx, s.logger)

		team, err := txRepo.GetByName(ctx, teamName)
		if err != nil {
			return err
		}

		if err := txUsers.Create(ctx, user); err != nil {
			return err
		}

		return txRepo.AddMember(ctx, team, user)
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("member added", "team_name", teamName, "user_id", user.ID)
	return user, nil
}

// RemoveMember removes the membership edge and deletes the user record when
// no memberships remain. Account existence is tied to belonging to at least
// one team, a deliberate policy inherited from the product design.
func (s *service) RemoveMember(ctx context.Context, teamName, email string, actingUserID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txUsers := userRepository.New(tx, s.logger)

		user, err := txUsers.GetByEmail(ctx, email)
		if err != nil {
			return err
		}

		team, err := txRepo.GetByName(ctx, teamName)
		if err != nil {
			return err
		}

		if actingUserID != team.LeaderID {
			return teamModel.ErrForbidden
		}

		isMember, err := txRepo.IsMember(ctx, team.ID, user.ID)
		if err != nil {
			return err
		}
		if !isMember {
			return teamModel.ErrNotAMember
		}

		if err := txRepo.RemoveMember(ctx, team, user); err != nil {
			return err
		}

		remaining, err := txUsers.CountMemberships(ctx, user.ID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			s.logger.Infow("deleting orphaned user", "user_id", user.ID, "email", email)
			return txUsers.Delete(ctx, user.ID)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Infow("member removed", "team_name", teamName, "email", email)
	return nil
}

// UpdateProfile updates name and surname for the target user. Authorization
// is self-service only: the acting user's email must match the target email.
// The team path segment is accepted but does not scope the check.
func (s *service) UpdateProfile(ctx context.Context, teamName, email string, actingUserID uint, req *teamModel.UpdateProfileRequest) error {
	target, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	acting, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		return teamModel.ErrForbidden
	}

	if acting.Email != target.Email {
		return teamModel.ErrForbidden
	}

	_, err = s.users.UpdateProfile(ctx, target.ID, &req.Name, &req.Surname)
	if err != nil {
		return err
	}

	s.logger.Infow("profile updated", "user_id", target.ID)
	return nil
}

// GetMembers returns the member listing. The leader is always reported with
// the leader role: derived from the leader reference when a membership row
// exists, or as a synthetic entry appended at read time when it does not.
// Neither form is ever persisted.
func (s *service) GetMembers(ctx context.Context, teamName string) (*teamModel.MembersResponse, error) {
	team, err := s.repo.GetByName(ctx, teamName)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetMembers(ctx, team)
	if err != nil {
		return nil, err
	}

	infos := make([]teamModel.MemberInfo, 0, len(members)+1)
	leaderPresent := false
	for _, m := range members {
		role := m.Role
		if m.ID == team.LeaderID {
			leaderPresent = true
			role = userModel.RoleLeader
		}
		infos = append(infos, teamModel.MemberInfo{
			Name:    m.Name,
			Surname: m.Surname,
			Role:    role,
		})
	}

	if !leaderPresent {
		infos = append(infos, teamModel.MemberInfo{
			Name:    team.Leader.Name,
			Surname: team.Leader.Surname,
			Role:    userModel.RoleLeader,
		})
	}

	return &teamModel.MembersResponse{
		TeamName: team.Name,
		Members:  infos,
	}, nil
}
