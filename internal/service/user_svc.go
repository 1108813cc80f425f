package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"elite_cards/internal/api/dto"
	"elite_cards/internal/model"
	"elite_cards/internal/repository"
	applog "elite_cards/pkg/logger"
	"elite_cards/pkg/shopify"
)

type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 工厂方法
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers 商户列表
func (s *UserService) ListUsers(ctx context.Context, req *dto.ListUsersReq) ([]model.User, int64, error) {
	if req.Role != "" && !model.ValidRole(req.Role) {
		return nil, 0, ErrInvalidRole
	}

	users, total, err := s.userRepo.List(ctx, repository.UserFilter{
		Keyword:  req.Q,
		Role:     req.Role,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("查询商户失败: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, total, nil
}

// UpdateRole 修改商户角色 (admin / end_user)
func (s *UserService) UpdateRole(ctx context.Context, req *dto.PromoteUserReq) (*model.User, error) {
	role := strings.TrimSpace(req.NewRole)
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	shop := shopify.NormalizeShopDomain(req.ShopDomain)
	user, err := s.userRepo.UpdateRoleByShopDomain(ctx, shop, role)
	if err != nil {
		return nil, fmt.Errorf("更新角色失败: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	applog.L().Info("[User] 角色已更新", zap.String("shop", shop), zap.String("role", role))
	return user, nil
}
