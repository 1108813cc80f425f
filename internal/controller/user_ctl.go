package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"elite_cards/internal/api/dto"
	"elite_cards/internal/service"
)

// ==================== UserController 商户管理 ====================

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListUsers 商户列表
// @Summary 商户列表 (管理员)
// @Tags Admin
// @Produce json
// @Param q query string false "店铺域名关键字"
// @Param role query string false "角色 admin / end_user"
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(20)
// @Success 200 {object} map[string]interface{} "{"users": [...], "total": 0}"
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	var req dto.ListUsersReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	users, total, err := c.userService.ListUsers(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err, "Failed to list users")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"users": users, "total": total})
}

// UpdateRole 修改商户角色
// @Summary 提升/降级商户 (管理员)
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.PromoteUserReq true "店铺域名与新角色"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "非法角色"
// @Failure 404 {object} map[string]string "商户不存在"
// @Router /api/admin/users/role [post]
func (c *UserController) UpdateRole(ctx *gin.Context) {
	var req dto.PromoteUserReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	user, err := c.userService.UpdateRole(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err, "Failed to promote user")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User role updated to " + user.Role,
		"user":    user,
	})
}
