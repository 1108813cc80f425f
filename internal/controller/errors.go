package controller

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"elite_cards/internal/service"
	applog "elite_cards/pkg/logger"
	"elite_cards/pkg/pokemontcg"
)

// ==================== 错误响应 ====================

// 卡牌接口错误提示
const (
	msgCardTimeout     = "The Pokemon TCG API is taking too long to respond. Please try again."
	msgCardRateLimited = "Too many requests. Please wait a moment and try again."
	msgCardUpstream    = "Pokemon TCG API is currently unavailable. Please try again later."
)

// UseJSONFieldNames 校验错误使用 json 字段名 (imageUrl 而不是 ImageURL)
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
}

// respondBindError 参数绑定失败 -> 400
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: " + fe.Field()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid field: " + fe.Field()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}

// respondError 业务错误映射为 HTTP 状态码，未知错误返回 fallback 文案并记录日志
func respondError(c *gin.Context, err error, fallback string) {
	status, msg := classifyError(err)
	if status == http.StatusInternalServerError {
		msg = fallback
		applog.L().Error("[API] 请求处理失败",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"error": msg})
}

func classifyError(err error) (int, string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Message
	case errors.Is(err, service.ErrInvalidParams),
		errors.Is(err, service.ErrNoFieldsToUpdate),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrNothingLinkedInSet),
		errors.Is(err, service.ErrAlreadyAdded):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCardNotFound),
		errors.Is(err, service.ErrLinkageNotFound),
		errors.Is(err, service.ErrSetEmpty):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, service.ErrSyncInProgress):
		return http.StatusConflict, err.Error()

	case errors.Is(err, pokemontcg.ErrNotFound):
		return http.StatusNotFound, service.ErrCardNotFound.Error()
	case errors.Is(err, pokemontcg.ErrTimeout):
		return http.StatusGatewayTimeout, msgCardTimeout
	case errors.Is(err, pokemontcg.ErrRateLimited):
		return http.StatusTooManyRequests, msgCardRateLimited
	case errors.Is(err, pokemontcg.ErrUpstream):
		return http.StatusServiceUnavailable, msgCardUpstream
	}
	return http.StatusInternalServerError, ""
}
