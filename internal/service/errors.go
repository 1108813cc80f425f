package service

import "errors"

// ==================== 业务错误 ====================
// 错误文本直接返回给调用方，控制器按错误类型映射状态码

var (
	ErrInvalidParams      = errors.New("invalid parameters")
	ErrNoFieldsToUpdate   = errors.New("No fields to update")
	ErrInvalidRole        = errors.New("Invalid role. Must be \"admin\" or \"end_user\"")
	ErrProductNotFound    = errors.New("Product not found")
	ErrUserNotFound       = errors.New("User not found")
	ErrCardNotFound       = errors.New("Card not found")
	ErrLinkageNotFound    = errors.New("Product not found in your store")
	ErrSetEmpty           = errors.New("No products found for this set")
	ErrNothingLinkedInSet = errors.New("No products from this set are currently added to your store")
	ErrAlreadyAdded       = errors.New("Product already added to your store")
	ErrSyncInProgress     = errors.New("Price sync is already running")
)

// ValidationError 字段级校验错误
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidParams
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
