package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
	// ErrRouteNotFound - 404: 路由不存在.
	ErrRouteNotFound
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrAdminAlreadyExist - 400: 管理员已存在.
	ErrAdminAlreadyExist
	// ErrInvalidCredentials - 401: 邮箱或密码错误.
	ErrInvalidCredentials
	// ErrAccountDeactivated - 401: 账户已停用.
	ErrAccountDeactivated
)

// 商品相关错误码 (102xxx).
const (
	// ErrProductNotFound - 404: 商品不存在.
	ErrProductNotFound int = iota + 102000
	// ErrProductFieldsMissing - 400: 商品必填字段缺失.
	ErrProductFieldsMissing
)

// 咨询相关错误码 (103xxx).
const (
	// ErrEnquiryNotFound - 404: 咨询记录不存在.
	ErrEnquiryNotFound int = iota + 103000
	// ErrEnquiryFieldsMissing - 400: 咨询必填字段缺失.
	ErrEnquiryFieldsMissing
	// ErrEnquiryInvalidEmail - 400: 邮箱格式不正确.
	ErrEnquiryInvalidEmail
	// ErrEnquiryInvalidStatus - 400: 咨询状态值不合法.
	ErrEnquiryInvalidStatus
)

// 上传相关错误码 (104xxx).
const (
	// ErrUploadNoFile - 400: 未提供图片文件.
	ErrUploadNoFile int = iota + 104000
	// ErrUploadInvalidType - 400: 图片类型不支持.
	ErrUploadInvalidType
	// ErrUploadTooLarge - 400: 图片超出大小限制.
	ErrUploadTooLarge
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
