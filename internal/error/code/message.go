package code

// 错误码消息映射，消息直接面向客户端，保持英文
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "Success",
	ErrUnknown:         "Something went wrong!",
	ErrBind:            "Invalid request body",
	ErrValidation:      "Validation failed",
	ErrTokenInvalid:    "Unauthorized",
	ErrTooManyRequests: "Too many requests",
	ErrRouteNotFound:   "Route not found",

	// 用户相关错误码
	ErrUserNotFound:       "User not found",
	ErrAdminAlreadyExist:  "Admin user already exists",
	ErrInvalidCredentials: "Invalid credentials",
	ErrAccountDeactivated: "Account is deactivated",

	// 商品相关错误码
	ErrProductNotFound:      "Product not found",
	ErrProductFieldsMissing: "Name, category, and image are required",

	// 咨询相关错误码
	ErrEnquiryNotFound:      "Enquiry not found",
	ErrEnquiryFieldsMissing: "Name, email, and message are required",
	ErrEnquiryInvalidEmail:  "Please provide a valid email address",
	ErrEnquiryInvalidStatus: "Valid status is required",

	// 上传相关错误码
	ErrUploadNoFile:      "No image file provided",
	ErrUploadInvalidType: "Only image files are allowed (jpeg, jpg, png, gif, webp)",
	ErrUploadTooLarge:    "Image must be smaller than 5MB",

	// 数据库相关错误码
	ErrDatabase:       "Something went wrong!",
	ErrRecordNotFound: "Record not found",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrRouteNotFound:   StatusNotFound,

	// 用户相关错误码
	ErrUserNotFound:       StatusNotFound,
	ErrAdminAlreadyExist:  StatusBadRequest,
	ErrInvalidCredentials: StatusUnauthorized,
	ErrAccountDeactivated: StatusUnauthorized,

	// 商品相关错误码
	ErrProductNotFound:      StatusNotFound,
	ErrProductFieldsMissing: StatusBadRequest,

	// 咨询相关错误码
	ErrEnquiryNotFound:      StatusNotFound,
	ErrEnquiryFieldsMissing: StatusBadRequest,
	ErrEnquiryInvalidEmail:  StatusBadRequest,
	ErrEnquiryInvalidStatus: StatusBadRequest,

	// 上传相关错误码
	ErrUploadNoFile:      StatusBadRequest,
	ErrUploadInvalidType: StatusBadRequest,
	ErrUploadTooLarge:    StatusBadRequest,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Something went wrong!"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
