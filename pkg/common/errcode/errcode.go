package errcode

const (
	// NoErr 无错误
	NoErr = 0

	// Validation 参数校验失败
	Validation = 40001
	// Unauthorized 未认证或认证失败
	Unauthorized = 40101
	// NotFound 资源不存在
	NotFound = 40401

	// Unknown 未知错误
	Unknown = 50001
	// Unavailable 依赖的外部服务不可用（如联系表单提交后端）
	Unavailable = 50201
)
