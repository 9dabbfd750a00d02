package dto

// SignupRequest HTTP注册请求
// binding tag做格式层校验,业务规则(密码强度等)由领域服务校验
type SignupRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=30" example:"zhangsan"`
	Password  string `json:"password" binding:"required,min=8,max=20" example:"pass1234"`
	FirstName string `json:"first_name" binding:"required,max=50" example:"三"`
	LastName  string `json:"last_name" binding:"required,max=50" example:"张"`
	Email     string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Phone     string `json:"phone" binding:"omitempty,max=20" example:"13800138000"`
	Address   string `json:"address" binding:"omitempty,max=255" example:"大学路1号"`
}

// LoginRequest HTTP登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"zhangsan"`
	Password string `json:"password" binding:"required" example:"pass1234"`
}

// UpdateProfileRequest HTTP更新个人信息请求
// 指针字段区分"未提供"与"置空":未出现在JSON中的字段保持不变
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=50"`
	LastName  *string `json:"last_name" binding:"omitempty,max=50"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Address   *string `json:"address" binding:"omitempty,max=255"`
	Password  *string `json:"password" binding:"omitempty,min=8,max=20"`
}
