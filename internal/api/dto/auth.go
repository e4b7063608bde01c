package dto

// 会话状态机：未登录 -> 交换中 -> 已登录
const (
	SessionSignedOut = "signedOut"
	SessionPending   = "pending"
	SessionSignedIn  = "signedIn"
)

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// OAuthDTO 第三方登录回调携带的授权码
type OAuthDTO struct {
	Code        string `json:"code" validate:"required"`
	RedirectURI string `json:"redirect_uri,omitempty"`
}

type UserDTO struct {
	UserID      uint64   `json:"user_id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name"`
	Roles       []string `json:"roles"`
}

// SessionDTO 当前会话快照。State 为 signedOut 时 Token 与 User 为空。
type SessionDTO struct {
	State string   `json:"state"`
	Token string   `json:"token,omitempty"`
	User  *UserDTO `json:"user,omitempty"`
}
