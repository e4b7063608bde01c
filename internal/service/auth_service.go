package service

import (
	"Pulse/internal/api/config"
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/redis"
	"Pulse/internal/pkg/security"
	"Pulse/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/go-sql-driver/mysql"
	"github.com/goccy/go-json"
)

type AuthService interface {
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.SessionDTO, error)
	OAuthLogin(ctx context.Context, provider string, oauthDTO *dto.OAuthDTO) (*dto.SessionDTO, error)
	GetSession(ctx context.Context, token string) (*dto.SessionDTO, error)
	Logout(ctx context.Context, token string) error
}

type AuthServiceImpl struct {
	userRepo repository.UserRepo
	roleRepo repository.RoleRepo
	client   *resty.Client
}

func NewAuthService(userRepo repository.UserRepo, roleRepo repository.RoleRepo) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		roleRepo: roleRepo,
		client:   resty.New().SetTimeout(10 * time.Second),
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.SessionDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Password == nil {
		return nil, ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(loginDTO.Password, *user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	return s.buildSession(user)
}

// OAuthLogin 用授权码换取第三方身份，首次登录自动建号并授予 VIEWER
func (s *AuthServiceImpl) OAuthLogin(ctx context.Context, provider string, oauthDTO *dto.OAuthDTO) (*dto.SessionDTO, error) {
	providerCfg, ok := config.Cfg.OAuth[provider]
	if !ok {
		return nil, ErrOAuthProvider
	}

	identity, err := s.exchangeCode(ctx, provider, providerCfg, oauthDTO)
	if err != nil {
		log.Warn("oauth exchange failed", "provider", provider, "err", err)
		return nil, ErrOAuthExchange
	}

	user, err := s.userRepo.GetUserByOAuth(ctx, provider, identity.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.createOAuthUser(ctx, provider, identity)
		if err != nil {
			return nil, err
		}
	}

	return s.buildSession(user)
}

// GetSession 还原当前会话。没有令牌或令牌失效一律视为未登录，不报错
func (s *AuthServiceImpl) GetSession(ctx context.Context, token string) (*dto.SessionDTO, error) {
	signedOut := &dto.SessionDTO{State: dto.SessionSignedOut}

	if token == "" {
		return signedOut, nil
	}

	claims, err := security.ValidateToken(token)
	if err != nil {
		return signedOut, nil
	}

	signature, err := security.ExtractSignature(token)
	if err != nil {
		return signedOut, nil
	}
	value, err := redis.GetValue(ctx, signature)
	if err != nil {
		return nil, err
	}
	if value != "" {
		return signedOut, nil
	}

	user, err := s.userRepo.GetUserById(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return signedOut, nil
	}

	return &dto.SessionDTO{
		State: dto.SessionSignedIn,
		Token: token,
		User:  toUserDTO(user),
	}, nil
}

// Logout 将令牌签名拉黑到过期时间为止，令牌随即不可用
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, security.JWTExpirationTime)
}

type oauthIdentity struct {
	Subject     string
	Email       string
	DisplayName string
}

func (s *AuthServiceImpl) exchangeCode(ctx context.Context, provider string, providerCfg config.OAuthProvider, oauthDTO *dto.OAuthDTO) (*oauthIdentity, error) {
	redirectURI := oauthDTO.RedirectURI
	if redirectURI == "" {
		redirectURI = providerCfg.RedirectURL
	}

	tokenResp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(map[string]string{
			"grant_type":    "authorization_code",
			"code":          oauthDTO.Code,
			"client_id":     providerCfg.ClientID,
			"client_secret": providerCfg.ClientSecret,
			"redirect_uri":  redirectURI,
		}).
		Post(providerCfg.TokenURL)
	if err != nil {
		return nil, err
	}
	if tokenResp.IsError() {
		return nil, ErrOAuthExchange
	}

	var tokenBody struct {
		AccessToken string `json:"access_token"`
	}
	if err = json.Unmarshal(tokenResp.Body(), &tokenBody); err != nil {
		return nil, err
	}
	if tokenBody.AccessToken == "" {
		return nil, ErrOAuthExchange
	}

	userResp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(tokenBody.AccessToken).
		Get(providerCfg.UserInfoURL)
	if err != nil {
		return nil, err
	}
	if userResp.IsError() {
		return nil, ErrOAuthExchange
	}

	var userBody struct {
		Sub   string `json:"sub"`
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err = json.Unmarshal(userResp.Body(), &userBody); err != nil {
		return nil, err
	}

	subject := userBody.Sub
	if subject == "" {
		subject = userBody.ID
	}
	if subject == "" {
		return nil, ErrOAuthExchange
	}

	return &oauthIdentity{
		Subject:     subject,
		Email:       userBody.Email,
		DisplayName: userBody.Name,
	}, nil
}

func (s *AuthServiceImpl) createOAuthUser(ctx context.Context, provider string, identity *oauthIdentity) (*model.User, error) {
	role, err := s.roleRepo.GetOrCreateByName(ctx, model.RoleViewer)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:         identity.Email,
		OAuthProvider: &provider,
		OAuthSubject:  &identity.Subject,
		DisplayName:   identity.DisplayName,
	}
	roles := []*model.UserRole{{RoleID: role.ID}}

	if err = s.userRepo.CreateUser(ctx, user, roles); err != nil {
		// 邮箱撞唯一索引说明该邮箱已经以别的方式注册过
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, ErrUserExist
		}
		return nil, err
	}
	user.UserRoles = []model.UserRole{{UserID: user.ID, RoleID: role.ID, Role: *role}}

	return user, nil
}

func (s *AuthServiceImpl) buildSession(user *model.User) (*dto.SessionDTO, error) {
	userDTO := toUserDTO(user)

	token, err := security.GenerateToken(user.ID, user.Email, userDTO.Roles)
	if err != nil {
		return nil, err
	}

	return &dto.SessionDTO{
		State: dto.SessionSignedIn,
		Token: token,
		User:  userDTO,
	}, nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	roles := make([]string, 0, len(user.UserRoles))
	for _, userRole := range user.UserRoles {
		if userRole.Role.Name != "" {
			roles = append(roles, userRole.Role.Name)
		}
	}

	return &dto.UserDTO{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Roles:       roles,
	}
}
