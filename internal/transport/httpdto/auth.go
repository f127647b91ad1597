package httpdto

import "relay-chat/internal/domain/user"

// LoginRequest is the body of action=login
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LogoutRequest is the body of action=logout
type LogoutRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

// CreateUserRequest is the body of action=create_user
type CreateUserRequest struct {
	Login       string `json:"login" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	IsAdmin     bool   `json:"is_admin"`
}

// UpdateUserRequest is the body of action=update_user. An empty password keeps the current one.
type UpdateUserRequest struct {
	UserID      int64  `json:"user_id" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	Password    string `json:"password"`
}

// UserProfile is returned on login. It never carries the password.
type UserProfile struct {
	ID          int64   `json:"id"`
	Login       string  `json:"login"`
	DisplayName string  `json:"display_name"`
	IsAdmin     bool    `json:"is_admin"`
	AvatarURL   *string `json:"avatar_url"`
	Status      string  `json:"status"`
}

// UserRecord is returned by create_user and update_user.
type UserRecord struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}

// UserListItem is one entry of list_users.
type UserListItem struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
	Status      string `json:"status"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	User    UserProfile `json:"user"`
}

type UserResponse struct {
	Success bool       `json:"success"`
	User    UserRecord `json:"user"`
}

type UsersResponse struct {
	Success bool           `json:"success"`
	Users   []UserListItem `json:"users"`
}

func ToUserProfile(u user.User) UserProfile {
	return UserProfile{
		ID:          u.ID,
		Login:       u.Login,
		DisplayName: u.DisplayName,
		IsAdmin:     u.IsAdmin,
		AvatarURL:   nullable(u.AvatarURL.String, u.AvatarURL.Valid),
		Status:      u.Status,
	}
}

func ToUserRecord(u user.User) UserRecord {
	return UserRecord{
		ID:          u.ID,
		Login:       u.Login,
		DisplayName: u.DisplayName,
		IsAdmin:     u.IsAdmin,
	}
}

func ToUserList(users []user.User) []UserListItem {
	out := make([]UserListItem, 0, len(users))
	for _, u := range users {
		out = append(out, UserListItem{
			ID:          u.ID,
			Login:       u.Login,
			DisplayName: u.DisplayName,
			IsAdmin:     u.IsAdmin,
			Status:      u.Status,
		})
	}
	return out
}
