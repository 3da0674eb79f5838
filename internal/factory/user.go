package factory

import (
	"fmt"
	"strings"

	"todo-items-api/internal/models"
	"todo-items-api/internal/repositories"
)

// DefaultUserPassword は BuildUser が使うデフォルトの平文パスワードです。
const DefaultUserPassword = "password123"

type UserOption func(*userOverrides)

type userOverrides struct {
	username *string
	email    *string
	password *string
	role     *string
}

func WithUsername(username string) UserOption {
	return func(o *userOverrides) { o.username = &username }
}

func WithUserEmail(email string) UserOption {
	return func(o *userOverrides) { o.email = &email }
}

func WithUserPassword(password string) UserOption {
	return func(o *userOverrides) { o.password = &password }
}

func WithUserRole(role string) UserOption {
	return func(o *userOverrides) { o.role = &role }
}

// BuildUser はメモリ上に User を1件生成します。
// username と email は連番を含むため、同じFactory内では重複しません。
func (f *Factory) BuildUser(opts ...UserOption) (*models.User, error) {
	var o userOverrides
	for _, opt := range opts {
		opt(&o)
	}

	n := f.next()
	u := &models.User{Role: models.RoleUser}
	if o.username != nil {
		u.Username = *o.username
	} else {
		u.Username = fmt.Sprintf("user%04d_%s", n, slug(f.faker.FirstName()))
	}
	if o.email != nil {
		u.Email = *o.email
	} else {
		u.Email = fmt.Sprintf("user%04d_%s@example.com", n, slug(f.faker.LastName()))
	}
	if o.role != nil {
		u.Role = *o.role
	}

	hash, err := f.passwordHash(o.password)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = hash
	return u, nil
}

// passwordHash はデフォルトパスワードのハッシュを一度だけ計算して使い回します。
func (f *Factory) passwordHash(password *string) (string, error) {
	if password != nil {
		return repositories.HashPassword(*password)
	}
	f.hashOnce.Do(func() {
		f.defaultHash, f.hashErr = repositories.HashPassword(DefaultUserPassword)
	})
	return f.defaultHash, f.hashErr
}

// slug は英小文字と数字だけを残します。
func slug(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, s)
}
