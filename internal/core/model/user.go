package model

import "io"

const (
	DefaultUserName  = "BOB"
	DefaultUserEmail = "test@test.com"
)

type User struct {
	name  string
	email string
}

// Name returns the stored name, untransformed.
func (u *User) Name() string {
	return u.name
}

func (u *User) SetName(name string) *User {
	u.name = name
	return u
}

func (u *User) Email() string {
	return u.email
}

func (u *User) SetEmail(email string) *User {
	u.email = email
	return u
}

// Display implements Displayable.
func (u *User) Display(w io.Writer) error {
	return writeLine(w, u.name, u.email)
}

// Snapshot returns the stored fields of the user.
func (u *User) Snapshot() map[string]any {
	return map[string]any{
		"name":  u.name,
		"email": u.email,
	}
}

var (
	_ Displayable = &User{}
	_ WithName    = &User{}
)

type UserOptions struct {
	Name  string
	Email string
}

type UserOptionFunc func(opts *UserOptions)

func WithUserName(name string) UserOptionFunc {
	return func(opts *UserOptions) {
		opts.Name = name
	}
}

func WithUserEmail(email string) UserOptionFunc {
	return func(opts *UserOptions) {
		opts.Email = email
	}
}

func NewUserOptions(funcs ...UserOptionFunc) *UserOptions {
	opts := &UserOptions{
		Name:  DefaultUserName,
		Email: DefaultUserEmail,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func NewUser(funcs ...UserOptionFunc) *User {
	opts := NewUserOptions(funcs...)
	return &User{
		name:  opts.Name,
		email: opts.Email,
	}
}
