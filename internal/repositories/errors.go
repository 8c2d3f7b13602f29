package repositories

import "errors"

var (
	ErrDuplicateEmail    = errors.New("email already taken")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrUserNotFound      = errors.New("user not found")
	ErrPostNotFound      = errors.New("post not found")
	ErrEmptyText         = errors.New("post text is required")
	ErrForbidden         = errors.New("only the author can delete this post")
)
