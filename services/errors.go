package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("a category with this name already exists")
	ErrCategoryHasItems  = errors.New("category still has menu items")

	ErrItemNotFound    = errors.New("menu item not found")
	ErrItemNameTaken   = errors.New("an item with this name already exists in the category")
	ErrInvalidCategory = errors.New("invalid category id")
)
