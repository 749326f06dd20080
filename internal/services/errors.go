package services

import "errors"

var (
	ErrLoginRequired   = errors.New("login required")
	ErrUnknownEvent    = errors.New("unknown event")
	ErrUnknownDay      = errors.New("unknown day")
	ErrUnknownItem     = errors.New("unknown checklist item")
	ErrUnknownCategory = errors.New("unknown checklist category")
	ErrEmptyName       = errors.New("item name is empty")
)
