package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glamstack/attire/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrNilSlice    = errors.New("slice cannot be nil")
	ErrEmptySlice  = errors.New("slice cannot be empty")
	ErrInvalidItem = errors.New("invalid item")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateItems validates a slice of catalog items.
func validateItems(items []model.Item) error {
	if items == nil {
		return fmt.Errorf("%w: items", ErrNilSlice)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: items", ErrEmptySlice)
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("%w at index %d: %v", ErrInvalidItem, i, err)
		}
	}
	return nil
}
