// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/work-diary/models"
	"github.com/go-playground/validator/v10"
)

// DiaryValidator validates API payloads with go-playground/validator struct
// tags. Besides the built-in tags it understands:
//   - reaction: the value is one of [models.ReactionTypes];
//   - notblank: the string has non-whitespace content.
type DiaryValidator struct {
	validate *validator.Validate
}

// NewDiaryValidator constructs a DiaryValidator with the domain tags
// registered.
func NewDiaryValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("reaction", func(fl validator.FieldLevel) bool {
		return models.ReactionType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &DiaryValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given, only
// the named struct fields are validated.
//
// Rule violations are returned wrapped in [ErrInvalidInput]; a non-struct
// obj yields [ErrUnsupportedType].
func (v *DiaryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		msgs := make([]string, 0, len(violations))
		for _, fe := range violations {
			msgs = append(msgs, describe(fe))
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
	}

	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "reaction":
		return fmt.Sprintf("%s must be one of like, heart, celebrate, support", field)
	case "datetime":
		return fmt.Sprintf("%s must be formatted as %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
