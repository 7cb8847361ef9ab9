// Package services holds the account business logic: sessions, cards and
// profiles. Services talk to storage only through repomanager and run every
// multi-row mutation inside dbx.WithTx.
package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/logging"
	"github.com/dmitrijs2005/loanvault/internal/server/events"
	"github.com/go-playground/validator/v10"
)

// classified errors pass through services unchanged; anything else is
// logged and replaced by common.ErrorInternal.
var classified = []error{
	common.ErrorInvalidInput,
	common.ErrorAlreadyExists,
	common.ErrorNotFound,
	common.ErrorInvalidCredentials,
	common.ErrorInvalidCode,
	common.ErrInvalidToken,
	common.ErrTokenExpired,
	common.ErrorAlreadyVerified,
	common.ErrorServiceUnavailable,
}

func isClassified(err error) bool {
	for _, c := range classified {
		if errors.Is(err, c) {
			return true
		}
	}
	return false
}

func fail(ctx context.Context, l logging.Logger, op string, err error) error {
	if isClassified(err) {
		return err
	}
	logging.FromContext(ctx, l).Error(ctx, op+" failed", "error", err)
	return common.ErrorInternal
}

func publish(ctx context.Context, p events.Publisher, l logging.Logger, e events.Event) {
	if err := p.Publish(ctx, e); err != nil {
		logging.FromContext(ctx, l).Warn(ctx, "event not published", "type", e.Type, "error", err)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags of in and reports the first failure as
// a common.ValidationError.
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return common.NewValidationError("", err.Error())
	}

	fe := verrs[0]
	field := fieldPath(fe.Namespace())
	return common.NewValidationError(field, reason(fe))
}

// fieldPath drops the root struct name: "ProfileInput.address.city" -> "address.city".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Bool {
			return "must be accepted"
		}
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "eqfield":
		return "passwords do not match"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "numeric":
		return "must contain only digits"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
