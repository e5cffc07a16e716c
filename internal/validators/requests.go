// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/timeline/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldTenantCode    = "tenant_code"
	FieldTenantName    = "tenant_name"
	FieldTenantStatus  = "tenant_status"
	FieldUsername      = "username"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldLoginPassword = "login_password"
	FieldAdminPassword = "admin_password"
	FieldAnyUpdate     = "any_update"
)

// Credential limits.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
	MaxUsernameLength = 64  // app_user.username is VARCHAR(64)
	MaxEmailLength    = 254 // app_user.email is VARCHAR(255)
)

// RequestValidator implements the Validator interface for the request
// bodies of the HTTP API.
//
// Every request type has a default field set; passing field names restricts
// validation to those fields. Validation stops at the first failed field.
type RequestValidator struct {
	tags *validator.Validate
}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{tags: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Supported types:
//   - models.CreateTenantRequest
//   - models.UpdateTenantRequest
//   - models.TenantStatusRequest
//   - models.RegisterRequest
//   - models.LoginRequest
//   - models.UpdateMeRequest
//   - models.CreateUserRequest
//
// Returns ErrUnsupportedType for anything else.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateTenantRequest:
		return v.validateCreateTenant(value, fields...)
	case *models.CreateTenantRequest:
		return v.validateCreateTenant(*value, fields...)

	case models.UpdateTenantRequest:
		return v.validateUpdateTenant(value, fields...)
	case *models.UpdateTenantRequest:
		return v.validateUpdateTenant(*value, fields...)

	case models.TenantStatusRequest:
		return v.validateTenantStatus(value.Status)
	case *models.TenantStatusRequest:
		return v.validateTenantStatus(value.Status)

	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.UpdateMeRequest:
		return v.validateUpdateMe(value, fields...)
	case *models.UpdateMeRequest:
		return v.validateUpdateMe(*value, fields...)

	case models.CreateUserRequest:
		return v.validateCreateUser(value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreateUser(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCreateTenant(req models.CreateTenantRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTenantCode, FieldTenantName, FieldAdminPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTenantCode:
			err = v.tenantCode(req.Code)
		case FieldTenantName:
			err = v.tenantName(req.Name)
		case FieldAdminPassword:
			// optional: generated when empty
			if req.AdminPassword != "" {
				err = v.password(req.AdminPassword)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateTenant(req models.UpdateTenantRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyUpdate, FieldTenantName, FieldTenantStatus}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldAnyUpdate:
			if req.Name == nil && req.Status == nil {
				err = ErrNoFieldsToUpdate
			}
		case FieldTenantName:
			if req.Name != nil {
				err = v.tenantName(*req.Name)
			}
		case FieldTenantStatus:
			if req.Status != nil {
				err = v.validateTenantStatus(*req.Status)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateTenantStatus(status models.TenantStatus) error {
	if !status.Valid() {
		return ErrInvalidTenantStatus
	}
	return nil
}

func (v *RequestValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTenantCode, FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTenantCode:
			err = v.tenantCode(req.TenantCode)
		case FieldUsername:
			err = v.username(req.Username)
		case FieldEmail:
			err = v.email(req.Email)
		case FieldPassword:
			err = v.password(req.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateLogin only checks presence and shape. Password strength is not
// checked at login, so a policy change never locks out existing users.
func (v *RequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTenantCode, FieldUsername, FieldLoginPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTenantCode:
			err = v.tenantCode(req.TenantCode)
		case FieldUsername:
			err = v.username(req.Username)
		case FieldLoginPassword:
			if req.Password == "" {
				err = ErrEmptyPassword
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateMe(req models.UpdateMeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyUpdate, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldAnyUpdate:
			if req.Email == nil && req.Password == nil {
				err = ErrNoFieldsToUpdate
			}
		case FieldEmail:
			if req.Email != nil {
				err = v.email(*req.Email)
			}
		case FieldPassword:
			if req.Password != nil {
				err = v.password(*req.Password)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateUser(req models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUsername:
			err = v.username(req.Username)
		case FieldEmail:
			err = v.email(req.Email)
		case FieldPassword:
			err = v.password(req.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// ── field rules ──

func (v *RequestValidator) tenantCode(code string) error {
	if !models.TenantIDPattern.MatchString(code) {
		return ErrInvalidTenantCode
	}
	return nil
}

func (v *RequestValidator) tenantName(name string) error {
	if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > models.MaxTenantNameLength {
		return ErrInvalidTenantName
	}
	return nil
}

func (v *RequestValidator) username(username string) error {
	if username == "" || strings.ContainsFunc(username, isSpace) || utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrInvalidUsername
	}
	return nil
}

func (v *RequestValidator) email(email string) error {
	if len(email) > MaxEmailLength {
		return ErrInvalidEmail
	}
	if err := v.tags.Var(email, "required,email"); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return ErrInvalidEmail
		}
		return err
	}
	return nil
}

func (v *RequestValidator) password(password string) error {
	n := utf8.RuneCountInString(password)
	switch {
	case password == "":
		return ErrEmptyPassword
	case n < MinPasswordLength:
		return ErrPasswordTooShort
	case n > MaxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
