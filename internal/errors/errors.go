package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in workspace"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// PermissionErrorCode identifies a business-rule rejection on workspace roles
type PermissionErrorCode string

const (
	PermissionCodeCannotUnassignLastAdmin    PermissionErrorCode = "CANNOT_UNASSIGN_LAST_ADMIN"
	PermissionCodeCannotDeleteLastAdminUser  PermissionErrorCode = "CANNOT_DELETE_LAST_ADMIN_USER"
	PermissionCodeCannotDeactivateLastMember PermissionErrorCode = "CANNOT_DEACTIVATE_LAST_MEMBER"
)

// PermissionError is a role rule rejection. Two permission errors match when their codes match.
type PermissionError struct {
	Code    PermissionErrorCode
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison by code
func (e *PermissionError) Is(target error) bool {
	t, ok := target.(*PermissionError)
	if !ok {
		return false
	}
	return t.Code == "" || e.Code == t.Code
}

// Entity Not Found Errors
var (
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrWorkspaceNotFound       = &NotFoundError{Entity: "workspace"}
	ErrWorkspaceMemberNotFound = &NotFoundError{Entity: "workspace member"}
	ErrUserWorkspaceNotFound   = &NotFoundError{Entity: "user workspace"}
)

// Already Exists Errors
var (
	ErrUserExists          = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrWorkspaceExists     = &AlreadyExistsError{Entity: "workspace", Context: "with this subdomain"}
	ErrUserWorkspaceExists = &AlreadyExistsError{Entity: "user workspace", Context: "for this user and workspace"}
)

// Permission Errors
var (
	ErrCannotUnassignLastAdmin = &PermissionError{
		Code:    PermissionCodeCannotUnassignLastAdmin,
		Message: "cannot unassign the last admin of the workspace",
	}
	ErrCannotDeleteLastAdminUser = &PermissionError{
		Code:    PermissionCodeCannotDeleteLastAdminUser,
		Message: "cannot delete the user: they are the last admin of a workspace with other members",
	}
	ErrCannotDeactivateLastMember = &PermissionError{
		Code:    PermissionCodeCannotDeactivateLastMember,
		Message: "cannot deactivate the last member of the workspace",
	}
)

// Authorization Errors
var (
	ErrWorkspaceAccessForbidden = &AuthorizationError{Message: "user does not have access to this workspace"}
)

// Business Logic Errors
var (
	ErrInvalidActivationStatus = errors.New("invalid workspace activation status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr) || errors.Is(err, ErrInvalidActivationStatus) || errors.Is(err, ErrInvalidPaginationParams)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsPermission checks if an error is a PermissionError
func IsPermission(err error) bool {
	var permErr *PermissionError
	return errors.As(err, &permErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
