package tickauth

import (
	"context"
	"fmt"
	"strings"

	"github.com/tickhub/tickauth/internal"
	"github.com/tickhub/tickauth/validate"
)

// Register creates a new account from the submitted form fields. Name and
// email fields are sanitized before validation; the email is case-folded
// so it can serve as the account key. Registration never starts a session.
//
// All rejections are reported through the result, not the error return;
// the error is reserved for backend unavailability.
func (e *Engine) Register(ctx context.Context, input RegisterInput) (RegisterResult, error) {
	if !e.ready() {
		return RegisterResult{}, ErrEngineNotReady
	}

	firstName := validate.Sanitize(input.FirstName)
	lastName := validate.Sanitize(input.LastName)
	email := strings.ToLower(validate.Sanitize(input.Email))

	if firstName == "" || lastName == "" {
		return e.rejectRegister(ctx, email, "First and last name are required.")
	}
	if !validate.IsValidEmail(email) {
		return e.rejectRegister(ctx, email, "Please enter a valid email address.")
	}

	check := validate.CheckPassword(e.policy, input.Password)
	if !check.Valid {
		return e.rejectRegister(ctx, email, strings.Join(check.Errors, " • "))
	}
	if input.Password != input.ConfirmPassword {
		return e.rejectRegister(ctx, email, "Passwords do not match.")
	}

	existing, err := e.accounts.Get(ctx, email)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if existing != nil {
		e.metricInc(MetricRegisterDuplicate)
		e.emitAudit(ctx, AuditRegister, "", email, false, "duplicate account", nil)
		return RegisterResult{
			Success: false,
			Code:    FailureDuplicateAccount,
			Message: "An account with this email already exists.",
		}, nil
	}

	hash, err := e.hasher.Hash(input.Password)
	if err != nil {
		return RegisterResult{}, err
	}
	id, err := internal.NewAccountID()
	if err != nil {
		return RegisterResult{}, err
	}

	account := &Account{
		ID:           id,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
		CreatedAt:    e.now().Unix(),
		OrderHistory: []Order{},
	}
	if err := e.accounts.Put(ctx, account); err != nil {
		return RegisterResult{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	e.metricInc(MetricRegisterSuccess)
	e.emitAudit(ctx, AuditRegister, account.ID, email, true, "", nil)

	return RegisterResult{
		Success: true,
		Code:    FailureNone,
		Message: "Account created successfully!",
	}, nil
}

func (e *Engine) rejectRegister(ctx context.Context, email, message string) (RegisterResult, error) {
	e.metricInc(MetricRegisterRejected)
	e.emitAudit(ctx, AuditRegister, "", email, false, message, nil)
	return RegisterResult{
		Success: false,
		Code:    FailureValidation,
		Message: message,
	}, nil
}
