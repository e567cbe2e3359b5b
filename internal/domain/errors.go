package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	ErrMsgItemNotFound      = "item not found"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "amount must be positive"
	ErrMsgSelfTarget        = "cannot target yourself"
	ErrMsgNothingToSteal    = "target has nothing to steal"
	ErrMsgNoJob             = "no job"
	ErrMsgAlreadyEmployed   = "already employed"
	ErrMsgJobNotFound       = "job not found"
	ErrMsgCatalogFull       = "shop cannot hold more than 25 items"
	ErrMsgPetNameTooShort   = "pet name too short"
	ErrMsgNoPetSelected     = "no pet selected"
	ErrMsgPetNotFound       = "pet not found"
	ErrMsgPetTooHungry      = "pet is too hungry to play"
	ErrMsgEmptyName         = "name cannot be empty"
	ErrMsgEmptyDescription  = "description cannot be empty"
	ErrMsgInvalidPrice      = "price must be greater than 0"
	ErrMsgInvalidSalary     = "salary must be greater than 0"
	ErrMsgGrantInProgress   = "a grant is already running for this guild"
)

// Common domain errors. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details)
// for additional context. Validation happens at the aggregate boundary; the
// ledger and inventory primitives never raise or swallow these themselves.
var (
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrSelfTarget        = errors.New(ErrMsgSelfTarget)
	ErrNothingToSteal    = errors.New(ErrMsgNothingToSteal)
	ErrNoJob             = errors.New(ErrMsgNoJob)
	ErrAlreadyEmployed   = errors.New(ErrMsgAlreadyEmployed)
	ErrJobNotFound       = errors.New(ErrMsgJobNotFound)
	ErrCatalogFull       = errors.New(ErrMsgCatalogFull)
	ErrPetNameTooShort   = errors.New(ErrMsgPetNameTooShort)
	ErrNoPetSelected     = errors.New(ErrMsgNoPetSelected)
	ErrPetNotFound       = errors.New(ErrMsgPetNotFound)
	ErrPetTooHungry      = errors.New(ErrMsgPetTooHungry)
	ErrEmptyName         = errors.New(ErrMsgEmptyName)
	ErrEmptyDescription  = errors.New(ErrMsgEmptyDescription)
	ErrInvalidPrice      = errors.New(ErrMsgInvalidPrice)
	ErrInvalidSalary     = errors.New(ErrMsgInvalidSalary)
	ErrGrantInProgress   = errors.New(ErrMsgGrantInProgress)
)
