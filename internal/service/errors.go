package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/guttosm/cardapio-service/internal/i18n"
	"github.com/guttosm/cardapio-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the backing store is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ErrorKind classifies a rejection so callers can decide how to surface it.
type ErrorKind string

const (
	KindOutOfStock       ErrorKind = "out_of_stock"
	KindStockExceeded    ErrorKind = "stock_exceeded"
	KindMissingReference ErrorKind = "missing_reference"
	KindInvalidSession   ErrorKind = "invalid_session"
	KindRemoteFailure    ErrorKind = "remote_failure"
	KindInvalidInput     ErrorKind = "invalid_input"
	KindConflict         ErrorKind = "conflict"
	KindNotFound         ErrorKind = "not_found"
)

// DomainError is a user-visible rejection. Key is the message catalog key and Params fill its placeholders.
// Causes lists per-item rejections behind an aggregate error such as a refused checkout.
type DomainError struct {
	Kind   ErrorKind
	Key    string
	Params i18n.Params
	Causes []*DomainError
	Err    error
}

func (e *DomainError) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Kind))
	sb.WriteString(": ")
	sb.WriteString(e.Key)
	for k, v := range e.Params {
		sb.WriteString(" ")
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(v)
	}
	for _, c := range e.Causes {
		sb.WriteString("; ")
		sb.WriteString(c.Error())
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *DomainError) Unwrap() error { return e.Err }

// Is matches another DomainError of the same kind and key, so sentinels survive With* copies.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Key == e.Key
}

// With returns a copy carrying an extra placeholder value.
func (e *DomainError) With(key, value string) *DomainError {
	cp := *e
	cp.Params = make(i18n.Params, len(e.Params)+1)
	for k, v := range e.Params {
		cp.Params[k] = v
	}
	cp.Params[key] = value
	return &cp
}

// WithItem names the product the rejection is about.
func (e *DomainError) WithItem(name string) *DomainError {
	return e.With("item", name)
}

// WithMax records a numeric limit.
func (e *DomainError) WithMax(max int) *DomainError {
	return e.With("max", strconv.Itoa(max))
}

// WithCauses returns a copy listing the per-item rejections.
func (e *DomainError) WithCauses(causes []*DomainError) *DomainError {
	cp := *e
	cp.Causes = causes
	return &cp
}

// Wrap returns a copy that keeps err as its cause.
func (e *DomainError) Wrap(err error) *DomainError {
	cp := *e
	cp.Err = err
	return &cp
}

func newError(kind ErrorKind, key string) *DomainError {
	return &DomainError{Kind: kind, Key: key}
}

var (
	ErrProductNotFound    = newError(KindNotFound, i18n.ErrKeyProductNotFound)
	ErrInvalidSession     = newError(KindInvalidSession, i18n.ErrKeyProductNotFound)
	ErrProductOutOfStock  = newError(KindOutOfStock, i18n.ErrKeyProductOutOfStock)
	ErrSessionNotFound    = newError(KindInvalidSession, i18n.ErrKeySessionNotFound)
	ErrSessionAbandoned   = newError(KindInvalidSession, i18n.ErrKeySessionAbandoned)
	ErrFlavorModeDisabled = newError(KindInvalidInput, i18n.ErrKeyFlavorModeDisabled)
	ErrFlavorLimitReached = newError(KindStockExceeded, i18n.ErrKeyFlavorLimitReached)
	ErrFlavorOutOfStock   = newError(KindOutOfStock, i18n.ErrKeyFlavorOutOfStock)
	ErrFlavorNotCandidate = newError(KindMissingReference, i18n.ErrKeyFlavorNotCandidate)
	ErrFlavorNotSelected  = newError(KindNotFound, i18n.ErrKeyFlavorNotSelected)
	ErrBaseFlavorRequired = newError(KindInvalidInput, i18n.ErrKeyBaseFlavorRequired)
	ErrAddonUnavailable   = newError(KindOutOfStock, i18n.ErrKeyAddonUnavailable)
	ErrNotesTooLong       = newError(KindInvalidInput, i18n.ErrKeyNotesTooLong)
	ErrUnknownNotePreset  = newError(KindInvalidInput, i18n.ErrKeyUnknownNotePreset)

	ErrCartNotFound     = newError(KindNotFound, i18n.ErrKeyCartNotFound)
	ErrCartItemNotFound = newError(KindNotFound, i18n.ErrKeyCartItemNotFound)
	ErrCartEmpty        = newError(KindInvalidInput, i18n.ErrKeyCartEmpty)
	ErrCartConflict     = newError(KindConflict, i18n.ErrKeyCartConflict)
	ErrStockExceeded    = newError(KindStockExceeded, i18n.ErrKeyStockExceeded)
	ErrCheckoutRejected = newError(KindOutOfStock, i18n.ErrKeyCheckoutRejected)
	ErrItemUnavailable  = newError(KindOutOfStock, i18n.ErrKeyItemUnavailable)

	ErrOperationInFlight = newError(KindConflict, i18n.ErrKeyOperationInFlight)
	ErrRemoteFailure     = newError(KindRemoteFailure, i18n.ErrKeyServiceUnavailable)

	ErrCategoryNameRequired    = newError(KindInvalidInput, i18n.ErrKeyCategoryNameRequired)
	ErrCategoryExists          = newError(KindConflict, i18n.ErrKeyCategoryExists)
	ErrCategoryNotFound        = newError(KindNotFound, i18n.ErrKeyCategoryNotFound)
	ErrSizeNameRequired        = newError(KindInvalidInput, i18n.ErrKeySizeNameRequired)
	ErrSizeExists              = newError(KindConflict, i18n.ErrKeySizeExists)
	ErrSizeNotFound            = newError(KindNotFound, i18n.ErrKeySizeNotFound)
	ErrFlavorLimitInvalid      = newError(KindInvalidInput, i18n.ErrKeyFlavorLimitInvalid)
	ErrAddonCategoriesRequired = newError(KindInvalidInput, i18n.ErrKeyAddonCategoriesRequired)
	ErrProductNameRequired     = newError(KindInvalidInput, i18n.ErrKeyProductNameRequired)
	ErrProductPriceInvalid     = newError(KindInvalidInput, i18n.ErrKeyProductPriceInvalid)
	ErrProductStockInvalid     = newError(KindInvalidInput, i18n.ErrKeyProductStockInvalid)
)

// AsDomainError extracts the DomainError in err's chain, if any.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// remote wraps an infrastructure error as a remote failure, leaving domain errors untouched.
func remote(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsDomainError(err); ok {
		return err
	}
	return ErrRemoteFailure.Wrap(err)
}

func isVersionConflict(err error) bool {
	return errors.Is(err, repository.ErrCartVersionConflict)
}
