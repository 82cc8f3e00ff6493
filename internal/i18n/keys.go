package i18n

// Generic error keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyValidation         = "error.validation"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"
	// ErrKeyServiceUnavailable is reported when a remote read or write fails.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	ErrKeyOperationInFlight  = "error.operation_in_flight"
)

// Catalog and selection error keys.
const (
	ErrKeyProductNotFound     = "error.product_not_found"
	ErrKeyProductOutOfStock   = "error.product_out_of_stock"
	ErrKeySessionNotFound     = "error.session_not_found"
	ErrKeySessionAbandoned    = "error.session_abandoned"
	ErrKeyFlavorModeDisabled  = "error.flavor_mode_disabled"
	ErrKeyFlavorLimitReached  = "error.flavor_limit_reached"
	ErrKeyFlavorOutOfStock    = "error.flavor_out_of_stock"
	ErrKeyFlavorNotCandidate  = "error.flavor_not_candidate"
	ErrKeyFlavorNotSelected   = "error.flavor_not_selected"
	ErrKeyBaseFlavorRequired  = "error.base_flavor_required"
	ErrKeyAddonUnavailable    = "error.addon_unavailable"
	ErrKeyNotesTooLong        = "error.notes_too_long"
	ErrKeyUnknownNotePreset   = "error.unknown_note_preset"
)

// Cart and checkout error keys.
const (
	ErrKeyCartNotFound     = "error.cart_not_found"
	ErrKeyCartItemNotFound = "error.cart_item_not_found"
	ErrKeyCartEmpty        = "error.cart_empty"
	ErrKeyCartConflict     = "error.cart_conflict"
	ErrKeyStockExceeded    = "error.stock_exceeded"
	ErrKeyCheckoutRejected = "error.checkout_rejected"
	ErrKeyItemUnavailable  = "error.item_unavailable"
)

// Settings and product registration error keys.
const (
	ErrKeyCategoryNameRequired    = "error.category_name_required"
	ErrKeyCategoryExists          = "error.category_exists"
	ErrKeyCategoryNotFound        = "error.category_not_found"
	ErrKeySizeNameRequired        = "error.size_name_required"
	ErrKeySizeExists              = "error.size_exists"
	ErrKeySizeNotFound            = "error.size_not_found"
	ErrKeyFlavorLimitInvalid      = "error.flavor_limit_invalid"
	ErrKeyAddonCategoriesRequired = "error.addon_categories_required"
	ErrKeyProductNameRequired     = "error.product_name_required"
	ErrKeyProductPriceInvalid     = "error.product_price_invalid"
	ErrKeyProductStockInvalid     = "error.product_stock_invalid"
)

// Success message keys.
const (
	SuccessKeyItemAdded    = "success.item_added"
	SuccessKeyOrderCreated = "success.order_created"
)
