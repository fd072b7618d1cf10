package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL. The storefront maps these to UI copy.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // malformed request body
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // non-numeric or missing id

	// ==================== Catalog (CATALOG_) ====================
	CatalogProductNotFound = "CATALOG_PRODUCT_NOT_FOUND" // unknown product id
	CatalogInvalidCategory = "CATALOG_INVALID_CATEGORY"  // value outside the closed set

	// ==================== Internal ====================
	InternalServerError = "INTERNAL_SERVER_ERROR"
)
