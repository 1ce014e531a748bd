package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	// Upstream APIs.
	NetworkError failure.ErrorCode = "NetworkError" // transport failure or non-2xx status
	DecodeError  failure.ErrorCode = "DecodeError"  // body does not match the expected shape

	// Catalog.
	DealNotFound       failure.ErrorCode = "DealNotFound"
	InvalidDealID      failure.ErrorCode = "InvalidDealID"
	InvalidSortOption  failure.ErrorCode = "InvalidSortOption"
	InvalidFilter      failure.ErrorCode = "InvalidFilter"
	InvalidSearchTitle failure.ErrorCode = "InvalidSearchTitle"
	CatalogNotLoaded   failure.ErrorCode = "CatalogNotLoaded"
)
