package domain

import "errors"

// Domain sentinel errors (no external dependencies). The HTTP layer maps
// these to status codes; usecases wrap them with context where useful.
var (
	ErrNotFound           = errors.New("resource tidak ditemukan")
	ErrUserNotFound       = errors.New("user tidak ditemukan")
	ErrEmailAlreadyExists = errors.New("email sudah terdaftar")
	ErrInvalidInput       = errors.New("input tidak valid")
	ErrDuplicate          = errors.New("resource duplikat")
	ErrUnauthorized       = errors.New("tidak terautentikasi")
	ErrForbidden          = errors.New("akses ditolak")
	ErrUnknownInvoiceType = errors.New("tipe invoice tidak dikenal")
)
