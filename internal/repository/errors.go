package repository

import "errors"

var (
	ErrNoSuchAdmin         = errors.New("admin tidak ditemukan")
	ErrAdminAlreadyExists  = errors.New("admin dengan ID tersebut sudah ada")
	ErrNoSuchTicket        = errors.New("tiket tidak ditemukan")
	ErrTicketAlreadyExists = errors.New("tiket untuk pendaftar tersebut sudah ada")
)
