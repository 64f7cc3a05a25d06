package storage

import (
	"bets/internal/repositories/identity"
)

type (
	// Closer - интерфейс для освобождения ресурсов хранилища при остановке сервера.
	Closer interface {
		Close() error
	}

	// IUserServerStorage - интерфейс сервера для хранения учетных записей пользователей.
	IUserServerStorage interface {
		identity.UserKeeper
		Closer
	}
)
