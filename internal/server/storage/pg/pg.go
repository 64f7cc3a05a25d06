package pg

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"bets/internal/repositories/identity"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Store - реализует интерфейс identity.UserKeeper и позволяет взаимодействовать с СУБД PostgreSQL.
type Store struct {
	// Поле conn содержит объект соединения с СУБД
	conn *sql.DB
}

// NewStore - применяет миграции и возвращает новый экземпляр PostgreSQL-хранилища.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if err := runMigrations(dsn); err != nil {
		return nil, fmt.Errorf("failed to run DB migrations: %w", err)
	}

	// Подключение к базе данных
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("error connection to database: %v by address %s", err, dsn)
	}

	// Проверка соединения с БД
	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("error checking connection with database: %v", err)
	}

	return &Store{
		conn: db,
	}, nil
}

//go:embed migrations/*.sql
var migrationsDir embed.FS

func runMigrations(dsn string) error {
	d, err := iofs.New(migrationsDir, "migrations")
	if err != nil {
		return fmt.Errorf("failed to return an iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dsn)
	if err != nil {
		return fmt.Errorf("failed to get a new migrate instance: %w", err)
	}
	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to apply migrations to the DB: %w", err)
		}
	}
	return nil
}

// userColumns - список колонок учетной записи в порядке сканирования.
const userColumns = `id, email, first_name, last_name, fathers_name, phone,
		balance_free, balance_game, role, status, comments, password_hash, salt`

// scanUser - сканирует учетную запись из строки результата запроса.
func scanUser(row *sql.Row) (identity.Principal, error) {
	var user identity.Principal
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.FathersName,
		&user.Phone, &user.BalanceFree, &user.BalanceGame, &user.Role, &user.Status,
		&user.Comments, &user.PasswordHash, &user.Salt)
	return user, err
}

// FindByEmail - возвращает учетную запись пользователя по email.
// Отсутствие записи возвращается через ok == false и не является ошибкой.
func (s *Store) FindByEmail(ctx context.Context, email string) (identity.Principal, bool, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return identity.Principal{}, false, nil
		}
		return identity.Principal{}, false, fmt.Errorf("find user by email error, %w", err)
	}
	return user, true, nil
}

// FindByID - возвращает учетную запись пользователя по идентификатору.
// Отсутствие записи возвращается через ok == false и не является ошибкой.
func (s *Store) FindByID(ctx context.Context, id string) (identity.Principal, bool, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return identity.Principal{}, false, nil
		}
		return identity.Principal{}, false, fmt.Errorf("find user by id error, %w", err)
	}
	return user, true, nil
}

// Register - создает новую учетную запись пользователя.
// При попытке создать пользователя с уже занятым email возвращается ошибка
// нарушения уникальности от СУБД.
func (s *Store) Register(ctx context.Context, user identity.Principal) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO users (id, email, first_name, last_name, fathers_name, phone,
			balance_free, balance_game, role, status, comments, password_hash, salt)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, user.ID, user.Email, user.FirstName, user.LastName, user.FathersName, user.Phone,
		user.BalanceFree, user.BalanceGame, user.Role, user.Status, user.Comments,
		user.PasswordHash, user.Salt)
	if err != nil {
		return fmt.Errorf("register user error, %w", err)
	}
	return nil
}

// UpdatePassword - устанавливает новый хэш пароля и свежую соль пользователя.
func (s *Store) UpdatePassword(ctx context.Context, id, hash, salt string) error {
	res, err := s.conn.ExecContext(ctx, `
		UPDATE users
		SET password_hash = $2, salt = $3, updated_at = now()
		WHERE id = $1
	`, id, hash, salt)
	if err != nil {
		return fmt.Errorf("update password error, %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows error, %w", err)
	}
	if count == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}

// UpdateEmail - устанавливает новый email пользователя.
func (s *Store) UpdateEmail(ctx context.Context, id, email string) error {
	res, err := s.conn.ExecContext(ctx, `
		UPDATE users
		SET email = $2, updated_at = now()
		WHERE id = $1
	`, id, email)
	if err != nil {
		return fmt.Errorf("update email error, %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows error, %w", err)
	}
	if count == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}

// Disable - очищает БД, удаляя записи из таблиц.
// Метод необходим для тестирования, чтобы в процессе удалять тестовые записи.
func (s *Store) Disable(ctx context.Context) error {
	_, err := s.conn.ExecContext(ctx, `
		TRUNCATE TABLE users
	`)
	if err != nil {
		return fmt.Errorf("truncate table users error, %w", err)
	}
	return nil
}

// Close - закрывает соединение с СУБД.
func (s *Store) Close() error {
	return s.conn.Close()
}
