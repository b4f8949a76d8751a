package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the users table and the
// role-specialization tables (researchers, institutions).
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The base row and the role-specialization row are inserted inside one
// transaction: a failure at any point rolls back both, so no orphaned
// profile row can remain.
//
// Error handling:
//   - unique violations → the matching field-level sentinel
//     ([ErrEmailAlreadyExists], [ErrUsernameAlreadyExists],
//     [ErrRegistrationNumberAlreadyExists]).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: begin transaction")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	row := tx.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash, user.Role)
	if err = row.Scan(&user.UserID, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")

		if mapped := mapConstraintError(err); mapped != err {
			return models.User{}, mapped
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = r.insertSpecialization(ctx, tx, user); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting specialization")

		if mapped := mapConstraintError(err); mapped != err {
			return models.User{}, mapped
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: commit transaction")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// insertSpecialization writes the role-specific payload row inside the
// caller's transaction. Common accounts have no payload.
func (r *userRepository) insertSpecialization(ctx context.Context, tx *sql.Tx, user models.User) error {
	switch user.Role {
	case models.RoleResearcher:
		researcher := user.Researcher
		if researcher == nil {
			researcher = &models.Researcher{}
		}
		_, err := tx.ExecContext(ctx, createResearcher,
			user.UserID, researcher.BirthDate, researcher.AcademicBackground,
			researcher.InstitutionName, researcher.CVLink, researcher.InstitutionID)
		return err

	case models.RoleInstitution:
		institution := user.Institution
		if institution == nil {
			institution = &models.Institution{}
		}
		_, err := tx.ExecContext(ctx, createInstitution,
			user.UserID, institution.LegalName, institution.RegistrationNumber,
			institution.Address, institution.Contact, institution.Website)
		return err
	}

	return nil
}

// FindUserByUsername retrieves an account by its unique username, including
// the role-specialization payload.
//
// Error handling:
//   - no matching row → [ErrNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByID retrieves an account by identifier, including the
// role-specialization payload. Returns [ErrNotFound] when absent.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := r.attachSpecialization(ctx, &user); err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: loading specialization")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// attachSpecialization loads the role payload for the user's role. A missing
// payload row is tolerated: the base account remains usable.
func (r *userRepository) attachSpecialization(ctx context.Context, user *models.User) error {
	switch user.Role {
	case models.RoleResearcher:
		var researcher models.Researcher
		researcher.UserID = user.UserID

		row := r.db.QueryRowContext(ctx, findResearcherByUserID, user.UserID)
		err := row.Scan(&researcher.BirthDate, &researcher.AcademicBackground,
			&researcher.InstitutionName, &researcher.CVLink, &researcher.InstitutionID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		user.Researcher = &researcher

	case models.RoleInstitution:
		var institution models.Institution
		institution.UserID = user.UserID

		row := r.db.QueryRowContext(ctx, findInstitutionByUserID, user.UserID)
		err := row.Scan(&institution.LegalName, &institution.RegistrationNumber,
			&institution.Address, &institution.Contact, &institution.Website)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		user.Institution = &institution
	}

	return nil
}

// UpdateProfile updates the mutable base fields and the role payload in one
// transaction, then returns the fresh account state.
//
// Error handling mirrors [userRepository.CreateUser]: unique violations map
// to field-level sentinels, everything else wraps as an unexpected DB error.
func (r *userRepository) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: begin transaction")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err = tx.ExecContext(ctx, updateUserEmail, user.UserID, user.Email); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: updating user")

		if mapped := mapConstraintError(err); mapped != err {
			return models.User{}, mapped
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	switch user.Role {
	case models.RoleResearcher:
		if user.Researcher != nil {
			researcher := user.Researcher
			_, err = tx.ExecContext(ctx, updateResearcher,
				user.UserID, researcher.BirthDate, researcher.AcademicBackground,
				researcher.InstitutionName, researcher.CVLink, researcher.InstitutionID)
		}
	case models.RoleInstitution:
		if user.Institution != nil {
			institution := user.Institution
			_, err = tx.ExecContext(ctx, updateInstitution,
				user.UserID, institution.LegalName, institution.RegistrationNumber,
				institution.Address, institution.Contact, institution.Website)
		}
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: updating specialization")

		if mapped := mapConstraintError(err); mapped != err {
			return models.User{}, mapped
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: commit transaction")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return r.FindUserByID(ctx, user.UserID)
}
