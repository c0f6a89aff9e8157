// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "istiqdam/internal/delivery/context"
	"istiqdam/internal/domain/entity"
	domainerrors "istiqdam/internal/domain/errors"
	"istiqdam/internal/domain/repository"
	"istiqdam/internal/domain/service"
	"istiqdam/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	ids         service.IDGenerator
	clock       service.Clock
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	IDs         service.IDGenerator
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		accountRepo: params.AccountRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		ids:         params.IDs,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates against the static credential table. Both the unknown
// email and the wrong password collapse into the same ErrInvalidCredentials,
// and no session or token exists until every check has passed.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email")

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Any("account_id", account.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	now := srv.clock.Now()
	session := &entity.Session{
		ID:        srv.ids.NewID(),
		AccountID: account.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(srv.tokens.AccessTokenDuration()),
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to record session")
	}

	token, err := srv.tokens.GenerateToken(service.Claims{
		AccountID: account.ID,
		Role:      account.Role,
		OfficeID:  account.OfficeID,
		SessionID: session.ID,
	})
	if err != nil {
		// Roll the session back so a failed login leaves no state behind.
		_ = srv.sessionRepo.Delete(ctx, session.ID)

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("Login succeeded",
		slog.Any("account_id", account.ID),
		slog.String("role", account.Role.String()))

	return &usecase.LoginOutput{
		AccessToken: token,
		Account:     toAccountOutput(account),
	}, nil
}

// Logout removes the login session unconditionally. Removing an already
// removed session is still success.
func (srv *sessionService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := srv.sessionRepo.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("Logout", slog.Any("session_id", sessionID))

	return nil
}

// CurrentAccount returns the public view of the authenticated account.
func (srv *sessionService) CurrentAccount(ctx context.Context, accountID uuid.UUID) (*usecase.AccountOutput, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	out := toAccountOutput(account)

	return &out, nil
}

func toAccountOutput(account *entity.Account) usecase.AccountOutput {
	return usecase.AccountOutput{
		ID:       account.ID,
		Email:    account.Email,
		Role:     account.Role,
		OfficeID: account.OfficeID,
	}
}
