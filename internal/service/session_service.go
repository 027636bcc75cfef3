package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"crypto-wallet-client/internal/core/domain"
	"crypto-wallet-client/internal/core/ports"
	"crypto-wallet-client/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// SessionService implements ports.SessionController. The in-memory identity
// is always a pure decoding of the last stored credential; there is no second
// source of truth to diverge from.
type SessionService struct {
	backend  ports.BackendClient
	creds    ports.CredentialStore
	decoder  ports.TokenDecoder
	validate *validator.Validate
	log      zerolog.Logger

	mu       sync.RWMutex
	identity *domain.Identity
}

// NewSessionService creates the session controller and rehydrates from any
// credential persisted by a prior run. A malformed or expired stored token is
// treated as a logout, not an error: the credential is cleared and the
// session starts Unauthenticated.
func NewSessionService(
	backend ports.BackendClient,
	creds ports.CredentialStore,
	decoder ports.TokenDecoder,
	validate *validator.Validate,
	log zerolog.Logger,
) *SessionService {
	s := &SessionService{
		backend:  backend,
		creds:    creds,
		decoder:  decoder,
		validate: validate,
		log:      log.With().Str("component", "session").Logger(),
	}
	s.rehydrate()
	return s
}

func (s *SessionService) rehydrate() {
	token, err := s.creds.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("could not read stored credential")
		return
	}
	if token == "" {
		return
	}

	identity, err := s.decoder.Decode(token)
	if err != nil {
		s.log.Info().Err(err).Msg("stored credential rejected, clearing session")
		if clearErr := s.creds.Clear(); clearErr != nil {
			s.log.Warn().Err(clearErr).Msg("could not clear stale credential")
		}
		return
	}

	s.identity = identity
	s.log.Info().Str("username", identity.Username).Msg("session rehydrated")
}

// Login exchanges credentials for a token, persists it, and derives the
// identity. On failure the session stays Unauthenticated and the
// backend-reported reason (or the transport message) is surfaced.
func (s *SessionService) Login(ctx context.Context, username, password string) (*domain.Identity, error) {
	resp, err := s.backend.Login(ctx, username, password)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "BKD_001" {
			return nil, apperror.ErrLoginFailed(appErr.Message)
		}
		return nil, err
	}

	identity, err := s.decoder.Decode(resp.AccessToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken(fmt.Errorf("decoding issued token: %w", err))
	}

	if err := s.creds.Save(resp.AccessToken); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persisting credential: %w", err))
	}

	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()

	s.log.Info().Str("username", identity.Username).Int64("user_id", identity.ID).Msg("logged in")
	return identity, nil
}

// Register validates the form and delegates to the backend. Registration
// never changes session state; there is no auto-login.
func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) error {
	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return apperror.Validation(fmt.Sprintf("invalid %s: failed %q rule", first.Field(), first.Tag()))
		}
		return apperror.Validation(err.Error())
	}

	req := ports.RegisterRequest{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Password:  input.Password,
		Role:      "user",
		PublicKey: input.PublicKey,
	}
	if err := s.backend.Register(ctx, req); err != nil {
		return err
	}

	s.log.Info().Str("username", input.Username).Msg("registered")
	return nil
}

// Logout clears the stored credential and the derived identity
// unconditionally.
func (s *SessionService) Logout() error {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()

	if err := s.creds.Clear(); err != nil {
		return apperror.InternalError(fmt.Errorf("clearing credential: %w", err))
	}
	s.log.Info().Msg("logged out")
	return nil
}

// Identity returns the current decoded identity, or nil when
// Unauthenticated.
func (s *SessionService) Identity() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}
