package service

import (
	"context"
	"log"

	"verify-server/model"
	"verify-server/repository"
	"verify-server/util"
)

const mailSubject = "Your Verification Code"

// Dispatcher delivers one message to a destination address and returns an
// opaque receipt on success.
type Dispatcher interface {
	Dispatch(to, subject, body string) (receipt string, err error)
}

// VerificationService is the per-request issuance flow. Every call ends in
// exactly one model.ErrorCode; no branch is retried internally.
type VerificationService struct {
	store      repository.CodeStore
	dispatcher Dispatcher
}

// NewVerificationService injects dependencies
func NewVerificationService(store repository.CodeStore, dispatcher Dispatcher) *VerificationService {
	return &VerificationService{
		store:      store,
		dispatcher: dispatcher,
	}
}

// IssueCode orchestrates the entire flow: validate, check store
// connectivity, query prior state, generate, persist with TTL, dispatch.
func (s *VerificationService) IssueCode(ctx context.Context, email string) model.ErrorCode {
	// 1. Validate the destination before touching any dependency
	if !util.IsValidEmail(email) {
		log.Printf("rejected invalid email %q", email)
		return model.ErrInvalidEmail
	}

	// 2. Fail fast when the store is down; background reconnection is
	// already working on it, retrying here would just stall the caller
	if !s.store.IsConnected() {
		log.Println("code store disconnected, refusing issuance")
		return model.ErrRedis
	}

	key := model.OwnerKey(email)

	// 3. Look up any live code. Informational only: a new issuance always
	// overwrites, it never blocks on an unexpired predecessor.
	if _, ok := s.store.Get(ctx, key); ok {
		log.Printf("unexpired code for %s will be overwritten", email)
	}

	// 4. Generate and persist before anything leaves the process. A code is
	// never dispatched unless it is already stored with its TTL.
	vc := model.NewVerificationCode(email, util.GenerateVerifyCode())
	if !s.store.SetWithExpiry(ctx, vc.OwnerKey, vc.Code, vc.TTL) {
		log.Printf("failed to persist code for %s", email)
		return model.ErrRedis
	}

	// 5. Dispatch. On failure the persisted code stays valid but unseen;
	// the user simply requests another one.
	receipt, err := s.dispatcher.Dispatch(email, mailSubject, VerifyCodeBody(vc.Code))
	if err != nil {
		log.Printf("failed to send code to %s: %v", email, err)
		return model.ErrException
	}
	log.Printf("verification code sent to %s (receipt %s)", email, receipt)

	return model.ErrSuccess
}
