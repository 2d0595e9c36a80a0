package services

import (
	"context"
	"time"

	"github.com/srstore/storefront-backend/internal/domain"
	"github.com/srstore/storefront-backend/internal/pkg/logger"
	"github.com/srstore/storefront-backend/internal/store"
)

type ContactService interface {
	// CreateContact stamps the message with the current time, stores it
	// and returns the full record. Field contents are stored as given;
	// required-field checks belong to the submitting client.
	CreateContact(ctx context.Context, in domain.ContactInput) domain.Contact
}

type contactService struct {
	store store.Store
	log   *logger.Logger
	now   func() time.Time
}

func NewContactService(st store.Store, log *logger.Logger) ContactService {
	serviceLog := log.With("service", "ContactService")
	return &contactService{store: st, log: serviceLog, now: time.Now}
}

func (cs *contactService) CreateContact(ctx context.Context, in domain.ContactInput) domain.Contact {
	contact := cs.store.CreateContact(in, cs.now().UTC())
	cs.log.Info("Stored contact message", "contact_id", contact.ID, "email", in.Email, "subject", in.Subject)
	return contact
}
