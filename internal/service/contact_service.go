package service

import (
	"context"
	"log"

	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/google/uuid"
)

// ============================================
// Contact Service
// ============================================

type UpdateContactInput struct {
	Status *string
	IsRead *bool
}

type ContactService interface {
	// Submit records a public contact-form submission, announces it on the
	// admin feed, and (when configured) emails the studio.
	Submit(ctx context.Context, contact *repository.Contact) (*repository.Contact, error)
	List(ctx context.Context) ([]*repository.Contact, error)
	GetByID(ctx context.Context, id string) (*repository.Contact, error)
	Update(ctx context.Context, id string, in UpdateContactInput) (*repository.Contact, error)
	Delete(ctx context.Context, id string) error
}

type contactService struct {
	repo        repository.ContactRepository
	broadcaster Broadcaster
	notifier    InquiryNotifier
}

func NewContactService(repo repository.ContactRepository, broadcaster Broadcaster, notifier InquiryNotifier) ContactService {
	return &contactService{repo: repo, broadcaster: broadcaster, notifier: notifier}
}

func (s *contactService) Submit(ctx context.Context, contact *repository.Contact) (*repository.Contact, error) {
	if contact.Status == "" {
		contact.Status = repository.ContactStatusNew
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.InquiryCreated(contact)
	}

	// Email is best-effort; the submitter already got their confirmation.
	if s.notifier != nil {
		go func(c repository.Contact) {
			if err := s.notifier.NotifyNewInquiry(&c); err != nil {
				log.Printf("[Contact] Failed to send inquiry notification: %v", err)
			}
		}(*contact)
	}

	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]*repository.Contact, error) {
	return s.repo.FindAll(ctx)
}

func (s *contactService) GetByID(ctx context.Context, id string) (*repository.Contact, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrNotFound
	}
	return contact, nil
}

func (s *contactService) Update(ctx context.Context, id string, in UpdateContactInput) (*repository.Contact, error) {
	contact, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		contact.Status = *in.Status
	}
	if in.IsRead != nil {
		contact.IsRead = *in.IsRead
	}

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.InquiryUpdated(contact)
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	contact, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, contact.ID)
}
