package service

import (
	"context"
	"testing"
	"time"

	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	notified chan *repository.Contact
}

func (n *fakeNotifier) NotifyNewInquiry(contact *repository.Contact) error {
	n.notified <- contact
	return nil
}

func TestContactSubmitDefaultsAndNotifies(t *testing.T) {
	repo := newFakeContactRepo()
	broadcaster := &fakeBroadcaster{}
	notifier := &fakeNotifier{notified: make(chan *repository.Contact, 1)}
	svc := NewContactService(repo, broadcaster, notifier)

	contact, err := svc.Submit(context.Background(), &repository.Contact{
		FullName:  "Aisha R.",
		Phone:     "+1 555 0100",
		EventDate: time.Now().AddDate(0, 1, 0),
		Message:   "Bridal makeup for a June wedding.",
	})
	require.NoError(t, err)
	assert.Equal(t, repository.ContactStatusNew, contact.Status)
	assert.NotEmpty(t, contact.ID)

	require.Len(t, broadcaster.created, 1)
	assert.Equal(t, contact.ID, broadcaster.created[0].ID)

	select {
	case notified := <-notifier.notified:
		assert.Equal(t, "Aisha R.", notified.FullName)
	case <-time.After(2 * time.Second):
		t.Fatal("expected inquiry notification")
	}
}

func TestContactSubmitWithoutCollaborators(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), nil, nil)

	contact, err := svc.Submit(context.Background(), &repository.Contact{
		FullName:  "Priya S.",
		Phone:     "+1 555 0101",
		EventDate: time.Now(),
		Message:   "Party makeup inquiry.",
	})
	require.NoError(t, err)
	assert.Equal(t, repository.ContactStatusNew, contact.Status)
}

func TestContactUpdateStatusAndReadState(t *testing.T) {
	repo := newFakeContactRepo()
	broadcaster := &fakeBroadcaster{}
	svc := NewContactService(repo, broadcaster, nil)

	contact, err := svc.Submit(context.Background(), &repository.Contact{
		FullName:  "Aisha R.",
		Phone:     "+1 555 0100",
		EventDate: time.Now(),
		Message:   "Bridal makeup.",
	})
	require.NoError(t, err)

	status := repository.ContactStatusBooked
	isRead := true
	updated, err := svc.Update(context.Background(), contact.ID, UpdateContactInput{
		Status: &status,
		IsRead: &isRead,
	})
	require.NoError(t, err)
	assert.Equal(t, repository.ContactStatusBooked, updated.Status)
	assert.True(t, updated.IsRead)

	require.Len(t, broadcaster.updated, 1)
	assert.Equal(t, contact.ID, broadcaster.updated[0].ID)
}

func TestContactGetByIDNotFound(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), nil, nil)

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByID(context.Background(), "82ce1cb1-2f05-4b3c-9a7a-35e6a5f02e33")
	assert.ErrorIs(t, err, ErrNotFound)
}
