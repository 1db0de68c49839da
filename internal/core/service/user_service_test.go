package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

func TestUserService_List_AdminOnly(t *testing.T) {
	users := newStubUserRepo()
	users.add(&domain.User{ID: "admin_1", Role: domain.RoleAdmin, Email: "a@example.com"})
	users.add(&domain.User{ID: "client_1", Role: domain.RoleClient, Email: "c@example.com"})
	svc := NewUserService(users, newStubInviteStore(), discardLogger)

	if _, err := svc.List(context.Background(), clientActor, false); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for client, got %v", err)
	}

	clients, err := svc.List(context.Background(), adminActor, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 1 || clients[0].ID != "client_1" {
		t.Errorf("clientsOnly filter wrong: %v", clients)
	}
}

func TestUserService_Get_SelfOrAdmin(t *testing.T) {
	users := newStubUserRepo()
	users.add(&domain.User{ID: clientActor.ID, Role: domain.RoleClient, Email: "c@example.com"})
	svc := NewUserService(users, newStubInviteStore(), discardLogger)

	if _, err := svc.Get(context.Background(), clientActor, clientActor.ID); err != nil {
		t.Errorf("self lookup must work: %v", err)
	}
	if _, err := svc.Get(context.Background(), adminActor, clientActor.ID); err != nil {
		t.Errorf("admin lookup must work: %v", err)
	}
	if _, err := svc.Get(context.Background(), otherClient, clientActor.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("foreign client must be forbidden, got %v", err)
	}
}

func TestUserService_Update_PartialFields(t *testing.T) {
	users := newStubUserRepo()
	users.add(&domain.User{ID: clientActor.ID, Name: "Old Name", Company: "Old Co", Role: domain.RoleClient})
	svc := NewUserService(users, newStubInviteStore(), discardLogger)

	name := "New Name"
	updated, err := svc.Update(context.Background(), clientActor, clientActor.ID, ports.UpdateUserInput{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "New Name" {
		t.Errorf("name not updated: %q", updated.Name)
	}
	if updated.Company != "Old Co" {
		t.Errorf("unset field must be left unchanged, got %q", updated.Company)
	}
}

func TestUserService_ToggleActive_Flips(t *testing.T) {
	users := newStubUserRepo()
	users.add(&domain.User{ID: clientActor.ID, Role: domain.RoleClient, IsActive: true})
	svc := NewUserService(users, newStubInviteStore(), discardLogger)

	if _, err := svc.ToggleActive(context.Background(), clientActor, clientActor.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("clients cannot toggle status, got %v", err)
	}

	user, err := svc.ToggleActive(context.Background(), adminActor, clientActor.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.IsActive {
		t.Error("expected account deactivated")
	}
	user, _ = svc.ToggleActive(context.Background(), adminActor, clientActor.ID)
	if !user.IsActive {
		t.Error("expected account reactivated")
	}
}

func TestUserService_CreateClient_IssuesInvite(t *testing.T) {
	users := newStubUserRepo()
	invites := newStubInviteStore()
	svc := NewUserService(users, invites, discardLogger)

	result, err := svc.CreateClient(context.Background(), adminActor, ports.CreateClientInput{
		Name:  "New Client",
		Email: "new@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.InviteToken == "" {
		t.Fatal("expected an invite token")
	}
	userID, err := invites.Redeem(context.Background(), result.InviteToken)
	if err != nil || userID != result.User.ID {
		t.Errorf("token must redeem to the new client: %v, %q", err, userID)
	}
}

func TestUserService_CreateClient_NonAdminForbidden(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubInviteStore(), discardLogger)

	_, err := svc.CreateClient(context.Background(), clientActor, ports.CreateClientInput{Name: "N", Email: "n@example.com"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
