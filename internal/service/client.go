// internal/service/client.go
package service

import (
	"context"

	"github.com/bitvara/backoffice/internal/authz"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ModuleClientManagement is the plan module slug gating client CRUD.
const ModuleClientManagement = "client-management"

// FeatureClientsLimit is the feature limit key counting stored clients.
const FeatureClientsLimit = "clients_limit"

type ClientService struct {
	repo     repository.ClientRepositoryIface
	gate     *authz.Gate
	validate *validator.Validate
}

func NewClientService(repo repository.ClientRepositoryIface, gate *authz.Gate) *ClientService {
	return &ClientService{
		repo:     repo,
		gate:     gate,
		validate: validator.New(),
	}
}

type ClientInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	CompanyName string `json:"company_name"`
	TaxID       string `json:"tax_id"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
	Notes       string `json:"notes"`
}

type ClientListOutput struct {
	Clients []*model.Client `json:"clients"`
	Total   int64           `json:"total"`
}

// checkModule runs the full gate chain for the client-management module:
// membership, active subscription, then module availability.
func (s *ClientService) checkModule(ctx context.Context, user *model.User, org *model.Organization) error {
	if err := s.gate.CheckAccess(ctx, user, org); err != nil {
		return err
	}
	if err := s.gate.CheckSubscription(ctx, org); err != nil {
		return err
	}
	return s.gate.CheckModule(ctx, org, ModuleClientManagement)
}

func (s *ClientService) List(ctx context.Context, user *model.User, org *model.Organization, offset, limit int) (*ClientListOutput, error) {
	if err := s.checkModule(ctx, user, org); err != nil {
		return nil, err
	}
	clients, total, err := s.repo.ListForOrganization(ctx, org.ID, offset, limit)
	if err != nil {
		return nil, err
	}
	return &ClientListOutput{Clients: clients, Total: total}, nil
}

func (s *ClientService) Get(ctx context.Context, user *model.User, org *model.Organization, id uuid.UUID) (*model.Client, error) {
	if err := s.checkModule(ctx, user, org); err != nil {
		return nil, err
	}
	return s.repo.FindForOrganization(ctx, org.ID, id)
}

// Create stores a new client after the plan's clients_limit allows another.
func (s *ClientService) Create(ctx context.Context, user *model.User, org *model.Organization, input ClientInput) (*model.Client, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	if err := s.checkModule(ctx, user, org); err != nil {
		return nil, err
	}
	if err := s.gate.CheckFeatureLimit(ctx, org, FeatureClientsLimit); err != nil {
		return nil, err
	}

	client := &model.Client{
		OrganizationID: org.ID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Address:        input.Address,
		CompanyName:    input.CompanyName,
		TaxID:          input.TaxID,
		Status:         input.Status,
		Notes:          input.Notes,
	}
	if client.Status == "" {
		client.Status = "active"
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, user *model.User, org *model.Organization, id uuid.UUID, input ClientInput) (*model.Client, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	if err := s.checkModule(ctx, user, org); err != nil {
		return nil, err
	}

	client, err := s.repo.FindForOrganization(ctx, org.ID, id)
	if err != nil {
		return nil, err
	}

	client.Name = input.Name
	client.Email = input.Email
	client.Phone = input.Phone
	client.Address = input.Address
	client.CompanyName = input.CompanyName
	client.TaxID = input.TaxID
	if input.Status != "" {
		client.Status = input.Status
	}
	client.Notes = input.Notes

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, user *model.User, org *model.Organization, id uuid.UUID) error {
	if err := s.checkModule(ctx, user, org); err != nil {
		return err
	}
	if _, err := s.repo.FindForOrganization(ctx, org.ID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, org.ID, id)
}
