package organization

import "context"

type OrganizationService interface {
	Create(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error)
	ListOwned(ctx context.Context) ([]OrganizationResponse, error)
	Get(ctx context.Context, id string) (OrganizationResponse, error)
	Update(ctx context.Context, id string, req UpdateOrganizationRequest) (OrganizationResponse, error)
}
