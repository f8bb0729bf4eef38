package interfaces

import (
	"context"
	"crm_imobiliario/internal/domain/entities"
)

//go:generate mockgen -source=lead_repository_interface.go -destination=mocks/lead_repository_interface_mock.go -package=mock_interfaces

// ILeadRepository abstracts the remote "leads" table.
//
// The lead store relies on it to:
//   - select every lead newest first (created_at descending)
//   - insert a lead, letting the store assign id and timestamps
//   - apply a partial update by id
//   - delete by id (deleting a missing id is not an error)
//
// A non-empty filter.UserID scopes Update and Delete to that owner's rows,
// the way row-level security does on the hosted table: another owner's lead
// behaves exactly like a missing one.

type ILeadRepository interface {
	List(ctx context.Context, filter entities.LeadFilter) ([]entities.Lead, error)
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	// Update returns a zero Lead and a nil error when id does not exist.
	Update(ctx context.Context, filter entities.LeadFilter, id string, patch entities.LeadPatch) (entities.Lead, error)
	Delete(ctx context.Context, filter entities.LeadFilter, id string) error
}
