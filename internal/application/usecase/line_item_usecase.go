package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/ports"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
)

// LineItemUseCase ítems de proyecto (lista de materiales, compras, ventas y oferta)
// y el PDF de la oferta comercial.
type LineItemUseCase struct {
	repo      repository.LineItemRepository
	projects  repository.ProjectRepository
	items     repository.ItemRepository
	suppliers repository.SupplierRepository
	clients   repository.ClientRepository
	addresses repository.AddressRepository
	pdf       ports.OfferPDFGenerator
	now       func() time.Time
	Shared
}

// NewLineItemUseCase construye el caso de uso de ítems de proyecto.
func NewLineItemUseCase(
	repo repository.LineItemRepository,
	projects repository.ProjectRepository,
	items repository.ItemRepository,
	suppliers repository.SupplierRepository,
	clients repository.ClientRepository,
	addresses repository.AddressRepository,
	pdf ports.OfferPDFGenerator,
	shared Shared,
) *LineItemUseCase {
	return &LineItemUseCase{
		repo: repo, projects: projects, items: items, suppliers: suppliers,
		clients: clients, addresses: addresses, pdf: pdf, now: time.Now, Shared: shared,
	}
}

// Add agrega un ítem al proyecto en la lista kind.
func (uc *LineItemUseCase) Add(ctx context.Context, actor dto.Principal, kind entity.LineItemKind, projectID string, in dto.LineItemRequest) (*dto.LineItemResponse, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.project(ctx, projectID); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	li := &entity.LineItem{
		ID:        uuid.New().String(),
		Kind:      kind,
		ProjectID: projectID,
		CreatedBy: actor.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.apply(ctx, li, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, li); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagProjects, ports.TagItems)
	return toLineItemResponse(li), nil
}

// apply valida la entrada y la copia sobre li, resolviendo nombres de ítem y proveedor.
func (uc *LineItemUseCase) apply(ctx context.Context, li *entity.LineItem, in dto.LineItemRequest) error {
	if !entity.ValidQuantity(in.Quantity) || !entity.ValidPrice(in.Price) || !entity.ValidCurrency(in.Currency) {
		return domain.ErrInvalidInput
	}
	item, err := uc.items.GetByID(ctx, in.ItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrInvalidInput
	}
	supplierID := emptyToNil(in.SupplierID)
	if li.Kind.RequiresSupplier() && supplierID == nil {
		return domain.ErrInvalidInput
	}
	li.SupplierName = ""
	if supplierID != nil {
		s, err := uc.suppliers.GetByID(ctx, *supplierID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrInvalidInput
		}
		li.SupplierName = s.Name
	}
	li.ItemID = item.ID
	li.ItemName = item.Name
	li.SupplierID = supplierID
	li.Quantity = in.Quantity
	li.Price = in.Price
	li.Currency = in.Currency
	return nil
}

// List devuelve los ítems de la lista kind con totales por moneda.
func (uc *LineItemUseCase) List(ctx context.Context, kind entity.LineItemKind, projectID string) (*dto.LineItemListResponse, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.project(ctx, projectID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByProject(ctx, kind, projectID)
	if err != nil {
		return nil, err
	}
	out := &dto.LineItemListResponse{Items: make([]dto.LineItemResponse, 0, len(list)), Totals: TotalsByCurrency(list)}
	for _, li := range list {
		out.Items = append(out.Items, *toLineItemResponse(li))
	}
	return out, nil
}

// Update reemplaza cantidad, precio, moneda, ítem y proveedor.
func (uc *LineItemUseCase) Update(ctx context.Context, actor dto.Principal, kind entity.LineItemKind, projectID, id string, in dto.LineItemRequest) (*dto.LineItemResponse, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	li, err := uc.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if li == nil || li.ProjectID != projectID {
		return nil, nil
	}
	if err := uc.apply(ctx, li, in); err != nil {
		return nil, err
	}
	li.UpdatedBy = &actor.UserID
	li.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, li); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagProjects, ports.TagItems)
	return toLineItemResponse(li), nil
}

// Delete borra un ítem del proyecto.
func (uc *LineItemUseCase) Delete(ctx context.Context, kind entity.LineItemKind, projectID, id string) error {
	if !kind.Valid() {
		return domain.ErrInvalidInput
	}
	li, err := uc.repo.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}
	if li == nil || li.ProjectID != projectID {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, kind, id); err != nil {
		return err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagProjects, ports.TagItems)
	return nil
}

// OfferPDF genera la oferta comercial del proyecto con los ítems de oferta.
// Devuelve los bytes y un nombre de archivo sugerido.
func (uc *LineItemUseCase) OfferPDF(ctx context.Context, projectID, lang string) ([]byte, string, error) {
	defer uc.logger().Timer("offer_pdf")()

	project, err := uc.project(ctx, projectID)
	if err != nil {
		return nil, "", err
	}
	client, err := uc.clients.GetByID(ctx, project.ClientID)
	if err != nil {
		return nil, "", err
	}
	if client == nil {
		return nil, "", domain.ErrNotFound
	}
	list, err := uc.repo.ListByProject(ctx, entity.KindOffer, projectID)
	if err != nil {
		return nil, "", err
	}

	doc := &ports.OfferDocument{
		Lang:               lang,
		ProjectName:        project.Name,
		ClientName:         client.Name,
		ClientRegistration: client.RegistrationNumber,
		Date:               uc.now(),
		Lines:              make([]ports.OfferLine, 0, len(list)),
		Totals:             TotalsByCurrency(list),
	}
	if client.PrimaryAddressID != nil {
		a, err := uc.addresses.GetByID(ctx, *client.PrimaryAddressID)
		if err != nil {
			return nil, "", err
		}
		if a != nil {
			doc.ClientAddress = joinNonEmpty(", ", a.AddressLine, a.City, a.Country)
		}
	}
	catalog := make(map[string]*entity.Item, len(list))
	for _, li := range list {
		item, ok := catalog[li.ItemID]
		if !ok {
			if item, err = uc.items.GetByID(ctx, li.ItemID); err != nil {
				return nil, "", err
			}
			catalog[li.ItemID] = item
		}
		line := ports.OfferLine{
			ItemName:  li.ItemName,
			Quantity:  li.Quantity,
			UnitPrice: li.Price,
			Total:     li.Total(),
			Currency:  li.Currency,
		}
		if item != nil {
			line.Make = item.Make
			line.MPN = item.MPN
		}
		doc.Lines = append(doc.Lines, line)
	}

	pdf, err := uc.pdf.GenerateOfferPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("generar oferta: %w", err)
	}
	uc.logger().Info().Str("project_id", projectID).Int("lines", len(doc.Lines)).Msg("oferta comercial generada")
	return pdf, "offer-" + slug(project.Name) + ".pdf", nil
}

func (uc *LineItemUseCase) project(ctx context.Context, id string) (*entity.Project, error) {
	p, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// TotalsByCurrency suma Quantity*Price agrupando por moneda. Nunca mezcla monedas.
func TotalsByCurrency(list []*entity.LineItem) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, li := range list {
		totals[li.Currency] = totals[li.Currency].Add(li.Total())
	}
	return totals
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, sep)
}

// slug nombre de archivo seguro: letras y dígitos ASCII, el resto como guion.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "project"
	}
	return out
}

func toLineItemResponse(li *entity.LineItem) *dto.LineItemResponse {
	return &dto.LineItemResponse{
		ID:           li.ID,
		Kind:         string(li.Kind),
		ProjectID:    li.ProjectID,
		ItemID:       li.ItemID,
		ItemName:     li.ItemName,
		SupplierID:   li.SupplierID,
		SupplierName: li.SupplierName,
		Quantity:     li.Quantity,
		Price:        li.Price,
		Currency:     li.Currency,
		Total:        li.Total(),
		CreatedBy:    li.CreatedBy,
		CreatedAt:    li.CreatedAt,
		UpdatedAt:    li.UpdatedAt,
	}
}
