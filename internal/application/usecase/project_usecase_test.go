package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
)

type projectFakes struct {
	projects  *fakeProjects
	comments  *fakeComments
	clients   *fakeClients
	users     *fakeUsers
	items     *fakeItems
	suppliers *fakeSuppliers
	lines     *fakeLineItems
	addresses *fakeAddresses
}

func newProjectFakes() projectFakes {
	return projectFakes{
		projects: &fakeProjects{byID: map[string]*entity.Project{}},
		comments: &fakeComments{byID: map[string]*entity.ProjectComment{}},
		clients: &fakeClients{byID: map[string]*entity.Client{
			"c1": {ID: "c1", Name: "Acme", RegistrationNumber: "RN-1", PrimaryAddressID: strp("a1")},
		}},
		users: &fakeUsers{byID: map[string]*entity.User{
			"u1": {ID: "u1", Username: "maria", Name: "María", Role: entity.RoleUser, Active: true},
		}},
		items: &fakeItems{byID: map[string]*entity.Item{
			"i1": {ID: "i1", Name: "Cable", Make: "Elsewedy", MPN: "CB-10"},
		}},
		suppliers: &fakeSuppliers{byID: map[string]*entity.Supplier{
			"s1": {ID: "s1", Name: "Proveedor Uno"},
		}},
		lines: &fakeLineItems{},
		addresses: &fakeAddresses{byID: map[string]*entity.Address{
			"a1": {ID: "a1", AddressLine: "1 Nile St", City: "Cairo", Owner: entity.ForClient("c1")},
		}},
	}
}

func (f projectFakes) projectUC() *ProjectUseCase {
	return NewProjectUseCase(f.projects, f.comments, f.clients, f.users, testShared())
}

func (f projectFakes) lineItemUC(pdf *fakePDF) *LineItemUseCase {
	return NewLineItemUseCase(f.lines, f.projects, f.items, f.suppliers, f.clients, f.addresses, pdf, testShared())
}

func TestProjectCreate_ResponsablePorDefecto(t *testing.T) {
	f := newProjectFakes()
	res, err := f.projectUC().Create(context.Background(), actorUser, dto.CreateProjectRequest{
		Name: "Subestación", ClientID: "c1", StartDate: "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", res.OwnerID)
	assert.Equal(t, "proposal", res.StatusName)
	assert.Equal(t, "2024-03-01", res.StartDate)
	assert.Nil(t, res.EndDate)
}

func TestProjectCreate_Validaciones(t *testing.T) {
	ctx := context.Background()
	uc := newProjectFakes().projectUC()
	bad := 9

	cases := map[string]dto.CreateProjectRequest{
		"fin antes de inicio":     {Name: "P", ClientID: "c1", StartDate: "2024-03-10", EndDate: "2024-03-01"},
		"cliente inexistente":     {Name: "P", ClientID: "c9", StartDate: "2024-03-10"},
		"responsable inexistente": {Name: "P", ClientID: "c1", OwnerID: "u9", StartDate: "2024-03-10"},
		"estado desconocido":      {Name: "P", ClientID: "c1", Status: &bad, StartDate: "2024-03-10"},
		"fecha mal formada":       {Name: "P", ClientID: "c1", StartDate: "10/03/2024"},
	}
	for name, in := range cases {
		_, err := uc.Create(ctx, actorUser, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestProjectDeleteComment_SoloAutorOAdmin(t *testing.T) {
	ctx := context.Background()
	f := newProjectFakes()
	uc := f.projectUC()
	p, err := uc.Create(ctx, actorUser, dto.CreateProjectRequest{Name: "P", ClientID: "c1", StartDate: "2024-01-01"})
	require.NoError(t, err)
	c, err := uc.AddComment(ctx, actorUser, p.ID, dto.CreateCommentRequest{Text: "hola"})
	require.NoError(t, err)

	otro := dto.Principal{UserID: "u2", Role: entity.RoleUser}
	assert.ErrorIs(t, uc.DeleteComment(ctx, otro, p.ID, c.ID), domain.ErrForbidden)
	assert.ErrorIs(t, uc.DeleteComment(ctx, actorUser, "otro-proyecto", c.ID), domain.ErrNotFound)

	admin := dto.Principal{UserID: "u3", Role: entity.RoleAdmin}
	require.NoError(t, uc.DeleteComment(ctx, admin, p.ID, c.ID))
	assert.Empty(t, f.comments.byID)
}

func TestLineItemAdd_CompraExigeProveedor(t *testing.T) {
	ctx := context.Background()
	f := newProjectFakes()
	f.projects.byID["p1"] = &entity.Project{ID: "p1", ClientID: "c1"}
	uc := f.lineItemUC(&fakePDF{})
	in := dto.LineItemRequest{ItemID: "i1", Quantity: 2, Price: decimal.NewFromInt(10), Currency: "USD"}

	_, err := uc.Add(ctx, actorUser, entity.KindPurchase, "p1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.SupplierID = strp("s1")
	res, err := uc.Add(ctx, actorUser, entity.KindPurchase, "p1", in)
	require.NoError(t, err)
	assert.Equal(t, "Proveedor Uno", res.SupplierName)
	assert.True(t, decimal.NewFromInt(20).Equal(res.Total))

	_, err = uc.Add(ctx, actorUser, entity.LineItemKind("otro"), "p1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.Currency = "XXX"
	_, err = uc.Add(ctx, actorUser, entity.KindSale, "p1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLineItemAdd_LimitesDeColumnas(t *testing.T) {
	ctx := context.Background()
	f := newProjectFakes()
	f.projects.byID["p1"] = &entity.Project{ID: "p1", ClientID: "c1"}
	uc := f.lineItemUC(&fakePDF{})
	base := dto.LineItemRequest{ItemID: "i1", Quantity: 1, Price: decimal.NewFromInt(1), Currency: "USD"}

	in := base
	in.Price = decimal.RequireFromString("1.005")
	_, err := uc.Add(ctx, actorUser, entity.KindSale, "p1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = base
	in.Price = decimal.New(1, 12)
	_, err = uc.Add(ctx, actorUser, entity.KindSale, "p1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = base
	in.Quantity = 3000000000
	_, err = uc.Add(ctx, actorUser, entity.KindSale, "p1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = base
	in.Price = decimal.RequireFromString("999999999999.99")
	res, err := uc.Add(ctx, actorUser, entity.KindSale, "p1", in)
	require.NoError(t, err)
	assert.True(t, in.Price.Equal(res.Price))
}

func TestLineItemList_TotalesPorMoneda(t *testing.T) {
	ctx := context.Background()
	f := newProjectFakes()
	f.projects.byID["p1"] = &entity.Project{ID: "p1", ClientID: "c1"}
	uc := f.lineItemUC(&fakePDF{})

	add := func(qty int, price, cur string) {
		_, err := uc.Add(ctx, actorUser, entity.KindSale, "p1", dto.LineItemRequest{
			ItemID: "i1", Quantity: qty, Price: decimal.RequireFromString(price), Currency: cur,
		})
		require.NoError(t, err)
	}
	add(2, "10.50", "USD")
	add(1, "4.50", "USD")
	add(3, "100", "EGP")

	res, err := uc.List(ctx, entity.KindSale, "p1")
	require.NoError(t, err)
	assert.Len(t, res.Items, 3)
	assert.True(t, decimal.RequireFromString("25.5").Equal(res.Totals["USD"]))
	assert.True(t, decimal.NewFromInt(300).Equal(res.Totals["EGP"]))

	other, err := uc.List(ctx, entity.KindOffer, "p1")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestOfferPDF_ArmaDocumento(t *testing.T) {
	ctx := context.Background()
	f := newProjectFakes()
	f.projects.byID["p1"] = &entity.Project{ID: "p1", Name: "Planta Solar 2", ClientID: "c1"}
	pdf := &fakePDF{}
	uc := f.lineItemUC(pdf)
	fixed := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	_, err := uc.Add(ctx, actorUser, entity.KindOffer, "p1", dto.LineItemRequest{
		ItemID: "i1", Quantity: 4, Price: decimal.NewFromInt(25), Currency: "EUR",
	})
	require.NoError(t, err)

	out, name, err := uc.OfferPDF(ctx, "p1", "es")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(out))
	assert.Equal(t, "offer-planta-solar-2.pdf", name)

	require.NotNil(t, pdf.got)
	assert.Equal(t, "es", pdf.got.Lang)
	assert.Equal(t, "Acme", pdf.got.ClientName)
	assert.Equal(t, "1 Nile St, Cairo", pdf.got.ClientAddress)
	assert.Equal(t, fixed, pdf.got.Date)
	require.Len(t, pdf.got.Lines, 1)
	assert.Equal(t, "Elsewedy", pdf.got.Lines[0].Make)
	assert.True(t, decimal.NewFromInt(100).Equal(pdf.got.Totals["EUR"]))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "planta-solar-2", slug("  Planta Solar #2 "))
	assert.Equal(t, "project", slug("مشروع"))
}
