package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
)

type directoryFakes struct {
	clients   *fakeClients
	suppliers *fakeSuppliers
	addresses *fakeAddresses
	contacts  *fakeContacts
	projects  *fakeProjects
}

func newClientUC() (*ClientUseCase, directoryFakes) {
	f := directoryFakes{
		clients:   &fakeClients{byID: map[string]*entity.Client{}},
		suppliers: &fakeSuppliers{byID: map[string]*entity.Supplier{}},
		addresses: &fakeAddresses{byID: map[string]*entity.Address{}},
		contacts:  &fakeContacts{byID: map[string]*entity.Contact{}},
		projects:  &fakeProjects{byID: map[string]*entity.Project{}},
	}
	tx := &fakeTx{clients: f.clients, suppliers: f.suppliers, addresses: f.addresses, contacts: f.contacts}
	return NewClientUseCase(f.clients, f.addresses, f.contacts, f.projects, tx, testShared()), f
}

var actorUser = dto.Principal{UserID: "u1", Role: entity.RoleUser}

func TestClientCreate_ConDireccionYContactoPrincipales(t *testing.T) {
	ctx := context.Background()
	uc, f := newClientUC()

	res, err := uc.Create(ctx, actorUser, dto.CreateClientRequest{
		Name:    "Acme",
		Address: &dto.AddressInput{AddressLine: "1 Nile St", City: "Cairo", Country: "EG"},
		Contact: &dto.ContactInput{Name: "Omar Adel", Email: "omar@acme.test"},
	})
	require.NoError(t, err)
	require.NotNil(t, res.PrimaryAddressID)
	require.NotNil(t, res.PrimaryContactID)
	assert.Equal(t, "OA", res.PrimaryContact.Initials)

	stored := f.clients.byID[res.ID]
	assert.Equal(t, *res.PrimaryAddressID, *stored.PrimaryAddressID)
	addr := f.addresses.byID[*res.PrimaryAddressID]
	require.NotNil(t, addr)
	assert.Equal(t, res.ID, *addr.ClientID)
	assert.Nil(t, addr.SupplierID)

	got, err := uc.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 Nile St", got.PrimaryAddress.AddressLine)
	assert.Equal(t, "Omar Adel", got.PrimaryContact.Name)
}

func TestClientCreate_SinDatosIniciales(t *testing.T) {
	uc, f := newClientUC()
	res, err := uc.Create(context.Background(), actorUser, dto.CreateClientRequest{Name: "Solo"})
	require.NoError(t, err)
	assert.Nil(t, res.PrimaryAddressID)
	assert.Empty(t, f.addresses.byID)
}

func TestClientSetPrimaryAddress_OtroDueno(t *testing.T) {
	ctx := context.Background()
	uc, f := newClientUC()
	a, err := uc.Create(ctx, actorUser, dto.CreateClientRequest{Name: "A", Address: &dto.AddressInput{AddressLine: "x"}})
	require.NoError(t, err)
	b, err := uc.Create(ctx, actorUser, dto.CreateClientRequest{Name: "B"})
	require.NoError(t, err)

	err = uc.SetPrimaryAddress(ctx, actorUser, b.ID, a.PrimaryAddressID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.SetPrimaryAddress(ctx, actorUser, b.ID, strp("no-existe"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// nil limpia la principal
	require.NoError(t, uc.SetPrimaryAddress(ctx, actorUser, a.ID, nil))
	assert.Nil(t, f.clients.byID[a.ID].PrimaryAddressID)
}

func TestClientList_CacheadoHastaMutacion(t *testing.T) {
	ctx := context.Background()
	uc, f := newClientUC()
	c, err := uc.Create(ctx, actorUser, dto.CreateClientRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	_, err = uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, f.clients.lists, "la segunda lectura sale del caché")

	_, err = uc.Update(ctx, actorUser, c.ID, dto.UpdateClientRequest{Notes: strp("vip")})
	require.NoError(t, err)
	_, err = uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, f.clients.lists, "la edición invalida la etiqueta clients")
}

func TestAddress_ListarDuenoInexistente(t *testing.T) {
	_, f := newClientUC()
	uc := NewAddressUseCase(f.addresses, f.contacts, f.clients, f.suppliers, testShared())

	_, err := uc.CreateAddress(context.Background(), actorUser, entity.ForSupplier("nope"), dto.AddressInput{AddressLine: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.CreateAddress(context.Background(), actorUser, entity.Owner{}, dto.AddressInput{AddressLine: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
