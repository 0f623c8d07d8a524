package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"github.com/seifmegahed/daftar/internal/application/ports"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
	"github.com/seifmegahed/daftar/internal/infrastructure/cache"
	"github.com/seifmegahed/daftar/pkg/logger"
)

// ── fakes de repositorios en memoria ──────────────────────────────────────────
// Embeben la interfaz: un método no implementado entra en pánico y delata el uso.

type fakeUsers struct {
	repository.UserRepository
	byID map[string]*entity.User
}

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error {
	for _, x := range f.byID {
		if x.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUsers) Update(_ context.Context, u *entity.User) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id, hash string) error {
	f.byID[id].PasswordHash = hash
	return nil
}

func (f *fakeUsers) List(_ context.Context, p repository.ListParams) ([]*entity.User, int, error) {
	out := make([]*entity.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, len(out), nil
}

func (f *fakeUsers) CountAdmins(context.Context) (int, error) {
	n := 0
	for _, u := range f.byID {
		if u.IsAdmin() && u.Active {
			n++
		}
	}
	return n, nil
}

type fakeSessions struct {
	repository.SessionRepository
	deletedFor []string
}

func (f *fakeSessions) DeleteByUser(_ context.Context, userID string) error {
	f.deletedFor = append(f.deletedFor, userID)
	return nil
}

type fakeClients struct {
	repository.ClientRepository
	byID  map[string]*entity.Client
	lists int
}

func (f *fakeClients) Create(_ context.Context, c *entity.Client) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeClients) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClients) Update(_ context.Context, c *entity.Client) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeClients) SetPrimaryAddress(_ context.Context, id string, addressID *string, _ string) error {
	f.byID[id].PrimaryAddressID = addressID
	return nil
}

func (f *fakeClients) SetPrimaryContact(_ context.Context, id string, contactID *string, _ string) error {
	f.byID[id].PrimaryContactID = contactID
	return nil
}

func (f *fakeClients) List(_ context.Context, _ repository.ListParams) ([]*entity.Client, int, error) {
	f.lists++
	out := make([]*entity.Client, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, len(out), nil
}

type fakeSuppliers struct {
	repository.SupplierRepository
	byID map[string]*entity.Supplier
}

func (f *fakeSuppliers) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return f.byID[id], nil
}

type fakeAddresses struct {
	repository.AddressRepository
	byID map[string]*entity.Address
}

func (f *fakeAddresses) Create(_ context.Context, a *entity.Address) error {
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAddresses) GetByID(_ context.Context, id string) (*entity.Address, error) {
	return f.byID[id], nil
}

type fakeContacts struct {
	repository.ContactRepository
	byID map[string]*entity.Contact
}

func (f *fakeContacts) Create(_ context.Context, c *entity.Contact) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeContacts) GetByID(_ context.Context, id string) (*entity.Contact, error) {
	return f.byID[id], nil
}

type fakeProjects struct {
	repository.ProjectRepository
	byID map[string]*entity.Project
}

func (f *fakeProjects) Create(_ context.Context, p *entity.Project) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProjects) GetByID(_ context.Context, id string) (*entity.Project, error) {
	return f.byID[id], nil
}

type fakeComments struct {
	repository.CommentRepository
	byID map[string]*entity.ProjectComment
}

func (f *fakeComments) Create(_ context.Context, c *entity.ProjectComment) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeComments) GetByID(_ context.Context, id string) (*entity.ProjectComment, error) {
	return f.byID[id], nil
}

func (f *fakeComments) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeItems struct {
	repository.ItemRepository
	byID map[string]*entity.Item
}

func (f *fakeItems) GetByID(_ context.Context, id string) (*entity.Item, error) {
	return f.byID[id], nil
}

type fakeLineItems struct {
	repository.LineItemRepository
	rows []*entity.LineItem
}

func (f *fakeLineItems) Create(_ context.Context, li *entity.LineItem) error {
	f.rows = append(f.rows, li)
	return nil
}

func (f *fakeLineItems) ListByProject(_ context.Context, kind entity.LineItemKind, projectID string) ([]*entity.LineItem, error) {
	var out []*entity.LineItem
	for _, li := range f.rows {
		if li.Kind == kind && li.ProjectID == projectID {
			out = append(out, li)
		}
	}
	return out, nil
}

type fakeDocuments struct {
	repository.DocumentRepository
	byID      map[string]*entity.Document
	relations map[string]*entity.DocumentRelation
	failWith  error
}

func (f *fakeDocuments) Create(_ context.Context, d *entity.Document) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.byID[d.ID] = d
	return nil
}

func (f *fakeDocuments) GetByID(_ context.Context, id string) (*entity.Document, error) {
	return f.byID[id], nil
}

func (f *fakeDocuments) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeDocuments) CreateRelation(_ context.Context, r *entity.DocumentRelation) error {
	f.relations[r.ID] = r
	return nil
}

type fakeRequests struct {
	repository.UserRequestRepository
	byID map[string]*entity.UserRequest
}

func (f *fakeRequests) Create(_ context.Context, r *entity.UserRequest) error {
	f.byID[r.ID] = r
	return nil
}

func (f *fakeRequests) GetByID(_ context.Context, id string) (*entity.UserRequest, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRequests) Resolve(_ context.Context, r *entity.UserRequest) error {
	cur := f.byID[r.ID]
	if cur == nil || !cur.Pending() {
		return domain.ErrConflict
	}
	f.byID[r.ID] = r
	return nil
}

// fakeTx ejecuta la función con los mismos repos, sin transacción real.
type fakeTx struct {
	clients   repository.ClientRepository
	suppliers repository.SupplierRepository
	addresses repository.AddressRepository
	contacts  repository.ContactRepository
	docs      repository.DocumentRepository
}

func (f *fakeTx) RunDirectory(_ context.Context, fn func(repository.ClientRepository, repository.SupplierRepository, repository.AddressRepository, repository.ContactRepository) error) error {
	return fn(f.clients, f.suppliers, f.addresses, f.contacts)
}

func (f *fakeTx) RunDocuments(_ context.Context, fn func(repository.DocumentRepository) error) error {
	return fn(f.docs)
}

var _ ports.TxRunner = (*fakeTx)(nil)

// fakeStorage almacenamiento en memoria; url no vacío simula un backend con URLs firmadas.
type fakeStorage struct {
	blobs map[string][]byte
	url   string
}

func (f *fakeStorage) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.blobs[key] = b
	return nil
}

func (f *fakeStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	b, ok := f.blobs[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	delete(f.blobs, key)
	return nil
}

func (f *fakeStorage) DownloadURL(_ context.Context, key, _ string) (string, error) {
	if f.url == "" {
		return "", nil
	}
	return f.url + key, nil
}

type fakePDF struct {
	got *ports.OfferDocument
}

func (f *fakePDF) GenerateOfferPDF(_ context.Context, doc *ports.OfferDocument) ([]byte, error) {
	f.got = doc
	return []byte("%PDF-fake"), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

var errBoom = errors.New("boom")

func testShared() Shared {
	return Shared{Cache: cache.NewMemoryCache(), CacheTTL: time.Minute, Log: logger.Nop()}
}

func strp(s string) *string { return &s }
