package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
)

type documentFakes struct {
	docs    *fakeDocuments
	storage *fakeStorage
	f       projectFakes
}

func newDocumentUC(maxBytes int64) (*DocumentUseCase, documentFakes) {
	df := documentFakes{
		docs:    &fakeDocuments{byID: map[string]*entity.Document{}, relations: map[string]*entity.DocumentRelation{}},
		storage: &fakeStorage{blobs: map[string][]byte{}},
		f:       newProjectFakes(),
	}
	df.f.projects.byID["p1"] = &entity.Project{ID: "p1", ClientID: "c1"}
	tx := &fakeTx{docs: df.docs}
	uc := NewDocumentUseCase(df.docs, df.f.projects, df.f.items, df.f.suppliers, df.f.clients, df.storage, tx, maxBytes, testShared())
	return uc, df
}

func upload(t *testing.T, uc *DocumentUseCase, actor dto.Principal, private bool) *dto.DocumentResponse {
	t.Helper()
	body := "contenido del plano"
	res, err := uc.Upload(context.Background(), actor,
		dto.UploadDocumentRequest{Private: private, RelationTargetRequest: dto.RelationTargetRequest{ProjectID: "p1"}},
		dto.UploadedFile{Filename: "Plano General.PDF", ContentType: "application/pdf", Size: int64(len(body))},
		strings.NewReader(body))
	require.NoError(t, err)
	return res
}

func TestDocumentUpload_GuardaArchivoYRelacion(t *testing.T) {
	var uploaded int64
	uc, df := newDocumentUC(1 << 20)
	uc.OnUpload = func(n int64) { uploaded += n }

	res := upload(t, uc, actorUser, false)
	assert.Equal(t, "Plano General", res.Name)
	assert.Equal(t, "pdf", res.Extension)
	assert.Equal(t, int64(19), uploaded)

	doc := df.docs.byID[res.ID]
	require.NotNil(t, doc)
	assert.Equal(t, "documents/"+res.ID+".pdf", doc.Path)
	assert.Equal(t, "contenido del plano", string(df.storage.blobs[doc.Path]))
	require.Len(t, df.docs.relations, 1)
	for _, r := range df.docs.relations {
		assert.Equal(t, "p1", *r.ProjectID)
	}
}

func TestDocumentUpload_Rechazos(t *testing.T) {
	ctx := context.Background()
	uc, df := newDocumentUC(10)
	file := dto.UploadedFile{Filename: "a.txt", Size: 11}

	_, err := uc.Upload(ctx, actorUser, dto.UploadDocumentRequest{RelationTargetRequest: dto.RelationTargetRequest{ProjectID: "p1"}}, file, strings.NewReader("01234567890"))
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)

	file.Size = 1
	_, err = uc.Upload(ctx, actorUser, dto.UploadDocumentRequest{}, file, strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidRelation, "sin destino")

	two := dto.RelationTargetRequest{ProjectID: "p1", ClientID: "c1"}
	_, err = uc.Upload(ctx, actorUser, dto.UploadDocumentRequest{RelationTargetRequest: two}, file, strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidRelation, "dos destinos")

	_, err = uc.Upload(ctx, actorUser, dto.UploadDocumentRequest{RelationTargetRequest: dto.RelationTargetRequest{ItemID: "i9"}}, file, strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidRelation, "destino inexistente")

	assert.Empty(t, df.storage.blobs)
}

func TestDocumentUpload_FalloBDBorraArchivo(t *testing.T) {
	uc, df := newDocumentUC(0)
	df.docs.failWith = errBoom

	_, err := uc.Upload(context.Background(), actorUser,
		dto.UploadDocumentRequest{RelationTargetRequest: dto.RelationTargetRequest{ClientID: "c1"}},
		dto.UploadedFile{Filename: "a.txt", Size: 1}, strings.NewReader("x"))
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, df.storage.blobs, "el archivo huérfano se borra")
}

func TestDocument_PrivadoSoloAutorOAdmin(t *testing.T) {
	ctx := context.Background()
	uc, _ := newDocumentUC(0)
	res := upload(t, uc, actorUser, true)

	otro := dto.Principal{UserID: "u2", Role: entity.RoleUser}
	got, err := uc.GetByID(ctx, otro, res.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	_, _, err = uc.Download(ctx, otro, res.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	admin := dto.Principal{UserID: "u3", Role: entity.RoleAdmin}
	got, err = uc.GetByID(ctx, admin, res.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestDocumentDownload_StreamOURL(t *testing.T) {
	ctx := context.Background()
	uc, df := newDocumentUC(0)
	res := upload(t, uc, actorUser, false)

	out, rc, err := uc.Download(ctx, actorUser, res.ID)
	require.NoError(t, err)
	require.NotNil(t, rc)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "contenido del plano", string(b))
	assert.Empty(t, out.URL)

	df.storage.url = "https://s3.test/"
	out, rc, err = uc.Download(ctx, actorUser, res.ID)
	require.NoError(t, err)
	assert.Nil(t, rc)
	assert.Equal(t, "https://s3.test/documents/"+res.ID+".pdf", out.URL)
}

func TestDocumentDelete_BorraArchivo(t *testing.T) {
	uc, df := newDocumentUC(0)
	res := upload(t, uc, actorUser, false)

	require.NoError(t, uc.Delete(context.Background(), res.ID))
	assert.Empty(t, df.docs.byID)
	assert.Empty(t, df.storage.blobs)
	assert.ErrorIs(t, uc.Delete(context.Background(), res.ID), domain.ErrNotFound)
}
