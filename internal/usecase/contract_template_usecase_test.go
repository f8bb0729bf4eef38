package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"crm_imobiliario/internal/domain/entities"
	mock_interfaces "crm_imobiliario/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var pdfDocument = []byte("%PDF-1.7\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")

func uploadInput(fileName string, body []byte) UploadContractTemplateInput {
	return UploadContractTemplateInput{
		UserID:      "u1",
		Name:        " Contrato de compra e venda ",
		Description: "modelo padrão",
		FileName:    fileName,
		Size:        int64(len(body)),
		Body:        bytes.NewReader(body),
	}
}

func TestContractTemplateUseCase_Upload(t *testing.T) {
	t.Run("stores the document then the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewContractTemplateUseCase(repo, storage, 0, nil)

		var storedKey string
		gomock.InOrder(
			storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), int64(len(pdfDocument)), "application/pdf").DoAndReturn(
				func(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
					got, _ := io.ReadAll(body)
					if !bytes.Equal(got, pdfDocument) {
						t.Fatalf("document bytes were altered")
					}
					if !strings.HasPrefix(key, "contracts/u1/") || !strings.HasSuffix(key, ".pdf") {
						t.Fatalf("unexpected key %q", key)
					}
					storedKey = key
					return nil
				},
			),
			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ContractTemplate{})).DoAndReturn(
				func(_ context.Context, tpl entities.ContractTemplate) (entities.ContractTemplate, error) {
					if tpl.FileKey != storedKey || tpl.Name != "Contrato de compra e venda" || tpl.UserID != "u1" {
						t.Fatalf("unexpected template: %+v", tpl)
					}
					return tpl, nil
				},
			),
		)

		got, err := uc.Upload(context.Background(), uploadInput("compra.pdf", pdfDocument))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.ContentType != "application/pdf" || got.FileName != "compra.pdf" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("plain text template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewContractTemplateUseCase(repo, storage, 0, nil)

		body := []byte("CONTRATO DE LOCAÇÃO\n\nLOCADOR: {{nome}}\n")
		storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "text/plain").Return(nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tpl entities.ContractTemplate) (entities.ContractTemplate, error) { return tpl, nil },
		)

		if _, err := uc.Upload(context.Background(), uploadInput("locacao.TXT", body)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name string
			in   UploadContractTemplateInput
			max  int64
			want error
		}{
			{"anonymous", UploadContractTemplateInput{Name: "x", FileName: "a.pdf", Size: 1, Body: bytes.NewReader(pdfDocument)}, 0, ErrNotAuthenticated},
			{"blank name", UploadContractTemplateInput{UserID: "u1", Name: " ", FileName: "a.pdf", Size: 1, Body: bytes.NewReader(pdfDocument)}, 0, ErrInvalidContractTemplate},
			{"no body", UploadContractTemplateInput{UserID: "u1", Name: "x", FileName: "a.pdf", Size: 1}, 0, ErrInvalidContractTemplate},
			{"too large", uploadInput("a.pdf", pdfDocument), 8, ErrDocumentTooLarge},
			{"unknown extension", uploadInput("a.exe", pdfDocument), 0, ErrUnsupportedDocumentType},
			{"content does not match extension", uploadInput("a.pdf", []byte("just some text")), 0, ErrUnsupportedDocumentType},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := NewContractTemplateUseCase(
					mock_interfaces.NewMockIContractTemplateRepository(ctrl),
					mock_interfaces.NewMockIDocumentStorage(ctrl),
					tc.max, nil,
				)

				if _, err := uc.Upload(context.Background(), tc.in); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("storage failure writes no record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewContractTemplateUseCase(repo, storage, 0, nil)

		storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("bucket missing"))

		if _, err := uc.Upload(context.Background(), uploadInput("a.pdf", pdfDocument)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("record failure removes the stored document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewContractTemplateUseCase(repo, storage, 0, nil)

		var key string
		storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, k string, _ io.Reader, _ int64, _ string) error {
				key = k
				return nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ContractTemplate{}, errors.New("throttled"))
		storage.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, k string) error {
				if k != key {
					t.Fatalf("deleted %q, stored %q", k, key)
				}
				return nil
			},
		)

		if _, err := uc.Upload(context.Background(), uploadInput("a.pdf", pdfDocument)); err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled, got %v", err)
		}
	})
}

func TestContractTemplateUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
	uc := NewContractTemplateUseCase(repo, mock_interfaces.NewMockIDocumentStorage(ctrl), 0, nil)

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().ListByUserID(gomock.Any(), "u1").Return([]entities.ContractTemplate{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "mid", CreatedAt: base.Add(24 * time.Hour)},
	}, nil)

	got, err := uc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].ID != "new" || got[1].ID != "mid" || got[2].ID != "old" {
		t.Fatalf("expected newest first, got %+v", got)
	}

	if _, err := uc.List(context.Background(), ""); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestContractTemplateUseCase_DownloadURL(t *testing.T) {
	owned := entities.ContractTemplate{ID: "t1", UserID: "u1", FileKey: "contracts/u1/k.pdf"}

	t.Run("owner gets a presigned link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewContractTemplateUseCase(repo, storage, 0, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t1").Return(owned, nil)
		storage.EXPECT().URL(gomock.Any(), "contracts/u1/k.pdf", 15*time.Minute).Return("https://signed", nil)

		url, err := uc.DownloadURL(context.Background(), "u1", "t1")
		if err != nil || url != "https://signed" {
			t.Fatalf("unexpected result %q, %v", url, err)
		}
	})

	t.Run("another user's template is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
		uc := NewContractTemplateUseCase(repo, mock_interfaces.NewMockIDocumentStorage(ctrl), 0, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t1").Return(owned, nil)

		if _, err := uc.DownloadURL(context.Background(), "u2", "t1"); !errors.Is(err, ErrContractTemplateNotFound) {
			t.Fatalf("expected ErrContractTemplateNotFound, got %v", err)
		}
	})

	t.Run("missing template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
		uc := NewContractTemplateUseCase(repo, mock_interfaces.NewMockIDocumentStorage(ctrl), 0, nil)

		repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.ContractTemplate{}, nil)

		if _, err := uc.DownloadURL(context.Background(), "u1", "nope"); !errors.Is(err, ErrContractTemplateNotFound) {
			t.Fatalf("expected ErrContractTemplateNotFound, got %v", err)
		}
	})
}

func TestContractTemplateUseCase_Delete(t *testing.T) {
	owned := entities.ContractTemplate{ID: "t1", UserID: "u1", FileKey: "contracts/u1/k.pdf"}

	t.Run("record then document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewContractTemplateUseCase(repo, storage, 0, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t1").Return(owned, nil)
		gomock.InOrder(
			repo.EXPECT().Delete(gomock.Any(), "t1").Return(nil),
			storage.EXPECT().Delete(gomock.Any(), "contracts/u1/k.pdf").Return(nil),
		)

		if err := uc.Delete(context.Background(), "u1", "t1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("object failure is not reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewContractTemplateUseCase(repo, storage, 0, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t1").Return(owned, nil)
		repo.EXPECT().Delete(gomock.Any(), "t1").Return(nil)
		storage.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

		if err := uc.Delete(context.Background(), "u1", "t1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("record failure keeps the document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
		uc := NewContractTemplateUseCase(repo, mock_interfaces.NewMockIDocumentStorage(ctrl), 0, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t1").Return(owned, nil)
		repo.EXPECT().Delete(gomock.Any(), "t1").Return(errors.New("db"))

		if err := uc.Delete(context.Background(), "u1", "t1"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewContractTemplateUseCase(
			mock_interfaces.NewMockIContractTemplateRepository(ctrl),
			mock_interfaces.NewMockIDocumentStorage(ctrl),
			0, nil,
		)

		if err := uc.Delete(context.Background(), "u1", " "); !errors.Is(err, ErrInvalidContractTemplate) {
			t.Fatalf("expected ErrInvalidContractTemplate, got %v", err)
		}
	})
}
