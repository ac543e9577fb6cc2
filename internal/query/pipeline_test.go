package query

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"go.uber.org/mock/gomock"

	"catalog-query/internal/models"
	"catalog-query/internal/repository"
	"catalog-query/internal/summarizer"
)

func newPipeline(t *testing.T) (*Pipeline, *repository.MockCatalogRepository, *summarizer.MockSummarizer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := repository.NewMockCatalogRepository(ctrl)
	sum := summarizer.NewMockSummarizer(ctrl)
	return NewPipeline(repo, sum), repo, sum
}

func TestHandle_ProductLookup(t *testing.T) {
	p, repo, _ := newPipeline(t)
	products := []models.Product{
		{ProductID: 1, Name: "Laptop", Category: "Electronics"},
		{ProductID: 2, Name: "Phone", Category: "Electronics"},
	}
	repo.EXPECT().ProductsByCategory(gomock.Any(), "Electronics").Return(products, nil)

	res, err := p.Handle(context.Background(), "show products in category Electronics")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res.Intent != IntentProduct || len(res.Products) != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestHandle_ProductLookupEmpty(t *testing.T) {
	p, repo, _ := newPipeline(t)
	repo.EXPECT().ProductsByCategory(gomock.Any(), "Nothing").Return(nil, nil)

	res, err := p.Handle(context.Background(), "products in category Nothing")
	if err != nil {
		t.Fatalf("empty result must not be an error: %v", err)
	}
	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(body) != `{"products":[]}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestHandle_SupplierLookupSummariesAligned(t *testing.T) {
	p, repo, sum := newPipeline(t)
	suppliers := []models.Supplier{
		{SupplierID: 7, Name: "Acme", ProductCategoriesOffered: "Electronics, Computers"},
		{SupplierID: 9, Name: "Volt", ProductCategoriesOffered: "Electronics, Lighting"},
	}
	repo.EXPECT().SuppliersByCategory(gomock.Any(), "Electronics").Return(suppliers, nil)
	gomock.InOrder(
		sum.EXPECT().Summarize(gomock.Any(), "Electronics, Computers").Return("acme summary", nil),
		sum.EXPECT().Summarize(gomock.Any(), "Electronics, Lighting").Return("volt summary", nil),
	)

	res, err := p.Handle(context.Background(), "list supplier for category Electronics")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res.Intent != IntentSupplier {
		t.Fatalf("expected supplier intent, got %s", res.Intent)
	}
	if len(res.Summaries) != len(res.Suppliers) {
		t.Fatalf("summaries=%d suppliers=%d", len(res.Summaries), len(res.Suppliers))
	}
	if res.Summaries[0] != "acme summary" || res.Summaries[1] != "volt summary" {
		t.Fatalf("summaries not aligned: %v", res.Summaries)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["products"]; ok || len(decoded) != 2 {
		t.Fatalf("unexpected keys in %s", body)
	}
}

func TestHandle_SupplierLookupEmptyHasEmptySummaries(t *testing.T) {
	p, repo, _ := newPipeline(t)
	repo.EXPECT().SuppliersByCategory(gomock.Any(), "Garden").Return([]models.Supplier{}, nil)

	res, err := p.Handle(context.Background(), "supplier category Garden")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	body, _ := json.Marshal(res)
	if string(body) != `{"suppliers":[],"summaries":[]}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestHandle_SummarizerFailureAbortsResponse(t *testing.T) {
	p, repo, sum := newPipeline(t)
	suppliers := []models.Supplier{
		{SupplierID: 1, ProductCategoriesOffered: "a"},
		{SupplierID: 2, ProductCategoriesOffered: "b"},
		{SupplierID: 3, ProductCategoriesOffered: "c"},
	}
	repo.EXPECT().SuppliersByCategory(gomock.Any(), "x").Return(suppliers, nil)
	sum.EXPECT().Summarize(gomock.Any(), "a").Return("ok", nil)
	sum.EXPECT().Summarize(gomock.Any(), "b").Return("", errors.New("model timeout"))

	res, err := p.Handle(context.Background(), "supplier category x")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrInvalidQuery) {
		t.Fatal("summarizer failure must not be an invalid query")
	}
	if !strings.Contains(err.Error(), "model timeout") {
		t.Fatalf("error should carry cause: %v", err)
	}
	if res.Suppliers != nil || res.Summaries != nil {
		t.Fatalf("expected no partial result, got %+v", res)
	}
}

func TestHandle_RepositoryErrorPropagates(t *testing.T) {
	p, repo, _ := newPipeline(t)
	cause := errors.New("connection refused")
	repo.EXPECT().ProductsByCategory(gomock.Any(), "Toys").Return(nil, cause)

	_, err := p.Handle(context.Background(), "product category Toys")
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestHandle_InvalidQuery(t *testing.T) {
	p, _, _ := newPipeline(t)

	for _, text := range []string{"", "hello", "category Electronics", "show me products"} {
		_, err := p.Handle(context.Background(), text)
		if !errors.Is(err, ErrInvalidQuery) {
			t.Fatalf("Handle(%q): expected ErrInvalidQuery, got %v", text, err)
		}
		var iq *InvalidQueryError
		if !errors.As(err, &iq) || iq.Query != text {
			t.Fatalf("Handle(%q): error should carry original text, got %v", text, err)
		}
	}
}
