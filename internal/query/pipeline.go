package query

import (
	"context"
	"fmt"
	"log"

	"github.com/goccy/go-json"

	"catalog-query/internal/models"
	"catalog-query/internal/repository"
	"catalog-query/internal/summarizer"
)

// Result es la respuesta estructurada de una consulta.
// Suppliers y Summaries van alineados por índice.
type Result struct {
	Intent    IntentKind
	Products  []models.Product
	Suppliers []models.Supplier
	Summaries []string
}

type productsBody struct {
	Products []models.Product `json:"products"`
}

type suppliersBody struct {
	Suppliers []models.Supplier `json:"suppliers"`
	Summaries []string          `json:"summaries"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	if r.Intent == IntentSupplier {
		return json.Marshal(suppliersBody{Suppliers: r.Suppliers, Summaries: r.Summaries})
	}
	return json.Marshal(productsBody{Products: r.Products})
}

type Pipeline struct {
	repo       repository.CatalogRepository
	summarizer summarizer.Summarizer
}

func NewPipeline(repo repository.CatalogRepository, s summarizer.Summarizer) *Pipeline {
	return &Pipeline{repo: repo, summarizer: s}
}

// Handle clasifica la consulta, consulta el repositorio y, para proveedores,
// resume el texto de categorías de cada uno.
func (p *Pipeline) Handle(ctx context.Context, text string) (Result, error) {
	intent := Classify(text)

	switch intent.Kind {
	case IntentProduct:
		return p.handleProducts(ctx, intent.Category)
	case IntentSupplier:
		return p.handleSuppliers(ctx, intent.Category)
	default:
		return Result{}, &InvalidQueryError{Query: text}
	}
}

func (p *Pipeline) handleProducts(ctx context.Context, category string) (Result, error) {
	products, err := p.repo.ProductsByCategory(ctx, category)
	if err != nil {
		return Result{}, err
	}
	if products == nil {
		products = []models.Product{}
	}

	log.Printf("🔎 product lookup category=%q results=%d", category, len(products))
	return Result{Intent: IntentProduct, Products: products}, nil
}

func (p *Pipeline) handleSuppliers(ctx context.Context, category string) (Result, error) {
	// la sesión del repositorio ya se liberó cuando empieza el resumen
	suppliers, err := p.repo.SuppliersByCategory(ctx, category)
	if err != nil {
		return Result{}, err
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}

	summaries := make([]string, 0, len(suppliers))
	for _, s := range suppliers {
		summary, err := p.summarizer.Summarize(ctx, s.ProductCategoriesOffered)
		if err != nil {
			return Result{}, fmt.Errorf("summarize supplier %d: %w", s.SupplierID, err)
		}
		summaries = append(summaries, summary)
	}

	log.Printf("🔎 supplier lookup category=%q results=%d", category, len(suppliers))
	return Result{Intent: IntentSupplier, Suppliers: suppliers, Summaries: summaries}, nil
}
