package repository

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"catalog-query/internal/models"
)

const (
	productsCollection  = "products"
	suppliersCollection = "suppliers"
)

type MongoRepository struct {
	client    *mongo.Client
	products  *mongo.Collection
	suppliers *mongo.Collection
}

func NewMongoRepository(client *mongo.Client, dbName string) *MongoRepository {
	db := client.Database(dbName)
	return &MongoRepository{
		client:    client,
		products:  db.Collection(productsCollection),
		suppliers: db.Collection(suppliersCollection),
	}
}

// ProductsByCategory busca productos con Category exactamente igual
func (r *MongoRepository) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	filter := bson.M{"Category": category}
	if err := r.find(ctx, r.products, filter, &products); err != nil {
		return nil, fmt.Errorf("fetch products by category: %w", err)
	}
	return products, nil
}

// SuppliersByCategory busca proveedores cuyo ProductCategoriesOffered contiene category
func (r *MongoRepository) SuppliersByCategory(ctx context.Context, category string) ([]models.Supplier, error) {
	suppliers := make([]models.Supplier, 0)
	filter := bson.M{"ProductCategoriesOffered": bson.M{"$regex": regexp.QuoteMeta(category)}}
	if err := r.find(ctx, r.suppliers, filter, &suppliers); err != nil {
		return nil, fmt.Errorf("fetch suppliers by category: %w", err)
	}
	return suppliers, nil
}

// find ejecuta una sola lectura dentro de una sesión propia que se cierra siempre.
func (r *MongoRepository) find(ctx context.Context, coll *mongo.Collection, filter bson.M, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	sess, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		cursor, err := coll.Find(sc, filter)
		if err != nil {
			return err
		}
		defer cursor.Close(sc)

		return cursor.All(sc, out)
	})
}
