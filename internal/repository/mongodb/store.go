package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sit722-devops/week09/internal/domain/models"
	"github.com/sit722-devops/week09/internal/repository"
)

const (
	productsCollection = "products"
	countersCollection = "counters"
	productCounterKey  = "products"
)

// productDoc is the persisted shape of a product. It keeps bson concerns out
// of the shared model, whose timestamp wrapper only knows JSON.
type productDoc struct {
	ID          int64     `bson:"product_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Price       float64   `bson:"price"`
	Stock       int       `bson:"stock_quantity"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d productDoc) toModel() models.Product {
	return models.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Stock:       d.Stock,
		CreatedAt:   models.Timestamp{Time: d.CreatedAt},
		UpdatedAt:   models.Timestamp{Time: d.UpdatedAt},
	}
}

// Store implements repository.ProductStore on MongoDB.
type Store struct {
	client *mongo.Client
	dbName string
	now    func() time.Time
}

// NewStore connects to MongoDB and verifies the connection.
func NewStore(ctx context.Context, uri string, dbName string) (*Store, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{
		client: client,
		dbName: dbName,
		now:    time.Now,
	}, nil
}

// ListProducts returns every product ordered by ascending ID.
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	collection := s.client.Database(s.dbName).Collection(productsCollection)

	findOptions := options.Find().SetSort(bson.D{{Key: "product_id", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toModel())
	}
	return products, nil
}

// CreateProduct allocates the next sequential ID from the counters
// collection, stamps both timestamps and inserts the product.
func (s *Store) CreateProduct(ctx context.Context, req models.NewProduct) (models.Product, error) {
	id, err := s.nextID(ctx)
	if err != nil {
		return models.Product{}, err
	}

	now := s.now().UTC()
	doc := productDoc{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	collection := s.client.Database(s.dbName).Collection(productsCollection)
	if _, err := collection.InsertOne(ctx, doc); err != nil {
		return models.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return doc.toModel(), nil
}

// DeleteProduct removes the product or reports repository.ErrNotFound.
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	collection := s.client.Database(s.dbName).Collection(productsCollection)

	res, err := collection.DeleteOne(ctx, bson.M{"product_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Close closes the MongoDB connection.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// nextID atomically increments and returns the product ID counter.
func (s *Store) nextID(ctx context.Context) (int64, error) {
	counters := s.client.Database(s.dbName).Collection(countersCollection)

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var out struct {
		Seq int64 `bson:"seq"`
	}
	err := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": productCounterKey},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&out)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate product id: %w", err)
	}
	return out.Seq, nil
}
