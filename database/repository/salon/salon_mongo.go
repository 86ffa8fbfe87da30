package salonRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"priisme/database"
	"priisme/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrSalonNotFound is returned when a salon does not exist.
	ErrSalonNotFound = errors.New("salon not found")
	// ErrServiceNotFound is returned when a salon service does not exist.
	ErrServiceNotFound = errors.New("salon service not found")
)

// MongoSalonRepo implements SalonRepository using MongoDB.
type MongoSalonRepo struct {
	salons   *mongo.Collection
	services *mongo.Collection
}

// NewMongoSalonRepo creates a new SalonRepository.
func NewMongoSalonRepo() SalonRepository {
	repo := &MongoSalonRepo{
		salons:   database.Collection("salons"),
		services: database.Collection("salon_services"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create salons indexes: %v\n", err)
	}
	return repo
}

func (r *MongoSalonRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.salons.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}
	_, err := r.services.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "salon_id", Value: 1}, {Key: "is_active", Value: 1}}},
	})
	return err
}

func (r *MongoSalonRepo) ListActive(ctx context.Context, city string) ([]models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"is_active": true}
	if city != "" {
		filter["city"] = city
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.salons.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list salons: %w", err)
	}
	defer cursor.Close(ctx)

	var salons []models.Salon
	if err := cursor.All(ctx, &salons); err != nil {
		return nil, fmt.Errorf("failed to decode salons: %w", err)
	}
	return salons, nil
}

func (r *MongoSalonRepo) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var salon models.Salon
	err := r.salons.FindOne(ctx, bson.M{"id": id}).Decode(&salon)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch salon %s: %w", id, err)
	}
	return &salon, nil
}

func (r *MongoSalonRepo) ListServices(ctx context.Context, salonID string) ([]models.SalonService, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"salon_id": salonID, "is_active": true}
	cursor, err := r.services.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "price", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list services for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var services []models.SalonService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services for salon %s: %w", salonID, err)
	}
	return services, nil
}

func (r *MongoSalonRepo) GetService(ctx context.Context, serviceID string) (*models.SalonService, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var service models.SalonService
	err := r.services.FindOne(ctx, bson.M{"id": serviceID}).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", serviceID, err)
	}
	return &service, nil
}
