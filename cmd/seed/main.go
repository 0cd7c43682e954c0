package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oktarian/shopstock/config"
	"github.com/oktarian/shopstock/internal/domain/entity"
	mongoinfra "github.com/oktarian/shopstock/internal/infrastructure/mongodb"
	"github.com/oktarian/shopstock/pkg/helpers"
)

// Seeds a demo account and a few products for local development. Accounts
// are provisioned out-of-band in production; this stands in for that.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, err := mongoinfra.NewClient(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDatabase)

	email := "demo@shopstock.local"
	password := "pass1234"
	name := "Demo User"

	stored := password
	if cfg.CredentialScheme == "bcrypt" {
		stored, err = helpers.HashPassword(password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
	}

	users := db.Collection(cfg.MongoUsersColl)
	res, err := users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"email": email, "password": stored, "name": name}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: email=%s name=%s password=%s (matched=%d upserted=%v)\n",
		email, name, password, res.MatchedCount, res.UpsertedID != nil)

	products := db.Collection(cfg.MongoProductsColl)
	for _, p := range []entity.Product{
		{ID: "apple", Name: "apple", Quantity: 10, Price: 1.50},
		{ID: "banana", Name: "banana", Quantity: 24, Price: 0.75},
		{ID: "coffee beans", Name: "coffee beans", Quantity: 5, Price: 12.90},
	} {
		if _, err := products.UpdateByID(ctx, p.ID,
			bson.M{"$set": bson.M{"name": p.Name, "quantity": p.Quantity, "price": p.Price}},
			options.Update().SetUpsert(true),
		); err != nil {
			log.Fatalf("failed to seed product %q: %v", p.ID, err)
		}
		fmt.Printf("seeded product: id=%s quantity=%d price=%.2f\n", p.ID, p.Quantity, p.Price)
	}
}
