package database

import (
	"context"
	"log"

	"napoli_backend/model"
	"napoli_backend/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// SampleMenu is the fixed menu inserted on first startup.
func SampleMenu() []model.MenuItem {
	return []model.MenuItem{
		// Antipasti
		{Name: "Bruschetta al Pomodoro", Description: utils.StringPtr("Grilled bread, marinated tomatoes, basil, EVOO"), Price: 9.5, Category: "Antipasti", IsVegetarian: true},
		{Name: "Calamari Fritti", Description: utils.StringPtr("Crispy squid with lemon aioli"), Price: 14.0, Category: "Antipasti"},
		// Pizza
		{Name: "Margherita DOP", Description: utils.StringPtr("San Marzano, fior di latte, basil, EVOO"), Price: 16.0, Category: "Pizza", IsVegetarian: true},
		{Name: "Diavola", Description: utils.StringPtr("Spicy salami, mozzarella, chili oil"), Price: 18.5, Category: "Pizza", IsSpicy: true},
		// Pasta
		{Name: "Spaghetti alle Vongole", Description: utils.StringPtr("Manila clams, garlic, white wine, parsley"), Price: 22.0, Category: "Pasta"},
		{Name: "Rigatoni alla Norma", Description: utils.StringPtr("Eggplant, tomato, ricotta salata"), Price: 19.0, Category: "Pasta", IsVegetarian: true},
		// Secondi
		{Name: "Pollo al Limone", Description: utils.StringPtr("Roasted chicken, lemon-caper sauce"), Price: 24.0, Category: "Secondi"},
		{Name: "Branzino Arrosto", Description: utils.StringPtr("Whole roasted sea bass, herbs, charred lemon"), Price: 32.0, Category: "Secondi"},
		// Dolci
		{Name: "Tiramisù", Description: utils.StringPtr("Espresso-soaked ladyfingers, mascarpone"), Price: 10.0, Category: "Dolci", IsVegetarian: true},
		{Name: "Panna Cotta al Limone", Description: utils.StringPtr("Silky lemon panna cotta, berry coulis"), Price: 9.0, Category: "Dolci", IsVegetarian: true},
	}
}

// SeedMenu populates the menuitem collection when it is empty. It runs once
// at startup; every failure is logged and swallowed so startup never fails
// on seeding.
func SeedMenu() {
	if DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	count, err := DB.Collection(model.MenuCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("Menu seed error:", err)
		return
	}
	if count > 0 {
		return
	}

	for _, item := range SampleMenu() {
		if _, err := CreateDocument(model.MenuCollection, item); err != nil {
			log.Println("failed to seed menu item:", item.Name, "error:", err)
		}
	}
	log.Println("Seeded sample menu items for Napoli.")
}
