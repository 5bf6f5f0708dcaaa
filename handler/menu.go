package handler

import (
	"napoli_backend/database"
	"napoli_backend/model"
	"napoli_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
)

// GetMenu lists menu items, optionally filtered by exact category match.
// Decoding raw documents into model.MenuItem drops _id and the timestamps,
// so menu responses carry no internal fields.
func GetMenu(c *fiber.Ctx) error {
	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	docs, err := database.GetDocuments(model.MenuCollection, filter, 0)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "", err)
	}

	items := make([]model.MenuItem, 0, len(docs))
	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "", err)
		}
		var item model.MenuItem
		if err := bson.Unmarshal(raw, &item); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "", err)
		}
		items = append(items, item)
	}

	return c.Status(fiber.StatusOK).JSON(items)
}

func AddMenuItem(c *fiber.Ctx) error {
	input := c.Locals("menuItemInput").(model.CreateMenuItemInput)

	var item model.MenuItem
	if err := copier.Copy(&item, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "", err)
	}

	id, err := database.CreateDocument(model.MenuCollection, item)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}
