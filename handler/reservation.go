package handler

import (
	"napoli_backend/database"
	"napoli_backend/model"
	"napoli_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateReservation(c *fiber.Ctx) error {
	input := c.Locals("reservationInput").(model.CreateReservationInput)

	var reservation model.Reservation
	if err := copier.Copy(&reservation, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "", err)
	}

	id, err := database.CreateDocument(model.ReservationCollection, reservation)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// GetReservations lists reservations in natural order, renaming the internal
// _id field to a plain id string.
func GetReservations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	docs, err := database.GetDocuments(model.ReservationCollection, bson.M{}, int64(limit))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "", err)
	}

	items := make([]fiber.Map, 0, len(docs))
	for _, doc := range docs {
		item := fiber.Map{}
		for key, value := range doc {
			item[key] = value
		}
		if oid, ok := item["_id"].(primitive.ObjectID); ok {
			delete(item, "_id")
			item["id"] = oid.Hex()
		}
		items = append(items, item)
	}

	return c.Status(fiber.StatusOK).JSON(items)
}
