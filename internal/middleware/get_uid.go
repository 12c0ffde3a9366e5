package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UIDObjectID returns the user id JWTUidOnly stored for this request.
func UIDObjectID(c *fiber.Ctx) (bson.ObjectID, error) {
	uid, ok := c.Locals(localUserID).(string)
	if !ok || uid == "" {
		return bson.NilObjectID, fiber.NewError(fiber.StatusUnauthorized, msgNoToken)
	}

	oid, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return bson.NilObjectID, fiber.NewError(fiber.StatusUnauthorized, msgInvalidToken)
	}
	return oid, nil
}
