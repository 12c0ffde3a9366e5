package utils

import "go.mongodb.org/mongo-driver/v2/bson"

func Oid(hex string) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(hex)
}

// OidOrNil parses hex and yields bson.NilObjectID when it is malformed.
// Lookups with the nil id simply find nothing.
func OidOrNil(hex string) bson.ObjectID {
	oid, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID
	}
	return oid
}
