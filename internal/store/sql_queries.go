package store

import (
	"fmt"

	"github.com/MKhiriev/go-book-catalog/models"
)

var (
	createUser = fmt.Sprintf(`INSERT INTO %s (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`, models.User{}.TableName())

	findUserByUsername = fmt.Sprintf(`SELECT user_id, username, email, password_hash, created_at
    FROM %s
    WHERE username = $1;`, models.User{}.TableName())
)
