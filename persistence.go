package identity

import (
	persistence "github.com/goliatone/go-persistence-bun"
)

// RegisterModels registers the identity models with the persistence layer.
// Call this before creating the persistence client so fixtures and schema
// generation see the users, roles, and join tables.
func RegisterModels() {
	persistence.RegisterModel((*User)(nil))
	persistence.RegisterModel((*Role)(nil))
	persistence.RegisterModel((*UserToRole)(nil))
}
