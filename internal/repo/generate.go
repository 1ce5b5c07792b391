// Package repo holds the ent-generated data access client. The generated code
// is not committed; run `go generate ./...` after changing internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . ../schema
